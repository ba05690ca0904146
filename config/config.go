/*
Package config describes YAML configuration of the settlement contracts
deployment.

Example:

	rpc:
	  endpoint: http://localhost:30333
	  dial_timeout: 5s
	  request_timeout: 15s
	wallet:
	  path: wallet.json
	  address: NbUgTSFvPmsRxmGeWpuuGeJUoRoi6PErcM
	  password: ""
	owner: NbUgTSFvPmsRxmGeWpuuGeJUoRoi6PErcM
	contracts: ./contracts
	tokens:
	  standard: "1000"
	  sanction: "1000"
	  godmode: "1000"
	bonding_curve:
	  slope: "200"
	  release_delay: 5000s
	escrow:
	  cooling_off: 72h

Token amounts are decimal strings with up to 18 fractional digits.
*/
package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"gopkg.in/yaml.v3"
)

// TokenDecimals is the precision of all settlement tokens.
const TokenDecimals = 18

// MinCoolingOff is the shortest cooling-off period accepted by Escrow
// contract.
const MinCoolingOff = 72 * time.Hour

const (
	defaultDialTimeout    = 5 * time.Second
	defaultRequestTimeout = 15 * time.Second
	defaultContractsDir   = "contracts"
)

var (
	errMissingEndpoint = errors.New("missing RPC endpoint")
	errMissingWallet   = errors.New("missing wallet path")
	errInvalidSlope    = errors.New("bonding curve slope must be positive")
	errNegativeAmount  = errors.New("negative amount")
	errNegativeDelay   = errors.New("negative release delay")
	errShortCoolingOff = fmt.Errorf("cooling-off period is shorter than %s", MinCoolingOff)
)

// Amount is a token amount parsed from a decimal string.
type Amount struct {
	*big.Int
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	v, err := fixedn.FromString(s, TokenDecimals)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}

	a.Int = v
	return nil
}

// Address is a Neo account parsed from its base58 address.
type Address struct {
	util.Uint160
	Set bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Address) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	u, err := address.StringToUint160(s)
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", s, err)
	}

	a.Uint160, a.Set = u, true
	return nil
}

// RPC groups Neo RPC connection parameters.
type RPC struct {
	Endpoint       string        `yaml:"endpoint"`
	DialTimeout    time.Duration `yaml:"dial_timeout"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// Wallet references the account signing deployment transactions.
type Wallet struct {
	Path string `yaml:"path"`
	// Optional, the default wallet account is used if not set.
	Address  Address `yaml:"address"`
	Password string  `yaml:"password"`
}

// Tokens groups initial supplies minted to the owner by the ledger contracts.
type Tokens struct {
	Standard Amount `yaml:"standard"`
	Sanction Amount `yaml:"sanction"`
	GodMode  Amount `yaml:"godmode"`
}

// BondingCurve groups deployment parameters of BondingCurve contract.
type BondingCurve struct {
	// Slope is the curve parameter S, token price at supply x is x/S GAS.
	Slope        Amount        `yaml:"slope"`
	ReleaseDelay time.Duration `yaml:"release_delay"`
}

// Escrow groups deployment parameters of Escrow contract.
type Escrow struct {
	CoolingOff time.Duration `yaml:"cooling_off"`
}

// Config is a root of the deployment configuration.
type Config struct {
	RPC    RPC    `yaml:"rpc"`
	Wallet Wallet `yaml:"wallet"`
	// Optional, wallet account owns the contracts if not set.
	Owner        Address      `yaml:"owner"`
	Contracts    string       `yaml:"contracts"`
	Tokens       Tokens       `yaml:"tokens"`
	BondingCurve BondingCurve `yaml:"bonding_curve"`
	Escrow       Escrow       `yaml:"escrow"`
}

// Load reads, completes with defaults and validates configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return Parse(data)
}

// Parse is the same as Load but takes YAML document itself.
func Parse(data []byte) (*Config, error) {
	cfg := new(Config)

	err := yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode YAML: %w", err)
	}

	cfg.setDefaults()

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.RPC.DialTimeout == 0 {
		c.RPC.DialTimeout = defaultDialTimeout
	}
	if c.RPC.RequestTimeout == 0 {
		c.RPC.RequestTimeout = defaultRequestTimeout
	}
	if c.Contracts == "" {
		c.Contracts = defaultContractsDir
	}
	if c.Escrow.CoolingOff == 0 {
		c.Escrow.CoolingOff = MinCoolingOff
	}

	for _, a := range []*Amount{&c.Tokens.Standard, &c.Tokens.Sanction, &c.Tokens.GodMode} {
		if a.Int == nil {
			a.Int = new(big.Int)
		}
	}
}

// Validate checks that configuration can be used for deployment.
func (c *Config) Validate() error {
	switch {
	case c.RPC.Endpoint == "":
		return errMissingEndpoint
	case c.Wallet.Path == "":
		return errMissingWallet
	case c.BondingCurve.Slope.Int == nil || c.BondingCurve.Slope.Sign() <= 0:
		return errInvalidSlope
	case c.BondingCurve.ReleaseDelay < 0:
		return errNegativeDelay
	case c.Escrow.CoolingOff < MinCoolingOff:
		return errShortCoolingOff
	}

	for name, a := range map[string]Amount{
		"standard": c.Tokens.Standard,
		"sanction": c.Tokens.Sanction,
		"godmode":  c.Tokens.GodMode,
	} {
		if a.Int != nil && a.Sign() < 0 {
			return fmt.Errorf("%s token initial supply: %w", name, errNegativeAmount)
		}
	}

	return nil
}
