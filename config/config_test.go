package config

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

var testAddress = address.Uint160ToString(util.Uint160{1, 2, 3})

var validConfig = `
rpc:
  endpoint: http://localhost:30333
  request_timeout: 1m
wallet:
  path: wallet.json
  address: ` + testAddress + `
tokens:
  standard: "1000"
  sanction: "0.5"
bonding_curve:
  slope: "200"
  release_delay: 5000s
escrow:
  cooling_off: 96h
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(validConfig))
	require.NoError(t, err)

	require.Equal(t, "http://localhost:30333", cfg.RPC.Endpoint)
	require.Equal(t, defaultDialTimeout, cfg.RPC.DialTimeout)
	require.Equal(t, time.Minute, cfg.RPC.RequestTimeout)
	require.Equal(t, defaultContractsDir, cfg.Contracts)

	require.True(t, cfg.Wallet.Address.Set)
	require.Equal(t, util.Uint160{1, 2, 3}, cfg.Wallet.Address.Uint160)
	require.False(t, cfg.Owner.Set)

	oneToken := new(big.Int).Exp(big.NewInt(10), big.NewInt(TokenDecimals), nil)
	require.Zero(t, new(big.Int).Mul(big.NewInt(1000), oneToken).Cmp(cfg.Tokens.Standard.Int))
	require.Zero(t, new(big.Int).Div(oneToken, big.NewInt(2)).Cmp(cfg.Tokens.Sanction.Int))
	require.Zero(t, cfg.Tokens.GodMode.Sign())

	require.Zero(t, new(big.Int).Mul(big.NewInt(200), oneToken).Cmp(cfg.BondingCurve.Slope.Int))
	require.Equal(t, 5000*time.Second, cfg.BondingCurve.ReleaseDelay)
	require.Equal(t, 96*time.Hour, cfg.Escrow.CoolingOff)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
rpc:
  endpoint: ws://localhost:30333/ws
wallet:
  path: w.json
bonding_curve:
  slope: "1"
`))
	require.NoError(t, err)
	require.Equal(t, MinCoolingOff, cfg.Escrow.CoolingOff)
	require.Zero(t, cfg.BondingCurve.ReleaseDelay)
	require.False(t, cfg.Wallet.Address.Set)
}

func TestParseInvalid(t *testing.T) {
	for _, tc := range []struct {
		name, doc string
		err       error
	}{
		{name: "no endpoint", doc: "wallet: {path: w.json}\nbonding_curve: {slope: \"1\"}", err: errMissingEndpoint},
		{name: "no wallet", doc: "rpc: {endpoint: x}\nbonding_curve: {slope: \"1\"}", err: errMissingWallet},
		{name: "no slope", doc: "rpc: {endpoint: x}\nwallet: {path: w.json}", err: errInvalidSlope},
		{name: "zero slope", doc: "rpc: {endpoint: x}\nwallet: {path: w.json}\nbonding_curve: {slope: \"0\"}", err: errInvalidSlope},
		{name: "negative delay", doc: "rpc: {endpoint: x}\nwallet: {path: w.json}\nbonding_curve: {slope: \"1\", release_delay: -1s}", err: errNegativeDelay},
		{name: "short cooling-off", doc: "rpc: {endpoint: x}\nwallet: {path: w.json}\nbonding_curve: {slope: \"1\"}\nescrow: {cooling_off: 71h}", err: errShortCoolingOff},
		{name: "negative supply", doc: "rpc: {endpoint: x}\nwallet: {path: w.json}\nbonding_curve: {slope: \"1\"}\ntokens: {godmode: \"-1\"}", err: errNegativeAmount},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.err)
		})
	}

	t.Run("malformed values", func(t *testing.T) {
		for _, doc := range []string{
			"owner: not-an-address",
			"tokens: {standard: \"1.2.3\"}",
			"escrow: {cooling_off: forever}",
		} {
			_, err := Parse([]byte(doc))
			require.Error(t, err, doc)
		}
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "wallet.json", cfg.Wallet.Path)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
