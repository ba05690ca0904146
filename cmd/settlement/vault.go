package main

import (
	"fmt"
	"math/big"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/settlement-contract/config"
	"github.com/nspcc-dev/settlement-contract/rpc/bondingcurve"
	"github.com/nspcc-dev/settlement-contract/rpc/escrow"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	kindCurve  = "curve"
	kindEscrow = "escrow"
)

// vaultOptions select a time-locked entry: beneficiary of the bonding curve or
// beneficiary and asset of the escrow.
type vaultOptions struct {
	kind        string
	beneficiary string
	asset       string
}

func (o *vaultOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.kind, "kind", kindCurve, "contract kind (curve|escrow)")
	cmd.Flags().StringVarP(&o.beneficiary, "beneficiary", "b", "", "beneficiary address")
	cmd.Flags().StringVar(&o.asset, "asset", "", "escrowed token address, escrow only")
	_ = cmd.MarkFlagRequired("beneficiary")
}

func (o *vaultOptions) parse() (beneficiary, asset util.Uint160, err error) {
	switch o.kind {
	case kindCurve:
	case kindEscrow:
		if o.asset == "" {
			return beneficiary, asset, fmt.Errorf("asset is required for %s", kindEscrow)
		}
		asset, err = parseHash(o.asset)
		if err != nil {
			return beneficiary, asset, fmt.Errorf("asset: %w", err)
		}
	default:
		return beneficiary, asset, fmt.Errorf("unknown contract kind %q", o.kind)
	}

	beneficiary, err = parseHash(o.beneficiary)
	if err != nil {
		return beneficiary, asset, fmt.Errorf("beneficiary: %w", err)
	}

	return beneficiary, asset, nil
}

func newVaultCommand(rootOpts *rootOptions) *cobra.Command {
	var (
		opts  rpcOptions
		vault vaultOptions
	)

	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Show tokens locked for the beneficiary and their release time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			beneficiary, asset, err := vault.parse()
			if err != nil {
				return err
			}

			c, h, err := opts.dial(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			inv := invoker.New(c, nil)

			var amount, until *big.Int
			if vault.kind == kindCurve {
				r := bondingcurve.NewReader(inv, h)
				amount, err = r.GetTimelockBalance(beneficiary)
				if err == nil {
					until, err = r.GetTimelockDeadline(beneficiary)
				}
			} else {
				r := escrow.NewReader(inv, h)
				amount, err = r.GetTimelockBalance(asset, beneficiary)
				if err == nil {
					until, err = r.GetTimelockDeadline(asset, beneficiary)
				}
			}
			if err != nil {
				return fmt.Errorf("read time lock: %w", err)
			}

			rootOpts.log.Debug("time lock read",
				zap.String("kind", vault.kind), zap.Stringer("contract", h), zap.Stringer("amount", amount))

			out := cmd.OutOrStdout()
			if amount.Sign() == 0 {
				fmt.Fprintln(out, "nothing is locked")
				return nil
			}

			fmt.Fprintf(out, "locked:   %s\n", fixedn.ToString(amount, config.TokenDecimals))
			fmt.Fprintf(out, "releases: %s\n", time.UnixMilli(until.Int64()).UTC().Format(time.RFC3339))
			return nil
		},
	}

	opts.bind(cmd)
	vault.bind(cmd)

	return cmd
}
