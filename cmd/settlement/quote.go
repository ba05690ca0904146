package main

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/settlement-contract/config"
	"github.com/nspcc-dev/settlement-contract/rpc/bondingcurve"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// gasDecimals is the precision of native GAS.
const gasDecimals = 8

func newQuoteCommand(rootOpts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price bonding curve operations at the current curve state",
	}

	cmd.AddCommand(newQuoteMintCommand(rootOpts))
	cmd.AddCommand(newQuoteBurnCommand(rootOpts))

	return cmd
}

func newQuoteMintCommand(rootOpts *rootOptions) *cobra.Command {
	var (
		opts  rpcOptions
		value string
	)

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Show T2 amount minted for the GAS payment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := fixedn.FromString(value, gasDecimals)
			if err != nil {
				return fmt.Errorf("invalid GAS value %q: %w", value, err)
			}

			c, h, err := opts.dial(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			minted, err := bondingcurve.NewReader(invoker.New(c, nil), h).QuoteMint(v)
			if err != nil {
				return err
			}

			rootOpts.log.Debug("mint quoted", zap.Stringer("curve", h), zap.Stringer("gas", v), zap.Stringer("minted", minted))
			fmt.Fprintln(cmd.OutOrStdout(), fixedn.ToString(minted, config.TokenDecimals))
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&value, "gas", "", "GAS amount to pay, e.g. 0.01")
	_ = cmd.MarkFlagRequired("gas")

	return cmd
}

func newQuoteBurnCommand(rootOpts *rootOptions) *cobra.Command {
	var (
		opts   rpcOptions
		amount string
	)

	cmd := &cobra.Command{
		Use:   "burn",
		Short: "Show GAS refunded for burning T2 tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := fixedn.FromString(amount, config.TokenDecimals)
			if err != nil {
				return fmt.Errorf("invalid token amount %q: %w", amount, err)
			}

			c, h, err := opts.dial(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			refund, err := bondingcurve.NewReader(invoker.New(c, nil), h).QuoteBurn(a)
			if err != nil {
				return err
			}

			rootOpts.log.Debug("burn quoted", zap.Stringer("curve", h), zap.Stringer("amount", a), zap.Stringer("refund", refund))
			fmt.Fprintln(cmd.OutOrStdout(), fixedn.ToString(refund, gasDecimals))
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&amount, "amount", "", "T2 amount to burn, e.g. 2")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
