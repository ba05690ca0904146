package main

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/settlement-contract/rpc/sanction"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBannedCommand(rootOpts *rootOptions) *cobra.Command {
	var (
		opts  rpcOptions
		batch int
	)

	cmd := &cobra.Command{
		Use:   "banned",
		Short: "List addresses banned by the sanction token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if batch <= 0 {
				return fmt.Errorf("invalid batch size %d", batch)
			}

			c, h, err := opts.dial(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			list, err := sanction.NewReader(invoker.New(c, nil), h).BannedAddresses(batch)
			if err != nil {
				return fmt.Errorf("list banned addresses: %w", err)
			}

			rootOpts.log.Debug("ban list read", zap.Int("count", len(list)))

			for i := range list {
				fmt.Fprintln(cmd.OutOrStdout(), address.Uint160ToString(list[i]))
			}
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().IntVar(&batch, "batch", 100, "number of items fetched per iterator request")

	return cmd
}
