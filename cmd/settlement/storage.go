package main

import (
	"encoding/hex"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newStorageCommand(rootOpts *rootOptions) *cobra.Command {
	var opts rpcOptions

	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Dump contract storage at the penult block",
		Long: `Print all storage items of the contract as hex key-value pairs. The node must
keep historical states (state root service with KeepOnlyLatestState off).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, h, err := opts.dial(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			var n int
			out := cmd.OutOrStdout()
			err = iterateContractStorage(c, h, func(key, value []byte) error {
				n++
				_, err := fmt.Fprintf(out, "%s %s\n", hex.EncodeToString(key), hex.EncodeToString(value))
				return err
			})
			if err != nil {
				return err
			}

			rootOpts.log.Debug("storage dumped", zap.Stringer("contract", h), zap.Int("items", n))
			return nil
		},
	}

	opts.bind(cmd)

	return cmd
}

// iterateContractStorage iterates over all storage items of the Neo smart
// contract referenced by given address and passes them into f.
// iterateContractStorage breaks on any f's error and returns it.
func iterateContractStorage(c *rpcclient.Client, contract util.Uint160, f func(key, value []byte) error) error {
	nLatestBlock, err := c.GetBlockCount()
	if err != nil {
		return fmt.Errorf("get number of the latest block: %w", err)
	}

	stateRoot, err := c.GetStateRootByHeight(nLatestBlock - 1)
	if err != nil {
		return fmt.Errorf("get state root at penult block #%d: %w", nLatestBlock-1, err)
	}

	var start []byte

	for {
		res, err := c.FindStates(stateRoot.Root, contract, nil, start, nil)
		if err != nil {
			return fmt.Errorf("get historical storage items of the requested contract at state root '%s': %w", stateRoot.Root, err)
		}

		for i := range res.Results {
			err = f(res.Results[i].Key, res.Results[i].Value)
			if err != nil {
				return err
			}
		}

		if !res.Truncated || len(res.Results) == 0 {
			return nil
		}

		start = res.Results[len(res.Results)-1].Key
	}
}
