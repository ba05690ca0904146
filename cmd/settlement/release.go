package main

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/settlement-contract/config"
	"github.com/nspcc-dev/settlement-contract/rpc/bondingcurve"
	"github.com/nspcc-dev/settlement-contract/rpc/escrow"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newReleaseCommand(rootOpts *rootOptions) *cobra.Command {
	var (
		cfgPath  string
		contract string
		vault    vaultOptions
	)

	cmd := &cobra.Command{
		Use:   "release",
		Short: "Release tokens whose time lock has expired",
		Long: `Send releaseTokens transaction to the bonding curve or escrow contract and wait
for it. Anyone can release, tokens always go to the beneficiary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			beneficiary, asset, err := vault.parse()
			if err != nil {
				return err
			}

			h, err := parseHash(contract)
			if err != nil {
				return fmt.Errorf("contract: %w", err)
			}

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			s, err := newSigner(cmd.Context(), rootOpts.log, cfg)
			if err != nil {
				return err
			}
			defer s.close()

			var (
				txHash util.Uint256
				vub    uint32
			)
			if vault.kind == kindCurve {
				txHash, vub, err = bondingcurve.New(s.actor, h).ReleaseTokens(beneficiary)
			} else {
				txHash, vub, err = escrow.New(s.actor, h).ReleaseTokens(asset, beneficiary)
			}

			rootOpts.log.Info("release transaction sent",
				zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

			res, err := s.actor.Wait(txHash, vub, err)
			if err != nil {
				return fmt.Errorf("release tokens: %w", err)
			}
			if res.VMState != vmstate.Halt {
				return errors.New(res.FaultException)
			}

			fmt.Fprintln(cmd.OutOrStdout(), txHash.StringLE())
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to the config with RPC and wallet settings")
	cmd.Flags().StringVarP(&contract, "contract", "c", "", "contract address or hash (LE)")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("contract")
	vault.bind(cmd)

	return cmd
}
