package main

import (
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/settlement-contract/config"
	"github.com/nspcc-dev/settlement-contract/contracts"
	"github.com/nspcc-dev/settlement-contract/deploy"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDeployCommand(rootOpts *rootOptions) *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy all settlement contracts",
		Long: `Deploy Standard, Sanction, GodMode, BondingCurve and Escrow contracts in this
order. Contracts already deployed by the same account are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(cmd, rootOpts.log, cfgPath)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to the deployment config")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runDeploy(cmd *cobra.Command, log *zap.Logger, cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	cs, err := contracts.Read(os.DirFS(cfg.Contracts))
	if err != nil {
		return fmt.Errorf("read contracts from %s: %w", cfg.Contracts, err)
	}

	s, err := newSigner(cmd.Context(), log, cfg)
	if err != nil {
		return err
	}
	defer s.close()

	owner := cfg.Owner.Uint160
	if !cfg.Owner.Set {
		owner = s.actor.Sender()
	}

	common := func(c contracts.Contract) deploy.CommonDeployPrm {
		return deploy.CommonDeployPrm{NEF: c.NEF, Manifest: c.Manifest}
	}

	addrs, err := deploy.Deploy(cmd.Context(), deploy.Prm{
		Logger:     log,
		Blockchain: s.rpc,
		Actor:      s.actor,
		Owner:      owner,
		StandardContract: deploy.LedgerContractPrm{
			Common:        common(cs[0]),
			InitialSupply: cfg.Tokens.Standard.Int,
		},
		SanctionContract: deploy.LedgerContractPrm{
			Common:        common(cs[1]),
			InitialSupply: cfg.Tokens.Sanction.Int,
		},
		GodModeContract: deploy.LedgerContractPrm{
			Common:        common(cs[2]),
			InitialSupply: cfg.Tokens.GodMode.Int,
		},
		BondingCurveContract: deploy.BondingCurveContractPrm{
			Common:       common(cs[3]),
			Slope:        cfg.BondingCurve.Slope.Int,
			ReleaseDelay: cfg.BondingCurve.ReleaseDelay,
		},
		EscrowContract: deploy.EscrowContractPrm{
			Common:     common(cs[4]),
			CoolingOff: cfg.Escrow.CoolingOff,
		},
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, c := range []struct {
		name string
		addr util.Uint160
	}{
		{"standard", addrs.Standard},
		{"sanction", addrs.Sanction},
		{"godmode", addrs.GodMode},
		{"bondingcurve", addrs.BondingCurve},
		{"escrow", addrs.Escrow},
	} {
		fmt.Fprintf(out, "%-13s %s\n", c.name, c.addr.StringLE())
	}

	log.Info("deployment finished", zap.String("owner", address.Uint160ToString(owner)))

	return nil
}
