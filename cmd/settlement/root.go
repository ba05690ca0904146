package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// rootOptions holds global flags for all commands.
type rootOptions struct {
	debug bool

	log *zap.Logger
}

// rpcOptions holds flags of commands reading the chain without signing.
type rpcOptions struct {
	endpoint string
	timeout  time.Duration
	contract string
}

func newRootCommand() *cobra.Command {
	opts := new(rootOptions)

	cmd := &cobra.Command{
		Use:           "settlement",
		Version:       version,
		Short:         "Settlement contracts toolkit",
		Long:          "Deploys T0-T3 token, bonding curve and escrow contracts and inspects their state.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			opts.log, err = newLogger(opts.debug)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.log.Sync()
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")

	cmd.AddCommand(newDeployCommand(opts))
	cmd.AddCommand(newQuoteCommand(opts))
	cmd.AddCommand(newVaultCommand(opts))
	cmd.AddCommand(newReleaseCommand(opts))
	cmd.AddCommand(newBannedCommand(opts))
	cmd.AddCommand(newStorageCommand(opts))

	return cmd
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	c := zap.NewProductionConfig()
	c.Encoding = "console"
	c.EncoderConfig.TimeKey = ""
	return c.Build()
}

func (o *rpcOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.endpoint, "rpc", "r", "", "Neo RPC endpoint")
	cmd.Flags().DurationVar(&o.timeout, "timeout", defaultTimeout, "dial and request timeout")
	cmd.Flags().StringVarP(&o.contract, "contract", "c", "", "contract address or hash (LE)")
	_ = cmd.MarkFlagRequired("rpc")
	_ = cmd.MarkFlagRequired("contract")
}

// dial opens connection to the RPC node and returns the client together with
// the address of the requested contract.
func (o *rpcOptions) dial(ctx context.Context) (*rpcclient.Client, util.Uint160, error) {
	h, err := parseHash(o.contract)
	if err != nil {
		return nil, h, fmt.Errorf("contract: %w", err)
	}

	c, err := newClient(ctx, o.endpoint, o.timeout, o.timeout)
	if err != nil {
		return nil, h, err
	}

	return c, h, nil
}

func newClient(ctx context.Context, endpoint string, dialTimeout, requestTimeout time.Duration) (*rpcclient.Client, error) {
	c, err := rpcclient.New(ctx, endpoint, rpcclient.Options{
		DialTimeout:    dialTimeout,
		RequestTimeout: requestTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	return c, nil
}

// parseHash accepts either Neo address or script hash in LE hex.
func parseHash(s string) (util.Uint160, error) {
	if u, err := address.StringToUint160(s); err == nil {
		return u, nil
	}

	u, err := util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return u, fmt.Errorf("%q is neither address nor script hash", s)
	}
	return u, nil
}
