package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/settlement-contract/config"
	"go.uber.org/zap"
)

// signer is an RPC connection with an actor signing by the configured wallet
// account.
type signer struct {
	rpc   *rpcclient.Client
	actor *actor.Actor
}

func newSigner(ctx context.Context, log *zap.Logger, cfg *config.Config) (*signer, error) {
	acc, err := openAccount(cfg.Wallet)
	if err != nil {
		return nil, err
	}

	log.Debug("wallet account opened", zap.String("address", acc.Address))

	c, err := newClient(ctx, cfg.RPC.Endpoint, cfg.RPC.DialTimeout, cfg.RPC.RequestTimeout)
	if err != nil {
		return nil, err
	}

	act, err := actor.NewSimple(c, acc)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("init actor: %w", err)
	}

	return &signer{rpc: c, actor: act}, nil
}

func (s *signer) close() {
	s.rpc.Close()
}

// openAccount opens the wallet and decrypts the configured account, the
// default one is used if no address is given.
func openAccount(cfg config.Wallet) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}
	defer w.Close()

	h := cfg.Address.Uint160
	if !cfg.Address.Set {
		h = w.GetChangeAddress()
	}

	acc := w.GetAccount(h)
	if acc == nil {
		return nil, errors.New("account not found in the wallet")
	}

	err = acc.Decrypt(cfg.Password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account %s: %w", acc.Address, err)
	}

	return acc, nil
}
