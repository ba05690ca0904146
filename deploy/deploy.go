/*
Package deploy provides deployment routine of the settlement contracts.
*/
package deploy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the deployment.
type Blockchain interface {
	// GetContractStateByHash returns network state of the smart contract by
	// its address. It returns error with 'Unknown contract' substring if
	// requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Actor sends transactions on behalf of the deploying account and waits for
// them. actor.Actor from neo-go satisfies it.
type Actor interface {
	// Sender returns the account paying for and signing the transactions.
	Sender() util.Uint160

	// SendCall creates, signs and sends transaction calling the method of
	// the contract.
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)

	// WaitAny waits for any of the transactions to be accepted until vub
	// block or context is done.
	WaitAny(ctx context.Context, vub uint32, hashes ...util.Uint256) (*state.AppExecResult, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// LedgerContractPrm groups deployment parameters of Standard, Sanction and
// GodMode token contracts.
type LedgerContractPrm struct {
	Common CommonDeployPrm

	// Amount of tokens minted to the owner, nil means none.
	InitialSupply *big.Int
}

// BondingCurveContractPrm groups deployment parameters of BondingCurve
// contract.
type BondingCurveContractPrm struct {
	Common CommonDeployPrm

	// Curve parameter in token fractions, must be positive.
	Slope *big.Int

	// Time minted tokens stay locked.
	ReleaseDelay time.Duration
}

// EscrowContractPrm groups deployment parameters of Escrow contract.
type EscrowContractPrm struct {
	Common CommonDeployPrm

	// Time received tokens stay locked, at least 72h.
	CoolingOff time.Duration
}

// Prm groups all parameters of the deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	Blockchain Blockchain

	// Sender of deployment transactions. Contract addresses depend on it.
	Actor Actor

	// Owner of all deployed contracts.
	Owner util.Uint160

	StandardContract     LedgerContractPrm
	SanctionContract     LedgerContractPrm
	GodModeContract      LedgerContractPrm
	BondingCurveContract BondingCurveContractPrm
	EscrowContract       EscrowContractPrm
}

// Addresses groups addresses of the deployed contracts.
type Addresses struct {
	Standard     util.Uint160
	Sanction     util.Uint160
	GodMode      util.Uint160
	BondingCurve util.Uint160
	Escrow       util.Uint160
}

// Deploy makes all settlement contracts available on the chain. Contracts
// already deployed by the same sender with the same NEF and name are kept as
// is, the rest are deployed one by one in the following order:
//  1. Standard
//  2. Sanction
//  3. GodMode
//  4. BondingCurve
//  5. Escrow
//
// Deploy aborts by context or on the first failure.
func Deploy(ctx context.Context, prm Prm) (Addresses, error) {
	var (
		res Addresses
		err error
	)

	if prm.Owner.Equals(util.Uint160{}) {
		return res, errors.New("missing contract owner")
	}

	if s := prm.BondingCurveContract.Slope; s == nil || s.Sign() <= 0 {
		return res, errors.New("bonding curve slope must be positive")
	}

	for _, c := range []struct {
		name   string
		common CommonDeployPrm
		data   []any
		res    *util.Uint160
	}{
		{"Standard", prm.StandardContract.Common, ledgerDeployData(prm.Owner, prm.StandardContract), &res.Standard},
		{"Sanction", prm.SanctionContract.Common, ledgerDeployData(prm.Owner, prm.SanctionContract), &res.Sanction},
		{"GodMode", prm.GodModeContract.Common, ledgerDeployData(prm.Owner, prm.GodModeContract), &res.GodMode},
		{"BondingCurve", prm.BondingCurveContract.Common, bondingCurveDeployData(prm.Owner, prm.BondingCurveContract), &res.BondingCurve},
		{"Escrow", prm.EscrowContract.Common, escrowDeployData(prm.Owner, prm.EscrowContract), &res.Escrow},
	} {
		prm.Logger.Info("synchronizing contract with the chain...", zap.String("contract", c.name))

		*c.res, err = syncContract(ctx, prm, c.common, c.data)
		if err != nil {
			return res, fmt.Errorf("sync %s contract with the chain: %w", c.name, err)
		}

		prm.Logger.Info("contract successfully synchronized",
			zap.String("contract", c.name), zap.Stringer("address", *c.res))
	}

	return res, nil
}

// syncContract deploys the contract unless it's already on the chain and
// returns its address.
func syncContract(ctx context.Context, prm Prm, c CommonDeployPrm, data []any) (util.Uint160, error) {
	addr := state.CreateContractHash(prm.Actor.Sender(), c.NEF.Checksum, c.Manifest.Name)

	_, err := prm.Blockchain.GetContractStateByHash(addr)
	if err == nil {
		prm.Logger.Info("contract is already deployed, skip", zap.Stringer("address", addr))
		return addr, nil
	}
	if !isErrContractNotFound(err) {
		return addr, fmt.Errorf("get contract state by address %s: %w", addr.StringLE(), err)
	}

	bNEF, err := c.NEF.Bytes()
	if err != nil {
		return addr, fmt.Errorf("encode NEF: %w", err)
	}

	jManifest, err := json.Marshal(c.Manifest)
	if err != nil {
		return addr, fmt.Errorf("encode manifest: %w", err)
	}

	prm.Logger.Debug("sending deployment transaction...", zap.Stringer("address", addr))

	txHash, vub, err := prm.Actor.SendCall(management.Hash, "deploy", bNEF, jManifest, data)
	if err != nil {
		return addr, fmt.Errorf("send deployment transaction: %w", err)
	}

	prm.Logger.Debug("waiting for deployment transaction...",
		zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

	res, err := prm.Actor.WaitAny(ctx, vub, txHash)
	if err != nil {
		return addr, fmt.Errorf("wait for deployment transaction %s: %w", txHash.StringLE(), err)
	}

	if res.VMState != vmstate.Halt {
		return addr, fmt.Errorf("deployment transaction %s failed: %s", txHash.StringLE(), res.FaultException)
	}

	return addr, nil
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}

func ledgerDeployData(owner util.Uint160, prm LedgerContractPrm) []any {
	supply := prm.InitialSupply
	if supply == nil {
		supply = new(big.Int)
	}

	return []any{owner, supply}
}

func bondingCurveDeployData(owner util.Uint160, prm BondingCurveContractPrm) []any {
	return []any{owner, prm.Slope, prm.ReleaseDelay.Milliseconds()}
}

func escrowDeployData(owner util.Uint160, prm EscrowContractPrm) []any {
	return []any{owner, prm.CoolingOff.Milliseconds()}
}
