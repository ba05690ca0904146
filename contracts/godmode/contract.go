package godmode

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/settlement-contract/common"
	"github.com/nspcc-dev/settlement-contract/token"
)

const (
	symbol   = "T3"
	decimals = 18
	supply   = "supply"
)

var ledger token.Token

func init() {
	ledger = token.Token{
		Symbol:    symbol,
		Decimals:  decimals,
		SupplyKey: supply,
	}
}

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.([]any)
	owner := args[0].(interop.Hash160)
	initial := args[1].(int)

	common.SetOwner(ctx, owner)
	if initial > 0 {
		ledger.Mint(ctx, owner, initial)
	}

	runtime.Log("god mode token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	common.Update(nefFile, manifest, data)
	runtime.Log("god mode token contract updated")
}

// Symbol is a NEP-17 standard method that returns T3 token symbol.
func Symbol() string {
	return ledger.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of T3 balances.
func Decimals() int {
	return ledger.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of T3
// tokens in circulation.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return ledger.TotalSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns T3 balance of the
// specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return ledger.BalanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers T3 tokens from one
// account to another. It can be invoked only by the account owner.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	return ledger.Transfer(ctx, from, to, amount, data)
}

// Approve allows spender to move up to amount tokens from the owner's
// account. Zero amount revokes the allowance.
func Approve(owner, spender interop.Hash160, amount int) bool {
	ctx := storage.GetContext()
	return ledger.Approve(ctx, owner, spender, amount)
}

// Allowance returns the amount spender is still allowed to move from the
// owner's account.
func Allowance(owner, spender interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return ledger.Allowance(ctx, owner, spender)
}

// TransferFrom moves tokens from one account to another on behalf of the
// spender and decreases spender's allowance.
func TransferFrom(spender, from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	return ledger.TransferFrom(ctx, spender, from, to, amount, data)
}

// TransferWithGodMode moves tokens between arbitrary accounts without the
// sender's witness and regardless of allowances. It can be invoked only by
// the contract owner and fails if the sender lacks funds.
func TransferWithGodMode(from, to interop.Hash160, amount int) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ctx)

	if common.IsNullAddress(to) {
		panic(common.ErrInvalidRecipient)
	}

	ledger.ForceTransfer(ctx, from, to, amount, nil)
}

// Owner returns the contract owner.
func Owner() interop.Hash160 {
	return common.Owner(storage.GetReadOnlyContext())
}

// TransferOwnership passes contract ownership to newOwner. It can be invoked
// only by the current owner.
func TransferOwnership(newOwner interop.Hash160) {
	common.TransferOwnership(storage.GetContext(), newOwner)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}
