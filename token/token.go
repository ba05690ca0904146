/*
Package token implements fungible ledger bookkeeping shared by the settlement
contracts. It provides NEP-17 balance accounting extended with ERC-20 style
allowances and is compiled into every ledger contract of the family.

Storage model:
 - <SupplyKey> -> int
   circulating supply
 - b<interop.Hash160> -> int
   balance of the account, missing for empty accounts
 - p<owner><spender> -> int
   remaining allowance of the spender, missing when zero
*/
package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/settlement-contract/common"
)

// Token holds all token info.
type Token struct {
	// Ticker symbol
	Symbol string
	// Amount of decimals
	Decimals int
	// Storage key for circulation value
	SupplyKey string
}

const (
	balancePrefix   = 'b'
	allowancePrefix = 'p'
)

// TotalSupply returns circulating supply of the token.
func (t Token) TotalSupply(ctx storage.Context) int {
	return common.GetInt(ctx, t.SupplyKey)
}

// BalanceOf returns the balance of the holder.
func (t Token) BalanceOf(ctx storage.Context, holder interop.Hash160) int {
	if len(holder) != interop.Hash160Len {
		panic(common.ErrInvalidAddress)
	}

	return common.GetInt(ctx, balanceKey(holder))
}

// Allowance returns the amount spender is still allowed to move from the
// owner's account.
func (t Token) Allowance(ctx storage.Context, owner, spender interop.Hash160) int {
	return common.GetInt(ctx, allowanceKey(owner, spender))
}

// Transfer is a NEP-17 transfer: the sender must witness the call, the
// result is false when the sender lacks funds or witness.
func (t Token) Transfer(ctx storage.Context, from, to interop.Hash160, amount int, data any) bool {
	checkTransferArgs(from, to, amount)

	if !common.IsUsableAddress(from) {
		runtime.Log(common.ErrWitnessFailed)
		return false
	}

	if !t.move(ctx, from, to, amount) {
		return false
	}

	postTransfer(from, to, amount, data)

	return true
}

// Approve sets the amount spender may move from owner's account. It must be
// witnessed by the owner and produces Approval notification.
func (t Token) Approve(ctx storage.Context, owner, spender interop.Hash160, amount int) bool {
	checkTransferArgs(owner, spender, amount)

	if !common.IsUsableAddress(owner) {
		runtime.Log(common.ErrWitnessFailed)
		return false
	}

	common.PutInt(ctx, allowanceKey(owner, spender), amount)

	runtime.Notify("Approval", owner, spender, amount)

	return true
}

// TransferFrom moves value from one account to another on behalf of the
// approved spender. The spender must witness the call. Allowance is
// decreased by the moved amount.
func (t Token) TransferFrom(ctx storage.Context, spender, from, to interop.Hash160, amount int, data any) bool {
	checkTransferArgs(from, to, amount)

	if !common.IsUsableAddress(spender) {
		runtime.Log(common.ErrWitnessFailed)
		return false
	}

	aKey := allowanceKey(from, spender)
	allowed := common.GetInt(ctx, aKey)
	if allowed < amount {
		runtime.Log(common.ErrInsufficientAllowance)
		return false
	}

	if !t.move(ctx, from, to, amount) {
		return false
	}

	common.PutInt(ctx, aKey, allowed-amount)

	postTransfer(from, to, amount, data)

	return true
}

// ForceTransfer moves value between arbitrary accounts without witness and
// allowance checks. Callers are responsible for authorization. It panics if
// the source account lacks funds.
func (t Token) ForceTransfer(ctx storage.Context, from, to interop.Hash160, amount int, data any) {
	checkTransferArgs(from, to, amount)

	if !t.move(ctx, from, to, amount) {
		panic(common.ErrInsufficientBalance)
	}

	postTransfer(from, to, amount, data)
}

// Mint credits amount to the account and increases circulating supply.
func (t Token) Mint(ctx storage.Context, to interop.Hash160, amount int) {
	if common.IsNullAddress(to) {
		panic(common.ErrInvalidRecipient)
	}
	if amount <= 0 {
		panic(common.ErrZeroAmount)
	}

	key := balanceKey(to)
	common.PutInt(ctx, key, common.GetInt(ctx, key)+amount)
	common.PutInt(ctx, t.SupplyKey, t.TotalSupply(ctx)+amount)

	postTransfer(nil, to, amount, nil)
}

// Burn debits amount from the account and decreases circulating supply. It
// panics if the account lacks funds.
func (t Token) Burn(ctx storage.Context, from interop.Hash160, amount int) {
	if amount <= 0 {
		panic(common.ErrZeroAmount)
	}

	key := balanceKey(from)
	balance := common.GetInt(ctx, key)
	if balance < amount {
		panic(common.ErrInsufficientBalance)
	}

	supply := t.TotalSupply(ctx)
	if supply < amount {
		panic("negative supply after burn")
	}

	common.PutInt(ctx, key, balance-amount)
	common.PutInt(ctx, t.SupplyKey, supply-amount)

	notifyTransfer(from, nil, amount)
}

// move updates balances only and reports whether the source had enough
// funds.
func (t Token) move(ctx storage.Context, from, to interop.Hash160, amount int) bool {
	fromKey := balanceKey(from)
	balance := common.GetInt(ctx, fromKey)
	if balance < amount {
		runtime.Log(common.ErrInsufficientBalance)
		return false
	}

	if amount == 0 || from.Equals(to) {
		return true
	}

	common.PutInt(ctx, fromKey, balance-amount)

	toKey := balanceKey(to)
	common.PutInt(ctx, toKey, common.GetInt(ctx, toKey)+amount)

	return true
}

func checkTransferArgs(from, to interop.Hash160, amount int) {
	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		panic(common.ErrInvalidAddress)
	}

	if amount < 0 {
		panic("negative amount")
	}
}

// postTransfer emits Transfer notification and calls the receiver's payment
// callback. It must run after all bookkeeping is stored since the callback
// hands control to arbitrary code.
func postTransfer(from, to interop.Hash160, amount int, data any) {
	notifyTransfer(from, to, amount)

	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
}

func notifyTransfer(from, to interop.Hash160, amount int) {
	runtime.Notify("Transfer", from, to, amount)
}

func balanceKey(holder interop.Hash160) []byte {
	return append([]byte{balancePrefix}, holder...)
}

func allowanceKey(owner, spender interop.Hash160) []byte {
	key := append([]byte{allowancePrefix}, owner...)
	return append(key, spender...)
}
