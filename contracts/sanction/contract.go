package sanction

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/settlement-contract/common"
	"github.com/nspcc-dev/settlement-contract/token"
)

const (
	symbol   = "T1"
	decimals = 18
	supply   = "supply"

	bannedPrefix = 'x'

	errSelfBan = common.ErrInvalidAddress + ": can't ban the address of the contract"
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

	runtime.Log("sanction token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	common.Update(nefFile, manifest, data)
	runtime.Log("sanction token contract updated")
}

// Symbol is a NEP-17 standard method that returns T1 token symbol.
func Symbol() string {
	return ledger.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of T1 balances.
func Decimals() int {
	return ledger.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of T1
// tokens in circulation.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return ledger.TotalSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns T1 balance of the
// specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return ledger.BalanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers T1 tokens from one
// account to another. It can be invoked only by the account owner.
//
// Transfer fails if either side of the transfer is banned, the sender is
// checked first.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	checkSanctions(ctx, from, to)
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
// spender. The same sanctions as in Transfer apply to from and to accounts.
func TransferFrom(spender, from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	checkSanctions(ctx, from, to)
	return ledger.TransferFrom(ctx, spender, from, to, amount, data)
}

// AddBannedAddress bans the address. Banned addresses can neither send nor
// receive T1 tokens. It can be invoked only by the contract owner.
//
// It produces Banned notification if the address was not banned before.
func AddBannedAddress(addr interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ctx)

	if len(addr) != interop.Hash160Len {
		panic(common.ErrInvalidAddress)
	}
	if addr.Equals(runtime.GetExecutingScriptHash()) {
		panic(errSelfBan)
	}

	key := bannedKey(addr)
	if storage.Get(ctx, key) != nil {
		return
	}

	storage.Put(ctx, key, []byte{1})
	runtime.Notify("Banned", addr)
}

// RemoveBannedAddress lifts the ban from the address. It can be invoked only
// by the contract owner.
//
// It produces Unbanned notification if the address was banned.
func RemoveBannedAddress(addr interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ctx)

	if len(addr) != interop.Hash160Len {
		panic(common.ErrInvalidAddress)
	}

	key := bannedKey(addr)
	if storage.Get(ctx, key) == nil {
		return
	}

	storage.Delete(ctx, key)
	runtime.Notify("Unbanned", addr)
}

// IsAddressBanned returns true if the address is banned.
func IsAddressBanned(addr interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return isBanned(ctx, addr)
}

// ListBannedAddresses returns an iterator over banned addresses.
func ListBannedAddresses() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{bannedPrefix}, storage.KeysOnly|storage.RemovePrefix)
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

func checkSanctions(ctx storage.Context, from, to interop.Hash160) {
	if isBanned(ctx, from) {
		panic(common.ErrBannedSender)
	}
	if isBanned(ctx, to) {
		panic(common.ErrBannedReceiver)
	}
}

func isBanned(ctx storage.Context, addr interop.Hash160) bool {
	return storage.Get(ctx, bannedKey(addr)) != nil
}

func bannedKey(addr interop.Hash160) []byte {
	return append([]byte{bannedPrefix}, addr...)
}
