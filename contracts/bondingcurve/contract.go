package bondingcurve

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/settlement-contract/common"
	"github.com/nspcc-dev/settlement-contract/pricing"
	"github.com/nspcc-dev/settlement-contract/timelock"
	"github.com/nspcc-dev/settlement-contract/token"
)

const (
	symbol   = "T2"
	decimals = 18
	supply   = "supply"

	committedKey = "committed"
	reserveKey   = "reserve"
	slopeKey     = "slope"
	delayKey     = "delay"

	vaultPrefix = 'v'

	// gasScale converts GAS fractions (8 decimals) to token fractions (18
	// decimals).
	gasScale = 10_000_000_000
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
	slope := args[1].(int)
	delay := args[2].(int)

	if slope <= 0 {
		panic("slope must be positive")
	}
	if delay < 0 {
		panic("negative release delay")
	}

	common.SetOwner(ctx, owner)
	storage.Put(ctx, slopeKey, slope)
	storage.Put(ctx, delayKey, delay)

	runtime.Log("bonding curve contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	common.Update(nefFile, manifest, data)
	runtime.Log("bonding curve contract updated")
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract. It
// mints T2 tokens priced by the curve for the received GAS. Minted tokens are
// locked for the release delay; the beneficiary is the sender or the account
// passed in data.
//
// It produces Mint and Locked notifications.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		common.AbortWithMessage("bonding curve contract accepts GAS only")
	}

	if amount <= 0 {
		panic(common.ErrZeroAmount)
	}

	beneficiary := from
	if data != nil {
		beneficiary = data.(interop.Hash160)
	}
	if common.IsNullAddress(beneficiary) {
		panic(common.ErrInvalidRecipient)
	}

	ctx := storage.GetContext()
	mint(ctx, beneficiary, amount)
}

// ReleaseTokens credits tokens locked for the beneficiary to its account once
// the release delay has passed. It fails if the tokens are still locked or
// there is nothing to release.
//
// It produces Released and Transfer notifications.
func ReleaseTokens(beneficiary interop.Hash160) {
	if len(beneficiary) != interop.Hash160Len {
		panic(common.ErrInvalidAddress)
	}

	ctx := storage.GetContext()
	amount := timelock.Release(ctx, vaultKey(beneficiary))

	runtime.Notify("Released", beneficiary, amount)

	ledger.Mint(ctx, beneficiary, amount)
}

// Burn destroys amount of released tokens of the account and pays back the
// curve price of them in GAS. It can be invoked only by the account owner.
//
// It produces Transfer and Burn notifications.
func Burn(from interop.Hash160, amount int) {
	if !common.IsUsableAddress(from) {
		panic(common.ErrWitnessFailed)
	}
	if amount <= 0 {
		panic(common.ErrZeroAmount)
	}

	ctx := storage.GetContext()

	if ledger.BalanceOf(ctx, from) < amount {
		panic(common.ErrInsufficientBalance)
	}

	slope := getSlope(ctx)
	circulating := ledger.TotalSupply(ctx)
	refund := pricing.Refund(circulating, amount, slope) / gasScale

	reserve := common.GetInt(ctx, reserveKey)
	if refund > reserve {
		panic(common.ErrInsufficientReserve)
	}

	committed := common.GetInt(ctx, committedKey)
	common.PutInt(ctx, committedKey, committed-amount)
	common.PutInt(ctx, reserveKey, reserve-refund)
	ledger.Burn(ctx, from, amount)

	runtime.Notify("Burn", from, amount, refund)

	if refund > 0 && !gas.Transfer(runtime.GetExecutingScriptHash(), from, refund, nil) {
		panic("can't pay refund")
	}
}

// GetTimelockBalance returns the amount of tokens locked for the beneficiary,
// including tokens which can already be released.
func GetTimelockBalance(beneficiary interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return timelock.BalanceOf(ctx, vaultKey(beneficiary))
}

// GetTimelockDeadline returns the timestamp (ms) from which the beneficiary's
// tokens can be released. Zero means there is no pending entry.
func GetTimelockDeadline(beneficiary interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return timelock.Get(ctx, vaultKey(beneficiary)).Until
}

// CommittedSupply returns the supply used for pricing, it includes locked
// tokens.
func CommittedSupply() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, committedKey)
}

// ReserveBalance returns the amount of GAS backing the curve.
func ReserveBalance() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, reserveKey)
}

// Slope returns the curve parameter.
func Slope() int {
	ctx := storage.GetReadOnlyContext()
	return getSlope(ctx)
}

// ReleaseDelay returns the time (ms) minted tokens stay locked.
func ReleaseDelay() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, delayKey)
}

// Cost returns the GAS price of moving supply from s0 to s1, rounded down.
func Cost(s0, s1 int) int {
	ctx := storage.GetReadOnlyContext()
	return pricing.Cost(s0, s1, getSlope(ctx)) / gasScale
}

// ComputeSquareRoot returns the integer square root of y.
func ComputeSquareRoot(y int) int {
	return pricing.Sqrt(y)
}

// Symbol is a NEP-17 standard method that returns T2 token symbol.
func Symbol() string {
	return ledger.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of T2 balances.
func Decimals() int {
	return ledger.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of released
// T2 tokens. Locked tokens are not counted.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return ledger.TotalSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns T2 balance of the
// specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return ledger.BalanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers T2 tokens from one
// account to another. It can be invoked only by the account owner.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	return ledger.Transfer(ctx, from, to, amount, data)
}

// Approve allows spender to move up to amount tokens from the owner's
// account.
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
// spender.
func TransferFrom(spender, from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	return ledger.TransferFrom(ctx, spender, from, to, amount, data)
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

func mint(ctx storage.Context, beneficiary interop.Hash160, value int) {
	s0 := common.GetInt(ctx, committedKey)
	s1 := pricing.Supply(s0, value*gasScale, getSlope(ctx))

	delta := s1 - s0
	if delta == 0 {
		panic(common.ErrZeroAmount)
	}

	common.PutInt(ctx, committedKey, s1)
	common.PutInt(ctx, reserveKey, common.GetInt(ctx, reserveKey)+value)

	e := timelock.Deposit(ctx, vaultKey(beneficiary), delta, common.GetInt(ctx, delayKey))

	runtime.Notify("Mint", beneficiary, value, delta)
	runtime.Notify("Locked", beneficiary, e.Amount, e.Until)
}

func getSlope(ctx storage.Context) int {
	return common.GetInt(ctx, slopeKey)
}

func vaultKey(beneficiary interop.Hash160) []byte {
	return append([]byte{vaultPrefix}, beneficiary...)
}
