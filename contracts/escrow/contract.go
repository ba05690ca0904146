package escrow

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/settlement-contract/common"
	"github.com/nspcc-dev/settlement-contract/timelock"
)

const (
	coolingOffKey = "coolingOff"

	vaultPrefix   = 'v'
	pendingPrefix = 'i'

	// MinCoolingOff is the shortest allowed cooling-off period in
	// milliseconds.
	MinCoolingOff = 3 * 24 * 60 * 60 * 1000
)

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
	coolingOff := args[1].(int)

	if coolingOff < MinCoolingOff {
		panic("cooling-off period is too short")
	}

	common.SetOwner(ctx, owner)
	storage.Put(ctx, coolingOffKey, coolingOff)

	runtime.Log("escrow contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	common.Update(nefFile, manifest, data)
	runtime.Log("escrow contract updated")
}

// OnNEP17Payment is a callback for NEP-17 compatible contracts. Escrow takes
// tokens only from ReceiveTokens pulls, direct payments are rejected.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetReadOnlyContext()
	asset := runtime.GetCallingScriptHash()
	if storage.Get(ctx, pendingKey(asset)) == nil {
		common.AbortWithMessage("escrow contract accepts tokens only via receiveTokens")
	}
}

// ReceiveTokens pulls amount of asset tokens from the account and locks them
// for the recipient for the cooling-off period. The account must witness
// the call and approve escrow contract to spend at least amount of asset
// tokens beforehand.
//
// It produces Received notification.
func ReceiveTokens(asset interop.Hash160, amount int, from, to interop.Hash160) {
	if common.IsNullAddress(to) {
		panic(common.ErrInvalidRecipient)
	}
	if amount <= 0 {
		panic(common.ErrZeroAmount)
	}
	if len(asset) != interop.Hash160Len {
		panic(common.ErrInvalidAddress)
	}
	if !common.IsUsableAddress(from) {
		panic(common.ErrWitnessFailed)
	}

	ctx := storage.GetContext()
	self := runtime.GetExecutingScriptHash()

	allowed := contract.Call(asset, "allowance", contract.ReadStates, from, self).(int)
	if allowed < amount {
		panic(common.ErrInsufficientAllowance)
	}

	coolingOff := common.GetInt(ctx, coolingOffKey)
	e := timelock.Deposit(ctx, vaultKey(asset, to), amount, coolingOff)

	pKey := pendingKey(asset)
	storage.Put(ctx, pKey, []byte{1})

	ok := contract.Call(asset, "transferFrom", contract.All, self, from, self, amount, nil).(bool)
	if !ok {
		panic(common.ErrInsufficientBalance)
	}

	storage.Delete(ctx, pKey)

	runtime.Notify("Received", asset, from, to, amount, e.Until)
}

// ReleaseTokens transfers asset tokens locked for the recipient to its
// account once the cooling-off period has passed. It fails if the tokens are
// still locked or there is nothing to release.
//
// It produces Released notification.
func ReleaseTokens(asset, to interop.Hash160) {
	if len(asset) != interop.Hash160Len || len(to) != interop.Hash160Len {
		panic(common.ErrInvalidAddress)
	}

	ctx := storage.GetContext()
	amount := timelock.Release(ctx, vaultKey(asset, to))

	runtime.Notify("Released", asset, to, amount)

	ok := contract.Call(asset, "transfer", contract.All,
		runtime.GetExecutingScriptHash(), to, amount, nil).(bool)
	if !ok {
		panic("can't transfer released tokens")
	}
}

// GetTimelockBalance returns the amount of asset tokens locked for the
// beneficiary, including tokens which can already be released.
func GetTimelockBalance(asset, beneficiary interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return timelock.BalanceOf(ctx, vaultKey(asset, beneficiary))
}

// GetTimelockDeadline returns the timestamp (ms) from which the beneficiary's
// asset tokens can be released. Zero means there is no pending entry.
func GetTimelockDeadline(asset, beneficiary interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return timelock.Get(ctx, vaultKey(asset, beneficiary)).Until
}

// CoolingOffPeriod returns the time (ms) received tokens stay locked.
func CoolingOffPeriod() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, coolingOffKey)
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

func vaultKey(asset, beneficiary interop.Hash160) []byte {
	key := append([]byte{vaultPrefix}, asset...)
	return append(key, beneficiary...)
}

func pendingKey(asset interop.Hash160) []byte {
	return append([]byte{pendingPrefix}, asset...)
}
