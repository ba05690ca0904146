/*
Package timelock implements a vault holding value on behalf of a beneficiary
until a deadline. Each storage key carries at most one pending entry which goes
through Empty -> Locked(amount, until) -> Empty cycles. Entries are mutated only
by Deposit and Release; callers move the value itself after the bookkeeping
is stored.

Storage model:
 - <key> -> std.Serialize(Entry)
   pending entry, missing for empty vaults
*/
package timelock

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/settlement-contract/common"
)

// Entry is a pending vault entry.
type Entry struct {
	// Locked amount
	Amount int
	// Block timestamp (ms) from which the amount can be released
	Until int
}

// Get returns the entry stored by the key, empty entry if there is none.
func Get(ctx storage.Context, key []byte) Entry {
	data := storage.Get(ctx, key)
	if data != nil {
		return std.Deserialize(data.([]byte)).(Entry)
	}

	return Entry{}
}

// BalanceOf returns locked, not yet released amount. Amounts of pending
// deposits are visible before the deadline.
func BalanceOf(ctx storage.Context, key []byte) int {
	return Get(ctx, key).Amount
}

// Deposit adds amount to the entry and resets its deadline to now + delay,
// delay is in milliseconds. It returns the updated entry.
func Deposit(ctx storage.Context, key []byte, amount, delay int) Entry {
	if amount <= 0 {
		panic(common.ErrZeroAmount)
	}
	if delay < 0 {
		panic("negative delay")
	}

	e := Get(ctx, key)
	e.Amount += amount
	e.Until = runtime.GetTime() + delay

	common.SetSerialized(ctx, key, e)

	return e
}

// Release clears the entry and returns the amount it held. It panics if the
// deadline is not reached yet or if there is nothing to release, so a second
// release after a successful one always fails.
func Release(ctx storage.Context, key []byte) int {
	e := Get(ctx, key)

	if runtime.GetTime() < e.Until {
		panic(common.ErrStillLocked)
	}

	if e.Amount == 0 {
		panic(common.ErrNothingToRelease)
	}

	storage.Delete(ctx, key)

	return e.Amount
}
