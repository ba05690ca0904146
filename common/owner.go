package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// OwnerKey is a storage key of the contract owner's script hash.
const OwnerKey = "owner"

// zeroAddress is the all-zero script hash treated as the null account.
const zeroAddress = "\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00"

// IsNullAddress checks whether addr is missing, malformed or all-zero.
func IsNullAddress(addr interop.Hash160) bool {
	return len(addr) != interop.Hash160Len || string(addr) == zeroAddress
}

// SetOwner stores the owner of the contract. It panics on null addresses.
func SetOwner(ctx storage.Context, owner interop.Hash160) {
	if IsNullAddress(owner) {
		panic(ErrInvalidAddress)
	}

	storage.Put(ctx, OwnerKey, owner)
}

// Owner returns the stored contract owner.
func Owner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, OwnerKey).(interop.Hash160)
}

// CheckOwnerWitness panics with ErrUnauthorized if the transaction is not
// witnessed by the stored contract owner.
func CheckOwnerWitness(ctx storage.Context) {
	checkWitnessWithPanic(Owner(ctx), ErrUnauthorized)
}

// TransferOwnership replaces the stored owner. It can be invoked only by the
// current owner and produces OwnershipTransferred notification.
func TransferOwnership(ctx storage.Context, newOwner interop.Hash160) {
	CheckOwnerWitness(ctx)

	prev := Owner(ctx)
	SetOwner(ctx, newOwner)

	runtime.Notify("OwnershipTransferred", prev, newOwner)
}
