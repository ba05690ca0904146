package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// HasUpdateAccess returns true if contract can be updated.
func HasUpdateAccess(ctx storage.Context) bool {
	return runtime.CheckWitness(Owner(ctx))
}

// Update updates the executing contract with the given NEF and manifest. It
// can be invoked only by the contract owner. Current version is appended to
// the data so that the new code can check it in `_deploy`.
func Update(nefFile, manifest []byte, data any) {
	if !HasUpdateAccess(storage.GetReadOnlyContext()) {
		panic(ErrUnauthorized)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, AppendVersion(data))
}
