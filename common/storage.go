package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// GetInt returns integer stored by the key or 0 if there is nothing.
func GetInt(ctx storage.Context, key any) int {
	v := storage.Get(ctx, key)
	if v != nil {
		return v.(int)
	}

	return 0
}

// PutInt stores positive n by the key and deletes the key otherwise, so that
// zero counters never occupy storage.
func PutInt(ctx storage.Context, key any, n int) {
	if n > 0 {
		storage.Put(ctx, key, n)
	} else {
		storage.Delete(ctx, key)
	}
}
