// Package chaintest provides neotest helpers shared by contract tests.
package chaintest

import (
	"math/big"
	"path/filepath"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// Token is one whole token of 18 decimals.
var Token = big.NewInt(1_000_000_000_000_000_000)

// Tokens returns n whole tokens of 18 decimals.
func Tokens(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), Token)
}

// NewExecutor returns executor over a fresh single-node chain.
func NewExecutor(t testing.TB) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// Deploy compiles the contract from dir (config.yml is expected inside) and
// deploys it on behalf of the committee.
func Deploy(t testing.TB, e *neotest.Executor, dir string, data any) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, dir, filepath.Join(dir, "config.yml"))
	e.DeployContract(t, c, data)
	return c.Hash
}

// GAS returns native GAS contract hash.
func GAS(t testing.TB, e *neotest.Executor) util.Uint160 {
	return e.NativeHash(t, nativenames.Gas)
}

// AdvanceTime adds an empty block timestamped d after the current top block.
// Transactions sent afterwards are executed at least d later than any
// transaction before the call.
func AdvanceTime(t testing.TB, e *neotest.Executor, d time.Duration) {
	top := e.TopBlock(t)

	b := e.NewUnsignedBlock(t)
	b.Timestamp = top.Timestamp + uint64(d.Milliseconds())
	require.NoError(t, e.Chain.AddBlock(e.SignBlock(b)))
}

// Now returns the timestamp (ms) of the top block.
func Now(t testing.TB, e *neotest.Executor) int64 {
	return int64(e.TopBlock(t).Timestamp)
}

// IteratorToArray drains the storage iterator returned by a test invocation.
func IteratorToArray(iter *storage.Iterator) []stackitem.Item {
	items := make([]stackitem.Item, 0)
	for iter.Next() {
		items = append(items, iter.Value())
	}
	return items
}
