package godmode_test

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/settlement-contract/internal/chaintest"
)

const contractPath = "."

func newGodModeInvoker(t *testing.T) (*neotest.ContractInvoker, neotest.Signer) {
	e := chaintest.NewExecutor(t)
	owner := e.NewAccount(t)
	h := chaintest.Deploy(t, e, contractPath, []any{owner.ScriptHash(), chaintest.Tokens(100)})
	return e.NewInvoker(h, owner), owner
}

func TestGodMode_Transfer(t *testing.T) {
	c, owner := newGodModeInvoker(t)
	holder := c.NewAccount(t)
	receiver := c.NewAccount(t)

	c.Invoke(t, true, "transfer", owner.ScriptHash(), holder.ScriptHash(), chaintest.Tokens(10), nil)

	t.Run("unauthorized", func(t *testing.T) {
		cHolder := c.WithSigners(holder)
		cHolder.InvokeFail(t, "caller is not the owner", "transferWithGodMode",
			holder.ScriptHash(), receiver.ScriptHash(), 1)
		c.Invoke(t, chaintest.Tokens(10), "balanceOf", holder.ScriptHash())
	})

	t.Run("insufficient balance", func(t *testing.T) {
		c.InvokeFail(t, "insufficient balance", "transferWithGodMode",
			holder.ScriptHash(), receiver.ScriptHash(), chaintest.Tokens(11))
	})

	t.Run("null receiver", func(t *testing.T) {
		c.InvokeFail(t, "invalid recipient: zero address", "transferWithGodMode",
			holder.ScriptHash(), util.Uint160{}, 1)
	})

	// neither holder's witness nor allowance is needed
	c.Invoke(t, 0, "allowance", holder.ScriptHash(), owner.ScriptHash())
	c.Invoke(t, stackitem.Null{}, "transferWithGodMode",
		holder.ScriptHash(), receiver.ScriptHash(), chaintest.Tokens(4))
	c.Invoke(t, chaintest.Tokens(6), "balanceOf", holder.ScriptHash())
	c.Invoke(t, chaintest.Tokens(4), "balanceOf", receiver.ScriptHash())
	c.Invoke(t, chaintest.Tokens(100), "totalSupply")
}

func TestGodMode_RegularTransfer(t *testing.T) {
	c, owner := newGodModeInvoker(t)
	holder := c.NewAccount(t)

	c.Invoke(t, true, "transfer", owner.ScriptHash(), holder.ScriptHash(), 5, nil)

	// owner is not privileged in regular transfers
	c.Invoke(t, false, "transfer", holder.ScriptHash(), owner.ScriptHash(), 5, nil)
	c.Invoke(t, "T3", "symbol")
}
