package escrow_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/settlement-contract/internal/chaintest"
)

const (
	contractPath = "."
	standardPath = "../standard"
	sanctionPath = "../sanction"

	coolingOff = 72 * time.Hour
)

type escrowEnv struct {
	e      *neotest.Executor
	seller neotest.Signer
	buyer  neotest.Signer
	escrow *neotest.ContractInvoker
	asset  *neotest.ContractInvoker
}

func newEscrowEnv(t *testing.T, assetPath string) escrowEnv {
	e := chaintest.NewExecutor(t)
	owner := e.NewAccount(t)
	seller := e.NewAccount(t)
	buyer := e.NewAccount(t)

	asset := chaintest.Deploy(t, e, assetPath, []any{seller.ScriptHash(), chaintest.Tokens(1000)})
	h := chaintest.Deploy(t, e, contractPath, []any{owner.ScriptHash(), coolingOff.Milliseconds()})

	return escrowEnv{
		e:      e,
		seller: seller,
		buyer:  buyer,
		escrow: e.NewInvoker(h, seller),
		asset:  e.NewInvoker(asset, seller),
	}
}

func (env escrowEnv) approve(t *testing.T, amount any) {
	env.asset.Invoke(t, true, "approve", env.seller.ScriptHash(), env.escrow.Hash, amount)
}

func TestEscrow_Deploy(t *testing.T) {
	e := chaintest.NewExecutor(t)
	owner := e.NewAccount(t)

	c := neotest.CompileFile(t, e.CommitteeHash, contractPath, filepath.Join(contractPath, "config.yml"))
	e.DeployContractCheckFAULT(t, c, []any{owner.ScriptHash(), (coolingOff - time.Millisecond).Milliseconds()},
		"cooling-off period is too short")

	e.DeployContract(t, c, []any{owner.ScriptHash(), coolingOff.Milliseconds()})
	inv := e.NewInvoker(c.Hash, owner)
	inv.Invoke(t, coolingOff.Milliseconds(), "coolingOffPeriod")
	inv.Invoke(t, stackitem.NewBuffer(owner.ScriptHash().BytesBE()), "owner")
}

func TestEscrow_Scenario(t *testing.T) {
	env := newEscrowEnv(t, standardPath)
	seller, buyer := env.seller.ScriptHash(), env.buyer.ScriptHash()

	env.approve(t, chaintest.Tokens(1))
	env.escrow.Invoke(t, stackitem.Null{}, "receiveTokens", env.asset.Hash, chaintest.Tokens(1), seller, buyer)
	until := chaintest.Now(t, env.e) + coolingOff.Milliseconds()

	env.asset.Invoke(t, chaintest.Tokens(999), "balanceOf", seller)
	env.asset.Invoke(t, chaintest.Tokens(1), "balanceOf", env.escrow.Hash)
	env.asset.Invoke(t, 0, "allowance", seller, env.escrow.Hash)
	env.escrow.Invoke(t, chaintest.Tokens(1), "getTimelockBalance", env.asset.Hash, buyer)
	env.escrow.Invoke(t, until, "getTimelockDeadline", env.asset.Hash, buyer)

	env.escrow.InvokeFail(t, "tokens are still locked", "releaseTokens", env.asset.Hash, buyer)

	chaintest.AdvanceTime(t, env.e, coolingOff)

	stranger := env.e.NewInvoker(env.escrow.Hash, env.e.NewAccount(t))
	stranger.Invoke(t, stackitem.Null{}, "releaseTokens", env.asset.Hash, buyer)

	env.asset.Invoke(t, chaintest.Tokens(1), "balanceOf", buyer)
	env.asset.Invoke(t, 0, "balanceOf", env.escrow.Hash)
	env.escrow.Invoke(t, 0, "getTimelockBalance", env.asset.Hash, buyer)

	env.escrow.InvokeFail(t, "nothing to release", "releaseTokens", env.asset.Hash, buyer)
}

func TestEscrow_ReceiveTokensFail(t *testing.T) {
	env := newEscrowEnv(t, standardPath)
	seller, buyer := env.seller.ScriptHash(), env.buyer.ScriptHash()

	env.approve(t, chaintest.Tokens(1))

	checkUnchanged := func(t *testing.T) {
		env.asset.Invoke(t, chaintest.Tokens(1000), "balanceOf", seller)
		env.asset.Invoke(t, chaintest.Tokens(1), "allowance", seller, env.escrow.Hash)
		env.escrow.Invoke(t, 0, "getTimelockBalance", env.asset.Hash, buyer)
	}

	t.Run("over allowance", func(t *testing.T) {
		env.escrow.InvokeFail(t, "insufficient allowance", "receiveTokens",
			env.asset.Hash, chaintest.Tokens(2), seller, buyer)
		checkUnchanged(t)
	})

	t.Run("null recipient", func(t *testing.T) {
		env.escrow.InvokeFail(t, "invalid recipient: zero address", "receiveTokens",
			env.asset.Hash, chaintest.Tokens(1), seller, util.Uint160{})
		env.escrow.InvokeFail(t, "invalid recipient: zero address", "receiveTokens",
			env.asset.Hash, chaintest.Tokens(1), seller, nil)
		checkUnchanged(t)
	})

	t.Run("zero amount", func(t *testing.T) {
		env.escrow.InvokeFail(t, "amount must be positive", "receiveTokens",
			env.asset.Hash, 0, seller, buyer)
	})

	t.Run("no witness", func(t *testing.T) {
		env.escrow.WithSigners(env.buyer).InvokeFail(t, "witness check failed", "receiveTokens",
			env.asset.Hash, chaintest.Tokens(1), seller, buyer)
		checkUnchanged(t)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		env.approve(t, chaintest.Tokens(2000))
		env.escrow.InvokeFail(t, "insufficient balance", "receiveTokens",
			env.asset.Hash, chaintest.Tokens(1001), seller, buyer)
		env.escrow.Invoke(t, 0, "getTimelockBalance", env.asset.Hash, buyer)
		env.approve(t, chaintest.Tokens(1))
		checkUnchanged(t)
	})

	t.Run("direct payment", func(t *testing.T) {
		env.asset.InvokeFail(t, "ABORT", "transfer", seller, env.escrow.Hash, 1, nil)
		checkUnchanged(t)
	})
}

func TestEscrow_Accumulate(t *testing.T) {
	env := newEscrowEnv(t, standardPath)
	seller, buyer := env.seller.ScriptHash(), env.buyer.ScriptHash()

	env.approve(t, chaintest.Tokens(3))
	env.escrow.Invoke(t, stackitem.Null{}, "receiveTokens", env.asset.Hash, chaintest.Tokens(1), seller, buyer)

	chaintest.AdvanceTime(t, env.e, coolingOff/2)
	env.escrow.Invoke(t, stackitem.Null{}, "receiveTokens", env.asset.Hash, chaintest.Tokens(2), seller, buyer)
	env.escrow.Invoke(t, chaintest.Tokens(3), "getTimelockBalance", env.asset.Hash, buyer)

	// the second payment moved the deadline
	chaintest.AdvanceTime(t, env.e, coolingOff/2)
	env.escrow.InvokeFail(t, "tokens are still locked", "releaseTokens", env.asset.Hash, buyer)

	chaintest.AdvanceTime(t, env.e, coolingOff)
	env.escrow.Invoke(t, stackitem.Null{}, "releaseTokens", env.asset.Hash, buyer)
	env.asset.Invoke(t, chaintest.Tokens(3), "balanceOf", buyer)
}

func TestEscrow_SanctionedAsset(t *testing.T) {
	env := newEscrowEnv(t, sanctionPath)
	seller, buyer := env.seller.ScriptHash(), env.buyer.ScriptHash()

	env.approve(t, chaintest.Tokens(1))
	env.escrow.Invoke(t, stackitem.Null{}, "receiveTokens", env.asset.Hash, chaintest.Tokens(1), seller, buyer)

	// seller owns the sanction token in this setup
	env.asset.Invoke(t, stackitem.Null{}, "addBannedAddress", buyer)
	chaintest.AdvanceTime(t, env.e, coolingOff)

	env.escrow.InvokeFail(t, "the address of the receiver is banned", "releaseTokens", env.asset.Hash, buyer)
	env.escrow.Invoke(t, chaintest.Tokens(1), "getTimelockBalance", env.asset.Hash, buyer)

	env.asset.Invoke(t, stackitem.Null{}, "removeBannedAddress", buyer)
	env.escrow.Invoke(t, stackitem.Null{}, "releaseTokens", env.asset.Hash, buyer)
	env.asset.Invoke(t, chaintest.Tokens(1), "balanceOf", buyer)
}
