package bondingcurve_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/settlement-contract/internal/chaintest"
	"github.com/stretchr/testify/require"
)

const (
	contractPath = "."
	standardPath = "../standard"

	releaseDelay = 5000 * time.Second

	// 0.01 and 0.03 GAS
	centiGAS      = 1_000_000
	threeCentiGAS = 3_000_000
)

var slope = chaintest.Tokens(200)

type curveEnv struct {
	e     *neotest.Executor
	buyer neotest.Signer
	curve *neotest.ContractInvoker
	gas   *neotest.ContractInvoker
}

func newCurveEnv(t *testing.T) curveEnv {
	e := chaintest.NewExecutor(t)
	owner := e.NewAccount(t)
	buyer := e.NewAccount(t)

	h := chaintest.Deploy(t, e, contractPath, []any{owner.ScriptHash(), slope, releaseDelay.Milliseconds()})

	return curveEnv{
		e:     e,
		buyer: buyer,
		curve: e.NewInvoker(h, buyer),
		gas:   e.NewInvoker(chaintest.GAS(t, e), buyer),
	}
}

func (env curveEnv) pay(t *testing.T, value int64, data any) {
	env.gas.Invoke(t, true, "transfer", env.buyer.ScriptHash(), env.curve.Hash, value, data)
}

func (env curveEnv) releaseAfterDelay(t *testing.T, beneficiary util.Uint160) {
	chaintest.AdvanceTime(t, env.e, releaseDelay)
	env.curve.Invoke(t, stackitem.Null{}, "releaseTokens", beneficiary)
}

func TestBondingCurve_Getters(t *testing.T) {
	env := newCurveEnv(t)
	c := env.curve

	c.Invoke(t, "T2", "symbol")
	c.Invoke(t, 18, "decimals")
	c.Invoke(t, slope, "slope")
	c.Invoke(t, releaseDelay.Milliseconds(), "releaseDelay")
	c.Invoke(t, 0, "committedSupply")
	c.Invoke(t, 0, "reserveBalance")

	c.Invoke(t, centiGAS, "cost", 0, chaintest.Tokens(2))
	c.Invoke(t, threeCentiGAS, "cost", chaintest.Tokens(2), chaintest.Tokens(4))
	c.InvokeFail(t, "invalid supply range", "cost", chaintest.Tokens(4), chaintest.Tokens(2))
}

func TestBondingCurve_ComputeSquareRoot(t *testing.T) {
	env := newCurveEnv(t)
	c := env.curve

	y := new(big.Int).Mul(big.NewInt(4), new(big.Int).Exp(big.NewInt(10), big.NewInt(36), nil))
	c.Invoke(t, chaintest.Tokens(2), "computeSquareRoot", y)
	c.Invoke(t, chaintest.Tokens(2), "computeSquareRoot", new(big.Int).Add(y, big.NewInt(1)))
	c.Invoke(t, new(big.Int).Sub(chaintest.Tokens(2), big.NewInt(1)), "computeSquareRoot",
		new(big.Int).Sub(y, big.NewInt(1)))
	c.Invoke(t, 0, "computeSquareRoot", 0)
	c.Invoke(t, 1, "computeSquareRoot", 3)
	c.InvokeFail(t, "square root of negative value", "computeSquareRoot", -1)
}

func TestBondingCurve_Scenario(t *testing.T) {
	env := newCurveEnv(t)
	c := env.curve
	buyer := env.buyer.ScriptHash()

	// A: 0.01 GAS at empty curve buys 2 tokens
	env.pay(t, centiGAS, nil)
	c.Invoke(t, chaintest.Tokens(2), "getTimelockBalance", buyer)
	c.Invoke(t, chaintest.Tokens(2), "committedSupply")
	c.Invoke(t, centiGAS, "reserveBalance")
	c.Invoke(t, 0, "totalSupply")
	c.Invoke(t, 0, "balanceOf", buyer)

	c.InvokeFail(t, "tokens are still locked", "releaseTokens", buyer)

	env.releaseAfterDelay(t, buyer)
	c.Invoke(t, chaintest.Tokens(2), "totalSupply")
	c.Invoke(t, chaintest.Tokens(2), "balanceOf", buyer)
	c.Invoke(t, 0, "getTimelockBalance", buyer)

	c.InvokeFail(t, "nothing to release", "releaseTokens", buyer)

	// B: 0.03 GAS at committed supply 2 buys 2 more tokens
	env.pay(t, threeCentiGAS, nil)
	c.Invoke(t, chaintest.Tokens(2), "getTimelockBalance", buyer)
	c.Invoke(t, chaintest.Tokens(4), "committedSupply")
	c.Invoke(t, chaintest.Tokens(2), "totalSupply")

	env.releaseAfterDelay(t, buyer)
	c.Invoke(t, chaintest.Tokens(4), "totalSupply")
	c.Invoke(t, chaintest.Tokens(4), "balanceOf", buyer)

	// C: burning 2 of 4 tokens refunds cost(2, 4)
	h := c.Invoke(t, stackitem.Null{}, "burn", buyer, chaintest.Tokens(2))

	events := c.GetTxExecResult(t, h).Events
	var burn []stackitem.Item
	for _, ev := range events {
		if ev.ScriptHash.Equals(c.Hash) && ev.Name == "Burn" {
			burn = ev.Item.Value().([]stackitem.Item)
		}
	}
	require.Len(t, burn, 3)
	refund, err := burn[2].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, threeCentiGAS, refund.Int64())

	c.Invoke(t, centiGAS, "reserveBalance")
	c.Invoke(t, chaintest.Tokens(2), "totalSupply")
	c.Invoke(t, chaintest.Tokens(2), "committedSupply")
	c.Invoke(t, chaintest.Tokens(2), "balanceOf", buyer)
	env.e.CheckGASBalance(t, c.Hash, big.NewInt(centiGAS))
}

func TestBondingCurve_Deadline(t *testing.T) {
	env := newCurveEnv(t)
	c := env.curve
	buyer := env.buyer.ScriptHash()

	env.pay(t, centiGAS, nil)
	until := chaintest.Now(t, env.e) + releaseDelay.Milliseconds()
	c.Invoke(t, until, "getTimelockDeadline", buyer)

	// the getter block above runs at paid+1, the next transactions at until-1 and until
	chaintest.AdvanceTime(t, env.e, releaseDelay-3*time.Millisecond)
	c.InvokeFail(t, "tokens are still locked", "releaseTokens", buyer)
	c.Invoke(t, stackitem.Null{}, "releaseTokens", buyer)
}

func TestBondingCurve_RepeatedMint(t *testing.T) {
	env := newCurveEnv(t)
	c := env.curve
	buyer := env.buyer.ScriptHash()

	env.pay(t, centiGAS, nil)
	chaintest.AdvanceTime(t, env.e, releaseDelay/2)

	// second payment accumulates and moves the deadline
	env.pay(t, threeCentiGAS, nil)
	until := chaintest.Now(t, env.e) + releaseDelay.Milliseconds()
	c.Invoke(t, chaintest.Tokens(4), "getTimelockBalance", buyer)
	c.Invoke(t, until, "getTimelockDeadline", buyer)

	chaintest.AdvanceTime(t, env.e, releaseDelay/2)
	c.InvokeFail(t, "tokens are still locked", "releaseTokens", buyer)

	env.releaseAfterDelay(t, buyer)
	c.Invoke(t, chaintest.Tokens(4), "balanceOf", buyer)
}

func TestBondingCurve_Beneficiary(t *testing.T) {
	env := newCurveEnv(t)
	c := env.curve
	other := c.NewAccount(t)

	env.pay(t, centiGAS, other.ScriptHash())
	c.Invoke(t, 0, "getTimelockBalance", env.buyer.ScriptHash())
	c.Invoke(t, chaintest.Tokens(2), "getTimelockBalance", other.ScriptHash())

	// anyone can trigger the release, tokens go to the beneficiary
	env.releaseAfterDelay(t, other.ScriptHash())
	c.Invoke(t, chaintest.Tokens(2), "balanceOf", other.ScriptHash())
	c.Invoke(t, 0, "balanceOf", env.buyer.ScriptHash())
}

func TestBondingCurve_Payments(t *testing.T) {
	env := newCurveEnv(t)

	t.Run("zero value", func(t *testing.T) {
		env.gas.InvokeFail(t, "amount must be positive", "transfer",
			env.buyer.ScriptHash(), env.curve.Hash, 0, nil)
	})

	t.Run("not GAS", func(t *testing.T) {
		h := chaintest.Deploy(t, env.e, standardPath, []any{env.buyer.ScriptHash(), chaintest.Tokens(10)})
		t0 := env.e.NewInvoker(h, env.buyer)
		t0.InvokeFail(t, "ABORT", "transfer", env.buyer.ScriptHash(), env.curve.Hash, 1, nil)
	})

	env.curve.Invoke(t, 0, "committedSupply")
}

func TestBondingCurve_Burn(t *testing.T) {
	env := newCurveEnv(t)
	c := env.curve
	buyer := env.buyer.ScriptHash()

	env.pay(t, centiGAS, nil)
	env.releaseAfterDelay(t, buyer)

	c.InvokeFail(t, "amount must be positive", "burn", buyer, 0)
	c.InvokeFail(t, "insufficient balance", "burn", buyer, chaintest.Tokens(3))

	stranger := c.NewAccount(t)
	c.WithSigners(stranger).InvokeFail(t, "witness check failed", "burn", buyer, 1)

	// locked tokens can't be burnt
	env.pay(t, threeCentiGAS, nil)
	c.InvokeFail(t, "insufficient balance", "burn", buyer, chaintest.Tokens(3))

	c.Invoke(t, stackitem.Null{}, "burn", buyer, chaintest.Tokens(2))
	c.Invoke(t, 0, "totalSupply")
	c.Invoke(t, chaintest.Tokens(2), "getTimelockBalance", buyer)
	c.Invoke(t, threeCentiGAS, "reserveBalance")
}
