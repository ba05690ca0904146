package bondingcurve

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/settlement-contract/internal/rpctest"
	"github.com/stretchr/testify/require"
)

func TestBuy(t *testing.T) {
	curve := util.Uint160{1, 2, 3}
	buyer := util.Uint160{0xb}
	act := &rpctest.Actor{Account: buyer}
	c := New(act, curve)

	value := big.NewInt(1_000_000)

	_, _, err := c.Buy(value, util.Uint160{})
	require.NoError(t, err)
	require.Equal(t, rpctest.Call{
		Contract: gas.Hash,
		Method:   "transfer",
		Params:   []any{buyer, curve, value, nil},
	}, act.Last())

	other := util.Uint160{0xc}
	_, err = c.BuyTransaction(value, other)
	require.NoError(t, err)
	require.Equal(t, []any{buyer, curve, value, other}, act.Last().Params)

	_, _, err = c.Burn(buyer, tokens(1))
	require.NoError(t, err)
	require.Equal(t, rpctest.Call{Contract: curve, Method: "burn", Params: []any{buyer, tokens(1)}}, act.Last())

	_, err = c.ReleaseTokensUnsigned(other)
	require.NoError(t, err)
	require.Equal(t, rpctest.Call{Contract: curve, Method: "releaseTokens", Params: []any{other}}, act.Last())
}

func TestReader(t *testing.T) {
	act := new(rpctest.Actor)
	r := NewReader(act, util.Uint160{1, 2, 3})

	act.Returns("getTimelockDeadline", stackitem.Make(1700000000000))
	until, err := r.GetTimelockDeadline(util.Uint160{0xb})
	require.NoError(t, err)
	require.EqualValues(t, 1700000000000, until.Int64())

	act.Returns("owner", stackitem.Make(util.Uint160{0xa}.BytesBE()))
	owner, err := r.Owner()
	require.NoError(t, err)
	require.Equal(t, util.Uint160{0xa}, owner)
}

func TestEvents(t *testing.T) {
	b := util.Uint160{0xb}
	event := func(name string, items ...stackitem.Item) state.NotificationEvent {
		return state.NotificationEvent{Name: name, Item: stackitem.NewArray(items)}
	}

	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				event("Mint", stackitem.Make(b.BytesBE()), stackitem.Make(1_000_000), stackitem.Make(tokens(2))),
				event("Locked", stackitem.Make(b.BytesBE()), stackitem.Make(tokens(2)), stackitem.Make(5000)),
				event("Released", stackitem.Make(b.BytesBE()), stackitem.Make(tokens(2))),
				event("Burn", stackitem.Make(b.BytesBE()), stackitem.Make(tokens(2)), stackitem.Make(3_000_000)),
			},
		}},
	}

	mint, err := MintEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, mint, 1)
	require.Equal(t, b, mint[0].Beneficiary)
	require.EqualValues(t, 1_000_000, mint[0].Value.Int64())
	require.Zero(t, tokens(2).Cmp(mint[0].Amount))

	locked, err := LockedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, locked, 1)
	require.EqualValues(t, 5000, locked[0].Until.Int64())

	released, err := ReleasedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, released, 1)
	require.Zero(t, tokens(2).Cmp(released[0].Amount))

	burn, err := BurnEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, burn, 1)
	require.EqualValues(t, 3_000_000, burn[0].Refund.Int64())

	log.Executions[0].Events[3] = event("Burn", stackitem.Make(b.BytesBE()))
	_, err = BurnEventsFromApplicationLog(log)
	require.Error(t, err)
}
