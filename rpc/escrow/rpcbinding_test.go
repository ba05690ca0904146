package escrow

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/settlement-contract/internal/rpctest"
	"github.com/stretchr/testify/require"
)

var (
	hash  = util.Uint160{1, 2, 3}
	asset = util.Uint160{0xa}
	buyer = util.Uint160{0xb}
)

func TestReader(t *testing.T) {
	act := new(rpctest.Actor)
	r := NewReader(act, hash)

	act.Returns("coolingOffPeriod", stackitem.Make(72*time.Hour.Milliseconds()))
	d, err := r.CoolingOffPeriod()
	require.NoError(t, err)
	require.Equal(t, 72*time.Hour, d)

	act.Returns("getTimelockBalance", stackitem.Make(42))
	b, err := r.GetTimelockBalance(asset, buyer)
	require.NoError(t, err)
	require.EqualValues(t, 42, b.Int64())

	act.Err = errors.New("bad")
	_, err = r.CoolingOffPeriod()
	require.Error(t, err)
}

func TestContract(t *testing.T) {
	act := new(rpctest.Actor)
	c := New(act, hash)
	seller := util.Uint160{0xc}
	amount := big.NewInt(10)

	_, _, err := c.ReceiveTokens(asset, amount, seller, buyer)
	require.NoError(t, err)
	require.Equal(t, rpctest.Call{
		Contract: hash,
		Method:   "receiveTokens",
		Params:   []any{asset, amount, seller, buyer},
	}, act.Last())

	_, err = c.ReleaseTokensTransaction(asset, buyer)
	require.NoError(t, err)
	require.Equal(t, rpctest.Call{
		Contract: hash,
		Method:   "releaseTokens",
		Params:   []any{asset, buyer},
	}, act.Last())

	_, err = c.UpdateUnsigned([]byte{1}, []byte("{}"), nil)
	require.NoError(t, err)
	require.Equal(t, "update", act.Last().Method)
}

func TestEvents(t *testing.T) {
	seller := util.Uint160{0xc}
	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{Name: "Received", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.Make(asset.BytesBE()),
					stackitem.Make(seller.BytesBE()),
					stackitem.Make(buyer.BytesBE()),
					stackitem.Make(10),
					stackitem.Make(5000),
				})},
				{Name: "Released", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.Make(asset.BytesBE()),
					stackitem.Make(buyer.BytesBE()),
					stackitem.Make(10),
				})},
				{Name: "OwnershipTransferred", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.Make(seller.BytesBE()),
					stackitem.Make(buyer.BytesBE()),
				})},
			},
		}},
	}

	received, err := ReceivedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*ReceivedEvent{{
		Asset:  asset,
		From:   seller,
		To:     buyer,
		Amount: big.NewInt(10),
		Until:  big.NewInt(5000),
	}}, received)

	released, err := ReleasedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, released, 1)
	require.Equal(t, buyer, released[0].To)

	log.Executions[0].Events[1].Item = stackitem.NewArray([]stackitem.Item{
		stackitem.Make(asset.BytesBE()),
		stackitem.Make([]byte{1, 2}),
		stackitem.Make(10),
	})
	_, err = ReleasedEventsFromApplicationLog(log)
	require.Error(t, err)
}
