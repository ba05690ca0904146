// Package escrow contains RPC wrappers for Escrow contract.
package escrow

import (
	"fmt"
	"math/big"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/settlement-contract/rpc/ownable"
)

// ReceivedEvent represents "Received" event emitted by the contract.
type ReceivedEvent struct {
	Asset  util.Uint160
	From   util.Uint160
	To     util.Uint160
	Amount *big.Int
	Until  *big.Int
}

// ReleasedEvent represents "Released" event emitted by the contract.
type ReleasedEvent struct {
	Asset  util.Uint160
	To     util.Uint160
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	ownable.Invoker
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	ownable.Actor
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	ownable.Reader
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	ownable.Writer
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{*ownable.NewReader(invoker, hash), invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{*NewReader(actor, hash), *ownable.NewWriter(actor, hash), actor, hash}
}

// GetTimelockBalance invokes `getTimelockBalance` method of contract.
func (c *ContractReader) GetTimelockBalance(asset util.Uint160, beneficiary util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getTimelockBalance", asset, beneficiary))
}

// GetTimelockDeadline invokes `getTimelockDeadline` method of contract.
func (c *ContractReader) GetTimelockDeadline(asset util.Uint160, beneficiary util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getTimelockDeadline", asset, beneficiary))
}

// CoolingOffPeriod invokes `coolingOffPeriod` method of contract.
func (c *ContractReader) CoolingOffPeriod() (time.Duration, error) {
	ms, err := unwrap.Int64(c.invoker.Call(c.hash, "coolingOffPeriod"))
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// ReceiveTokens creates a transaction invoking `receiveTokens` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ReceiveTokens(asset util.Uint160, amount *big.Int, from util.Uint160, to util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "receiveTokens", asset, amount, from, to)
}

// ReceiveTokensTransaction creates a transaction invoking `receiveTokens` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReceiveTokensTransaction(asset util.Uint160, amount *big.Int, from util.Uint160, to util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "receiveTokens", asset, amount, from, to)
}

// ReceiveTokensUnsigned creates a transaction invoking `receiveTokens` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReceiveTokensUnsigned(asset util.Uint160, amount *big.Int, from util.Uint160, to util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "receiveTokens", nil, asset, amount, from, to)
}

// ReleaseTokens creates a transaction invoking `releaseTokens` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ReleaseTokens(asset util.Uint160, to util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "releaseTokens", asset, to)
}

// ReleaseTokensTransaction creates a transaction invoking `releaseTokens` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReleaseTokensTransaction(asset util.Uint160, to util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "releaseTokens", asset, to)
}

// ReleaseTokensUnsigned creates a transaction invoking `releaseTokens` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReleaseTokensUnsigned(asset util.Uint160, to util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "releaseTokens", nil, asset, to)
}

// ReceivedEventsFromApplicationLog retrieves a set of all emitted events
// with "Received" name from the provided [result.ApplicationLog].
func ReceivedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReceivedEvent, error) {
	var res []*ReceivedEvent
	err := ownable.ForEachEvent(log, "Received", func(item *stackitem.Array) error {
		event := new(ReceivedEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to ReceivedEvent or
// returns an error if it's not possible to do to so.
func (e *ReceivedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := ownable.Fields(item, 5)
	if err != nil {
		return err
	}

	e.Asset, err = ownable.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Asset: %w", err)
	}

	e.From, err = ownable.Uint160(arr[1])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	e.To, err = ownable.Uint160(arr[2])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	e.Amount, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	e.Until, err = arr[4].TryInteger()
	if err != nil {
		return fmt.Errorf("field Until: %w", err)
	}

	return nil
}

// ReleasedEventsFromApplicationLog retrieves a set of all emitted events
// with "Released" name from the provided [result.ApplicationLog].
func ReleasedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReleasedEvent, error) {
	var res []*ReleasedEvent
	err := ownable.ForEachEvent(log, "Released", func(item *stackitem.Array) error {
		event := new(ReleasedEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to ReleasedEvent or
// returns an error if it's not possible to do to so.
func (e *ReleasedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := ownable.Fields(item, 3)
	if err != nil {
		return err
	}

	e.Asset, err = ownable.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Asset: %w", err)
	}

	e.To, err = ownable.Uint160(arr[1])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	e.Amount, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
