// Package ownable contains RPC wrappers for methods shared by all settlement
// contracts: ownership, version and update.
package ownable

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// OwnershipTransferredEvent represents "OwnershipTransferred" event emitted by
// the contract.
type OwnershipTransferredEvent struct {
	Previous util.Uint160
	New      util.Uint160
}

// Invoker is used by Reader to call safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Writer to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
}

// Reader implements safe methods of an owned contract.
type Reader struct {
	invoker Invoker
	hash    util.Uint160
}

// Writer implements state-changing methods of an owned contract.
type Writer struct {
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of Reader using provided contract hash and the
// given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *Reader {
	return &Reader{invoker, hash}
}

// NewWriter creates an instance of Writer using provided contract hash and the
// given Actor.
func NewWriter(actor Actor, hash util.Uint160) *Writer {
	return &Writer{actor, hash}
}

// Owner invokes `owner` method of contract.
func (c *Reader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// Version invokes `version` method of contract.
func (c *Reader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// TransferOwnership creates a transaction invoking `transferOwnership` method
// of the contract. This transaction is signed and immediately sent to the
// network. The values returned are its hash, ValidUntilBlock value and error if
// any.
func (c *Writer) TransferOwnership(newOwner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipTransaction creates a transaction invoking
// `transferOwnership` method of the contract. This transaction is signed, but
// not sent to the network, instead it's returned to the caller.
func (c *Writer) TransferOwnershipTransaction(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipUnsigned creates a transaction invoking `transferOwnership`
// method of the contract. This transaction is not signed, it's simply returned
// to the caller.
func (c *Writer) TransferOwnershipUnsigned(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferOwnership", nil, newOwner)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Writer) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Writer) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Writer) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// OwnershipTransferredEventsFromApplicationLog retrieves a set of all emitted
// events with "OwnershipTransferred" name from the provided
// [result.ApplicationLog].
func OwnershipTransferredEventsFromApplicationLog(log *result.ApplicationLog) ([]*OwnershipTransferredEvent, error) {
	var res []*OwnershipTransferredEvent
	err := ForEachEvent(log, "OwnershipTransferred", func(item *stackitem.Array) error {
		event := new(OwnershipTransferredEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to
// OwnershipTransferredEvent or returns an error if it's not possible to do to
// so.
func (e *OwnershipTransferredEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := Fields(item, 2)
	if err != nil {
		return err
	}

	e.Previous, err = Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Previous: %w", err)
	}

	e.New, err = Uint160(arr[1])
	if err != nil {
		return fmt.Errorf("field New: %w", err)
	}

	return nil
}

// ForEachEvent calls f for every notification with the given name found in the
// log. Iteration stops on the first error.
func ForEachEvent(log *result.ApplicationLog, name string, f func(*stackitem.Array) error) error {
	if log == nil {
		return errors.New("nil application log")
	}

	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != name {
				continue
			}
			if err := f(e.Item); err != nil {
				return fmt.Errorf("failed to deserialize %s event from stackitem (execution #%d, event #%d): %w", name, i, j, err)
			}
		}
	}

	return nil
}

// Fields returns elements of the notification payload checking their number.
func Fields(item *stackitem.Array, n int) ([]stackitem.Item, error) {
	if item == nil {
		return nil, errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	if len(arr) != n {
		return nil, errors.New("wrong number of structure elements")
	}
	return arr, nil
}

// Uint160 decodes big-endian script hash from the stack item.
func Uint160(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	return util.Uint160DecodeBytesBE(b)
}
