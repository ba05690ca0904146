// Package sanction contains RPC wrappers for T1 Sanction Token contract.
package sanction

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/settlement-contract/rpc/ownable"
)

// BannedEvent represents "Banned" event emitted by the contract.
type BannedEvent struct {
	Address util.Uint160
}

// UnbannedEvent represents "Unbanned" event emitted by the contract.
type UnbannedEvent struct {
	Address util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	nep17.Invoker

	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	nep17.Actor

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	nep17.TokenReader
	ownable.Reader
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	nep17.TokenWriter
	ownable.Writer
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{*nep17.NewReader(invoker, hash), *ownable.NewReader(invoker, hash), invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	var nep17t = nep17.New(actor, hash)
	return &Contract{
		ContractReader{nep17t.TokenReader, *ownable.NewReader(actor, hash), actor, hash},
		nep17t.TokenWriter,
		*ownable.NewWriter(actor, hash),
		actor,
		hash,
	}
}

// IsAddressBanned invokes `isAddressBanned` method of contract.
func (c *ContractReader) IsAddressBanned(addr util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isAddressBanned", addr))
}

// ListBannedAddresses invokes `listBannedAddresses` method of contract.
func (c *ContractReader) ListBannedAddresses() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "listBannedAddresses"))
}

// ListBannedAddressesExpanded is similar to ListBannedAddresses (uses the same
// contract method), but can be useful if the server used doesn't support
// sessions and doesn't expand iterators. It creates a script that will get the
// specified number of result items from the iterator right in the VM and
// return them to you. It's only limited by VM stack and GAS available for RPC
// invocations.
func (c *ContractReader) ListBannedAddressesExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "listBannedAddresses", _numOfIteratorItems))
}

// BannedAddresses returns the whole ban set traversing the iterator session in
// batches of the given size. The session is terminated before return.
func (c *ContractReader) BannedAddresses(batch int) ([]util.Uint160, error) {
	sid, iter, err := c.ListBannedAddresses()
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.invoker.TerminateSession(sid) }()

	var res []util.Uint160
	for {
		items, err := c.invoker.TraverseIterator(sid, &iter, batch)
		if err != nil {
			return nil, fmt.Errorf("traverse iterator: %w", err)
		}

		for i := range items {
			u, err := ownable.Uint160(items[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", len(res), err)
			}
			res = append(res, u)
		}

		if len(items) < batch {
			return res, nil
		}
	}
}

// AddBannedAddress creates a transaction invoking `addBannedAddress` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddBannedAddress(addr util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addBannedAddress", addr)
}

// AddBannedAddressTransaction creates a transaction invoking `addBannedAddress` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddBannedAddressTransaction(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addBannedAddress", addr)
}

// AddBannedAddressUnsigned creates a transaction invoking `addBannedAddress` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddBannedAddressUnsigned(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addBannedAddress", nil, addr)
}

// RemoveBannedAddress creates a transaction invoking `removeBannedAddress` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveBannedAddress(addr util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeBannedAddress", addr)
}

// RemoveBannedAddressTransaction creates a transaction invoking `removeBannedAddress` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveBannedAddressTransaction(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeBannedAddress", addr)
}

// RemoveBannedAddressUnsigned creates a transaction invoking `removeBannedAddress` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveBannedAddressUnsigned(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeBannedAddress", nil, addr)
}

// BannedEventsFromApplicationLog retrieves a set of all emitted events
// with "Banned" name from the provided [result.ApplicationLog].
func BannedEventsFromApplicationLog(log *result.ApplicationLog) ([]*BannedEvent, error) {
	var res []*BannedEvent
	err := ownable.ForEachEvent(log, "Banned", func(item *stackitem.Array) error {
		event := new(BannedEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to BannedEvent or
// returns an error if it's not possible to do to so.
func (e *BannedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := ownable.Fields(item, 1)
	if err != nil {
		return err
	}

	e.Address, err = ownable.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Address: %w", err)
	}
	return nil
}

// UnbannedEventsFromApplicationLog retrieves a set of all emitted events
// with "Unbanned" name from the provided [result.ApplicationLog].
func UnbannedEventsFromApplicationLog(log *result.ApplicationLog) ([]*UnbannedEvent, error) {
	var res []*UnbannedEvent
	err := ownable.ForEachEvent(log, "Unbanned", func(item *stackitem.Array) error {
		event := new(UnbannedEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to UnbannedEvent or
// returns an error if it's not possible to do to so.
func (e *UnbannedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := ownable.Fields(item, 1)
	if err != nil {
		return err
	}

	e.Address, err = ownable.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Address: %w", err)
	}
	return nil
}
