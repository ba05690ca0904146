// Package bondingcurve contains RPC wrappers for T2 Bonding Curve Token
// contract.
package bondingcurve

import (
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/settlement-contract/rpc/ownable"
)

// MintEvent represents "Mint" event emitted by the contract.
type MintEvent struct {
	Beneficiary util.Uint160
	Value       *big.Int
	Amount      *big.Int
}

// LockedEvent represents "Locked" event emitted by the contract.
type LockedEvent struct {
	Beneficiary util.Uint160
	Amount      *big.Int
	Until       *big.Int
}

// ReleasedEvent represents "Released" event emitted by the contract.
type ReleasedEvent struct {
	Beneficiary util.Uint160
	Amount      *big.Int
}

// BurnEvent represents "Burn" event emitted by the contract.
type BurnEvent struct {
	From   util.Uint160
	Amount *big.Int
	Refund *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	nep17.Invoker
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	nep17.Actor

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	Sender() util.Uint160
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

// GetTimelockBalance invokes `getTimelockBalance` method of contract.
func (c *ContractReader) GetTimelockBalance(beneficiary util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getTimelockBalance", beneficiary))
}

// GetTimelockDeadline invokes `getTimelockDeadline` method of contract.
func (c *ContractReader) GetTimelockDeadline(beneficiary util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getTimelockDeadline", beneficiary))
}

// CommittedSupply invokes `committedSupply` method of contract.
func (c *ContractReader) CommittedSupply() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "committedSupply"))
}

// ReserveBalance invokes `reserveBalance` method of contract.
func (c *ContractReader) ReserveBalance() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "reserveBalance"))
}

// Slope invokes `slope` method of contract.
func (c *ContractReader) Slope() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "slope"))
}

// ReleaseDelay invokes `releaseDelay` method of contract.
func (c *ContractReader) ReleaseDelay() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "releaseDelay"))
}

// Cost invokes `cost` method of contract.
func (c *ContractReader) Cost(s0 *big.Int, s1 *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "cost", s0, s1))
}

// ComputeSquareRoot invokes `computeSquareRoot` method of contract.
func (c *ContractReader) ComputeSquareRoot(y *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "computeSquareRoot", y))
}

// Buy creates a transaction paying value of GAS fractions to the curve from
// the actor's account. Minted tokens are locked for the beneficiary, zero
// beneficiary means the sender.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Buy(value *big.Int, beneficiary util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(gas.Hash, "transfer", c.buyArgs(value, beneficiary)...)
}

// BuyTransaction creates a transaction paying value of GAS fractions to the
// curve. This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BuyTransaction(value *big.Int, beneficiary util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(gas.Hash, "transfer", c.buyArgs(value, beneficiary)...)
}

// BuyUnsigned creates a transaction paying value of GAS fractions to the
// curve. This transaction is not signed, it's simply returned to the caller.
func (c *Contract) BuyUnsigned(value *big.Int, beneficiary util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(gas.Hash, "transfer", nil, c.buyArgs(value, beneficiary)...)
}

func (c *Contract) buyArgs(value *big.Int, beneficiary util.Uint160) []any {
	var data any
	if !beneficiary.Equals(util.Uint160{}) {
		data = beneficiary
	}
	return []any{c.actor.Sender(), c.hash, value, data}
}

// ReleaseTokens creates a transaction invoking `releaseTokens` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ReleaseTokens(beneficiary util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "releaseTokens", beneficiary)
}

// ReleaseTokensTransaction creates a transaction invoking `releaseTokens` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReleaseTokensTransaction(beneficiary util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "releaseTokens", beneficiary)
}

// ReleaseTokensUnsigned creates a transaction invoking `releaseTokens` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReleaseTokensUnsigned(beneficiary util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "releaseTokens", nil, beneficiary)
}

// Burn creates a transaction invoking `burn` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Burn(from util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "burn", from, amount)
}

// BurnTransaction creates a transaction invoking `burn` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BurnTransaction(from util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "burn", from, amount)
}

// BurnUnsigned creates a transaction invoking `burn` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BurnUnsigned(from util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "burn", nil, from, amount)
}

// MintEventsFromApplicationLog retrieves a set of all emitted events
// with "Mint" name from the provided [result.ApplicationLog].
func MintEventsFromApplicationLog(log *result.ApplicationLog) ([]*MintEvent, error) {
	var res []*MintEvent
	err := ownable.ForEachEvent(log, "Mint", func(item *stackitem.Array) error {
		event := new(MintEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to MintEvent or
// returns an error if it's not possible to do to so.
func (e *MintEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := ownable.Fields(item, 3)
	if err != nil {
		return err
	}

	e.Beneficiary, err = ownable.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Beneficiary: %w", err)
	}

	e.Value, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	e.Amount, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// LockedEventsFromApplicationLog retrieves a set of all emitted events
// with "Locked" name from the provided [result.ApplicationLog].
func LockedEventsFromApplicationLog(log *result.ApplicationLog) ([]*LockedEvent, error) {
	var res []*LockedEvent
	err := ownable.ForEachEvent(log, "Locked", func(item *stackitem.Array) error {
		event := new(LockedEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to LockedEvent or
// returns an error if it's not possible to do to so.
func (e *LockedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := ownable.Fields(item, 3)
	if err != nil {
		return err
	}

	e.Beneficiary, err = ownable.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Beneficiary: %w", err)
	}

	e.Amount, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	e.Until, err = arr[2].TryInteger()
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
	arr, err := ownable.Fields(item, 2)
	if err != nil {
		return err
	}

	e.Beneficiary, err = ownable.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Beneficiary: %w", err)
	}

	e.Amount, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// BurnEventsFromApplicationLog retrieves a set of all emitted events
// with "Burn" name from the provided [result.ApplicationLog].
func BurnEventsFromApplicationLog(log *result.ApplicationLog) ([]*BurnEvent, error) {
	var res []*BurnEvent
	err := ownable.ForEachEvent(log, "Burn", func(item *stackitem.Array) error {
		event := new(BurnEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to BurnEvent or
// returns an error if it's not possible to do to so.
func (e *BurnEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := ownable.Fields(item, 3)
	if err != nil {
		return err
	}

	e.From, err = ownable.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	e.Amount, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	e.Refund, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Refund: %w", err)
	}

	return nil
}
