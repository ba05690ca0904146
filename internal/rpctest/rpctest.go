// Package rpctest provides an in-memory actor for RPC binding tests.
package rpctest

import (
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
)

// Call is a recorded contract call.
type Call struct {
	Contract util.Uint160
	Method   string
	Params   []any
}

// Actor answers test invocations with prepared stacks and records sent
// transactions. It implements invoker and actor interfaces of the bindings.
type Actor struct {
	Err     error
	Account util.Uint160

	// Results maps method names to result stacks.
	Results map[string][]stackitem.Item
	// Pages are returned one by one by TraverseIterator.
	Pages [][]stackitem.Item

	Calls      []Call
	Terminated []uuid.UUID
}

// Session is the session ID returned with every invocation result.
var Session = uuid.MustParse("6e7f9a34-31a0-4c56-9b62-0a2f8e1d5c37")

// Returns sets the stack returned for the method.
func (a *Actor) Returns(method string, items ...stackitem.Item) {
	if a.Results == nil {
		a.Results = make(map[string][]stackitem.Item)
	}
	a.Results[method] = items
}

// Last returns the last recorded call.
func (a *Actor) Last() Call {
	if len(a.Calls) == 0 {
		return Call{}
	}
	return a.Calls[len(a.Calls)-1]
}

func (a *Actor) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	if a.Err != nil {
		return nil, a.Err
	}
	return &result.Invoke{
		State:   vmstate.Halt.String(),
		Stack:   a.Results[operation],
		Session: Session,
	}, nil
}

func (a *Actor) CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error) {
	return a.Call(contract, method, params...)
}

func (a *Actor) TerminateSession(sessionID uuid.UUID) error {
	a.Terminated = append(a.Terminated, sessionID)
	return nil
}

func (a *Actor) TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error) {
	if a.Err != nil {
		return nil, a.Err
	}
	if len(a.Pages) == 0 {
		return nil, nil
	}
	page := a.Pages[0]
	a.Pages = a.Pages[1:]
	return page, nil
}

func (a *Actor) MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error) {
	a.record(contract, method, params)
	return transaction.New([]byte{1}, 0), a.Err
}

func (a *Actor) MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error) {
	a.record(contract, method, params)
	return transaction.New([]byte{1}, 0), a.Err
}

func (a *Actor) SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error) {
	a.record(contract, method, params)
	return util.Uint256{1}, 100, a.Err
}

func (a *Actor) MakeRun(script []byte) (*transaction.Transaction, error) {
	return transaction.New(script, 0), a.Err
}

func (a *Actor) MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error) {
	return transaction.New(script, 0), a.Err
}

func (a *Actor) SendRun(script []byte) (util.Uint256, uint32, error) {
	return util.Uint256{2}, 100, a.Err
}

func (a *Actor) Sender() util.Uint160 {
	return a.Account
}

func (a *Actor) record(contract util.Uint160, method string, params []any) {
	a.Calls = append(a.Calls, Call{Contract: contract, Method: method, Params: params})
}
