// Package queryable implements the interactive Queryable state machine:
// an owned handle over a mutable transition closure that answers
// external queries with external answers, and internal queries with
// internal answers, synchronously and one at a time.
package queryable

import (
	"sync"

	"vsis-dpcore/errs"
)

// Tag distinguishes the two query/answer channels a Queryable multiplexes.
// Cross-emission (an external query answered internally, or vice versa)
// is a fatal protocol error.
type Tag int

const (
	TagExternal Tag = iota
	TagInternal
)

// Query is a tagged request delivered to a Queryable's transition
// closure. Payload is opaque outside the runtime for internal queries -
// the same type-erased shape PolyQueryable uses at its boundary.
type Query struct {
	Tag     Tag
	Payload interface{}
}

// Answer is a tagged response from a Queryable's transition closure.
type Answer struct {
	Tag     Tag
	Payload interface{}
}

func ExternalQuery(payload interface{}) Query { return Query{Tag: TagExternal, Payload: payload} }
func InternalQuery(payload interface{}) Query { return Query{Tag: TagInternal, Payload: payload} }

func externalAnswer(payload interface{}) Answer { return Answer{Tag: TagExternal, Payload: payload} }
func internalAnswer(payload interface{}) Answer { return Answer{Tag: TagInternal, Payload: payload} }

// ExternalAnswer and InternalAnswer are exported so transition closures
// living outside this package (combinators/adaptive, combinators/odometer)
// can construct tagged answers.
func ExternalAnswer(payload interface{}) Answer { return externalAnswer(payload) }
func InternalAnswer(payload interface{}) Answer { return internalAnswer(payload) }

// TransitionFunc is the single closure a Queryable holds: given the
// Queryable's own handle (so it can be captured by a child wrapper
// rather than the child storing a parent pointer, which would create
// an ownership cycle) and a tagged Query, it returns a tagged Answer or
// an error. On error, the Queryable's state must not have been mutated -
// transition implementations are responsible for only committing
// mutations on the success path.
type TransitionFunc func(self *Queryable, q Query) (Answer, error)

// Queryable is an owned handle to a mutable state machine. Clones (via
// Queryable.Share) reference the same underlying state behind a mutex,
// so a Queryable is cloneable by reference rather than by deep copy.
type Queryable struct {
	state *state
}

type state struct {
	mu         sync.Mutex
	transition TransitionFunc
}

// New wraps a transition closure in a fresh Queryable.
func New(transition TransitionFunc) *Queryable {
	return &Queryable{state: &state{transition: transition}}
}

// Share returns a handle referencing the same underlying state; both
// handles serialize through the same mutex.
func (q *Queryable) Share() *Queryable {
	return &Queryable{state: q.state}
}

func (q *Queryable) dispatch(query Query) (Answer, error) {
	q.state.mu.Lock()
	defer q.state.mu.Unlock()
	ans, err := q.state.transition(q, query)
	if err != nil {
		return Answer{}, err
	}
	if ans.Tag != query.Tag {
		return Answer{}, errs.NewFailedFunction(
			"queryable: %v query answered with %v answer (protocol error)", query.Tag, ans.Tag)
	}
	return ans, nil
}

// Eval issues an external query and unwraps the external answer payload.
func (q *Queryable) Eval(payload interface{}) (interface{}, error) {
	ans, err := q.dispatch(ExternalQuery(payload))
	if err != nil {
		return nil, err
	}
	return ans.Payload, nil
}

// EvalInternal issues an internal query and unwraps the internal answer
// payload.
func (q *Queryable) EvalInternal(payload interface{}) (interface{}, error) {
	ans, err := q.dispatch(InternalQuery(payload))
	if err != nil {
		return nil, err
	}
	return ans.Payload, nil
}

// EvalPoly issues an external query and downcasts the answer payload to
// T, failing with FailedCast on a type mismatch - the boundary downcast
// confined to combinator entry points.
func EvalPoly[T any](q *Queryable, payload interface{}) (T, error) {
	raw, err := q.Eval(payload)
	if err != nil {
		var zero T
		return zero, err
	}
	v, ok := raw.(T)
	if !ok {
		var zero T
		return zero, errs.NewFailedCast("EvalPoly: answer payload is %T, not the requested type", raw)
	}
	return v, nil
}

func (t Tag) String() string {
	if t == TagExternal {
		return "external"
	}
	return "internal"
}
