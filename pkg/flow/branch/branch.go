package branch

import (
	"github.com/ib-77/staticflow/pkg/flow"
)

// Unit is the argument type of handlers that take nothing.
type Unit = struct{}

type Handler[A, R any] func(a A) R

// Chain is an immutable branch chain. Every method returns a new chain and
// leaves the receiver untouched, so a partially built chain may be shared.
type Chain[A, R any] struct {
	handler  Handler[A, R]
	err      error
	arm      int
	pending  bool // a condition waits for Then
	matched  bool // the pending condition holds
	resolved bool
	closed   bool // Else was attached
}

// If opens a chain with an already evaluated condition.
func If[A, R any](cond bool) Chain[A, R] {
	return Chain[A, R]{}.condition("if", func() bool { return cond })
}

// IfFunc opens a chain with a condition evaluated right away.
func IfFunc[A, R any](pred func() bool) Chain[A, R] {
	return Chain[A, R]{}.condition("if", pred)
}

func (c Chain[A, R]) ElseIf(cond bool) Chain[A, R] {
	return c.condition("else-if", func() bool { return cond })
}

// ElseIfFunc adds a lazy condition. pred is called only if no earlier
// condition matched.
func (c Chain[A, R]) ElseIfFunc(pred func() bool) Chain[A, R] {
	return c.condition("else-if", pred)
}

func (c Chain[A, R]) Then(h Handler[A, R]) Chain[A, R] {
	if !c.pending {
		return c.fault("then", flow.ErrThenWithoutCondition)
	}

	matched := c.matched
	c.pending = false
	c.matched = false

	if h == nil {
		return c.fault("then", flow.ErrNilHandler)
	}

	if matched && c.live() {
		c.handler = h
		c.resolved = true
	}
	return c
}

func (c Chain[A, R]) Else(h Handler[A, R]) Chain[A, R] {
	if c.closed {
		return c.fault("else", flow.ErrDuplicateElse)
	}
	if c.pending {
		c = c.fault("else", flow.ErrMissingThen)
		c.pending = false
		c.matched = false
	}

	c.closed = true

	if h == nil {
		return c.fault("else", flow.ErrNilHandler)
	}

	if c.live() && !c.resolved {
		c.handler = h
		c.resolved = true
	}
	return c
}

// Resolved reports whether a handler has been selected.
func (c Chain[A, R]) Resolved() bool {
	return c.resolved && c.Err() == nil
}

// Err returns every composition fault of the chain, joined.
// A condition still waiting for Then counts as a fault.
func (c Chain[A, R]) Err() error {
	if c.pending {
		return flow.AppendError(c.err,
			&flow.ConfigurationError{Op: "call", Arm: c.arm, Err: flow.ErrMissingThen})
	}
	return c.err
}

// Realize runs the selected handler with a. It returns false, without
// running anything, when no handler was selected or the chain is faulted.
func (c Chain[A, R]) Realize(a A) (R, bool) {
	if !c.Resolved() {
		var zero R
		return zero, false
	}
	return c.handler(a), true
}

// Call is Realize reported as a result: success with the handler's value,
// empty when nothing was selected, failure when the chain is malformed.
func (c Chain[A, R]) Call(a A) flow.Result[R] {
	if err := c.Err(); err != nil {
		return flow.Fail[R](err)
	}
	if !c.resolved {
		return flow.Empty[R]()
	}
	return flow.Success(c.handler(a))
}

// Func returns the chain as a plain handler. An unresolved or faulted
// chain becomes a handler that discards its argument and returns zero.
func (c Chain[A, R]) Func() Handler[A, R] {
	return func(a A) R {
		r, _ := c.Realize(a)
		return r
	}
}

func (c Chain[A, R]) condition(op string, pred func() bool) Chain[A, R] {
	c.arm++

	if c.pending {
		c = c.fault(op, flow.ErrMissingThen)
	}
	if c.closed {
		c = c.fault(op, flow.ErrElseIfAfterElse)
	}
	if pred == nil {
		c = c.fault(op, flow.ErrNilPredicate)
	}

	c.pending = true
	c.matched = c.live() && !c.resolved && pred()
	return c
}

func (c Chain[A, R]) live() bool {
	return c.err == nil
}

func (c Chain[A, R]) fault(op string, err error) Chain[A, R] {
	c.err = flow.AppendError(c.err, &flow.ConfigurationError{Op: op, Arm: c.arm, Err: err})
	return c
}
