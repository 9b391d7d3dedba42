package loop

import (
	"context"
	"fmt"

	"github.com/ib-77/staticflow/pkg/flow"
	"github.com/ib-77/staticflow/pkg/flow/branch"
	"github.com/ib-77/staticflow/pkg/flow/core"
	"github.com/ib-77/staticflow/pkg/flow/fix"
	"github.com/ib-77/staticflow/pkg/flow/trampoline"
)

// Body computes the next state from the current one and an element.
type Body[A, E any] func(s State[A], x E) State[A]

// TryBody is a Body that may fail. A failure ends the loop.
type TryBody[A, E any] func(s State[A], x E) (State[A], error)

type stopReason uint8

const (
	stopExhausted stopReason = iota
	stopBreak
	stopFailed
	stopCancelled
	stopLimit
)

func (s stopReason) String() string {
	return [...]string{"exhausted", "break", "failed", "cancelled", "limit"}[s]
}

type outcome[A any] struct {
	acc   A
	steps uint
	stop  stopReason
	err   error
}

// Loop binds body and returns the curried entry point
// initial -> elements -> final accumulator. It panics if body is nil.
func Loop[A, E any](body Body[A, E]) func(initial A) func(xs ...E) A {
	if body == nil {
		panic("loop: nil body")
	}
	try := func(s State[A], x E) (State[A], error) {
		return body(s, x), nil
	}

	return func(initial A) func(xs ...E) A {
		return func(xs ...E) A {
			return drive(context.Background(), try, initial, xs).acc
		}
	}
}

// Fold runs body over xs starting from initial.
func Fold[A, E any](body Body[A, E], initial A, xs ...E) A {
	return Loop(body)(initial)(xs...)
}

// TryLoop is Loop for a failing body. The first error stops the loop and
// is returned as is, together with the zero accumulator.
func TryLoop[A, E any](body TryBody[A, E]) func(initial A) func(xs ...E) (A, error) {
	return func(initial A) func(xs ...E) (A, error) {
		return func(xs ...E) (A, error) {
			if body == nil {
				var zero A
				return zero, flow.ErrNilBody
			}

			out := drive(context.Background(), body, initial, xs)
			if out.err != nil {
				var zero A
				return zero, out.err
			}
			return out.acc, nil
		}
	}
}

// Run drives body over xs under ctx. The result is a success holding the
// final accumulator, a cancellation when ctx ends before a step or the body
// reports a context error, or a failure for any other body error and for
// exceeding the step limit set with core.WithLoopOptions.
func Run[A, E any](ctx context.Context, body TryBody[A, E], initial A, xs []E) flow.Result[A] {
	if body == nil {
		return flow.Fail[A](flow.ErrNilBody)
	}

	out := drive(ctx, body, initial, xs)

	var res flow.Result[A]
	switch {
	case out.err == nil:
		res = flow.Success(out.acc)
	case out.stop == stopCancelled || flow.IsCancellationError(out.err):
		res = flow.Cancel[A](out.err)
	default:
		res = flow.Fail[A](out.err)
	}

	logger := core.GetLogger(ctx)
	if out.err != nil {
		logger.DebugContext(ctx, "loop aborted",
			"id", res.Id(), "stop", out.stop, "steps", out.steps, "error", out.err)
	} else {
		logger.DebugContext(ctx, "loop finished",
			"id", res.Id(), "stop", out.stop, "steps", out.steps)
	}

	return res
}

func drive[A, E any](ctx context.Context, body TryBody[A, E], initial A, xs []E) outcome[A] {
	maxSteps := core.GetMaxSteps(ctx, 0)

	walk := fix.Trampolined2(func(self func(State[A], []E) trampoline.Bounce[outcome[A]],
		s State[A], rest []E) trampoline.Bounce[outcome[A]] {

		if err := ctx.Err(); err != nil {
			return trampoline.Done(outcome[A]{steps: s.iteration, stop: stopCancelled, err: err})
		}
		if maxSteps > 0 && s.iteration >= uint(maxSteps) {
			return trampoline.Done(outcome[A]{steps: s.iteration, stop: stopLimit,
				err: fmt.Errorf("%w: %d", flow.ErrStepLimit, maxSteps)})
		}

		next, err := body(s, rest[0])
		if err != nil {
			return trampoline.Done(outcome[A]{steps: s.iteration + 1, stop: stopFailed, err: err})
		}
		// the engine owns the index, whatever state the body built
		next.iteration = s.iteration + 1

		mustBreak := next.action == ActionBreak
		isLast := len(rest) == 1

		b, _ := branch.If[branch.Unit, trampoline.Bounce[outcome[A]]](mustBreak || isLast).
			Then(func(branch.Unit) trampoline.Bounce[outcome[A]] {
				reason := stopExhausted
				if mustBreak {
					reason = stopBreak
				}
				return trampoline.Done(outcome[A]{acc: next.acc, steps: next.iteration, stop: reason})
			}).
			Else(func(branch.Unit) trampoline.Bounce[outcome[A]] {
				return self(next, rest[1:])
			}).
			Realize(branch.Unit{})
		return b
	})

	out, _ := branch.If[branch.Unit, outcome[A]](len(xs) == 0).
		Then(func(branch.Unit) outcome[A] {
			return outcome[A]{acc: initial, stop: stopExhausted}
		}).
		Else(func(branch.Unit) outcome[A] {
			return walk(NewState(initial), xs)
		}).
		Realize(branch.Unit{})
	return out
}
