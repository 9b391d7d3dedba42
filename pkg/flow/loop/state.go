package loop

// Action tells the engine what to do after a body call.
type Action uint8

const (
	ActionContinue Action = iota
	ActionBreak
)

func (a Action) String() string {
	switch a {
	case ActionContinue:
		return "continue"
	case ActionBreak:
		return "break"
	default:
		return "unknown"
	}
}

// State is the immutable per-step record threaded through a loop.
// The zero State is the state before the first step with a zero accumulator.
type State[A any] struct {
	iteration uint
	acc       A
	action    Action
}

// NewState returns the state a loop starts from.
func NewState[A any](initial A) State[A] {
	return State[A]{acc: initial}
}

// Iteration is the number of steps taken before this state was produced.
func (s State[A]) Iteration() uint {
	return s.iteration
}

func (s State[A]) Accumulator() A {
	return s.acc
}

func (s State[A]) NextAction() Action {
	return s.action
}

// Continue advances to the next element keeping the accumulator.
func (s State[A]) Continue() State[A] {
	return s.advance(s.acc, ActionContinue)
}

func (s State[A]) ContinueWith(acc A) State[A] {
	return s.advance(acc, ActionContinue)
}

// Break stops the loop keeping the accumulator.
func (s State[A]) Break() State[A] {
	return s.advance(s.acc, ActionBreak)
}

// BreakWith stops the loop with acc as the final value.
func (s State[A]) BreakWith(acc A) State[A] {
	return s.advance(acc, ActionBreak)
}

func (s State[A]) advance(acc A, action Action) State[A] {
	return State[A]{
		iteration: s.iteration + 1,
		acc:       acc,
		action:    action,
	}
}
