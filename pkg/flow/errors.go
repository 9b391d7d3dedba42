package flow

import (
	"errors"
	"fmt"
)

var (
	ErrThenWithoutCondition = errors.New("then without a pending condition")
	ErrMissingThen          = errors.New("condition has no then handler")
	ErrElseIfAfterElse      = errors.New("else-if after else")
	ErrDuplicateElse        = errors.New("duplicate else")
	ErrNilHandler           = errors.New("nil handler")
	ErrNilPredicate         = errors.New("nil predicate")
	ErrNilBody              = errors.New("nil loop body")
	ErrStepLimit            = errors.New("loop step limit exceeded")
)

// ConfigurationError reports a malformed combinator composition.
// Arm is the 1-based index of the condition the faulty step belongs to,
// 0 when the step precedes any condition.
type ConfigurationError struct {
	Op  string
	Arm int
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("flow: %s (arm %d): %v", e.Op, e.Arm, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
