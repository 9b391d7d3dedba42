package flow

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	t.Parallel()

	r := Success(5)
	if !r.IsSuccess() || !r.HasResult() || r.Result() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, err=%v", r.IsSuccess(), r.Result(), r.Err())
	}
	assert.False(t, r.IsFailure())
	assert.False(t, r.IsCancel())
	assert.False(t, r.IsEmpty())
	assert.NotEqual(t, uuid.Nil, r.Id())
	assert.False(t, r.CreatedAt().IsZero())
}

func TestFailAndCancel(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	f := Fail[int](boom)
	assert.True(t, f.IsFailure())
	assert.False(t, f.IsCancel())
	assert.False(t, f.IsEmpty())
	assert.ErrorIs(t, f.Err(), boom)

	c := Cancel[int](context.Canceled)
	assert.True(t, c.IsCancel())
	assert.False(t, c.IsFailure())
	assert.False(t, c.IsEmpty())
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	e := Empty[string]()
	assert.True(t, e.IsEmpty())
	assert.False(t, e.IsSuccess())
	assert.False(t, e.IsFailure())
	assert.False(t, e.HasResult())
	assert.NoError(t, e.Err())
}

func TestResultsHaveDistinctIds(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, Success(1).Id(), Success(1).Id())
}

func TestFailFrom(t *testing.T) {
	t.Parallel()

	in := Cancel[int](context.DeadlineExceeded)
	out := FailFrom[int, string](in)

	assert.Equal(t, in.Id(), out.Id())
	assert.Equal(t, in.CreatedAt(), out.CreatedAt())
	assert.True(t, out.IsCancel())
	assert.ErrorIs(t, out.Err(), context.DeadlineExceeded)
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	v, err := Unwrap[int](Success(3))
	assert.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = Unwrap[int](Fail[int](errors.New("bad")))
	assert.EqualError(t, err, "bad")
	assert.Equal(t, 0, v)

	v, err = Unwrap[int](Empty[int]())
	assert.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestFinally(t *testing.T) {
	t.Parallel()

	describe := func(r Result[int]) string {
		return Finally[int, string](r,
			func(v int) string { return fmt.Sprint("ok ", v) },
			func(err error) string { return "error " + err.Error() },
			func(err error) string { return "cancel " + err.Error() },
			func() string { return "empty" },
		)
	}

	assert.Equal(t, "ok 1", describe(Success(1)))
	assert.Equal(t, "error x", describe(Fail[int](errors.New("x"))))
	assert.Equal(t, "cancel context canceled", describe(Cancel[int](context.Canceled)))
	assert.Equal(t, "empty", describe(Empty[int]()))

	// a missing handler yields the zero value
	assert.Equal(t, "", Finally[int, string](Empty[int](), nil, nil, nil, nil))
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetErrors(nil))

	single := errors.New("one")
	assert.Equal(t, []error{single}, GetErrors(single))

	joined := errors.Join(single, errors.New("two"))
	assert.Len(t, GetErrors(joined), 2)
}

func TestAppendError(t *testing.T) {
	t.Parallel()

	var err error
	err = AppendError(err, nil)
	assert.NoError(t, err)

	first := errors.New("first")
	second := errors.New("second")

	err = AppendError(err, first)
	err = AppendError(err, second)

	errs := GetErrors(err)
	if len(errs) != 2 || errs[0] != first || errs[1] != second {
		t.Fatalf("expected [first second], got %v", errs)
	}
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCancellationError(context.Canceled))
	assert.True(t, IsCancellationError(fmt.Errorf("wrapped: %w", context.DeadlineExceeded)))
	assert.False(t, IsCancellationError(errors.New("other")))
	assert.False(t, IsCancellationError(nil))
}

func TestConfigurationError(t *testing.T) {
	t.Parallel()

	err := error(&ConfigurationError{Op: "else", Arm: 2, Err: ErrDuplicateElse})

	assert.EqualError(t, err, "flow: else (arm 2): duplicate else")
	assert.ErrorIs(t, err, ErrDuplicateElse)

	var cfgErr *ConfigurationError
	assert.ErrorAs(t, fmt.Errorf("wrap: %w", err), &cfgErr)
	assert.Equal(t, 2, cfgErr.Arm)
}
