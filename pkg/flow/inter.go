package flow

import "time"

type ResultProvider[T any] interface {
	// Result returns the realized value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if realization failed
	Err() error
	// IsSuccess returns true if a value was realized
	IsSuccess() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
}

// WithEmpty extends WithCancel with the unit outcome
type WithEmpty[T any] interface {
	WithCancel[T]
	// IsEmpty returns true if nothing was realized and nothing failed
	IsEmpty() bool
}

// Unwrap collapses r into the usual (value, error) pair.
// An empty outcome yields the zero value and a nil error.
func Unwrap[T any](r WithError[T]) (T, error) {
	if r.IsSuccess() {
		return r.Result(), nil
	}
	var zero T
	return zero, r.Err()
}

// Finally reduces r to a concrete value via the matching handler.
// A nil handler for the observed outcome yields the zero value.
func Finally[T, Out any](r WithEmpty[T],
	onSuccess func(T) Out,
	onError func(error) Out,
	onCancel func(error) Out,
	onEmpty func() Out) Out {

	var zero Out
	if r.IsSuccess() {
		if onSuccess != nil {
			return onSuccess(r.Result())
		}
	} else if r.IsCancel() {
		if onCancel != nil {
			return onCancel(r.Err())
		}
	} else if r.IsEmpty() {
		if onEmpty != nil {
			return onEmpty()
		}
	} else if onError != nil {
		return onError(r.Err())
	}
	return zero
}
