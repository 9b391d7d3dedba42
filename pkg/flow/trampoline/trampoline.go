package trampoline

// Bounce is one step of a trampolined computation.
// The zero Bounce is finished with the zero value.
type Bounce[T any] struct {
	next  func() Bounce[T]
	value T
}

func Done[T any](v T) Bounce[T] {
	return Bounce[T]{value: v}
}

// More suspends next until the bounce is jumped. A nil next is
// equivalent to Done with the zero value.
func More[T any](next func() Bounce[T]) Bounce[T] {
	return Bounce[T]{next: next}
}

// Complete reports whether b holds a final value.
func (b Bounce[T]) Complete() bool {
	return b.next == nil
}

// Jump to next stage. A complete bounce jumps to itself.
func (b Bounce[T]) Jump() Bounce[T] {
	if b.next == nil {
		return b
	}
	return b.next()
}

// Result is the final value, or the zero value while b is suspended.
func (b Bounce[T]) Result() T {
	return b.value
}

func Run[T any](b Bounce[T]) T {
	for b.next != nil {
		b = b.next()
	}
	return b.value
}
