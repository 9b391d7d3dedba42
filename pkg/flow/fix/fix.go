package fix

import "github.com/ib-77/staticflow/pkg/flow/trampoline"

func Fix[A, R any](f func(self func(A) R, a A) R) func(A) R {
	var g func(A) R
	g = func(a A) R {
		return f(g, a)
	}
	return g
}

func Fix2[A, B, R any](f func(self func(A, B) R, a A, b B) R) func(A, B) R {
	var g func(A, B) R
	g = func(a A, b B) R {
		return f(g, a, b)
	}
	return g
}

// Trampolined adapts f so that calling self only schedules the next step.
// The returned function drives the steps iteratively.
func Trampolined[A, R any](
	f func(self func(A) trampoline.Bounce[R], a A) trampoline.Bounce[R]) func(A) R {

	var self func(A) trampoline.Bounce[R]
	self = func(a A) trampoline.Bounce[R] {
		return trampoline.More(func() trampoline.Bounce[R] {
			return f(self, a)
		})
	}

	return func(a A) R {
		return trampoline.Run(self(a))
	}
}

// Trampolined2 is Trampolined for two-argument steps.
func Trampolined2[A, B, R any](
	f func(self func(A, B) trampoline.Bounce[R], a A, b B) trampoline.Bounce[R]) func(A, B) R {

	var self func(A, B) trampoline.Bounce[R]
	self = func(a A, b B) trampoline.Bounce[R] {
		return trampoline.More(func() trampoline.Bounce[R] {
			return f(self, a, b)
		})
	}

	return func(a A, b B) R {
		return trampoline.Run(self(a, b))
	}
}
