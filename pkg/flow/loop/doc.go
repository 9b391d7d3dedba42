// Package loop provides a fold-style for-each with an iteration index,
// an accumulator, and break/continue.
//
// The body receives the current State and one element, and returns the
// next State built with Continue/ContinueWith or Break/BreakWith. The loop
// stops after the last element or right after a body call that returned a
// breaking state; no later element is ever passed to the body.
//
//	sum := loop.Loop(func(s loop.State[int], x int) loop.State[int] {
//		if x < 0 {
//			return s.Break()
//		}
//		return s.ContinueWith(s.Accumulator() + x)
//	})
//	total := sum(0)(5, 4, 15, 35) // 59
//
// Steps are driven by a trampoline, so sequence length does not grow the
// stack. TryLoop and Run accept a failing body; Run also honours context
// cancellation and the options of package core.
package loop
