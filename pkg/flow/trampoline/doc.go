// Package trampoline turns recursion into iteration.
//
// A computation returns a Bounce: either a finished value (Done) or a
// suspended next step (More). Run keeps jumping until the value is
// finished, so the Go stack stays flat no matter how many steps are taken.
//
// Key operations:
// - Done/More: build a finished or suspended step
// - Jump: advance a single step
// - Run: drive a bounce to completion
package trampoline
