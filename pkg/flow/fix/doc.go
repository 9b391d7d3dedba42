// Package fix lets an anonymous function call itself.
//
// Each adapter takes a function whose first parameter is a reference to
// the adapted function and returns that adapted function:
// g(args...) == f(g, args...).
//
// Fix and Fix2 recurse on the Go stack. Trampolined and Trampolined2 hand
// self a suspended step instead, so recursion depth costs no stack.
package fix
