// Package branch provides a first-match-wins if / else-if / else chain
// whose handlers run only when the chain is realized.
//
// The chain is decided while it is built: conditions are checked in
// declaration order and the first one that holds selects its handler.
// Everything after that is accepted and ignored. Handlers attached to
// conditions that did not hold are never called, so a handler may rely on
// whatever its condition guarantees about the argument.
//
// Key operations:
// - If/IfFunc: open a chain with an eager or lazy condition
// - Then: attach the handler of the pending condition
// - ElseIf/ElseIfFunc: add another condition while the chain is open
// - Else: attach the unconditional default
// - Call/Realize: run the selected handler, if any
//
// A chain without a matching condition and without Else realizes to
// nothing: Call returns an empty result and Realize returns false.
// Malformed compositions (Else before ElseIf, two Else, Then without a
// condition) are collected as *flow.ConfigurationError and a faulted chain
// never runs a handler.
package branch
