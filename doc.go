// Package feast provides parser combinators over arbitrary token streams.
//
// - Zero-copy inputs that are split, never mutated (package input)
// - Backtracking through opaque marks and immutable passes (package pass)
// - Failures classified as Incomplete (more input may help) or Unexpected (fatal)
// - A combinator algebra: primitives, Hint/Peek/Or/Alt/Map/AndThen, sequencing and repetition
//
// Design policy:
// - Input, Pass and Error are bound through type parameters so splits are resolved statically.
// - Primitives only commit input on success; a failing primitive returns the pass it was given.
// - Character classes (package ascii) use only the exported combinators.
//
// Typical usage:
//
//	type P = pass.Pass[byte, input.Slice[byte], pass.Verbose[byte]]
//
//	key := feast.TakeUntil[byte, input.Slice[byte], pass.Verbose[byte]](func(b byte) bool { return b == ':' })
//	v, rest, err := feast.Parse(key, input.String("hello:world"))
//	iss, ok := feast.AsIssues(err)
package feast
