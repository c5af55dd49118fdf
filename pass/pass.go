// Package pass threads parse state through combinators.
//
// A Pass owns one Context, which owns one Input. Pass is an immutable value:
// every method returns a new Pass and grammar code replaces its variable with
// the returned one, so there is only ever one live position per parse.
package pass

import "github.com/reoring/feast/input"

// Context is the state held by a Pass; currently only the input.
type Context[I any] struct {
	input I
}

// NewContext wraps in.
func NewContext[I any](in I) Context[I] { return Context[I]{input: in} }

// Input returns the current input. Inputs are views, so this does not copy
// tokens.
func (c Context[I]) Input() I { return c.input }

// Pass carries the current position through a chain of combinators. E is
// the error type built for failures at this pass.
type Pass[T input.Token, I input.Input[T, I], E Error[T, E]] struct {
	ctx Context[I]
}

// New starts a pass over in.
func New[T input.Token, I input.Input[T, I], E Error[T, E]](in I) Pass[T, I, E] {
	return Pass[T, I, E]{ctx: NewContext(in)}
}

func (p Pass[T, I, E]) Context() Context[I] { return p.ctx }

func (p Pass[T, I, E]) Input() I { return p.ctx.input }

// Mark is the position of the next unread token.
func (p Pass[T, I, E]) Mark() input.Mark { return p.ctx.input.Mark() }

// Commit replaces the input with rest, the remainder of a successful split.
func (p Pass[T, I, E]) Commit(rest I) Pass[T, I, E] {
	p.ctx.input = rest
	return p
}

// InputError converts an input failure into this pass's error type.
func (p Pass[T, I, E]) InputError(r *input.Reason[T]) error {
	var zero E
	return zero.FromInput(p.Mark(), r)
}

// Incomplete builds an Incomplete error for req.
func (p Pass[T, I, E]) Incomplete(req input.Requirement) error {
	return p.InputError(input.Incomplete[T](req))
}

// Unexpected builds an Unexpected error for u.
func (p Pass[T, I, E]) Unexpected(u input.Unexpected[T]) error {
	return p.InputError(input.Unexpect(u))
}
