package feast

import (
	"github.com/reoring/feast/input"
	"github.com/reoring/feast/pass"
)

// Hint attaches desc to failures of inner. Successes and the fatal or
// incomplete classification of the error are left untouched; errors that are
// not of the pass error type pass through as is.
func Hint[T input.Token, I input.Input[T, I], E pass.Error[T, E], O any](inner Parser[T, I, E, O], desc string) Parser[T, I, E, O] {
	return func(p pass.Pass[T, I, E]) (O, pass.Pass[T, I, E], error) {
		o, next, err := inner(p)
		if err != nil {
			if e, ok := err.(E); ok {
				err = e.WithHint(desc)
			}
		}
		return o, next, err
	}
}

// Peek runs inner and, on success, restores the input it started from.
func Peek[T input.Token, I input.Input[T, I], E pass.Error[T, E], O any](inner Parser[T, I, E, O]) Parser[T, I, E, O] {
	return func(p pass.Pass[T, I, E]) (O, pass.Pass[T, I, E], error) {
		start := p.Input()
		o, next, err := inner(p)
		if err != nil {
			return o, next, err
		}
		return o, next.Commit(start), nil
	}
}

// Or tries a, then b from the same starting position. When both fail the
// error of b is returned.
func Or[T input.Token, I input.Input[T, I], E pass.Error[T, E], O any](a, b Parser[T, I, E, O]) Parser[T, I, E, O] {
	return func(p pass.Pass[T, I, E]) (O, pass.Pass[T, I, E], error) {
		if o, next, err := a(p); err == nil {
			return o, next, nil
		}
		return b(p)
	}
}

// Alt tries each parser in order from the same starting position and returns
// the first success. When every branch fails, an Incomplete failure wins
// since more input could still satisfy that branch. Otherwise, for Verbose
// errors, the failures that got farthest are kept and their expectations are
// merged into a OneOf hint. Other error types report the last branch.
func Alt[T input.Token, I input.Input[T, I], E pass.Error[T, E], O any](ps ...Parser[T, I, E, O]) Parser[T, I, E, O] {
	if len(ps) == 0 {
		panic("feast: Alt needs at least one parser")
	}
	return func(p pass.Pass[T, I, E]) (O, pass.Pass[T, I, E], error) {
		fails := make([]failure[T, I, E], 0, len(ps))
		var (
			zero       O
			incomplete *failure[T, I, E]
		)
		for _, q := range ps {
			o, next, err := q(p)
			if err == nil {
				return o, next, nil
			}
			f := failure[T, I, E]{next: next, err: err}
			if !pass.IsFatal(err) && incomplete == nil {
				incomplete = &f
			}
			fails = append(fails, f)
		}
		if incomplete != nil {
			return zero, incomplete.next, incomplete.err
		}
		f := mergeExpected(fails)
		return zero, f.next, f.err
	}
}

type failure[T input.Token, I input.Input[T, I], E pass.Error[T, E]] struct {
	next pass.Pass[T, I, E]
	err  error
}

func mergeExpected[T input.Token, I input.Input[T, I], E pass.Error[T, E]](fails []failure[T, I, E]) failure[T, I, E] {
	last := fails[len(fails)-1]
	if len(fails) == 1 {
		return last
	}
	var (
		far   failure[T, I, E]
		at    input.Mark
		found input.Unexpected[T]
		hints []input.ExpectedHint[T]
	)
	for i, f := range fails {
		v, ok := f.err.(pass.Verbose[T])
		if !ok {
			return last
		}
		switch {
		case i == 0 || at.Pos() < v.At.Pos():
			far, at, hints = f, v.At, hints[:0]
			found, _ = v.Reason.Unexpected()
		case v.At != at:
			continue
		}
		h, _ := v.Reason.Unexpected()
		hint := h.Expecting
		if n := len(v.Hints); n > 0 {
			// the outermost description names the branch best
			hint = input.Describe[T](v.Hints[n-1])
		}
		hints = append(hints, hint)
	}
	if len(hints) == 1 {
		return far
	}
	found.Expecting = input.OneOf(hints...)
	far.err = pass.Verbose[T]{Reason: input.Unexpect(found), At: at}
	return far
}

// Map transforms the value of a successful parse.
func Map[T input.Token, I input.Input[T, I], E pass.Error[T, E], O, U any](inner Parser[T, I, E, O], f func(O) U) Parser[T, I, E, U] {
	return func(p pass.Pass[T, I, E]) (U, pass.Pass[T, I, E], error) {
		o, next, err := inner(p)
		if err != nil {
			var zero U
			return zero, next, err
		}
		return f(o), next, nil
	}
}

// AndThen runs inner and feeds its value and pass to f.
func AndThen[T input.Token, I input.Input[T, I], E pass.Error[T, E], O, U any](inner Parser[T, I, E, O], f func(O, pass.Pass[T, I, E]) (U, pass.Pass[T, I, E], error)) Parser[T, I, E, U] {
	return func(p pass.Pass[T, I, E]) (U, pass.Pass[T, I, E], error) {
		o, next, err := inner(p)
		if err != nil {
			var zero U
			return zero, next, err
		}
		return f(o, next)
	}
}

// Bind runs inner and continues with the parser chosen from its value.
func Bind[T input.Token, I input.Input[T, I], E pass.Error[T, E], O, U any](inner Parser[T, I, E, O], f func(O) Parser[T, I, E, U]) Parser[T, I, E, U] {
	return AndThen(inner, func(o O, p pass.Pass[T, I, E]) (U, pass.Pass[T, I, E], error) {
		return f(o)(p)
	})
}

// Tuple holds the values of a Pair.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Pair runs a then b.
func Pair[T input.Token, I input.Input[T, I], E pass.Error[T, E], A, B any](a Parser[T, I, E, A], b Parser[T, I, E, B]) Parser[T, I, E, Tuple[A, B]] {
	return AndThen(a, func(va A, p pass.Pass[T, I, E]) (Tuple[A, B], pass.Pass[T, I, E], error) {
		vb, next, err := b(p)
		return Tuple[A, B]{First: va, Second: vb}, next, err
	})
}

// Preceded runs a then b, keeping the value of b.
func Preceded[T input.Token, I input.Input[T, I], E pass.Error[T, E], A, B any](a Parser[T, I, E, A], b Parser[T, I, E, B]) Parser[T, I, E, B] {
	return AndThen(a, func(_ A, p pass.Pass[T, I, E]) (B, pass.Pass[T, I, E], error) {
		return b(p)
	})
}

// Terminated runs a then b, keeping the value of a.
func Terminated[T input.Token, I input.Input[T, I], E pass.Error[T, E], A, B any](a Parser[T, I, E, A], b Parser[T, I, E, B]) Parser[T, I, E, A] {
	return AndThen(a, func(va A, p pass.Pass[T, I, E]) (A, pass.Pass[T, I, E], error) {
		_, next, err := b(p)
		if err != nil {
			var zero A
			return zero, next, err
		}
		return va, next, nil
	})
}

// Delimited runs open, inner and closing, keeping the value of inner.
func Delimited[T input.Token, I input.Input[T, I], E pass.Error[T, E], A, O, B any](open Parser[T, I, E, A], inner Parser[T, I, E, O], closing Parser[T, I, E, B]) Parser[T, I, E, O] {
	return Preceded(open, Terminated(inner, closing))
}

// Option is the value of Optional.
type Option[O any] struct {
	Value O
	Some  bool
}

// Optional runs inner and turns any failure into an empty Option at the
// starting position. The available input is treated as final.
func Optional[T input.Token, I input.Input[T, I], E pass.Error[T, E], O any](inner Parser[T, I, E, O]) Parser[T, I, E, Option[O]] {
	return func(p pass.Pass[T, I, E]) (Option[O], pass.Pass[T, I, E], error) {
		o, next, err := inner(p)
		if err != nil {
			return Option[O]{}, p, nil
		}
		return Option[O]{Value: o, Some: true}, next, nil
	}
}

// Recognize runs inner and returns the section of input it consumed.
func Recognize[T input.Token, I input.Input[T, I], E pass.Error[T, E], O any](inner Parser[T, I, E, O]) Parser[T, I, E, I] {
	return func(p pass.Pass[T, I, E]) (I, pass.Pass[T, I, E], error) {
		start := p.Input()
		_, next, err := inner(p)
		if err != nil {
			var zero I
			return zero, next, err
		}
		sec, _, r := start.SplitMark(next.Mark())
		if r != nil {
			var zero I
			return zero, p, p.InputError(r)
		}
		return sec, next, nil
	}
}
