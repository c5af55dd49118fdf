package feast

import (
	"fmt"

	"github.com/reoring/feast/input"
	"github.com/reoring/feast/pass"
)

// Many runs inner until it fails and collects the values. The failing
// iteration is discarded, and an iteration that consumes nothing ends the
// loop so it always terminates.
func Many[T input.Token, I input.Input[T, I], E pass.Error[T, E], O any](inner Parser[T, I, E, O]) Parser[T, I, E, []O] {
	return func(p pass.Pass[T, I, E]) ([]O, pass.Pass[T, I, E], error) {
		out, next, _ := repeat(inner, p, nil)
		return out, next, nil
	}
}

// ManyCapture is Many with the completeness of the result made explicit: the
// values are indeterminate when the loop stopped because input ran out, since
// more input could have extended the run.
func ManyCapture[T input.Token, I input.Input[T, I], E pass.Error[T, E], O any](inner Parser[T, I, E, O]) Parser[T, I, E, *input.Stream[[]O]] {
	return func(p pass.Pass[T, I, E]) (*input.Stream[[]O], pass.Pass[T, I, E], error) {
		out, next, stop := repeat(inner, p, nil)
		if stop != nil && !pass.IsFatal(stop) {
			return input.Indeterminate(out), next, nil
		}
		return input.Determinate(out), next, nil
	}
}

// Many1 is Many requiring at least one value.
func Many1[T input.Token, I input.Input[T, I], E pass.Error[T, E], O any](inner Parser[T, I, E, O]) Parser[T, I, E, []O] {
	return func(p pass.Pass[T, I, E]) ([]O, pass.Pass[T, I, E], error) {
		first, next, err := inner(p)
		if err != nil {
			return nil, next, err
		}
		out, next, _ := repeat(inner, next, []O{first})
		return out, next, nil
	}
}

// Count runs inner exactly n times. Panics when n is negative.
func Count[T input.Token, I input.Input[T, I], E pass.Error[T, E], O any](inner Parser[T, I, E, O], n int) Parser[T, I, E, []O] {
	if n < 0 {
		panic(fmt.Sprintf("feast: negative count %d", n))
	}
	return func(p pass.Pass[T, I, E]) ([]O, pass.Pass[T, I, E], error) {
		out := make([]O, 0, n)
		cur := p
		for i := 0; i < n; i++ {
			o, next, err := inner(cur)
			if err != nil {
				return nil, next, err
			}
			out = append(out, o)
			cur = next
		}
		return out, cur, nil
	}
}

// SeparatedList parses zero or more inner values separated by sep. A trailing
// separator is left unconsumed.
func SeparatedList[T input.Token, I input.Input[T, I], E pass.Error[T, E], O, S any](inner Parser[T, I, E, O], sep Parser[T, I, E, S]) Parser[T, I, E, []O] {
	return func(p pass.Pass[T, I, E]) ([]O, pass.Pass[T, I, E], error) {
		first, cur, err := inner(p)
		if err != nil {
			return nil, p, nil
		}
		out := []O{first}
		for {
			_, afterSep, err := sep(cur)
			if err != nil {
				break
			}
			o, next, err := inner(afterSep)
			if err != nil || next.Mark() == cur.Mark() {
				break
			}
			out = append(out, o)
			cur = next
		}
		return out, cur, nil
	}
}

// repeat appends inner's values to out until inner fails or stops making
// progress, returning the error that stopped it, if any.
func repeat[T input.Token, I input.Input[T, I], E pass.Error[T, E], O any](inner Parser[T, I, E, O], p pass.Pass[T, I, E], out []O) ([]O, pass.Pass[T, I, E], error) {
	cur := p
	for {
		o, next, err := inner(cur)
		if err != nil {
			return out, cur, err
		}
		if next.Mark() == cur.Mark() {
			return out, cur, nil
		}
		out = append(out, o)
		cur = next
	}
}
