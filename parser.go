package feast

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/reoring/feast/input"
	"github.com/reoring/feast/pass"
)

// Parser is the unit of composition. It consumes a pass and returns either a
// value with the advanced pass, or an error with the pass at the point of
// failure.
type Parser[T input.Token, I input.Input[T, I], E pass.Error[T, E], O any] func(p pass.Pass[T, I, E]) (O, pass.Pass[T, I, E], error)

// TakeToken consumes one token.
func TakeToken[T input.Token, I input.Input[T, I], E pass.Error[T, E]]() Parser[T, I, E, T] {
	return func(p pass.Pass[T, I, E]) (T, pass.Pass[T, I, E], error) {
		tok, rest, r := p.Input().SplitFirst()
		if r != nil {
			var zero T
			return zero, p, p.InputError(r)
		}
		return tok, p.Commit(rest), nil
	}
}

// TakeTokenIf consumes one token when pred holds for it.
func TakeTokenIf[T input.Token, I input.Input[T, I], E pass.Error[T, E]](pred func(T) bool) Parser[T, I, E, T] {
	return takeTokenIf[T, I, E](pred, input.NoHint[T]())
}

// Token consumes one token equal to want.
func Token[T input.Token, I input.Input[T, I], E pass.Error[T, E]](want T) Parser[T, I, E, T] {
	return takeTokenIf[T, I, E](func(t T) bool { return t == want }, input.ExpectToken(want))
}

// InRange consumes one token within [lo, hi].
func InRange[T interface {
	input.Token
	constraints.Ordered
}, I input.Input[T, I], E pass.Error[T, E]](lo, hi T) Parser[T, I, E, T] {
	return TakeTokenIf[T, I, E](func(t T) bool { return lo <= t && t <= hi })
}

// Satisfy consumes one token accepted by cond. Failures expect cond's
// description.
func Satisfy[T input.Token, I input.Input[T, I], E pass.Error[T, E]](cond interface {
	Match(T) bool
	fmt.Stringer
}) Parser[T, I, E, T] {
	return takeTokenIf[T, I, E](cond.Match, input.Describe[T](cond.String()))
}

func takeTokenIf[T input.Token, I input.Input[T, I], E pass.Error[T, E]](pred func(T) bool, hint input.ExpectedHint[T]) Parser[T, I, E, T] {
	return func(p pass.Pass[T, I, E]) (T, pass.Pass[T, I, E], error) {
		tok, rest, r := p.Input().SplitFirst()
		if r != nil {
			var zero T
			return zero, p, p.InputError(r)
		}
		if !pred(tok) {
			var zero T
			return zero, p, p.Unexpected(input.Unexpected[T]{
				Found:     input.FoundToken(tok),
				Span:      input.NewSpan(p.Mark(), rest.Mark()),
				Expecting: hint,
			})
		}
		return tok, p.Commit(rest), nil
	}
}

// Tag consumes exactly len(tag) tokens equal to tag, or nothing. An input
// shorter than the tag is Incomplete.
func Tag[T input.Token, I input.Input[T, I], E pass.Error[T, E]](tag []T) Parser[T, I, E, I] {
	return func(p pass.Pass[T, I, E]) (I, pass.Pass[T, I, E], error) {
		in := p.Input()
		sec, rest, r := in.SplitAt(len(tag))
		if r != nil {
			var zero I
			return zero, p, p.InputError(r)
		}
		for i := range tag {
			if tok := sec.At(i); tok != tag[i] {
				m := in.Marker()
				m.Skip(i)
				from := m.Mark()
				m.Next()
				var zero I
				return zero, p, mismatch(p, tok, from, m.Mark(), tag)
			}
		}
		return sec, p.Commit(rest), nil
	}
}

func mismatch[T input.Token, I input.Input[T, I], E pass.Error[T, E]](p pass.Pass[T, I, E], tok T, from, to input.Mark, tag []T) error {
	return p.Unexpected(input.Unexpected[T]{
		Found:     input.FoundToken(tok),
		Span:      input.NewSpan(from, to),
		Expecting: input.ExpectTag(tag),
	})
}

// Take consumes exactly n tokens.
func Take[T input.Token, I input.Input[T, I], E pass.Error[T, E]](n int) Parser[T, I, E, I] {
	return func(p pass.Pass[T, I, E]) (I, pass.Pass[T, I, E], error) {
		sec, rest, r := p.Input().SplitAt(n)
		if r != nil {
			var zero I
			return zero, p, p.InputError(r)
		}
		return sec, p.Commit(rest), nil
	}
}

// TakeUntil consumes tokens up to, not including, the first token for which
// pred holds. It fails with Incomplete(Unknown) if no token matches.
func TakeUntil[T input.Token, I input.Input[T, I], E pass.Error[T, E]](pred func(T) bool) Parser[T, I, E, I] {
	return func(p pass.Pass[T, I, E]) (I, pass.Pass[T, I, E], error) {
		in := p.Input()
		m := in.Marker()
		for {
			tok, ok := m.Peek()
			if !ok {
				break
			}
			if pred(tok) {
				sec, rest, r := in.SplitMark(m.Mark())
				if r != nil {
					var zero I
					return zero, p, p.InputError(r)
				}
				return sec, p.Commit(rest), nil
			}
			m.Next()
		}
		var zero I
		return zero, p, p.Incomplete(input.Unknown())
	}
}

// Eof succeeds only when no input remains.
func Eof[T input.Token, I input.Input[T, I], E pass.Error[T, E]]() Parser[T, I, E, struct{}] {
	return func(p pass.Pass[T, I, E]) (struct{}, pass.Pass[T, I, E], error) {
		in := p.Input()
		if in.IsEmpty() {
			return struct{}{}, p, nil
		}
		m := in.Marker()
		from := m.Mark()
		tok, _ := m.Next()
		return struct{}{}, p, p.Unexpected(input.Unexpected[T]{
			Found:     input.FoundToken(tok),
			Span:      input.NewSpan(from, m.Mark()),
			Expecting: input.Describe[T]("end of input"),
		})
	}
}
