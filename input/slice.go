package input

import (
	"fmt"
	"unicode/utf8"
)

// Slice is an Input over a contiguous []T. base is the absolute offset of
// the first token within the buffer the slice was created from, so marks
// stay comparable and redeemable across splits.
type Slice[T Token] struct {
	tokens []T
	base   int
}

// Of creates an input over tokens without copying.
func Of[T Token](tokens []T) Slice[T] { return Slice[T]{tokens: tokens} }

// Bytes creates a byte input without copying.
func Bytes(b []byte) Slice[byte] { return Of(b) }

// String creates a byte input over the bytes of s.
func String(s string) Slice[byte] { return Of([]byte(s)) }

// Runes creates a rune input, decoding s once.
func Runes(s string) Slice[rune] {
	rs := make([]rune, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		rs = append(rs, r)
	}
	return Of(rs)
}

// Empty returns an input with no tokens.
func Empty[T Token]() Slice[T] { return Slice[T]{} }

func (s Slice[T]) IsEmpty() bool { return len(s.tokens) == 0 }

func (s Slice[T]) Len() int { return len(s.tokens) }

func (s Slice[T]) At(i int) T { return s.tokens[i] }

// Tokens returns the underlying tokens. The result must not be modified.
func (s Slice[T]) Tokens() []T { return s.tokens }

// Start is the mark of the first token.
func (s Slice[T]) Start() Mark { return Mark{pos: s.base} }

func (s Slice[T]) Mark() Mark { return s.Start() }

// End is the mark just past the last token.
func (s Slice[T]) End() Mark { return Mark{pos: s.base + len(s.tokens)} }

func (s Slice[T]) SplitFirst() (T, Slice[T], *Reason[T]) {
	if len(s.tokens) == 0 {
		var zero T
		return zero, s, Incomplete[T](Exact(1))
	}
	return s.tokens[0], Slice[T]{tokens: s.tokens[1:], base: s.base + 1}, nil
}

func (s Slice[T]) SplitAt(n int) (Slice[T], Slice[T], *Reason[T]) {
	if n < 0 {
		panic(fmt.Sprintf("input: negative split %d", n))
	}
	if n > len(s.tokens) {
		return Slice[T]{base: s.base}, s, Incomplete[T](Exact(n - len(s.tokens)))
	}
	return Slice[T]{tokens: s.tokens[:n:n], base: s.base},
		Slice[T]{tokens: s.tokens[n:], base: s.base + n},
		nil
}

// SplitMark panics if m lies before the start of s: such a mark was taken
// from a different input.
func (s Slice[T]) SplitMark(m Mark) (Slice[T], Slice[T], *Reason[T]) {
	if m.pos < s.base {
		panic(fmt.Sprintf("input: mark %v precedes input start %d", m, s.base))
	}
	return s.SplitAt(m.pos - s.base)
}

func (s Slice[T]) Marker() Marker[T] { return &SliceMarker[T]{tokens: s.tokens, base: s.base} }

// Equal reports whether both inputs hold the same tokens at the same
// position.
func (s Slice[T]) Equal(o Slice[T]) bool {
	if s.base != o.base || len(s.tokens) != len(o.tokens) {
		return false
	}
	for i := range s.tokens {
		if s.tokens[i] != o.tokens[i] {
			return false
		}
	}
	return true
}

func (s Slice[T]) String() string {
	return fmt.Sprintf("%s@%d", quoteTokens(s.tokens), s.base)
}

// SliceMarker is the Marker of a Slice.
type SliceMarker[T Token] struct {
	tokens []T
	base   int
	cursor int
}

func (m *SliceMarker[T]) Next() (T, bool) {
	t, ok := m.Peek()
	if ok {
		m.cursor++
	}
	return t, ok
}

func (m *SliceMarker[T]) Peek() (T, bool) {
	if m.cursor >= len(m.tokens) {
		var zero T
		return zero, false
	}
	return m.tokens[m.cursor], true
}

func (m *SliceMarker[T]) Skip(n int) bool {
	if n < 0 {
		panic(fmt.Sprintf("input: negative skip %d", n))
	}
	if m.cursor+n > len(m.tokens) {
		m.cursor = len(m.tokens)
		return false
	}
	m.cursor += n
	return true
}

func (m *SliceMarker[T]) Mark() Mark { return Mark{pos: m.base + m.cursor} }

// Len returns the number of tokens left.
func (m *SliceMarker[T]) Len() int { return len(m.tokens) - m.cursor }

func (m *SliceMarker[T]) Child() Marker[T] {
	c := *m
	return &c
}
