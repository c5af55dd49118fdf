package input

import "fmt"

// Mark is an opaque position inside an input. Marks are only meaningful
// against the input (or splits of the input) they were taken from and are
// compared for equality only.
type Mark struct {
	pos int
}

// MarkAt builds a mark for a token offset. It is intended for Input
// implementations; grammar code obtains marks from a Marker.
func MarkAt(pos int) Mark { return Mark{pos: pos} }

// Pos returns the token offset the mark refers to, for diagnostics.
func (m Mark) Pos() int { return m.pos }

func (m Mark) String() string { return fmt.Sprintf("@%d", m.pos) }

// Span is the half-open range [From, To) between two marks.
type Span struct {
	From Mark
	To   Mark
}

// NewSpan returns the span between from and to.
func NewSpan(from, to Mark) Span { return Span{From: from, To: to} }

func (s Span) String() string { return fmt.Sprintf("%d..%d", s.From.pos, s.To.pos) }
