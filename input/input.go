// Package input defines the token, input and failure model the combinators
// are built on.
//
// An Input is an immutable view over a run of tokens. Consuming operations
// never mutate it: they split it into a Section (a bounded view of the same
// concrete type) and the remaining Input, sharing the backing storage.
// A Marker scans ahead over a snapshot of an Input without consuming it, and
// the Mark it produces can be redeemed against the same Input with SplitMark.
package input

// Input is implemented by concrete inputs. I is the implementing type itself,
// so splits return the concrete type and stay free of interface dispatch in
// generic code.
type Input[T Token, I any] interface {
	// IsEmpty reports whether no tokens remain. O(1).
	IsEmpty() bool
	// Len returns the exact number of tokens.
	Len() int
	// At returns the token at index i. O(1). Panics when out of range.
	At(i int) T
	// SplitFirst removes exactly one token, or fails with Incomplete(Exact(1)).
	SplitFirst() (T, I, *Reason[T])
	// SplitAt divides the input into a section of length n and the rest,
	// failing with Incomplete(Exact(n-len)) when n > len. No copying.
	SplitAt(n int) (I, I, *Reason[T])
	// SplitMark is SplitAt at a position obtained from this input's Marker.
	SplitMark(m Mark) (I, I, *Reason[T])
	// Mark returns the position of the first token. O(1).
	Mark() Mark
	// Marker returns a read-only cursor at the start of the input.
	Marker() Marker[T]
}

// Marker is a lookahead cursor derived from an Input. Advancing it never
// affects the Input it came from.
type Marker[T Token] interface {
	// Next advances by one token.
	Next() (T, bool)
	// Peek returns the next token without advancing.
	Peek() (T, bool)
	// Skip advances n tokens, reporting whether that many were available.
	// On false the cursor is left at the end. Panics when n is negative.
	Skip(n int) bool
	// Mark returns the current position.
	Mark() Mark
	// Child returns an independent copy of the cursor.
	Child() Marker[T]
}
