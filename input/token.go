package input

import (
	"fmt"
	"unicode/utf8"
)

// Token is the smallest unit of input. Tokens are fixed size and copied by
// value; equality is the only operation the core relies on.
type Token interface {
	comparable
}

// ByteToken is satisfied by tokens with a stable fixed-size byte representation:
// raw bytes (1 byte) and Unicode scalar values (4 bytes).
type ByteToken interface {
	~uint8 | ~int32
}

// ByteSize returns the fixed encoded size of a token type.
func ByteSize[T ByteToken]() int {
	if ^T(0) > 0 {
		return 1
	}
	return utf8.UTFMax
}

// AppendBytes appends exactly ByteSize[T]() bytes for t to dst. Runes are
// UTF-8 encoded and zero padded.
func AppendBytes[T ByteToken](dst []byte, t T) []byte {
	if ByteSize[T]() == 1 {
		return append(dst, byte(t))
	}
	var buf [utf8.UTFMax]byte
	utf8.EncodeRune(buf[:], rune(t))
	return append(dst, buf[:]...)
}

// TokenTag holds either a single token or a tag (a fixed token sequence).
type TokenTag[T Token] struct {
	token T
	tag   []T
	isTag bool
}

// FoundToken wraps a single token.
func FoundToken[T Token](t T) TokenTag[T] { return TokenTag[T]{token: t} }

// FoundTag wraps a token sequence.
func FoundTag[T Token](tag []T) TokenTag[T] { return TokenTag[T]{tag: tag, isTag: true} }

func (tt TokenTag[T]) IsToken() bool { return !tt.isTag }

// Token returns the wrapped token; the zero token for tags.
func (tt TokenTag[T]) Token() T { return tt.token }

// Tag returns the wrapped sequence; nil for single tokens.
func (tt TokenTag[T]) Tag() []T { return tt.tag }

// Len reports the number of tokens held.
func (tt TokenTag[T]) Len() int {
	if tt.isTag {
		return len(tt.tag)
	}
	return 1
}

func (tt TokenTag[T]) String() string {
	if tt.isTag {
		return quoteTokens(tt.tag)
	}
	return quoteToken(tt.token)
}

// TagByteSize is the total encoded size of a token or tag.
func TagByteSize[T ByteToken](tt TokenTag[T]) int {
	return ByteSize[T]() * tt.Len()
}

// CopyTagInto writes the encoded token or tag into buf.
//
// Panics if buf is shorter than TagByteSize(tt).
func CopyTagInto[T ByteToken](tt TokenTag[T], buf []byte) {
	n := TagByteSize(tt)
	if len(buf) < n {
		panic(fmt.Sprintf("input: tag buffer too small: have %d, need %d", len(buf), n))
	}
	// capacity limit keeps AppendBytes writing into buf
	dst := buf[:0:n]
	if !tt.isTag {
		AppendBytes(dst, tt.token)
		return
	}
	for _, t := range tt.tag {
		dst = AppendBytes(dst, t)
	}
}

// TagBytes encodes the token or tag into a new buffer.
func TagBytes[T ByteToken](tt TokenTag[T]) []byte {
	buf := make([]byte, TagByteSize(tt))
	CopyTagInto(tt, buf)
	return buf
}

func quoteToken[T Token](t T) string {
	switch v := any(t).(type) {
	case byte:
		return fmt.Sprintf("%q", rune(v))
	case rune:
		return fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf("%v", t)
}

func quoteTokens[T Token](ts []T) string {
	switch v := any(ts).(type) {
	case []byte:
		return fmt.Sprintf("%q", string(v))
	case []rune:
		return fmt.Sprintf("%q", string(v))
	}
	return fmt.Sprintf("%v", ts)
}
