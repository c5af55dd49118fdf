package engine

import (
	"errors"
	"io"
	"strconv"
)

// Kind represents token kinds from a structured document source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindBeginObject:
		return "'{'"
	case KindEndObject:
		return "'}'"
	case KindBeginArray:
		return "'['"
	case KindEndArray:
		return "']'"
	case KindKey:
		return "object key"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is one structural token. Text holds the key or string value, the
// number literal, "true"/"false" for booleans and is empty otherwise.
// Tokens are comparable so they can be matched directly by parsers.
type Token struct {
	Kind Kind
	Text string
}

func (t Token) String() string {
	switch t.Kind {
	case KindKey, KindString:
		return t.Kind.String() + " " + strconv.Quote(t.Text)
	case KindNumber, KindBool:
		return t.Kind.String() + " " + t.Text
	}
	return t.Kind.String()
}

// TokenSource is a minimal interface required by the engine. NextToken
// returns io.EOF once the document is exhausted.
type TokenSource interface {
	NextToken() (Token, error)
}

// Drain reads src until io.EOF and returns every token read. On error the
// tokens read so far are returned with it.
func Drain(src TokenSource) ([]Token, error) {
	var out []Token
	for {
		tok, err := src.NextToken()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, tok)
	}
}
