// Package source lexes structured documents into token inputs so the
// combinators can parse them like any other token stream.
//
// JSON is read with github.com/goccy/go-json and YAML with gopkg.in/yaml.v3.
// Both produce the same Token vocabulary, so one grammar serves both.
package source

import (
	"github.com/reoring/feast"
	"github.com/reoring/feast/input"
	eng "github.com/reoring/feast/internal/engine"
	"github.com/reoring/feast/pass"
)

type (
	// Token is a structural document token.
	Token = eng.Token
	// Kind classifies a Token.
	Kind = eng.Kind
)

const (
	BeginObject = eng.KindBeginObject
	EndObject   = eng.KindEndObject
	BeginArray  = eng.KindBeginArray
	EndArray    = eng.KindEndArray
	Key         = eng.KindKey
	String      = eng.KindString
	Number      = eng.KindNumber
	Bool        = eng.KindBool
	Null        = eng.KindNull
)

// Options bounds what a document may expand to. Zero values disable a limit.
type Options struct {
	MaxDepth  int
	MaxTokens int
}

func normalizeOptions(opts []Options) eng.Limits {
	if len(opts) == 0 {
		return eng.Limits{}
	}
	o := opts[len(opts)-1]
	return eng.Limits{MaxDepth: o.MaxDepth, MaxTokens: o.MaxTokens}
}

// LimitError is returned (wrapped) when a document exceeds Options.
type LimitError = eng.LimitError

// OfKind consumes one token of kind k.
func OfKind[I input.Input[Token, I], E pass.Error[Token, E]](k Kind) feast.Parser[Token, I, E, Token] {
	return feast.Hint(feast.TakeTokenIf[Token, I, E](func(t Token) bool { return t.Kind == k }), k.String())
}

// Field consumes the object key name.
func Field[I input.Input[Token, I], E pass.Error[Token, E]](name string) feast.Parser[Token, I, E, Token] {
	return feast.Token[Token, I, E](Token{Kind: Key, Text: name})
}
