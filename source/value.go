package source

import (
	j "github.com/goccy/go-json"

	"github.com/reoring/feast"
	"github.com/reoring/feast/input"
	"github.com/reoring/feast/pass"
)

// Value parses one document value into plain Go data: map[string]any for
// objects, []any for arrays, string, j.Number, bool or nil. Duplicate keys
// keep the last value.
func Value[I input.Input[Token, I], E pass.Error[Token, E]](p pass.Pass[Token, I, E]) (any, pass.Pass[Token, I, E], error) {
	return feast.Alt(object[I, E](), array[I, E](), scalarValue[I, E]())(p)
}

// Document parses exactly one value and requires the input to end after it.
func Document[I input.Input[Token, I], E pass.Error[Token, E]](p pass.Pass[Token, I, E]) (any, pass.Pass[Token, I, E], error) {
	return feast.Terminated(value[I, E](), feast.Eof[Token, I, E]())(p)
}

func value[I input.Input[Token, I], E pass.Error[Token, E]]() feast.Parser[Token, I, E, any] {
	return Value[I, E]
}

func object[I input.Input[Token, I], E pass.Error[Token, E]]() feast.Parser[Token, I, E, any] {
	member := feast.Pair(OfKind[I, E](Key), value[I, E]())
	body := feast.Delimited(OfKind[I, E](BeginObject), feast.Many(member), OfKind[I, E](EndObject))
	return feast.Map(body, func(ms []feast.Tuple[Token, any]) any {
		m := make(map[string]any, len(ms))
		for _, kv := range ms {
			m[kv.First.Text] = kv.Second
		}
		return m
	})
}

func array[I input.Input[Token, I], E pass.Error[Token, E]]() feast.Parser[Token, I, E, any] {
	body := feast.Delimited(OfKind[I, E](BeginArray), feast.Many(value[I, E]()), OfKind[I, E](EndArray))
	return feast.Map(body, func(vs []any) any {
		if vs == nil {
			return []any{}
		}
		return vs
	})
}

func scalarValue[I input.Input[Token, I], E pass.Error[Token, E]]() feast.Parser[Token, I, E, any] {
	tok := feast.Hint(feast.TakeTokenIf[Token, I, E](func(t Token) bool {
		switch t.Kind {
		case String, Number, Bool, Null:
			return true
		}
		return false
	}), "scalar value")
	return feast.Map(tok, func(t Token) any {
		switch t.Kind {
		case String:
			return t.Text
		case Number:
			return j.Number(t.Text)
		case Bool:
			return t.Text == "true"
		}
		return nil
	})
}
