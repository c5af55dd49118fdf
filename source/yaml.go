package source

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/reoring/feast/input"
	eng "github.com/reoring/feast/internal/engine"
)

// YAML lexes every document of a YAML stream into one token input. Mappings
// become objects, sequences arrays and scalars are classified by their
// resolved tag. Aliases are expanded in place.
func YAML(b []byte, opts ...Options) (input.Slice[Token], error) {
	src := &yamlSource{dec: yaml.NewDecoder(bytes.NewReader(b))}
	toks, err := eng.Drain(eng.WithLimits(src, normalizeOptions(opts)))
	if err != nil {
		return input.Empty[Token](), errors.Wrapf(err, "source: yaml token %d", len(toks))
	}
	return input.Of(toks), nil
}

type yamlSource struct {
	dec     *yaml.Decoder
	pending []Token
}

func (s *yamlSource) NextToken() (Token, error) {
	for len(s.pending) == 0 {
		var doc yaml.Node
		if err := s.dec.Decode(&doc); err != nil {
			return Token{}, err
		}
		var err error
		if s.pending, err = flatten(s.pending, &doc, 0); err != nil {
			return Token{}, err
		}
	}
	tok := s.pending[0]
	s.pending = s.pending[1:]
	return tok, nil
}

// maxAliasDepth stops alias cycles.
const maxAliasDepth = 64

func flatten(out []Token, n *yaml.Node, aliases int) ([]Token, error) {
	var err error
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			if out, err = flatten(out, c, aliases); err != nil {
				return out, err
			}
		}
	case yaml.MappingNode:
		out = append(out, Token{Kind: BeginObject})
		for i := 0; i+1 < len(n.Content); i += 2 {
			out = append(out, Token{Kind: Key, Text: n.Content[i].Value})
			if out, err = flatten(out, n.Content[i+1], aliases); err != nil {
				return out, err
			}
		}
		out = append(out, Token{Kind: EndObject})
	case yaml.SequenceNode:
		out = append(out, Token{Kind: BeginArray})
		for _, c := range n.Content {
			if out, err = flatten(out, c, aliases); err != nil {
				return out, err
			}
		}
		out = append(out, Token{Kind: EndArray})
	case yaml.AliasNode:
		if aliases >= maxAliasDepth || n.Alias == nil {
			return out, errors.Errorf("yaml alias %q at line %d cannot be expanded", n.Value, n.Line)
		}
		return flatten(out, n.Alias, aliases+1)
	case yaml.ScalarNode:
		tok, err := scalar(n)
		if err != nil {
			return out, err
		}
		out = append(out, tok)
	}
	return out, nil
}

func scalar(n *yaml.Node) (Token, error) {
	switch n.ShortTag() {
	case "!!null":
		return Token{Kind: Null}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Token{}, errors.Wrapf(err, "line %d", n.Line)
		}
		return Token{Kind: Bool, Text: strconv.FormatBool(b)}, nil
	case "!!int", "!!float":
		return Token{Kind: Number, Text: n.Value}, nil
	}
	return Token{Kind: String, Text: n.Value}, nil
}
