package source

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/reoring/feast/input"
	eng "github.com/reoring/feast/internal/engine"
)

// JSON lexes a JSON document.
func JSON(b []byte, opts ...Options) (input.Slice[Token], error) {
	return JSONReader(bytes.NewReader(b), opts...)
}

// JSONReader lexes a JSON document read from r until EOF.
func JSONReader(r io.Reader, opts ...Options) (input.Slice[Token], error) {
	toks, err := eng.Drain(eng.WithLimits(newJSONSource(r), normalizeOptions(opts)))
	if err != nil {
		return input.Empty[Token](), errors.Wrapf(err, "source: json token %d", len(toks))
	}
	return input.Of(toks), nil
}

type jsonSource struct {
	dec    *j.Decoder
	frames eng.Frames
}

func newJSONSource(r io.Reader) *jsonSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &jsonSource{dec: dec}
}

func (s *jsonSource) NextToken() (Token, error) {
	tok, err := s.dec.Token()
	if err == io.EOF {
		if s.frames.Depth() > 0 {
			return Token{}, io.ErrUnexpectedEOF
		}
		return Token{}, io.EOF
	}
	if err != nil {
		return Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.frames.OpenObject()
			return Token{Kind: BeginObject}, nil
		case '}':
			s.frames.Close()
			return Token{Kind: EndObject}, nil
		case '[':
			s.frames.OpenArray()
			return Token{Kind: BeginArray}, nil
		case ']':
			s.frames.Close()
			return Token{Kind: EndArray}, nil
		}
	case string:
		if s.frames.Key() {
			return Token{Kind: Key, Text: v}, nil
		}
		s.frames.Value()
		return Token{Kind: String, Text: v}, nil
	case bool:
		s.frames.Value()
		return Token{Kind: Bool, Text: strconv.FormatBool(v)}, nil
	case j.Number:
		s.frames.Value()
		return Token{Kind: Number, Text: string(v)}, nil
	case float64:
		s.frames.Value()
		return Token{Kind: Number, Text: strconv.FormatFloat(v, 'g', -1, 64)}, nil
	}
	s.frames.Value()
	return Token{Kind: Null}, nil
}
