package source_test

import (
	"errors"
	"testing"

	j "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/reoring/feast"
	"github.com/reoring/feast/input"
	"github.com/reoring/feast/pass"
	"github.com/reoring/feast/source"
)

type (
	docIn  = input.Slice[source.Token]
	docErr = pass.Verbose[source.Token]
)

func start(in docIn) pass.Pass[source.Token, docIn, docErr] {
	return pass.New[source.Token, docIn, docErr](in)
}

var sampleTokens = []source.Token{
	{Kind: source.BeginObject},
	{Kind: source.Key, Text: "a"},
	{Kind: source.BeginArray},
	{Kind: source.Number, Text: "1"},
	{Kind: source.Bool, Text: "true"},
	{Kind: source.Null},
	{Kind: source.EndArray},
	{Kind: source.Key, Text: "b"},
	{Kind: source.String, Text: "x"},
	{Kind: source.EndObject},
}

func TestJSON_Tokens(t *testing.T) {
	in, err := source.JSON([]byte(`{"a":[1,true,null],"b":"x"}`))
	require.NoError(t, err)
	if diff := cmp.Diff(sampleTokens, in.Tokens()); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestYAML_TokensMatchJSON(t *testing.T) {
	in, err := source.YAML([]byte("a:\n  - 1\n  - true\n  - ~\nb: x\n"))
	require.NoError(t, err)
	if diff := cmp.Diff(sampleTokens, in.Tokens()); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestYAML_Aliases(t *testing.T) {
	in, err := source.YAML([]byte("base: &b [1, 2]\ncopy: *b\n"))
	require.NoError(t, err)
	v, _, err := source.Document(start(in))
	require.NoError(t, err)
	want := map[string]any{
		"base": []any{j.Number("1"), j.Number("2")},
		"copy": []any{j.Number("1"), j.Number("2")},
	}
	require.Empty(t, cmp.Diff(want, v))
}

func TestYAML_Empty(t *testing.T) {
	in, err := source.YAML(nil)
	require.NoError(t, err)
	require.True(t, in.IsEmpty())
}

func TestJSON_Truncated(t *testing.T) {
	_, err := source.JSON([]byte(`[1, 2`))
	require.Error(t, err)
}

func TestLimits(t *testing.T) {
	_, err := source.JSON([]byte(`[[[1]]]`), source.Options{MaxDepth: 2})
	var le *source.LimitError
	require.True(t, errors.As(err, &le), "got %v", err)
	require.Equal(t, "depth", le.Limit)

	_, err = source.YAML([]byte("[1, 2, 3]"), source.Options{MaxTokens: 3})
	require.True(t, errors.As(err, &le), "got %v", err)
	require.Equal(t, "tokens", le.Limit)

	_, err = source.JSON([]byte(`[[1]]`), source.Options{MaxDepth: 2, MaxTokens: 5})
	require.NoError(t, err)
}

func TestDocument(t *testing.T) {
	in, err := source.JSON([]byte(`{"a":[1,true,null],"b":"x","e":[],"o":{}}`))
	require.NoError(t, err)
	v, p, err := source.Document(start(in))
	require.NoError(t, err)
	require.True(t, p.Input().IsEmpty())
	want := map[string]any{
		"a": []any{j.Number("1"), true, nil},
		"b": "x",
		"e": []any{},
		"o": map[string]any{},
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument_Errors(t *testing.T) {
	// a key without a value: the closing brace is not a value
	in := input.Of([]source.Token{
		{Kind: source.BeginObject},
		{Kind: source.Key, Text: "a"},
		{Kind: source.EndObject},
	})
	_, _, err := source.Document(start(in))
	require.True(t, pass.IsFatal(err))
	r, ok := pass.ReasonOf[source.Token](err)
	require.True(t, ok)
	u, ok := r.Unexpected()
	require.True(t, ok)
	require.Equal(t, 1, u.Span.From.Pos())
	require.Equal(t, source.Key, u.Found.Token().Kind)

	// an unclosed array needs more tokens
	in = input.Of([]source.Token{{Kind: source.BeginArray}, {Kind: source.Number, Text: "1"}})
	_, _, err = source.Document(start(in))
	require.Error(t, err)
	require.False(t, pass.IsFatal(err))

	in = input.Of(append(append([]source.Token{}, sampleTokens...), source.Token{Kind: source.Null}))
	_, _, err = source.Document(start(in))
	require.True(t, pass.IsFatal(err), "trailing value must be rejected")
}

func TestField(t *testing.T) {
	in, err := source.JSON([]byte(`{"name":"feast","tags":["a","b"]}`))
	require.NoError(t, err)

	str := feast.Map(source.OfKind[docIn, docErr](source.String), func(t source.Token) string { return t.Text })
	name := feast.Preceded(source.Field[docIn, docErr]("name"), str)
	tags := feast.Preceded(source.Field[docIn, docErr]("tags"),
		feast.Delimited(source.OfKind[docIn, docErr](source.BeginArray), feast.Many(str), source.OfKind[docIn, docErr](source.EndArray)))
	record := feast.Delimited(source.OfKind[docIn, docErr](source.BeginObject), feast.Pair(name, tags), source.OfKind[docIn, docErr](source.EndObject))

	got, _, err := feast.Parse(record, in, feast.ParseOpt{RequireEOF: true})
	require.NoError(t, err)
	require.Equal(t, "feast", got.First)
	require.Equal(t, []string{"a", "b"}, got.Second)

	_, _, err = feast.Parse(record, input.Of(in.Tokens()[:3]))
	iss, ok := feast.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, feast.CodeIncomplete, iss[0].Code)

	swapped := []source.Token{{Kind: source.BeginObject}, {Kind: source.Key, Text: "tags"}}
	_, _, err = feast.Parse(record, input.Of(swapped))
	iss, _ = feast.AsIssues(err)
	require.Equal(t, feast.CodeUnexpected, iss[0].Code)
	require.Equal(t, int64(1), iss[0].Offset)
	require.Equal(t, `token object key "name"`, iss[0].Hint)
}
