package ascii_test

import (
	"testing"

	"github.com/reoring/feast/ascii"
	"github.com/reoring/feast/input"
	"github.com/reoring/feast/pass"
)

type testPass = pass.Pass[byte, input.Slice[byte], pass.Verbose[byte]]

type byteParser func(testPass) (byte, testPass, error)

func testInput(s string) testPass {
	return pass.New[byte, input.Slice[byte], pass.Verbose[byte]](input.String(s))
}

func TestDigit(t *testing.T) {
	tok, p, err := ascii.Digit(testInput("1"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if tok != '1' || !p.Input().IsEmpty() {
		t.Fatalf("got %q, rest %v", tok, p.Input())
	}

	in := testInput("")
	_, p, err = ascii.Digit(in)
	r, ok := pass.ReasonOf[byte](err)
	if !ok {
		t.Fatalf("expected a reason, got %v", err)
	}
	if req, ok := r.Requirement(); !ok || req != input.Exact(1) {
		t.Fatalf("expected Incomplete(Exact(1)), got %v", r)
	}
	if !p.Input().Equal(in.Input()) {
		t.Fatalf("failed parse must not move, got %v", p.Input())
	}
}

func TestClasses(t *testing.T) {
	cases := []struct {
		name   string
		parse  byteParser
		accept string
		reject string
	}{
		{"lowercase", ascii.Lowercase[input.Slice[byte], pass.Verbose[byte]], "az", "AZ0 "},
		{"uppercase", ascii.Uppercase[input.Slice[byte], pass.Verbose[byte]], "AZ", "az0 "},
		{"alphabetic", ascii.Alphabetic[input.Slice[byte], pass.Verbose[byte]], "azAZ", "09_ "},
		{"digit", ascii.Digit[input.Slice[byte], pass.Verbose[byte]], "0189", "a/:"},
		{"hexdigit", ascii.HexDigit[input.Slice[byte], pass.Verbose[byte]], "09afAF", "gG:/"},
		{"alphanumeric", ascii.Alphanumeric[input.Slice[byte], pass.Verbose[byte]], "aZ09", "_- "},
		{"whitespace", ascii.Whitespace[input.Slice[byte], pass.Verbose[byte]], " \t\n\r\f", "a\x00"},
	}
	for _, tc := range cases {
		for i := 0; i < len(tc.accept); i++ {
			tok, _, err := tc.parse(testInput(tc.accept[i : i+1]))
			if err != nil || tok != tc.accept[i] {
				t.Fatalf("%s should accept %q: %v", tc.name, tc.accept[i], err)
			}
		}
		for i := 0; i < len(tc.reject); i++ {
			in := testInput(tc.reject[i : i+1])
			_, p, err := tc.parse(in)
			if !pass.IsFatal(err) {
				t.Fatalf("%s should reject %q fatally, got %v", tc.name, tc.reject[i], err)
			}
			if !p.Input().Equal(in.Input()) {
				t.Fatalf("%s consumed input on failure", tc.name)
			}
			var v pass.Verbose[byte]
			v, _ = err.(pass.Verbose[byte])
			if len(v.Hints) == 0 {
				t.Fatalf("%s should describe its failure", tc.name)
			}
		}
	}
}

func TestParseDigit(t *testing.T) {
	d, p, err := ascii.ParseDigit(testInput("5"))
	if err != nil || d != 5 || !p.Input().IsEmpty() {
		t.Fatalf("got %d, %v, %v", d, p.Input(), err)
	}
	for s, want := range map[string]byte{"0": 0, "9": 9, "a": 10, "F": 15} {
		v, _, err := ascii.ParseHexDigit(testInput(s))
		if err != nil || v != want {
			t.Fatalf("hex %q = %d, %v", s, v, err)
		}
	}
}

func TestParseUint(t *testing.T) {
	v, p, err := ascii.ParseUint(testInput("12345,"))
	if err != nil || v != 12345 {
		t.Fatalf("got %d, %v", v, err)
	}
	if string(p.Input().Tokens()) != "," {
		t.Fatalf("rest = %v", p.Input())
	}

	in := testInput("99999999999999999999")
	_, p, err = ascii.ParseUint(in)
	r, ok := pass.ReasonOf[byte](err)
	if !ok || !r.IsFatal() {
		t.Fatalf("overflow should be fatal, got %v", err)
	}
	u, _ := r.Unexpected()
	if u.Span.To.Pos() != 20 || u.Found.Len() != 20 {
		t.Fatalf("overflow should span the run, got %v", u.Span)
	}
	if !p.Input().Equal(in.Input()) {
		t.Fatalf("overflow must not consume")
	}

	if _, _, err := ascii.ParseUint(testInput("x1")); !pass.IsFatal(err) {
		t.Fatalf("non-digit should be fatal, got %v", err)
	}
}

func TestClassExpectation(t *testing.T) {
	_, _, err := ascii.HexDigit(testInput("g"))
	r, ok := pass.ReasonOf[byte](err)
	if !ok {
		t.Fatalf("expected a reason, got %v", err)
	}
	u, _ := r.Unexpected()
	if got, want := u.Expecting.String(), "one of '0'..'9', 'a'..'f', 'A'..'F'"; got != want {
		t.Fatalf("expecting %q, want %q", got, want)
	}
}
