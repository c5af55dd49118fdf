package feast_test

import (
	"errors"
	"testing"

	"github.com/reoring/feast"
	"github.com/reoring/feast/input"
	"github.com/reoring/feast/pass"
)

func TestPeek_RestoresInput(t *testing.T) {
	in := testInput("1")
	d, p, err := feast.Peek(digit())(in)
	if err != nil || d != '1' {
		t.Fatalf("got %q, %v", d, err)
	}
	requireUnchanged(t, in, p)

	raw := testInput("hello")
	sec, p, err := feast.Peek(tag("hello"))(raw)
	if err != nil || string(sec.Tokens()) != "hello" {
		t.Fatalf("got %v, %v", sec, err)
	}
	requireUnchanged(t, raw, p)

	// same value as running the parser directly
	direct, _, _ := tag("hello")(raw)
	if !direct.Equal(sec) {
		t.Fatalf("peek value %v differs from direct %v", sec, direct)
	}
}

func TestPeek_Failure(t *testing.T) {
	in := testInput("x")
	_, p, err := feast.Peek(digit())(in)
	if !pass.IsFatal(err) {
		t.Fatalf("expected fatal error, got %v", err)
	}
	requireUnchanged(t, in, p)
}

func TestOr(t *testing.T) {
	either := feast.Or(digit(), alpha())

	in := testInput("a1")
	v, p, err := either(in)
	wantV, wantP, _ := alpha()(in)
	if err != nil || v != wantV || !p.Input().Equal(wantP.Input()) {
		t.Fatalf("or should equal the second branch on the original pass: %q %v %v", v, p.Input(), err)
	}

	v, p, err = either(testInput("1a"))
	if err != nil || v != '1' {
		t.Fatalf("first branch should win: %q %v", v, err)
	}
	requireRest(t, p, "a")

	in = testInput("-")
	_, p, err = either(in)
	var verr testErr
	if !errors.As(err, &verr) || verr.Hints[len(verr.Hints)-1] != "ascii alphabetic" {
		t.Fatalf("or reports the last branch's error, got %v", err)
	}
	requireUnchanged(t, in, p)
}

func TestOr_BacktracksCompositeBranch(t *testing.T) {
	ab := feast.Preceded(byteToken('a'), byteToken('b'))
	ac := feast.Preceded(byteToken('a'), byteToken('c'))
	v, p, err := feast.Or(ab, ac)(testInput("ac"))
	if err != nil || v != 'c' {
		t.Fatalf("second branch must start from the original position: %q %v", v, err)
	}
	requireRest(t, p, "")
}

func TestAlt_MergesExpectations(t *testing.T) {
	number := feast.Hint(digit(), "number")
	word := feast.Hint(alpha(), "word")
	open := byteToken('(')

	_, _, err := feast.Alt(number, word, open)(testInput("-"))
	u, ok := requireReason(t, err).Unexpected()
	if !ok {
		t.Fatalf("expected Unexpected, got %v", err)
	}
	if u.Expecting.Kind != input.HintOneOf || len(u.Expecting.OneOf) != 3 {
		t.Fatalf("expected three merged alternatives, got %v", u.Expecting)
	}
	if got, want := u.Expecting.String(), "one of: number, word, token '('"; got != want {
		t.Fatalf("hint = %q, want %q", got, want)
	}
	if u.Found.Token() != '-' {
		t.Fatalf("found = %v", u.Found)
	}

	// incomplete branches are not merged
	_, _, err = feast.Alt(number, word)(testInput(""))
	if r := requireReason(t, err); !r.IsIncomplete() {
		t.Fatalf("expected incomplete, got %v", r)
	}

	v, _, err := feast.Alt(number, word)(testInput("q"))
	if err != nil || v != 'q' {
		t.Fatalf("got %q, %v", v, err)
	}
}

func TestHint_PreservesClassification(t *testing.T) {
	hinted := feast.Hint(tag("ab"), "greeting")

	_, _, err := hinted(testInput("a"))
	if pass.IsFatal(err) {
		t.Fatalf("hint must not make incomplete fatal")
	}
	_, _, err = hinted(testInput("xy"))
	if !pass.IsFatal(err) {
		t.Fatalf("hint must keep unexpected fatal")
	}
	var v testErr
	errors.As(err, &v)
	if len(v.Hints) != 1 || v.Hints[0] != "greeting" {
		t.Fatalf("hints = %v", v.Hints)
	}
	if u, _ := v.Reason.Unexpected(); u.Expecting.Kind != input.HintTag {
		t.Fatalf("underlying expectation must be kept verbatim, got %v", u.Expecting)
	}

	sec, p, err := hinted(testInput("abc"))
	if err != nil || string(sec.Tokens()) != "ab" {
		t.Fatalf("hint changed success: %v %v", sec, err)
	}
	requireRest(t, p, "c")

	foreign := errors.New("custom")
	failing := testParser[int](func(p testPass) (int, testPass, error) { return 0, p, foreign })
	if _, _, err := feast.Hint(failing, "x")(testInput("")); err != foreign {
		t.Fatalf("foreign errors must pass through, got %v", err)
	}
}

func TestAndThen_TwoDigits(t *testing.T) {
	twoDigits := feast.AndThen(digit(), func(a byte, p testPass) (int, testPass, error) {
		b, p, err := digit()(p)
		if err != nil {
			return 0, p, err
		}
		return int(a-'0')*10 + int(b-'0'), p, nil
	})

	v, p, err := twoDigits(testInput("42x"))
	if err != nil || v != 42 {
		t.Fatalf("got %d, %v", v, err)
	}
	requireRest(t, p, "x")

	_, p, err = twoDigits(testInput("4x"))
	if !pass.IsFatal(err) {
		t.Fatalf("expected fatal, got %v", err)
	}
	// positioned at the failure
	requireRest(t, p, "x")
}

func TestSequencing(t *testing.T) {
	pair, p, err := feast.Pair(alpha(), digit())(testInput("a1!"))
	if err != nil || pair.First != 'a' || pair.Second != '1' {
		t.Fatalf("pair = %+v, %v", pair, err)
	}
	requireRest(t, p, "!")

	v, p, err := feast.Delimited(byteToken('('), digit(), byteToken(')'))(testInput("(7)"))
	if err != nil || v != '7' {
		t.Fatalf("delimited = %q, %v", v, err)
	}
	requireRest(t, p, "")

	v, _, err = feast.Terminated(digit(), byteToken(';'))(testInput("7;"))
	if err != nil || v != '7' {
		t.Fatalf("terminated = %q, %v", v, err)
	}
	_, _, err = feast.Terminated(digit(), byteToken(';'))(testInput("7,"))
	if !pass.IsFatal(err) {
		t.Fatalf("terminated should fail on a wrong terminator")
	}

	n, p, err := feast.Bind(digit(), func(d byte) testParser[testIn] {
		return feast.Take[byte, testIn, testErr](int(d - '0'))
	})(testInput("3abcd"))
	if err != nil || string(n.Tokens()) != "abc" {
		t.Fatalf("bind = %v, %v", n, err)
	}
	requireRest(t, p, "d")
}

func TestOptional(t *testing.T) {
	sign := feast.Optional(byteToken('-'))

	o, p, err := sign(testInput("-1"))
	if err != nil || !o.Some || o.Value != '-' {
		t.Fatalf("got %+v, %v", o, err)
	}
	requireRest(t, p, "1")

	in := testInput("1")
	o, p, err = sign(in)
	if err != nil || o.Some {
		t.Fatalf("got %+v, %v", o, err)
	}
	requireUnchanged(t, in, p)

	if o, _, err = sign(testInput("")); err != nil || o.Some {
		t.Fatalf("optional on empty input: %+v, %v", o, err)
	}
}

func TestRecognize(t *testing.T) {
	ident := feast.Recognize(feast.Pair(alpha(), feast.Many(feast.Or(alpha(), digit()))))
	sec, p, err := ident(testInput("abc12 rest"))
	if err != nil || string(sec.Tokens()) != "abc12" {
		t.Fatalf("got %v, %v", sec, err)
	}
	requireRest(t, p, " rest")

	in := testInput("1abc")
	_, p, err = ident(in)
	if !pass.IsFatal(err) {
		t.Fatalf("expected fatal, got %v", err)
	}
	requireUnchanged(t, in, p)
}

func TestAlt_PrefersIncompleteAndFarthest(t *testing.T) {
	long := tag("abc")
	short := tag("a")
	sec, _, err := feast.Alt(long, short)(testInput("a"))
	if err != nil || string(sec.Tokens()) != "a" {
		t.Fatalf("a later success beats an earlier incomplete: %v, %v", sec, err)
	}

	_, _, err = feast.Alt(long, tag("x"))(testInput("ab"))
	if pass.IsFatal(err) {
		t.Fatalf("an incomplete branch wins over fatal ones, got %v", err)
	}

	deep := feast.Preceded(byteToken('a'), byteToken('b'))
	_, p, err := feast.Alt(deep, byteToken('x'))(testInput("ac"))
	u, _ := requireReason(t, err).Unexpected()
	if u.Span.From.Pos() != 1 || u.Found.Token() != 'c' {
		t.Fatalf("expected the farthest failure, got %v", err)
	}
	requireRest(t, p, "c")
}
