package input

import (
	"fmt"
	"strings"
)

// RequirementKind says how much more input would resolve an incomplete read.
type RequirementKind int

const (
	RequireExact   RequirementKind = iota // Exactly Min more tokens.
	RequireBetween                        // Between Min and Max more tokens.
	RequireUnknown                        // Cannot be known in advance.
)

// Requirement describes the input still needed after an Incomplete failure.
type Requirement struct {
	Kind RequirementKind
	Min  int
	Max  int
}

// Exact requires exactly n more tokens.
func Exact(n int) Requirement { return Requirement{Kind: RequireExact, Min: n, Max: n} }

// Between requires at least lo and at most hi more tokens.
func Between(lo, hi int) Requirement { return Requirement{Kind: RequireBetween, Min: lo, Max: hi} }

// Unknown requires an unknown amount of input.
func Unknown() Requirement { return Requirement{Kind: RequireUnknown} }

func (r Requirement) String() string {
	switch r.Kind {
	case RequireExact:
		return fmt.Sprintf("exactly %d more", r.Min)
	case RequireBetween:
		return fmt.Sprintf("between %d and %d more", r.Min, r.Max)
	default:
		return "an unknown amount more"
	}
}

// HintKind enumerates ExpectedHint variants.
type HintKind int

const (
	HintNone HintKind = iota
	HintToken
	HintTag
	HintDescription
	HintOneOf
)

// ExpectedHint describes what would have succeeded instead of an
// unexpected token.
type ExpectedHint[T Token] struct {
	Kind        HintKind
	Token       T
	Tag         []T
	Description string
	OneOf       []ExpectedHint[T]
}

func NoHint[T Token]() ExpectedHint[T] { return ExpectedHint[T]{} }

func ExpectToken[T Token](t T) ExpectedHint[T] { return ExpectedHint[T]{Kind: HintToken, Token: t} }

func ExpectTag[T Token](tag []T) ExpectedHint[T] { return ExpectedHint[T]{Kind: HintTag, Tag: tag} }

func Describe[T Token](desc string) ExpectedHint[T] {
	return ExpectedHint[T]{Kind: HintDescription, Description: desc}
}

// OneOf aggregates alternatives. HintNone entries are dropped and a single
// remaining hint is returned as is.
func OneOf[T Token](hints ...ExpectedHint[T]) ExpectedHint[T] {
	kept := make([]ExpectedHint[T], 0, len(hints))
	for _, h := range hints {
		if h.Kind != HintNone {
			kept = append(kept, h)
		}
	}
	switch len(kept) {
	case 0:
		return NoHint[T]()
	case 1:
		return kept[0]
	}
	return ExpectedHint[T]{Kind: HintOneOf, OneOf: kept}
}

func (h ExpectedHint[T]) String() string {
	switch h.Kind {
	case HintToken:
		return "token " + quoteToken(h.Token)
	case HintTag:
		return "tag " + quoteTokens(h.Tag)
	case HintDescription:
		return h.Description
	case HintOneOf:
		parts := make([]string, len(h.OneOf))
		for i, o := range h.OneOf {
			parts[i] = o.String()
		}
		return "one of: " + strings.Join(parts, ", ")
	}
	return ""
}

// Unexpected carries the offending token or tag, where it was read, and
// what was expected instead.
type Unexpected[T Token] struct {
	Found     TokenTag[T]
	Span      Span
	Expecting ExpectedHint[T]
}

// ReasonKind discriminates Reason.
type ReasonKind int

const (
	ReasonIncomplete ReasonKind = iota
	ReasonUnexpected
)

// Reason is the failure produced by an Input split or by a primitive
// combinator: either Incomplete (more input may resolve it) or Unexpected
// (fatal for the current input).
type Reason[T Token] struct {
	kind        ReasonKind
	requirement Requirement
	unexpected  Unexpected[T]
}

// Incomplete builds a non-fatal reason.
func Incomplete[T Token](req Requirement) *Reason[T] {
	return &Reason[T]{kind: ReasonIncomplete, requirement: req}
}

// Unexpect builds a fatal reason.
func Unexpect[T Token](u Unexpected[T]) *Reason[T] {
	return &Reason[T]{kind: ReasonUnexpected, unexpected: u}
}

func (r *Reason[T]) Kind() ReasonKind { return r.kind }

// IsFatal reports whether more input could never resolve the failure.
func (r *Reason[T]) IsFatal() bool { return r.kind == ReasonUnexpected }

func (r *Reason[T]) IsIncomplete() bool { return r.kind == ReasonIncomplete }

// Requirement returns the requirement of an Incomplete reason.
func (r *Reason[T]) Requirement() (Requirement, bool) {
	return r.requirement, r.kind == ReasonIncomplete
}

// Unexpected returns the details of an Unexpected reason.
func (r *Reason[T]) Unexpected() (Unexpected[T], bool) {
	return r.unexpected, r.kind == ReasonUnexpected
}

func (r *Reason[T]) Error() string {
	if r.kind == ReasonIncomplete {
		return "incomplete input: need " + r.requirement.String()
	}
	u := r.unexpected
	msg := fmt.Sprintf("unexpected %s at %d", u.Found, u.Span.From.pos)
	if u.Expecting.Kind != HintNone {
		msg += " (expected " + u.Expecting.String() + ")"
	}
	return msg
}
