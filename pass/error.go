package pass

import (
	"errors"
	"strings"

	"github.com/reoring/feast/input"
)

// Error is the contract for pass-level errors. Methods are called on the zero
// value of E, which acts as the error's constructor set.
type Error[T input.Token, E any] interface {
	error
	// IsFatal reports whether more input could never resolve the failure.
	IsFatal() bool
	// FromInput builds an error from an input failure seen at mark at.
	FromInput(at input.Mark, r *input.Reason[T]) E
	// WithHint attaches a description without changing fatality.
	WithHint(desc string) E
}

// Verbose keeps everything known about a failure.
type Verbose[T input.Token] struct {
	Reason *input.Reason[T]
	At     input.Mark
	// Hints holds descriptions attached by enclosing combinators,
	// innermost first.
	Hints []string
}

func (Verbose[T]) FromInput(at input.Mark, r *input.Reason[T]) Verbose[T] {
	return Verbose[T]{Reason: r, At: at}
}

func (v Verbose[T]) WithHint(desc string) Verbose[T] {
	hints := make([]string, len(v.Hints), len(v.Hints)+1)
	copy(hints, v.Hints)
	v.Hints = append(hints, desc)
	return v
}

func (v Verbose[T]) IsFatal() bool { return v.Reason != nil && v.Reason.IsFatal() }

func (v Verbose[T]) Error() string {
	if v.Reason == nil {
		return "parse failed"
	}
	msg := v.Reason.Error()
	if len(v.Hints) > 0 {
		msg += ": in " + strings.Join(v.Hints, ": in ")
	}
	return msg
}

// Unwrap exposes the input reason to errors.As.
func (v Verbose[T]) Unwrap() error {
	if v.Reason == nil {
		return nil
	}
	return v.Reason
}

// Silent keeps only whether the failure was fatal.
type Silent[T input.Token] struct {
	Fatal bool
}

func (Silent[T]) FromInput(_ input.Mark, r *input.Reason[T]) Silent[T] {
	return Silent[T]{Fatal: r.IsFatal()}
}

func (s Silent[T]) WithHint(string) Silent[T] { return s }

func (s Silent[T]) IsFatal() bool { return s.Fatal }

func (s Silent[T]) Error() string {
	if s.Fatal {
		return "unexpected input"
	}
	return "incomplete input"
}

type fatalError interface {
	IsFatal() bool
}

// IsFatal reports whether err is fatal. Errors that do not classify
// themselves are treated as fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var f fatalError
	if errors.As(err, &f) {
		return f.IsFatal()
	}
	return true
}

// ReasonOf extracts the input reason carried by err.
func ReasonOf[T input.Token](err error) (*input.Reason[T], bool) {
	var r *input.Reason[T]
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// MarkOf returns the failure position recorded by a Verbose error.
func MarkOf[T input.Token](err error) (input.Mark, bool) {
	var v Verbose[T]
	if errors.As(err, &v) {
		return v.At, true
	}
	return input.Mark{}, false
}
