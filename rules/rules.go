// Package rules composes token predicates for TakeTokenIf and friends.
//
// A Cond is a named predicate. Passed to feast.Satisfy its description
// becomes the expectation of a failure, so ascii.HexDigit reports
// "one of '0'..'9', 'a'..'f', 'A'..'F'" without a hand-written message.
package rules

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/reoring/feast/input"
)

// Op defines simple comparison operators for If.
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

func (o Op) String() string {
	switch o {
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Ordered tokens support If and Range.
type Ordered interface {
	input.Token
	constraints.Ordered
}

// Cond is a composable token predicate with a description.
type Cond[T input.Token] struct {
	desc string
	test func(T) bool
}

// Match reports whether t satisfies c. The zero Cond matches nothing.
func (c Cond[T]) Match(t T) bool { return c.test != nil && c.test(t) }

func (c Cond[T]) String() string { return c.desc }

// Named replaces the description of c.
func (c Cond[T]) Named(desc string) Cond[T] { return Cond[T]{desc: desc, test: c.test} }

// If compares a token against want using op.
func If[T Ordered](op Op, want T) Cond[T] {
	desc := op.String() + " " + quote(want)
	switch op {
	case Eq:
		return Cond[T]{desc: quote(want), test: func(t T) bool { return t == want }}
	case Ne:
		return Cond[T]{desc: desc, test: func(t T) bool { return t != want }}
	case Lt:
		return Cond[T]{desc: desc, test: func(t T) bool { return t < want }}
	case Le:
		return Cond[T]{desc: desc, test: func(t T) bool { return t <= want }}
	case Gt:
		return Cond[T]{desc: desc, test: func(t T) bool { return t > want }}
	case Ge:
		return Cond[T]{desc: desc, test: func(t T) bool { return t >= want }}
	}
	panic(fmt.Sprintf("rules: unknown op %d", int(op)))
}

// Range holds for lo <= t <= hi.
func Range[T Ordered](lo, hi T) Cond[T] {
	return Cond[T]{
		desc: quote(lo) + ".." + quote(hi),
		test: func(t T) bool { return lo <= t && t <= hi },
	}
}

// In holds for any of the listed tokens.
func In[T input.Token](set ...T) Cond[T] {
	m := make(map[T]struct{}, len(set))
	parts := make([]string, len(set))
	for i, t := range set {
		m[t] = struct{}{}
		parts[i] = quote(t)
	}
	return Cond[T]{
		desc: "one of " + strings.Join(parts, ", "),
		test: func(t T) bool {
			_, ok := m[t]
			return ok
		},
	}
}

// IfAll requires all conditions to hold.
func IfAll[T input.Token](conds ...Cond[T]) Cond[T] {
	return Cond[T]{
		desc: join(conds, " and "),
		test: func(t T) bool {
			for _, c := range conds {
				if !c.Match(t) {
					return false
				}
			}
			return true
		},
	}
}

// IfAny requires any condition to hold.
func IfAny[T input.Token](conds ...Cond[T]) Cond[T] {
	return Cond[T]{
		desc: "one of " + join(conds, ", "),
		test: func(t T) bool {
			for _, c := range conds {
				if c.Match(t) {
					return true
				}
			}
			return false
		},
	}
}

// Not negates c.
func Not[T input.Token](c Cond[T]) Cond[T] {
	return Cond[T]{desc: "not " + c.desc, test: func(t T) bool { return !c.Match(t) }}
}

// And combines the receiver with additional conditions using logical AND.
func (c Cond[T]) And(others ...Cond[T]) Cond[T] {
	return IfAll(append([]Cond[T]{c}, others...)...)
}

// Or combines the receiver with additional conditions using logical OR.
func (c Cond[T]) Or(others ...Cond[T]) Cond[T] {
	return IfAny(append([]Cond[T]{c}, others...)...)
}

func join[T input.Token](conds []Cond[T], sep string) string {
	parts := make([]string, len(conds))
	for i, c := range conds {
		parts[i] = c.desc
	}
	return strings.Join(parts, sep)
}

func quote[T input.Token](t T) string {
	switch v := any(t).(type) {
	case byte:
		return fmt.Sprintf("%q", rune(v))
	case rune:
		return fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf("%v", t)
}
