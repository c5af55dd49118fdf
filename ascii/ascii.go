// Package ascii matches ASCII character classes over byte inputs.
//
// Everything here is built from the exported combinators of package feast,
// so it doubles as an example of writing grammar code against the core.
package ascii

import (
	"strconv"

	"github.com/reoring/feast"
	"github.com/reoring/feast/input"
	"github.com/reoring/feast/pass"
	"github.com/reoring/feast/rules"
)

var (
	alphabetic   = rules.Range[byte]('a', 'z').Or(rules.Range[byte]('A', 'Z'))
	hexDigit     = rules.IfAny(rules.Range[byte]('0', '9'), rules.Range[byte]('a', 'f'), rules.Range[byte]('A', 'F'))
	alphanumeric = alphabetic.Or(rules.Range[byte]('0', '9'))
	whitespace   = rules.In[byte](' ', '\t', '\n', '\f', '\r')
)

// Lowercase consumes a byte in [a-z].
func Lowercase[I input.Input[byte, I], E pass.Error[byte, E]](p pass.Pass[byte, I, E]) (byte, pass.Pass[byte, I, E], error) {
	return feast.Hint(feast.InRange[byte, I, E]('a', 'z'), "ascii lowercase")(p)
}

// Uppercase consumes a byte in [A-Z].
func Uppercase[I input.Input[byte, I], E pass.Error[byte, E]](p pass.Pass[byte, I, E]) (byte, pass.Pass[byte, I, E], error) {
	return feast.Hint(feast.InRange[byte, I, E]('A', 'Z'), "ascii uppercase")(p)
}

// Alphabetic consumes a byte in [a-zA-Z].
func Alphabetic[I input.Input[byte, I], E pass.Error[byte, E]](p pass.Pass[byte, I, E]) (byte, pass.Pass[byte, I, E], error) {
	return feast.Hint(feast.Satisfy[byte, I, E](alphabetic), "ascii alphabetic")(p)
}

// Digit consumes a byte in [0-9].
func Digit[I input.Input[byte, I], E pass.Error[byte, E]](p pass.Pass[byte, I, E]) (byte, pass.Pass[byte, I, E], error) {
	return feast.Hint(feast.InRange[byte, I, E]('0', '9'), "ascii decimal digit")(p)
}

// HexDigit consumes a byte in [0-9A-Fa-f].
func HexDigit[I input.Input[byte, I], E pass.Error[byte, E]](p pass.Pass[byte, I, E]) (byte, pass.Pass[byte, I, E], error) {
	return feast.Hint(feast.Satisfy[byte, I, E](hexDigit), "ascii hex digit")(p)
}

// Alphanumeric consumes a byte in [a-zA-Z0-9].
func Alphanumeric[I input.Input[byte, I], E pass.Error[byte, E]](p pass.Pass[byte, I, E]) (byte, pass.Pass[byte, I, E], error) {
	return feast.Hint(feast.Satisfy[byte, I, E](alphanumeric), "ascii alphanumeric")(p)
}

// Whitespace consumes one of space, \t, \n, \f or \r.
func Whitespace[I input.Input[byte, I], E pass.Error[byte, E]](p pass.Pass[byte, I, E]) (byte, pass.Pass[byte, I, E], error) {
	return feast.Hint(feast.Satisfy[byte, I, E](whitespace), "ascii whitespace")(p)
}

// ParseDigit consumes a decimal digit and returns its value.
func ParseDigit[I input.Input[byte, I], E pass.Error[byte, E]](p pass.Pass[byte, I, E]) (byte, pass.Pass[byte, I, E], error) {
	return feast.Map(feast.Parser[byte, I, E, byte](Digit[I, E]), func(d byte) byte { return d - '0' })(p)
}

// ParseHexDigit consumes a hex digit and returns its value.
func ParseHexDigit[I input.Input[byte, I], E pass.Error[byte, E]](p pass.Pass[byte, I, E]) (byte, pass.Pass[byte, I, E], error) {
	return feast.Map(feast.Parser[byte, I, E, byte](HexDigit[I, E]), hexValue)(p)
}

// ParseUint consumes a run of decimal digits as an unsigned 64-bit integer.
// Values that overflow are Unexpected, spanning the whole run.
func ParseUint[I input.Input[byte, I], E pass.Error[byte, E]](p pass.Pass[byte, I, E]) (uint64, pass.Pass[byte, I, E], error) {
	digits := feast.Many1(feast.Parser[byte, I, E, byte](Digit[I, E]))
	sec, next, err := feast.Recognize(digits)(p)
	if err != nil {
		return 0, next, err
	}
	buf := make([]byte, sec.Len())
	for i := range buf {
		buf[i] = sec.At(i)
	}
	v, perr := strconv.ParseUint(string(buf), 10, 64)
	if perr != nil {
		return 0, p, p.Unexpected(input.Unexpected[byte]{
			Found:     input.FoundTag(buf),
			Span:      input.NewSpan(p.Mark(), next.Mark()),
			Expecting: input.Describe[byte]("unsigned 64-bit integer"),
		})
	}
	return v, next, nil
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func hexValue(b byte) byte {
	switch {
	case isDigit(b):
		return b - '0'
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}
