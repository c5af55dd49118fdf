package feast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/feast/i18n"
	"github.com/reoring/feast/input"
	"github.com/reoring/feast/pass"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeIncomplete    = "incomplete"
	CodeUnexpected    = "unexpected"
	CodeTrailingInput = "trailing_input"
	CodeParseError    = "parse_error"
)

// Issue describes why a top-level parse failed.
type Issue struct {
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: what would have been accepted instead.
	Cause   error  // The error returned by the parser.
	Offset  int64  // Token offset of the failure (-1 when unknown).
	// Found is the offending token or tag, rendered for humans.
	Found string
	// Params carries structured parameters (e.g., {"min":1, "max":1}) for
	// incomplete requirements.
	Params map[string]any
	// Fatal is false only for incomplete input.
	Fatal bool
}

// Issues is a collection of parse failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unexpected at 3
		fmt.Fprintf(b, "%s at %d", it.Code, it.Offset)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes to errors.Is / errors.As.
func (iss Issues) Unwrap() []error {
	out := make([]error, 0, len(iss))
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssueOf converts a parser error into an Issue. at is the position of the
// pass returned with the error and is used when the error records none.
func IssueOf[T input.Token](err error, at input.Mark) Issue {
	it := Issue{Code: CodeParseError, Cause: err, Offset: int64(at.Pos()), Fatal: pass.IsFatal(err)}
	if m, ok := pass.MarkOf[T](err); ok {
		it.Offset = int64(m.Pos())
	}
	data := map[string]string{}
	if r, ok := pass.ReasonOf[T](err); ok {
		if req, ok := r.Requirement(); ok {
			it.Code = CodeIncomplete
			it.Params = map[string]any{"min": req.Min, "max": req.Max}
			if req.Kind == input.RequireUnknown {
				it.Params = map[string]any{"unknown": true}
			}
		}
		if u, ok := r.Unexpected(); ok {
			it.Code = CodeUnexpected
			it.Offset = int64(u.Span.From.Pos())
			it.Found = u.Found.String()
			it.Hint = u.Expecting.String()
			data["found"] = it.Found
		}
	} else if !it.Fatal {
		it.Code = CodeIncomplete
	} else if _, ok := err.(pass.Silent[T]); ok {
		it.Code = CodeUnexpected
	}
	var v pass.Verbose[T]
	if it.Hint == "" && errors.As(err, &v) && len(v.Hints) > 0 {
		it.Hint = v.Hints[len(v.Hints)-1]
	}
	data["expected"] = it.Hint
	it.Message = i18n.T(it.Code, data)
	return it
}

func singleIssue(it Issue) Issues { return Issues{it} }
