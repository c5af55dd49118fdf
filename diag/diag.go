// Package diag turns parse Issues into positioned diagnostics for humans and
// tools.
//
// Offsets in an Issue are token offsets. For byte inputs they are byte
// indices into the source (FromBytes); for rune inputs they are rune indices
// (FromRunes). Diagnostics carry a 1-based line and column, the failing
// source line and a caret line aligned with East Asian wide characters and
// tabs.
package diag

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/reoring/feast"
	"github.com/reoring/feast/i18n"
)

// Options controls how diagnostics are built.
type Options struct {
	// Name labels the source in rendered output (e.g. a file name).
	Name string
	// Language re-translates messages ("en"/"ja"); empty keeps the issue's message.
	Language string
	// Tab is the tab stop width used for caret alignment (default 4).
	Tab int
	// Context is the number of source lines shown before the failing line.
	Context int
}

func normalizeOptions(opts []Options) Options {
	var o Options
	if len(opts) > 0 {
		o = opts[len(opts)-1]
	}
	if o.Tab <= 0 {
		o.Tab = 4
	}
	if o.Context < 0 {
		o.Context = 0
	}
	return o
}

// Diagnostic is one Issue placed in its source.
type Diagnostic struct {
	Source  string   `json:"source,omitempty" yaml:"source,omitempty"`
	Code    string   `json:"code" yaml:"code"`
	Message string   `json:"message" yaml:"message"`
	Hint    string   `json:"hint,omitempty" yaml:"hint,omitempty"`
	Offset  int64    `json:"offset" yaml:"offset"`
	Line    int      `json:"line" yaml:"line"`
	Column  int      `json:"column" yaml:"column"`
	Context []string `json:"context,omitempty" yaml:"context,omitempty"`
	Snippet string   `json:"snippet,omitempty" yaml:"snippet,omitempty"`
	Caret   string   `json:"-" yaml:"-"`
}

// FromBytes places issues whose offsets are byte indices into src.
func FromBytes(src []byte, iss feast.Issues, opts ...Options) []Diagnostic {
	o := normalizeOptions(opts)
	rs := []rune(string(src))
	out := make([]Diagnostic, 0, len(iss))
	for _, it := range iss {
		idx := -1
		if it.Offset >= 0 {
			off := int(min(it.Offset, int64(len(src))))
			idx = utf8.RuneCount(src[:off])
		}
		out = append(out, build(rs, idx, it, o))
	}
	return out
}

// FromRunes places issues whose offsets are rune indices into src.
func FromRunes(src []rune, iss feast.Issues, opts ...Options) []Diagnostic {
	o := normalizeOptions(opts)
	out := make([]Diagnostic, 0, len(iss))
	for _, it := range iss {
		idx := -1
		if it.Offset >= 0 {
			idx = int(min(it.Offset, int64(len(src))))
		}
		out = append(out, build(src, idx, it, o))
	}
	return out
}

func build(rs []rune, idx int, it feast.Issue, o Options) Diagnostic {
	d := Diagnostic{
		Source:  o.Name,
		Code:    it.Code,
		Message: it.Message,
		Hint:    it.Hint,
		Offset:  it.Offset,
	}
	if o.Language != "" {
		d.Message = i18n.Lookup(o.Language).Message(it.Code, map[string]string{"found": it.Found, "expected": it.Hint})
	}
	if idx < 0 {
		return d
	}

	lines := splitLines(rs)
	line := 0
	for line+1 < len(lines) && lines[line+1].start <= idx {
		line++
	}
	cur := lines[line]
	d.Line = line + 1
	d.Column = idx - cur.start + 1
	for i := max(0, line-o.Context); i < line; i++ {
		d.Context = append(d.Context, expandTabs(lines[i].text(rs), o.Tab))
	}
	text := cur.text(rs)
	d.Snippet = expandTabs(text, o.Tab)
	d.Caret = strings.Repeat(" ", displayWidth(text[:idx-cur.start], o.Tab)) + "^"
	return d
}

type span struct{ start, end int }

func (s span) text(rs []rune) []rune { return rs[s.start:s.end] }

func splitLines(rs []rune) []span {
	var out []span
	start := 0
	for i, r := range rs {
		if r == '\n' {
			out = append(out, span{start, i})
			start = i + 1
		}
	}
	return append(out, span{start, len(rs)})
}

// runeWidth is the number of terminal cells r occupies.
func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

func displayWidth(rs []rune, tab int) int {
	w := 0
	for _, r := range rs {
		if r == '\t' {
			w += tab - w%tab
			continue
		}
		w += runeWidth(r)
	}
	return w
}

func expandTabs(rs []rune, tab int) string {
	var b strings.Builder
	w := 0
	for _, r := range rs {
		if r == '\t' {
			n := tab - w%tab
			b.WriteString(strings.Repeat(" ", n))
			w += n
			continue
		}
		b.WriteRune(r)
		w += runeWidth(r)
	}
	return b.String()
}
