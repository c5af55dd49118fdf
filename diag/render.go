package diag

import (
	"fmt"
	"io"
	"strings"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// String renders d compiler style:
//
//	name:3:5: unexpected input 'x', expected ascii decimal digit
//	  let x = y
//	      ^
func (d Diagnostic) String() string {
	var b strings.Builder
	if d.Source != "" {
		b.WriteString(d.Source)
		b.WriteByte(':')
	}
	if d.Line > 0 {
		fmt.Fprintf(&b, "%d:%d: ", d.Line, d.Column)
	} else if d.Source != "" {
		b.WriteByte(' ')
	}
	b.WriteString(d.Message)
	if d.Line == 0 {
		return b.String()
	}
	for _, c := range d.Context {
		b.WriteString("\n  ")
		b.WriteString(c)
	}
	b.WriteString("\n  ")
	b.WriteString(d.Snippet)
	b.WriteString("\n  ")
	b.WriteString(d.Caret)
	return b.String()
}

// Render writes every diagnostic to w, one block per diagnostic.
func Render(w io.Writer, ds []Diagnostic) error {
	for _, d := range ds {
		if _, err := io.WriteString(w, d.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// EncodeJSON encodes ds as an indented JSON array.
func EncodeJSON(ds []Diagnostic) ([]byte, error) {
	if ds == nil {
		ds = []Diagnostic{}
	}
	return j.MarshalIndent(ds, "", "  ")
}

// EncodeYAML encodes ds as a YAML sequence.
func EncodeYAML(ds []Diagnostic) ([]byte, error) {
	if ds == nil {
		ds = []Diagnostic{}
	}
	return yaml.Marshal(ds)
}
