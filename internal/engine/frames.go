package engine

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

// Frames tracks container nesting for sources whose tokenizer does not tell
// object keys apart from string values.
type Frames struct {
	stack []frame
}

// Depth is the current nesting depth.
func (f *Frames) Depth() int { return len(f.stack) }

// OpenObject enters an object, which expects a key first.
func (f *Frames) OpenObject() { f.stack = append(f.stack, frame{kind: kindObject, expectingKey: true}) }

// OpenArray enters an array.
func (f *Frames) OpenArray() { f.stack = append(f.stack, frame{kind: kindArray}) }

// Close leaves the innermost container, which counts as a value of its parent.
func (f *Frames) Close() {
	if n := len(f.stack); n > 0 {
		f.stack = f.stack[:n-1]
	}
	f.Value()
}

// Key reports whether a string read now is an object key, and records it.
func (f *Frames) Key() bool {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.kind == kindObject && top.expectingKey {
			top.expectingKey = false
			return true
		}
	}
	return false
}

// Value records that a value has been read; the enclosing object expects a
// key next.
func (f *Frames) Value() {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}
