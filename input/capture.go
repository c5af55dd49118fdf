package input

// Capture wraps a produced value with a completeness bit. Complete values are
// final; indeterminate ones may still change once more input arrives.
type Capture[V any] interface {
	// IsComplete reports whether the value is final. Captures are complete
	// when built from a determinate value or after Resolve.
	IsComplete() bool
	// Resolve forces the capture to be complete.
	Resolve()
	// Value returns the captured value.
	Value() V
}

// Stream is a capture that tracks completeness at runtime.
type Stream[V any] struct {
	value    V
	complete bool
}

// Determinate captures a final value.
func Determinate[V any](v V) *Stream[V] { return &Stream[V]{value: v, complete: true} }

// Indeterminate captures a provisional value.
func Indeterminate[V any](v V) *Stream[V] { return &Stream[V]{value: v} }

func (s *Stream[V]) IsComplete() bool { return s.complete }

func (s *Stream[V]) Resolve() { s.complete = true }

func (s *Stream[V]) Value() V { return s.value }

// Complete is a capture that can never be indeterminate.
type Complete[V any] struct {
	value V
}

// CompleteOf captures v.
func CompleteOf[V any](v V) Complete[V] { return Complete[V]{value: v} }

func (Complete[V]) IsComplete() bool { return true }

func (Complete[V]) Resolve() {}

func (c Complete[V]) Value() V { return c.value }

// MapCapture converts the value of c, keeping its completeness.
func MapCapture[V, U any](c Capture[V], f func(V) U) *Stream[U] {
	if c.IsComplete() {
		return Determinate(f(c.Value()))
	}
	return Indeterminate(f(c.Value()))
}
