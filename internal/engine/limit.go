package engine

import "fmt"

// Limits bounds what a TokenSource may produce. Zero values disable a limit.
type Limits struct {
	MaxDepth  int
	MaxTokens int
}

// LimitError reports a violated limit.
type LimitError struct {
	Limit string
	Max   int
}

func (e *LimitError) Error() string { return fmt.Sprintf("%s limit %d exceeded", e.Limit, e.Max) }

// WithLimits returns a TokenSource that stops with a *LimitError as soon as
// inner nests deeper than MaxDepth or yields more than MaxTokens tokens.
func WithLimits(inner TokenSource, l Limits) TokenSource {
	if l.MaxDepth <= 0 && l.MaxTokens <= 0 {
		return inner
	}
	return &limitedSource{inner: inner, limits: l}
}

type limitedSource struct {
	inner  TokenSource
	limits Limits
	depth  int
	count  int
}

func (s *limitedSource) NextToken() (Token, error) {
	tok, err := s.inner.NextToken()
	if err != nil {
		return tok, err
	}
	s.count++
	if s.limits.MaxTokens > 0 && s.count > s.limits.MaxTokens {
		return Token{}, &LimitError{Limit: "tokens", Max: s.limits.MaxTokens}
	}
	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		s.depth++
		if s.limits.MaxDepth > 0 && s.depth > s.limits.MaxDepth {
			return Token{}, &LimitError{Limit: "depth", Max: s.limits.MaxDepth}
		}
	case KindEndObject, KindEndArray:
		s.depth--
	}
	return tok, nil
}
