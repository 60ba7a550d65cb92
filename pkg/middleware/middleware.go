// Package middleware provides an ordered HTTP middleware stack along with
// CORS and request-logging middleware.
package middleware

import "net/http"

// System manages an ordered stack of HTTP middleware.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type stack struct {
	entries []func(http.Handler) http.Handler
}

// New creates an empty middleware System.
func New() System {
	return &stack{
		entries: []func(http.Handler) http.Handler{},
	}
}

func (s *stack) Use(fn func(http.Handler) http.Handler) {
	s.entries = append(s.entries, fn)
}

func (s *stack) Apply(handler http.Handler) http.Handler {
	for i := len(s.entries) - 1; i >= 0; i-- {
		handler = s.entries[i](handler)
	}
	return handler
}
