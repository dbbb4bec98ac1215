package tracer

import "github.com/estools-go/escope/scope"

// Labeler overrides the span name for a scope. Returning "" falls back
// to the default label.
type Labeler func(s *scope.Scope) string

// WithLabeler sets the labeler used for span names.
func WithLabeler(labeler Labeler) Option {
	return func(tr *tracer) {
		tr.labeler = labeler
	}
}
