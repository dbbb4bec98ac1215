package tracer

import "github.com/estools-go/escope/scope"

// SkipFilter reports whether a scope should not get a span.
type SkipFilter func(s *scope.Scope) bool

// WithSkipFilter sets the filter for tracing spans.
func WithSkipFilter(skipFilter SkipFilter) Option {
	return func(tr *tracer) {
		tr.skipFilter = skipFilter
	}
}

// WithVariableScopesOnly keeps spans only for scopes that own their
// variables: global, module, and function scopes. Block-level scopes
// are usually too fine-grained for a trace.
func WithVariableScopesOnly() Option {
	return WithSkipFilter(func(s *scope.Scope) bool {
		return s.VariableScope != s
	})
}
