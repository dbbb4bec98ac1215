// Package tracer provides scope.Tracer implementations that annotate
// the analysis walk with spans, for OpenTelemetry and OpenCensus.
package tracer

import (
	"fmt"

	"github.com/estools-go/escope/ast"
	"github.com/estools-go/escope/scope"
)

// tracer carries the configuration shared by the annotators.
type tracer struct {
	skipFilter SkipFilter
	labeler    Labeler
}

type Option func(*tracer)

func (tr *tracer) applyConfigs(opts ...Option) {
	for _, opt := range opts {
		opt(tr)
	}
}

// skipTrace is a helper function to decide whether to skip tracing.
func (tr *tracer) skipTrace(s *scope.Scope) bool {
	return s == nil || tr.skipFilter != nil && tr.skipFilter(s)
}

func (tr *tracer) label(s *scope.Scope) string {
	if tr.labeler != nil {
		if l := tr.labeler(s); l != "" {
			return l
		}
	}
	return defaultScopeLabel(s)
}

// defaultScopeLabel names a span after the scope kind, qualified with
// the declared name when the scope belongs to a named function or
// class.
func defaultScopeLabel(s *scope.Scope) string {
	if name := scopeName(s); name != "" {
		return fmt.Sprintf("%s %s", s.Kind, name)
	}
	return s.Kind.String()
}

// scopeName returns the name a function or class scope was declared
// under, or "" for anonymous and non-declaration scopes.
func scopeName(s *scope.Scope) string {
	switch block := s.Block.(type) {
	case *ast.FunctionDeclaration:
		if block.ID != nil {
			return block.ID.Name
		}
	case *ast.FunctionExpression:
		if block.ID != nil {
			return block.ID.Name
		}
	case *ast.ClassDeclaration:
		if block.ID != nil {
			return block.ID.Name
		}
	case *ast.ClassExpression:
		if block.ID != nil {
			return block.ID.Name
		}
	}
	return ""
}
