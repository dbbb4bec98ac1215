package tracer

import (
	"context"

	"go.opencensus.io/trace"

	"github.com/estools-go/escope/scope"
)

var _ scope.Tracer = &ocAnnotator{}

type ocAnnotator struct {
	tracer
	currentContext context.Context
	currentSpan    *trace.Span
	contexts       []context.Context
}

// NewOpenCensusAnnotator mirrors the OpenTelemetry annotator for
// programs still exporting through OpenCensus.
func NewOpenCensusAnnotator(parentContext context.Context, opts ...Option) scope.Tracer {
	a := &ocAnnotator{currentContext: parentContext}
	if a.currentContext == nil {
		a.currentContext = context.Background()
	}
	a.tracer.applyConfigs(opts...)
	return a
}

func (a *ocAnnotator) EnterScope(s *scope.Scope) func() {
	if a.skipTrace(s) {
		return func() {}
	}
	a.contexts = append(a.contexts, a.currentContext)
	a.currentContext, a.currentSpan = trace.StartSpan(a.currentContext, a.label(s))
	span := a.currentSpan
	span.AddAttributes(
		trace.StringAttribute("scope.kind", s.Kind.String()),
		trace.BoolAttribute("scope.strict", s.IsStrict),
	)
	return func() {
		span.Annotate([]trace.Attribute{
			trace.Int64Attribute("variables", int64(len(s.Variables))),
			trace.Int64Attribute("references", int64(len(s.References))),
			trace.Int64Attribute("through", int64(len(s.Through))),
		}, "resolved")
		span.End()
		// And pop the current context back
		a.currentContext = a.contexts[len(a.contexts)-1]
		a.contexts = a.contexts[:len(a.contexts)-1]
		a.currentSpan = trace.FromContext(a.currentContext)
	}
}
