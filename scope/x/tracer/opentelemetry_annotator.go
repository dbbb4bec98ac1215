package tracer

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/estools-go/escope/scope"
)

const (
	// ContextOpenTelemetryTracerKey looks up a parent tracer name from a context key.
	ContextOpenTelemetryTracerKey = "otelParentTracer"
)

var _ scope.Tracer = &otelAnnotator{}

type otelAnnotator struct {
	tracer
	currentContext context.Context
	currentSpan    trace.Span
}

// NewOpenTelemetryAnnotator returns a scope.Tracer that opens one span
// per scope under parentContext. A span closes when analysis leaves its
// scope, after resolution, so the exit attributes see the final state.
func NewOpenTelemetryAnnotator(parentContext context.Context, opts ...Option) *otelAnnotator {
	a := &otelAnnotator{currentContext: parentContext}
	if a.currentContext == nil {
		a.currentContext = context.Background()
	}
	a.tracer.applyConfigs(opts...)
	return a
}

func contextTracer(ctx context.Context) trace.Tracer {
	tracerName, ok := ctx.Value(ContextOpenTelemetryTracerKey).(string)
	if !ok {
		tracerName = "escope"
	}
	return otel.GetTracerProvider().Tracer(tracerName)
}

func (a *otelAnnotator) EnterScope(s *scope.Scope) func() {
	if a.skipTrace(s) {
		return func() {}
	}
	oldContext := a.currentContext
	a.currentContext, a.currentSpan = contextTracer(a.currentContext).Start(a.currentContext, a.label(s))
	a.addCodeAttributes(s)
	span := a.currentSpan
	return func() {
		span.SetAttributes(
			attribute.Int("scope.variables", len(s.Variables)),
			attribute.Int("scope.references", len(s.References)),
			attribute.Int("scope.through", len(s.Through)),
		)
		span.End()
		// And pop the current context back
		a.currentContext = oldContext
		a.currentSpan = trace.SpanFromContext(a.currentContext)
	}
}

func (a *otelAnnotator) addCodeAttributes(s *scope.Scope) {
	attrs := []attribute.KeyValue{
		attribute.String("scope.kind", s.Kind.String()),
		attribute.Bool("scope.strict", s.IsStrict),
	}
	if name := scopeName(s); name != "" {
		attrs = append(attrs, semconv.CodeFunction(name))
	}
	if s.Block != nil {
		if loc := s.Block.Location(); loc != nil {
			attrs = append(attrs,
				semconv.CodeLineNumber(loc.Start.Line),
				semconv.CodeColumn(loc.Start.Column),
			)
		}
	}
	a.currentSpan.SetAttributes(attrs...)
}
