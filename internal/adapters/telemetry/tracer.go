// Package telemetry implements ports.Tracer with the OpenTelemetry SDK. No
// exporter is registered by default: spans are recorded and discarded,
// which is enough to exercise the SDK's span lifecycle without pulling in
// a specific backend.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/kiln/internal/core/ports"
)

// NewProvider creates a bare sdktrace.TracerProvider with no exporter
// registered, suitable for local runs that don't need spans shipped
// anywhere but still want the SDK's span/attribute bookkeeping.
func NewProvider() *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider()
}

// Tracer implements ports.Tracer using an OTel tracer.
type Tracer struct {
	tracer trace.Tracer
}

var _ ports.Tracer = (*Tracer)(nil)

// New creates a Tracer instrumented under the given name.
func New(name string) *Tracer {
	return &Tracer{tracer: otel.Tracer(name)}
}

// Start begins a new span.
func (t *Tracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &Span{span: span}
}

// Span implements ports.Span wrapping an OTel trace.Span.
type Span struct {
	span trace.Span
}

// SetAttribute records a key/value pair on the span.
func (s *Span) SetAttribute(key string, value any) {
	s.span.SetAttributes(toAttribute(key, value))
}

// RecordError records err on the span and marks it as errored.
func (s *Span) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// End completes the span.
func (s *Span) End() {
	s.span.End()
}
