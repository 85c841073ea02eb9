// Package telemetry wires OpenTelemetry tracing for the HTTP surface.
package telemetry

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "shoestack"

// Provider owns the tracer provider lifecycle.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider installs a global tracer provider with a stdout exporter.
func NewProvider() (*Provider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("cannot create trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	return &Provider{tp: tp}, nil
}

func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}

// WrapHandler instruments the whole router with otelhttp.
func WrapHandler(h http.Handler, operation string) http.Handler {
	return otelhttp.NewHandler(h, operation)
}

// HTTP starts per-handler spans. Usage:
//
//	w, r, finish := h.tlm.Start(w, r, "Handler.CreateOrder")
//	defer finish()
type HTTP struct {
	tracer trace.Tracer
}

func NewHTTP() *HTTP {
	return &HTTP{tracer: otel.Tracer(tracerName)}
}

func (t *HTTP) Start(w http.ResponseWriter, r *http.Request, name string) (http.ResponseWriter, *http.Request, func()) {
	ctx, span := t.tracer.Start(r.Context(), name)
	span.SetAttributes(
		attribute.String("http.method", r.Method),
		attribute.String("http.target", r.URL.Path),
	)
	return w, r.WithContext(ctx), func() { span.End() }
}
