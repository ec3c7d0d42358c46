// Package telemetry wires OpenTelemetry tracing to an OTLP HTTP endpoint.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "blackzone"
	serviceVersion = "0.1.0"
)

// Setup registers a global tracer provider exporting over OTLP HTTP.
// Endpoint and headers come from the standard OTEL_EXPORTER_OTLP_*
// environment variables (main bridges the Honeycomb key into them).
// The returned shutdown flushes buffered spans and must be called on exit.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}

	// A bare resource, not merged with resource.Default(), so differing
	// schema URLs between SDK versions cannot make construction fail.
	res := resource.NewWithAttributes("",
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("host.name", hostname()),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.name", "go"),
		attribute.String("process.runtime.version", runtime.Version()),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns the named component tracer. Before Setup runs (or if it
// failed) the global provider is a no-op, so spans are safe to create
// unconditionally.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("blackzone/" + name)
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
