package telemetry

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

type OtlpConnConfig struct {
	HttpEndpoint string            `json:"http_endpoint"`
	Headers      map[string]string `json:"headers"`
}

type OtlpConfig struct {
	Traces OtlpConnConfig `json:"traces"`
}

type Config struct {
	Otlp OtlpConfig `json:"otlp"`
}

// Telemetry holds the installed tracer provider, TracerProvider is nil when
// no exporter was configured.
type Telemetry struct {
	TracerProvider *sdktrace.TracerProvider
}

func (t Telemetry) Shutdown(ctx context.Context) error {
	if t.TracerProvider == nil {
		return nil
	}
	return t.TracerProvider.Shutdown(ctx)
}

func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// Setup installs a global tracer provider exporting over OTLP/HTTP. Without
// an endpoint the global no-op provider is left in place.
func Setup(ctx context.Context, serviceName string, config Config) (Telemetry, error) {
	if config.Otlp.Traces.HttpEndpoint == "" {
		return Telemetry{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*3)
	defer cancel()

	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return Telemetry{}, err
	}

	exporter, err := otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpointURL(config.Otlp.Traces.HttpEndpoint),
		otlptracehttp.WithHeaders(config.Otlp.Traces.Headers),
	)
	if err != nil {
		return Telemetry{}, err
	}
	slog.Debug(
		"tracer export initialized",
		"type", "http",
		"endpoint", config.Otlp.Traces.HttpEndpoint,
		"headers", len(config.Otlp.Traces.Headers) > 0,
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(r),
	)
	otel.SetTracerProvider(provider)

	return Telemetry{TracerProvider: provider}, nil
}
