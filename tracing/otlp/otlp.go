package otlp

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"

	"github.com/pure-golang/smtpeter/tracing"
)

var _ tracing.Provider = (*Provider)(nil)

type Config struct {
	EndPoint    string `envconfig:"TRACING_ENDPOINT"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"smtpeter-send"`
	AppVersion  string `envconfig:"APP_VERSION" default:"dev"`
}

// Enabled reports whether an exporter endpoint is configured.
func (c Config) Enabled() bool {
	return c.EndPoint != ""
}

// Provider is an SDK tracer provider exporting spans over OTLP/HTTP.
type Provider struct {
	*tracesdk.TracerProvider
}

// Close flushes pending spans, then shuts the provider down.
func (p *Provider) Close() error {
	ctx := context.Background()
	if err := p.ForceFlush(ctx); err != nil {
		// Shutdown still has to run even if flushing failed.
		_ = p.TracerProvider.Shutdown(ctx)
		return errors.Wrap(err, "otlp force flush failed")
	}

	return errors.Wrap(p.TracerProvider.Shutdown(ctx), "shutdown otlp")
}

func NewProviderBuilder(conf Config) tracing.ProviderBuilder {
	return func() (tracing.Provider, error) {
		if conf.EndPoint == "" {
			return nil, errors.New("empty connection string")
		}
		if conf.ServiceName == "" {
			return nil, errors.New("service name is empty")
		}

		exp, err := otlptrace.New(
			context.Background(),
			otlptracehttp.NewClient(
				otlptracehttp.WithEndpointURL(conf.EndPoint),
			),
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create otlp exporter")
		}

		tp := tracesdk.NewTracerProvider(
			tracesdk.WithBatcher(exp),
			tracesdk.WithResource(resource.NewWithAttributes(
				semconv.SchemaURL,
				semconv.ServiceNameKey.String(conf.ServiceName),
				semconv.ServiceVersionKey.String(conf.AppVersion),
			)),
			tracesdk.WithSampler(tracesdk.AlwaysSample()),
		)

		return &Provider{TracerProvider: tp}, nil
	}
}
