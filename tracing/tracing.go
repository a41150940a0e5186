package tracing

import (
	"io"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type Provider interface {
	trace.TracerProvider
	io.Closer
}

// ProviderBuilder hides the construction details (config, exporter) of a Provider.
type ProviderBuilder func() (Provider, error)

// Init builds a provider and installs it globally together with the
// W3C trace context propagator. On failure a NoopProvider is returned
// along with the error, so callers may log and carry on.
func Init(creator ProviderBuilder) (Provider, error) {
	provider, err := creator()
	if err != nil {
		return NoopProvider{}, errors.Wrap(err, "failed to load tracing provider")
	}

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return provider, nil
}

// NoopProvider records nothing.
type NoopProvider struct{ noop.TracerProvider }

func (NoopProvider) Close() error { return nil }
