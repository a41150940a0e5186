package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
)

// testProvider is a minimal Provider backed by the SDK.
type testProvider struct {
	*tracesdk.TracerProvider
}

func (t *testProvider) Close() error {
	return t.TracerProvider.Shutdown(context.Background())
}

func restoreGlobals(t *testing.T) {
	t.Helper()

	originalProvider := otel.GetTracerProvider()
	originalPropagator := otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(originalProvider)
		otel.SetTextMapPropagator(originalPropagator)
	})
}

func TestInit_ValidProvider(t *testing.T) {
	restoreGlobals(t)

	tp := &testProvider{TracerProvider: tracesdk.NewTracerProvider()}
	provider, err := Init(func() (Provider, error) { return tp, nil })

	require.NoError(t, err)
	assert.Same(t, tp, provider)
	assert.IsType(t, propagation.TraceContext{}, otel.GetTextMapPropagator())
	assert.NoError(t, provider.Close())
}

func TestInit_BuilderError(t *testing.T) {
	restoreGlobals(t)

	provider, err := Init(func() (Provider, error) { return nil, assert.AnError })

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load tracing provider")
	assert.ErrorIs(t, err, assert.AnError)
	assert.IsType(t, NoopProvider{}, provider)
}

func TestNoopProvider(t *testing.T) {
	var p Provider = NoopProvider{}

	_, span := p.Tracer("test").Start(context.Background(), "op")
	span.End()

	assert.False(t, span.SpanContext().IsValid())
	assert.NoError(t, p.Close())
}
