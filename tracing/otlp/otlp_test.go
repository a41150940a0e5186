package otlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{EndPoint: "http://localhost:4318/v1/traces"}.Enabled())
}

func TestNewProviderBuilder(t *testing.T) {
	// The exporter connects lazily, so no collector is needed here.
	provider, err := NewProviderBuilder(Config{
		EndPoint:    "http://localhost:4318/v1/traces",
		ServiceName: "smtpeter-send",
		AppVersion:  "test",
	})()

	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Close() })
	assert.IsType(t, &Provider{}, provider)
}

func TestNewProviderBuilder_EmptyEndpoint(t *testing.T) {
	provider, err := NewProviderBuilder(Config{ServiceName: "svc"})()

	require.Error(t, err)
	assert.Nil(t, provider)
	assert.ErrorContains(t, err, "empty connection string")
}

func TestNewProviderBuilder_EmptyServiceName(t *testing.T) {
	provider, err := NewProviderBuilder(Config{EndPoint: "http://localhost:4318/v1/traces"})()

	require.Error(t, err)
	assert.Nil(t, provider)
	assert.ErrorContains(t, err, "service name is empty")
}
