package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pure-golang/smtpeter/logger/noop"
)

func TestNew_ProviderStdJson(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Config{Provider: ProviderStdJson, Level: INFO})

	l.Debug("hidden")
	l.Info("visible", "key", "value")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "visible", record["msg"])
	assert.Equal(t, "value", record["key"])
}

func TestNew_ProviderDev(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Config{Provider: ProviderDevSlog, Level: DEBUG})

	l.Debug("dev message")
	assert.Contains(t, buf.String(), "dev message")
}

func TestNew_ProviderNoop(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Config{Provider: ProviderNoop, Level: DEBUG})

	l.Error("dropped")
	assert.Empty(t, buf.String())
}

func TestNew_UnknownProviderFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Config{Provider: "invalid"})

	l.Info("message")
	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestInitDefault_SetsGlobalLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	InitDefault(Config{Provider: ProviderNoop})
	assert.NotSame(t, original, slog.Default())
}

func TestContext_RoundTrip(t *testing.T) {
	l := noop.NewNoop()
	ctx := NewContext(context.Background(), l)

	assert.Same(t, l, FromContext(ctx))
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestFromContextWithErr(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(context.Background(), New(&buf, Config{}))

	FromContextWithErr(ctx, errors.New("boom")).Info("failed")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "boom", record["error"])
	assert.Contains(t, record, "stack")
}

func TestFromContextWithErr_Nil(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(context.Background(), New(&buf, Config{}))

	FromContextWithErr(ctx, nil).Info("ok")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.NotContains(t, record, "error")
}

func TestWithErr_PlainError(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	var buf bytes.Buffer
	slog.SetDefault(New(&buf, Config{}))

	WithErr(assert.AnError).Info("failed")
	assert.Contains(t, buf.String(), assert.AnError.Error())
	assert.NotContains(t, buf.String(), "stack")
}

func TestConvertLevel(t *testing.T) {
	tests := []struct {
		in   Level
		want slog.Level
	}{
		{INFO, slog.LevelInfo},
		{ERROR, slog.LevelError},
		{WARN, slog.LevelWarn},
		{DEBUG, slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, convertLevel(tt.in))
		})
	}
}
