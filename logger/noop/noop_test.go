package noop

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNoop_DisabledForAllLevels(t *testing.T) {
	l := NewNoop()

	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, l.Enabled(context.Background(), level))
	}

	l.With("key", "value").Error("dropped")
}
