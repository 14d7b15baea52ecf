package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		env       string
		wantDebug bool
	}{
		{env: "dev", wantDebug: true},
		{env: "test", wantDebug: true},
		{env: "production", wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			logger := NewLogger(&bytes.Buffer{}, tt.env)

			assert.Equal(t, tt.wantDebug, logger.Enabled(context.Background(), slog.LevelDebug))
			assert.Equal(t, true, logger.Enabled(context.Background(), slog.LevelInfo))
		})
	}
}

func TestNewLoggerProductionHasNoColor(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "production")

	logger.Info("[Test] hello", slog.String("key", "value"))

	out := buf.String()
	assert.Equal(t, true, strings.Contains(out, "[Test] hello"))
	assert.Equal(t, true, strings.Contains(out, "key=value"))
	assert.Equal(t, false, strings.Contains(out, "\x1b["))
}
