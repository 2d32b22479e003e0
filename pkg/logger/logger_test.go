package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input))
		})
	}
}

func TestValidLevel(t *testing.T) {
	assert.True(t, ValidLevel("debug"))
	assert.True(t, ValidLevel("WARN"))
	assert.False(t, ValidLevel("verbose"))
	assert.False(t, ValidLevel(""))
}

func TestNewWithConfig_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")

	l, err := NewWithConfig(Config{
		Level:          "info",
		Format:         "json",
		OutputPath:     path,
		ServiceName:    "proto-demo",
		ServiceVersion: "1.0.0",
		Environment:    "test",
	})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("visible", zap.Int32("user_id", 101))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(data)
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"visible"`)
	assert.Contains(t, out, `"user_id":101`)
	assert.Contains(t, out, `"service":"proto-demo"`)
	assert.Contains(t, out, `"environment":"test"`)
}

func TestWithContext_AddsRunID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	ctx := WithRunID(context.Background(), "run-123")
	WithContext(ctx, base).Info("hello")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "run-123", fields["run_id"])
}

func TestWithContext_NoRunID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	WithContext(context.Background(), base).Info("hello")

	require.Equal(t, 1, logs.Len())
	_, ok := logs.All()[0].ContextMap()["run_id"]
	assert.False(t, ok)
}

func TestGetRunID(t *testing.T) {
	assert.Equal(t, "", GetRunID(context.Background()))
	assert.Equal(t, "abc", GetRunID(WithRunID(context.Background(), "abc")))

	ctx := context.WithValue(context.Background(), RunIDKey, 42)
	assert.Equal(t, "", GetRunID(ctx))
}
