//go:build unit

package zap

import (
	"context"
	"errors"
	"testing"

	logpkg "github.com/LerianStudio/lib-ownership/ownership/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewLogger(zap.New(core)), logs
}

func TestLog_LevelMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level logpkg.Level
		want  zapcore.Level
	}{
		{name: "debug", level: logpkg.LevelDebug, want: zapcore.DebugLevel},
		{name: "info", level: logpkg.LevelInfo, want: zapcore.InfoLevel},
		{name: "warn", level: logpkg.LevelWarn, want: zapcore.WarnLevel},
		{name: "error", level: logpkg.LevelError, want: zapcore.ErrorLevel},
		{name: "unknown falls back to info", level: logpkg.Level(99), want: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, logs := newObservedLogger(zapcore.DebugLevel)

			logger.Log(context.Background(), tt.level, "event")

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.want, entries[0].Level)
			assert.Equal(t, "event", entries[0].Message)
		})
	}
}

func TestLog_FieldConversion(t *testing.T) {
	t.Parallel()

	logger, logs := newObservedLogger(zapcore.DebugLevel)
	boom := errors.New("boom")

	logger.Log(context.Background(), logpkg.LevelInfo, "payload freed",
		logpkg.String("kind", "shared"),
		logpkg.Int("refs", 0),
		logpkg.Int64("live", 3),
		logpkg.Uintptr("addr", 0x1000),
		logpkg.Bool("finalized", true),
		logpkg.Err(boom),
	)

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "shared", fields["kind"])
	assert.Equal(t, int64(0), fields["refs"])
	assert.Equal(t, int64(3), fields["live"])
	assert.Equal(t, true, fields["finalized"])
	assert.Equal(t, "boom", fields["error"])
}

func TestWith_AddsFields(t *testing.T) {
	t.Parallel()

	logger, logs := newObservedLogger(zapcore.DebugLevel)

	child := logger.With(logpkg.String("component", "tracker"))
	child.Log(context.Background(), logpkg.LevelInfo, "started")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "tracker", entries[0].ContextMap()["component"])
}

func TestEnabled(t *testing.T) {
	t.Parallel()

	logger, _ := newObservedLogger(zapcore.WarnLevel)

	assert.True(t, logger.Enabled(logpkg.LevelError))
	assert.True(t, logger.Enabled(logpkg.LevelWarn))
	assert.False(t, logger.Enabled(logpkg.LevelInfo))
	assert.False(t, logger.Enabled(logpkg.LevelDebug))
}

func TestNilReceiverIsSafe(t *testing.T) {
	t.Parallel()

	var logger *Logger

	// Must not panic.
	logger.Log(context.Background(), logpkg.LevelError, "dropped")
	assert.False(t, logger.Enabled(logpkg.LevelError))
}
