package log

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level Level
		want  string
	}{
		{level: LevelError, want: "error"},
		{level: LevelWarn, want: "warn"},
		{level: LevelInfo, want: "info"},
		{level: LevelDebug, want: "debug"},
		{level: Level(99), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{name: "debug", input: "debug", want: LevelDebug},
		{name: "info", input: "info", want: LevelInfo},
		{name: "warn", input: "warn", want: LevelWarn},
		{name: "warning alias", input: "warning", want: LevelWarn},
		{name: "error", input: "error", want: LevelError},
		{name: "mixed case", input: "InFo", want: LevelInfo},
		{name: "invalid", input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	tests := []struct {
		name      string
		field     Field
		wantKey   string
		wantValue any
	}{
		{name: "string", field: String("kind", "shared"), wantKey: "kind", wantValue: "shared"},
		{name: "int", field: Int("refs", 2), wantKey: "refs", wantValue: 2},
		{name: "int64", field: Int64("live", 7), wantKey: "live", wantValue: int64(7)},
		{name: "uintptr", field: Uintptr("addr", 0xdeadbeef), wantKey: "addr", wantValue: uintptr(0xdeadbeef)},
		{name: "bool", field: Bool("valid", true), wantKey: "valid", wantValue: true},
		{name: "any", field: Any("payload", 3.14), wantKey: "payload", wantValue: 3.14},
		{name: "err", field: Err(err), wantKey: "error", wantValue: err},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantKey, tt.field.Key)
			assert.Equal(t, tt.wantValue, tt.field.Value)
		})
	}
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()

	assert.False(t, logger.Enabled(LevelError))
	assert.Same(t, logger, logger.With(String("k", "v")))

	// Must not panic.
	logger.Log(context.Background(), LevelDebug, "dropped")
}
