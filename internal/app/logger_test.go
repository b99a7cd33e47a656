package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		level    string
		format   string
		enabled  slog.Level
		disabled []slog.Level
		contains string
	}{
		{name: "debug text", level: "debug", format: FormatText, enabled: slog.LevelDebug, contains: "msg=hello"},
		{name: "warn json", level: "warn", format: FormatJSON, enabled: slog.LevelWarn, disabled: []slog.Level{slog.LevelInfo}, contains: `"msg":"hello"`},
		{name: "unknown level falls back to info", level: "loud", format: FormatText, enabled: slog.LevelInfo, disabled: []slog.Level{slog.LevelDebug}, contains: "msg=hello"},
	}

	for _, tc := range testCases {
		tc := tc // per-iteration copy; module targets go 1.21 loop semantics
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			logger := newLogger(tc.level, tc.format, buf)

			assert.True(t, logger.Enabled(context.Background(), tc.enabled))
			for _, level := range tc.disabled {
				assert.False(t, logger.Enabled(context.Background(), level))
			}
			logger.Log(context.Background(), tc.enabled, "hello")
			assert.Contains(t, buf.String(), tc.contains)
		})
	}
}
