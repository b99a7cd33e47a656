package app

import (
	"io"
	"log/slog"
)

// newLogger builds the logger for one App. Logs go to their own writer so the
// describe report on the output writer stays machine-readable. Level names
// are the ones cli.Parse accepts; anything else logs at info.
func newLogger(levelStr, formatStr string, logW io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == FormatJSON {
		return slog.New(slog.NewJSONHandler(logW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(logW, handlerOpts))
}
