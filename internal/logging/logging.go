// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Level returns the minimum level recorded for the given verbosity.
func Level(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// Setup installs a text handler writing to w as the default logger and returns it.
// A nil w logs to stderr.
func Setup(w io.Writer, debug bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level(debug),
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
