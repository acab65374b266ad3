package commands

import (
	"io"
	"log/slog"
)

// newLogger returns the logger handed to a command run. Diagnostics go to
// w (stderr); results never pass through it.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
