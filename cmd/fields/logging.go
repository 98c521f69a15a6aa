package main

import (
	"io"
	"log/slog"
	"os"
)

// logConfig configures the logger
type logConfig struct {
	Verbose bool // debug records when set, errors only otherwise
	Output  io.Writer
}

// newLogger creates a text logger. Diagnostics go to stderr by default so
// standard output stays reserved for selected fields.
func newLogger(config logConfig) *slog.Logger {
	level := slog.LevelError
	if config.Verbose {
		level = slog.LevelDebug
	}

	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level})).
		With("cmd", "fields")
}
