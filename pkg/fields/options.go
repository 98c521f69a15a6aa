// Package fields selects whitespace-delimited fields from lines of text.
package fields

import (
	"log/slog"
)

// Policy decides what happens when a line has fewer fields than requested.
type Policy string

const (
	// PolicySkip omits missing fields from the output line.
	PolicySkip Policy = "skip"
	// PolicyFail aborts the run on the first missing field.
	PolicyFail Policy = "fail"
)

// Options configures field selection.
type Options struct {
	// Policy specifies how out-of-range indices are handled.
	// The zero value behaves like PolicySkip.
	Policy Policy
	// Logger receives debug records about the run. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default selection options.
func DefaultOptions() Options {
	return Options{
		Policy: PolicySkip,
	}
}

// FailOnMissing returns whether a missing field is fatal.
func (o Options) FailOnMissing() bool {
	return o.Policy == PolicyFail
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return discardLogger
}

var discardLogger = slog.New(slog.DiscardHandler)
