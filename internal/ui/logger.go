package ui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// LogOptions selects the level and format of log output.
type LogOptions struct {
	Verbose bool
	Quiet   bool
	JSON    bool
}

// Level maps the verbosity flags to a log level. Quiet wins over verbose.
func (o LogOptions) Level() log.Level {
	switch {
	case o.Quiet:
		return log.ErrorLevel
	case o.Verbose:
		return log.DebugLevel
	default:
		return log.InfoLevel
	}
}

// NewLogger returns a slog logger backed by a charm log handler writing to w.
func NewLogger(w io.Writer, opts LogOptions) *slog.Logger {
	handler := log.NewWithOptions(w, log.Options{
		Level:           opts.Level(),
		ReportTimestamp: opts.Verbose,
		Prefix:          "mdget",
	})
	if opts.JSON {
		handler.SetFormatter(log.JSONFormatter)
	}
	return slog.New(handler)
}

// SetupLogging installs NewLogger(w, opts) as the default slog logger.
func SetupLogging(w io.Writer, opts LogOptions) *slog.Logger {
	logger := NewLogger(w, opts)
	slog.SetDefault(logger)
	return logger
}
