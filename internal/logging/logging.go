// Package logging configures console logging with charmbracelet/log.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options holds configuration for console logging.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns default options for console logging.
func DefaultOptions() Options {
	return Options{
		Level:           log.InfoLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "notefold",
	}
}

// New creates a logger writing to stderr with the given options. Stdout is
// reserved for the bridge protocol, so diagnostics go to stderr.
func New(opts Options) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// NewFromConfig creates a logger from string configuration values, as loaded
// from TOML or environment variables.
func NewFromConfig(level, format string, timestamps bool) *log.Logger {
	return New(Options{
		Level:           ParseLevel(level),
		Formatter:       ParseFormatter(format),
		ReportTimestamp: timestamps,
		Prefix:          "notefold",
	})
}

// NewTestLogger creates a logger that writes to a specific writer with
// minimal formatting for easier test assertions.
func NewTestLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           log.DebugLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
	})
}

// Discard returns a logger that drops everything. Used as a default when
// callers pass no logger.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseLevel parses a string log level to a charmbracelet/log Level.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a string formatter name to a charmbracelet/log Formatter.
func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
