// Package logging builds the structured logger shared by the commands.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/phuslu/log"
)

// New returns a logger writing to stderr at the given level. format
// "json" writes one JSON object per line; anything else writes
// human-readable console lines.
func New(level, format string) *log.Logger {
	return NewWithOutput(level, format, os.Stderr)
}

// NewWithOutput is New with an explicit destination.
func NewWithOutput(level, format string, w io.Writer) *log.Logger {
	logger := &log.Logger{
		Level:      ParseLevel(level),
		TimeFormat: time.RFC3339,
	}
	if format == "json" {
		logger.Writer = &log.IOWriter{Writer: w}
	} else {
		logger.Writer = &log.ConsoleWriter{Writer: w}
	}
	return logger
}

// NewSilent returns a logger that discards all output.
func NewSilent() *log.Logger {
	return &log.Logger{Writer: &log.IOWriter{Writer: io.Discard}}
}

// ParseLevel maps debug/info/warn/error to a log level, defaulting to
// info.
func ParseLevel(level string) log.Level {
	switch level {
	case "trace":
		return log.TraceLevel
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
