// Package log provides loggers for the pipeline. All loggers write to
// stderr, so stdout stays reserved for the output.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// GetLogger returns a new logger instance with provided level.
func GetLogger(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return l
}

// Silent returns a logger that discards all entries.
func Silent() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
