package lineproc

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Default configuration values.
const (
	DefaultMaxLineLength = 999
	DefaultMaxLines      = 50
	DefaultQueueCapacity = 50
	DefaultWidth         = 80
	DefaultMarker        = '^'
)

// ErrInvalidConfig is returned when pipe is created with configuration
// that cannot be executed.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the startup constants of the pipeline.
type Config struct {
	// MaxLineLength is the maximum number of payload characters in a
	// record. Longer records are truncated. It must be longer than the
	// "STOP" record.
	MaxLineLength int
	// MaxLines is the maximum number of records read, including the
	// sentinel.
	MaxLines int
	// QueueCapacity is the number of lines every queue between two
	// stages can hold.
	QueueCapacity int
	// Width is the number of characters in every output line.
	Width int
	// Marker replaces every "++" pair. It must be an ASCII punctuation or
	// symbol character other than '+'.
	Marker byte
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() Config {
	return Config{
		MaxLineLength: DefaultMaxLineLength,
		MaxLines:      DefaultMaxLines,
		QueueCapacity: DefaultQueueCapacity,
		Width:         DefaultWidth,
		Marker:        DefaultMarker,
	}
}

// Validate returns ErrInvalidConfig if any of values cannot be used.
func (c Config) Validate() error {
	switch {
	case c.MaxLineLength <= len(StopText):
		// truncated record must not turn into the sentinel
		return fmt.Errorf("%w: max line length %d", ErrInvalidConfig, c.MaxLineLength)
	case c.MaxLines <= 0:
		return fmt.Errorf("%w: max lines %d", ErrInvalidConfig, c.MaxLines)
	case c.QueueCapacity <= 0:
		return fmt.Errorf("%w: queue capacity %d", ErrInvalidConfig, c.QueueCapacity)
	case c.Width <= 0:
		return fmt.Errorf("%w: width %d", ErrInvalidConfig, c.Width)
	case !validMarker(c.Marker):
		return fmt.Errorf("%w: marker %q", ErrInvalidConfig, c.Marker)
	}
	return nil
}

// validMarker allows ASCII punctuation and symbols except '+'. Letters are
// rejected, so rewritten payload can't spell the sentinel.
func validMarker(b byte) bool {
	if b >= utf8.RuneSelf || b == '+' {
		return false
	}
	return unicode.IsPunct(rune(b)) || unicode.IsSymbol(rune(b))
}
