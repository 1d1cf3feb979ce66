package lineproc

import (
	"errors"
	"fmt"
	"io"
)

// ErrNoSentinel is returned when input ends before the sentinel record.
// Downstream stages cannot tell that no more input is coming, so it's
// always fatal.
var ErrNoSentinel = fmt.Errorf("input ended without %q record: %w", StopText, io.ErrUnexpectedEOF)

// ErrStopped is returned by the source if it's called after the sentinel
// was produced.
var ErrStopped = errors.New("source is stopped")
