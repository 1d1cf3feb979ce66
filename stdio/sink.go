package stdio

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pipelined/lineproc"
)

// Sink returns formatter stage. It re-wraps all received characters into
// lines of configured width and writes them into w. Characters that don't
// fill the last line are dropped.
func Sink(w io.Writer) lineproc.SinkAllocatorFunc {
	return func(cfg lineproc.Config) (lineproc.Sink, error) {
		f := NewFormatter(w, cfg.Width)
		return lineproc.Sink{
			Name:     "formatter",
			SinkFunc: f.Write,
			FlushFunc: func() error {
				f.Reset()
				return nil
			},
		}, nil
	}
}

// Formatter accumulates characters into a window of fixed width. Every
// full window is written as a single line.
type Formatter struct {
	w      io.Writer
	width  int
	window []byte
	count  int
}

type flusher interface {
	Flush() error
}

// NewFormatter returns formatter that writes lines of width characters.
func NewFormatter(w io.Writer, width int) *Formatter {
	return &Formatter{
		w:      w,
		width:  width,
		window: make([]byte, 0, width+1),
	}
}

// Write appends characters of the line to the window. Output line
// boundaries don't depend on line boundaries of the input.
func (f *Formatter) Write(l lineproc.Line) error {
	for len(l) > 0 {
		_, size := utf8.DecodeRune(l)
		f.window = append(f.window, l[:size]...)
		l = l[size:]
		f.count++
		if f.count == f.width {
			if err := f.emit(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *Formatter) emit() error {
	f.window = append(f.window, '\n')
	_, err := f.w.Write(f.window)
	f.window = f.window[:0]
	f.count = 0
	if err != nil {
		return fmt.Errorf("write output line: %w", err)
	}
	if fl, ok := f.w.(flusher); ok {
		if err := fl.Flush(); err != nil {
			return fmt.Errorf("flush output line: %w", err)
		}
	}
	return nil
}

// Pending returns the number of characters waiting in the window.
func (f *Formatter) Pending() int {
	return f.count
}

// Reset drops the partially filled window.
func (f *Formatter) Reset() {
	f.window = f.window[:0]
	f.count = 0
}
