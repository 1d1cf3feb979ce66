// Package mock provides mocks for pipeline components and allows to
// execute integration tests.
package mock

import (
	"io"

	"github.com/pipelined/lineproc"
)

// Counter counts lines and characters passed by the component.
type Counter struct {
	Lines      int
	Characters int
}

func (c *Counter) advance(l lineproc.Line) {
	c.Lines++
	c.Characters += l.Len()
}

// Hooks allows to mock components hooks.
type Hooks struct {
	Started bool
	Flushed bool

	ErrorOnStart error
	ErrorOnFlush error
}

func (h *Hooks) start() error {
	h.Started = true
	return h.ErrorOnStart
}

func (h *Hooks) flush() error {
	h.Flushed = true
	return h.ErrorOnFlush
}

// Source produces provided records. Every record gets a terminator. When
// records are over, ErrorOnCall is returned if set, otherwise the sentinel
// is produced.
type Source struct {
	Hooks
	Counter
	Records     []string
	ErrorOnCall error
	ErrorOnMake error
	// Calls is the number of source function calls.
	Calls int
}

// Source returns allocator of mocked source.
func (m *Source) Source() lineproc.SourceAllocatorFunc {
	return func(lineproc.Config) (lineproc.Source, error) {
		if m.ErrorOnMake != nil {
			return lineproc.Source{}, m.ErrorOnMake
		}
		return lineproc.Source{
			SourceFunc: func() (lineproc.Line, error) {
				m.Calls++
				if m.Lines < len(m.Records) {
					l := lineproc.Line(m.Records[m.Lines] + "\n")
					m.advance(l)
					return l, nil
				}
				if m.ErrorOnCall != nil {
					return nil, m.ErrorOnCall
				}
				return lineproc.Sentinel(), nil
			},
			StartFunc: m.start,
			FlushFunc: m.flush,
		}, nil
	}
}

// Processor passes lines through and counts them.
type Processor struct {
	Hooks
	Counter
	// Sentinels is the number of sentinels received.
	Sentinels   int
	ErrorOnCall error
	ErrorOnMake error
}

// Processor returns allocator of mocked processor.
func (m *Processor) Processor() lineproc.ProcessorAllocatorFunc {
	return func(lineproc.Config) (lineproc.Processor, error) {
		if m.ErrorOnMake != nil {
			return lineproc.Processor{}, m.ErrorOnMake
		}
		return lineproc.Processor{
			ProcessFunc: func(l lineproc.Line) (lineproc.Line, error) {
				if m.ErrorOnCall != nil {
					return nil, m.ErrorOnCall
				}
				if l.IsSentinel() {
					m.Sentinels++
					return l, nil
				}
				m.advance(l)
				return l, nil
			},
			StartFunc: m.start,
			FlushFunc: m.flush,
		}, nil
	}
}

// Sink records received lines. Lines are not thread-safe, so should not
// be checked while pipe is running.
type Sink struct {
	Hooks
	Counter
	Discard     bool
	ErrorOnCall error
	ErrorOnMake error
	lines       []string
}

// Sink returns allocator of mocked sink.
func (m *Sink) Sink() lineproc.SinkAllocatorFunc {
	return func(lineproc.Config) (lineproc.Sink, error) {
		if m.ErrorOnMake != nil {
			return lineproc.Sink{}, m.ErrorOnMake
		}
		return lineproc.Sink{
			SinkFunc: func(l lineproc.Line) error {
				if m.ErrorOnCall != nil {
					return m.ErrorOnCall
				}
				if !m.Discard {
					m.lines = append(m.lines, l.String())
				}
				m.advance(l)
				return nil
			},
			StartFunc: m.start,
			FlushFunc: m.flush,
		}, nil
	}
}

// Received returns lines received by the sink.
func (m *Sink) Received() []string {
	return m.lines
}

// Reader returns Data and then fails with Err. If Err is nil, io.EOF is
// returned.
type Reader struct {
	Data string
	Err  error
	read int
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.read < len(r.Data) {
		n := copy(p, r.Data[r.read:])
		r.read += n
		return n, nil
	}
	if r.Err != nil {
		return 0, r.Err
	}
	return 0, io.EOF
}

// Writer records written data. It fails with ErrorOnWrite once Limit
// writes succeeded.
type Writer struct {
	Limit        int
	ErrorOnWrite error
	Writes       int
	data         []byte
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.ErrorOnWrite != nil && w.Writes >= w.Limit {
		return 0, w.ErrorOnWrite
	}
	w.Writes++
	w.data = append(w.data, p...)
	return len(p), nil
}

// String returns written data.
func (w *Writer) String() string {
	return string(w.data)
}
