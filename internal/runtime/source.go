package runtime

import (
	"io"

	"github.com/pipelined/lineproc"
	"github.com/pipelined/lineproc/metric"
)

// Source is the executor for source component.
type Source struct {
	machine
	lineproc.SourceFunc
	StartFunc
	FlushFunc
	Sender
	Measure metric.MeasureFunc
}

// SourceExecutor returns executor for source component.
func SourceExecutor(s lineproc.Source, sender Sender, m metric.MeasureFunc) *Source {
	return &Source{
		SourceFunc: s.SourceFunc,
		StartFunc:  StartFunc(s.StartFunc),
		FlushFunc:  FlushFunc(s.FlushFunc),
		Sender:     sender,
		Measure:    m,
	}
}

// Execute does a single iteration of source component. io.EOF is
// returned after the sentinel was sent.
func (e *Source) Execute() error {
	if e.State() != lineproc.Running {
		return io.EOF
	}
	l, err := e.SourceFunc()
	if err != nil {
		return err
	}
	if l.IsSentinel() {
		e.stop()
		e.Sender.Put(l)
		e.done()
		return io.EOF
	}
	e.Measure.Measure(l.Len())
	e.Sender.Put(l)
	return nil
}

// Drain sends the sentinel if it wasn't sent yet.
func (e *Source) Drain() {
	if e.State() == lineproc.Done {
		return
	}
	e.stop()
	e.Sender.Put(lineproc.Sentinel())
	e.done()
}
