package runtime

import (
	"io"

	"github.com/pipelined/lineproc"
	"github.com/pipelined/lineproc/metric"
)

// Sink is the executor for sink component.
type Sink struct {
	machine
	lineproc.SinkFunc
	StartFunc
	FlushFunc
	Receiver
	Measure metric.MeasureFunc
}

// SinkExecutor returns executor for sink component.
func SinkExecutor(s lineproc.Sink, receiver Receiver, m metric.MeasureFunc) *Sink {
	return &Sink{
		SinkFunc:  s.SinkFunc,
		StartFunc: StartFunc(s.StartFunc),
		FlushFunc: FlushFunc(s.FlushFunc),
		Receiver:  receiver,
		Measure:   m,
	}
}

// Execute does a single iteration of sink component. io.EOF is returned
// when the sentinel is received, it's never passed to the sink function.
func (e *Sink) Execute() error {
	in := e.Receiver.Get()
	if in.IsSentinel() {
		e.done()
		return io.EOF
	}
	e.Measure.Measure(in.Len())
	return e.SinkFunc(in)
}

// Drain discards lines until the sentinel.
func (e *Sink) Drain() {
	for e.State() == lineproc.Running {
		if e.Receiver.Get().IsSentinel() {
			e.done()
		}
	}
}
