package runtime

import (
	"io"

	"github.com/pipelined/lineproc"
	"github.com/pipelined/lineproc/metric"
)

// Processor is the executor for processor component.
type Processor struct {
	machine
	lineproc.ProcessFunc
	StartFunc
	FlushFunc
	Receiver
	Sender
	Measure metric.MeasureFunc
}

// ProcessExecutor returns executor for processor component.
func ProcessExecutor(p lineproc.Processor, receiver Receiver, sender Sender, m metric.MeasureFunc) *Processor {
	return &Processor{
		ProcessFunc: p.ProcessFunc,
		StartFunc:   StartFunc(p.StartFunc),
		FlushFunc:   FlushFunc(p.FlushFunc),
		Receiver:    receiver,
		Sender:      sender,
		Measure:     m,
	}
}

// Execute does a single iteration of processor component. io.EOF is
// returned after the sentinel was forwarded.
func (e *Processor) Execute() error {
	in := e.Receiver.Get()
	stop := in.IsSentinel()
	if stop {
		e.stop()
	}
	out, err := e.ProcessFunc(in)
	if err != nil {
		return err
	}
	if stop {
		if !out.IsSentinel() {
			out = lineproc.Sentinel()
		}
		e.Sender.Put(out)
		e.done()
		return io.EOF
	}
	e.Measure.Measure(out.Len())
	e.Sender.Put(out)
	return nil
}

// Drain discards lines until the sentinel and forwards it.
func (e *Processor) Drain() {
	for e.State() == lineproc.Running {
		if e.Receiver.Get().IsSentinel() {
			e.stop()
		}
	}
	if e.State() != lineproc.Done {
		e.Sender.Put(lineproc.Sentinel())
		e.done()
	}
}
