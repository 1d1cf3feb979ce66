package runtime

import (
	"fmt"
	"io"

	"github.com/pipelined/lineproc"
)

type (
	// Executor executes a single pipeline stage.
	Executor interface {
		Start() error
		Execute() error
		Flush() error
		// Drain consumes input until the sentinel and forwards it. It's
		// called when executor failed, so other stages can finish.
		Drain()
		State() lineproc.State
	}

	// Sender puts lines into the next stage.
	Sender interface {
		Put(lineproc.Line)
	}

	// Receiver gets lines from the previous stage.
	Receiver interface {
		Get() lineproc.Line
	}

	// Link connects two stages.
	Link interface {
		Sender
		Receiver
	}
)

// Run executes the component until it's done. Execution is finished
// gracefully when Execute returns io.EOF. If any of calls failed, the
// executor is drained before the error is returned.
func Run(e Executor) error {
	if err := e.Start(); err != nil {
		e.Drain()
		return fmt.Errorf("error starting component: %w", err)
	}

	var err error
	for err == nil {
		err = e.Execute()
	}
	if err == io.EOF {
		err = nil
	} else {
		e.Drain()
	}

	if flushErr := e.Flush(); flushErr != nil || err != nil {
		return &ErrorRun{
			ErrExec:  err,
			ErrFlush: flushErr,
		}
	}
	return nil
}
