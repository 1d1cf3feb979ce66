package runtime

import (
	"sync/atomic"

	"github.com/pipelined/lineproc"
)

// machine holds the state of the stage.
type machine struct {
	v atomic.Int32
}

// State returns current state of the stage.
func (m *machine) State() lineproc.State {
	return lineproc.State(m.v.Load())
}

func (m *machine) stop() {
	m.v.CompareAndSwap(int32(lineproc.Running), int32(lineproc.Stopping))
}

func (m *machine) done() {
	m.stop()
	m.v.CompareAndSwap(int32(lineproc.Stopping), int32(lineproc.Done))
}
