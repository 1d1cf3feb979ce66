package lineproc

// State of a pipeline stage. Stages move from Running to Stopping when
// the sentinel is observed and to Done when it was forwarded. There is
// no way back.
type State int32

const (
	// Running is the initial state, stage processes lines.
	Running State = iota
	// Stopping is set when the stage has observed the sentinel.
	Stopping
	// Done is set when the sentinel was forwarded.
	Done
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopping:
		return "stopping"
	case Done:
		return "done"
	}
	return "unknown"
}
