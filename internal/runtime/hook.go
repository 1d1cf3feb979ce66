package runtime

import "github.com/pipelined/lineproc"

type (
	// StartFunc is a closure that triggers component start hook.
	StartFunc lineproc.StartFunc
	// FlushFunc is a closure that triggers component flush hook.
	FlushFunc lineproc.FlushFunc
)

// Start calls the start hook.
func (fn StartFunc) Start() error {
	return callHook(fn)
}

// Flush calls the flush hook.
func (fn FlushFunc) Flush() error {
	return callHook(fn)
}

func callHook(hook func() error) error {
	if hook == nil {
		return nil
	}
	return hook()
}
