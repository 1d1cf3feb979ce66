package lineproc

import (
	"errors"
	"fmt"
)

type (
	// SourceFunc returns the next line. The source is done after it
	// returns the sentinel line.
	SourceFunc func() (Line, error)
	// ProcessFunc transforms the line. It can reuse the input line.
	ProcessFunc func(Line) (Line, error)
	// SinkFunc consumes the line.
	SinkFunc func(Line) error
	// StartFunc is a closure that triggers component start hook.
	StartFunc func() error
	// FlushFunc is a closure that triggers component flush hook.
	FlushFunc func() error
)

type (
	// Source is the first stage of the pipe, it produces lines.
	Source struct {
		Name string
		SourceFunc
		StartFunc
		FlushFunc
	}

	// Processor transforms lines between source and sink.
	Processor struct {
		Name string
		ProcessFunc
		StartFunc
		FlushFunc
	}

	// Sink is the last stage of the pipe, it consumes lines.
	Sink struct {
		Name string
		SinkFunc
		StartFunc
		FlushFunc
	}
)

type (
	// SourceAllocatorFunc returns source for provided configuration.
	SourceAllocatorFunc func(Config) (Source, error)
	// ProcessorAllocatorFunc returns processor for provided
	// configuration.
	ProcessorAllocatorFunc func(Config) (Processor, error)
	// SinkAllocatorFunc returns sink for provided configuration.
	SinkAllocatorFunc func(Config) (Sink, error)
)

// Routing defines sequence of components allocators. It has a single
// source, zero or many processors and single sink.
type Routing struct {
	Source     SourceAllocatorFunc
	Processors []ProcessorAllocatorFunc
	Sink       SinkAllocatorFunc
}

// Pipe is a routing with allocated components.
type Pipe struct {
	Config     Config
	Source     Source
	Processors []Processor
	Sink       Sink
}

// ErrMissingComponent is returned if routing has no source or sink.
var ErrMissingComponent = errors.New("missing component")

// Processors is a helper function to use in routing literals.
func Processors(processors ...ProcessorAllocatorFunc) []ProcessorAllocatorFunc {
	return processors
}

// New validates configuration and executes all allocators of the
// routing. No goroutines are started.
func New(cfg Config, r Routing) (*Pipe, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if r.Source == nil || r.Sink == nil {
		return nil, ErrMissingComponent
	}
	source, err := r.Source(cfg)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	processors := make([]Processor, 0, len(r.Processors))
	for i := range r.Processors {
		processor, err := r.Processors[i](cfg)
		if err != nil {
			return nil, fmt.Errorf("processor %d: %w", i, err)
		}
		processors = append(processors, processor)
	}
	sink, err := r.Sink(cfg)
	if err != nil {
		return nil, fmt.Errorf("sink: %w", err)
	}
	return &Pipe{
		Config:     cfg,
		Source:     source,
		Processors: processors,
		Sink:       sink,
	}, nil
}

// Stages returns the number of stages in the pipe.
func (p *Pipe) Stages() int {
	return 2 + len(p.Processors)
}
