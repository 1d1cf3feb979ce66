// Package run executes the pipe. Every stage is running in its own
// goroutine and stages are connected with bounded queues.
package run

import (
	"fmt"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/pipelined/lineproc"
	"github.com/pipelined/lineproc/internal/runtime"
	"github.com/pipelined/lineproc/log"
	"github.com/pipelined/lineproc/metric"
	"github.com/pipelined/lineproc/queue"
)

type (
	// Run executes the pipe asynchronously.
	Run struct {
		uid    string
		log    logrus.FieldLogger
		metric *metric.Metric
		stages []stage
		group  errgroup.Group
	}

	// stage is a named executor of a single component.
	stage struct {
		name     string
		executor runtime.Executor
	}

	// Option provides a way to set functional parameters to run.
	Option func(*Run)
)

// WithLogger sets logger to run. If this option is not provided, silent
// logger is used.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Run) {
		r.log = l
	}
}

// WithMetric adds metrics for all stages and queues.
func WithMetric(m *metric.Metric) Option {
	return func(r *Run) {
		r.metric = m
	}
}

// New binds components of the pipe with queues and starts all stages.
// If queues cannot be created, no stage is started.
func New(p *lineproc.Pipe, options ...Option) (*Run, error) {
	r := Run{
		uid: xid.New().String(),
		log: log.Silent(),
	}
	for _, option := range options {
		option(&r)
	}
	r.log = r.log.WithField("run", r.uid)

	if err := r.bind(p); err != nil {
		return nil, err
	}
	r.start()
	return &r, nil
}

// bind creates queues between stages and wraps components into
// executors.
func (r *Run) bind(p *lineproc.Pipe) error {
	links := make([]*queue.Bounded[lineproc.Line], 0, p.Stages()-1)
	for i := 0; i < p.Stages()-1; i++ {
		q, err := queue.New[lineproc.Line](p.Config.QueueCapacity)
		if err != nil {
			return err
		}
		if err := r.metric.Queue(fmt.Sprintf("q%d", i+1), q.Len); err != nil {
			return fmt.Errorf("register queue metric: %w", err)
		}
		links = append(links, q)
	}

	r.stages = make([]stage, 0, p.Stages())
	name := stageName(p.Source.Name, "source")
	r.stages = append(r.stages, stage{
		name:     name,
		executor: runtime.SourceExecutor(p.Source, links[0], r.metric.Meter(name)),
	})
	for i := range p.Processors {
		name = stageName(p.Processors[i].Name, fmt.Sprintf("processor %d", i+1))
		r.stages = append(r.stages, stage{
			name:     name,
			executor: runtime.ProcessExecutor(p.Processors[i], links[i], links[i+1], r.metric.Meter(name)),
		})
	}
	name = stageName(p.Sink.Name, "sink")
	r.stages = append(r.stages, stage{
		name:     name,
		executor: runtime.SinkExecutor(p.Sink, links[len(links)-1], r.metric.Meter(name)),
	})
	return nil
}

// start runs every stage in its own goroutine.
func (r *Run) start() {
	for i := range r.stages {
		s := r.stages[i]
		l := r.log.WithField("stage", s.name)
		r.group.Go(func() error {
			l.Debug("started")
			err := runtime.Run(s.executor)
			l.WithField("state", s.executor.State()).Debug("stopped")
			if err != nil {
				return fmt.Errorf("%s: %w", s.name, err)
			}
			return nil
		})
	}
}

// Wait blocks until all stages are done and returns the first error.
func (r *Run) Wait() error {
	return r.group.Wait()
}

// States returns current state of every stage in order.
func (r *Run) States() []lineproc.State {
	states := make([]lineproc.State, 0, len(r.stages))
	for i := range r.stages {
		states = append(states, r.stages[i].executor.State())
	}
	return states
}

// ID returns unique identifier of the run.
func (r *Run) ID() string {
	return r.uid
}

func stageName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
