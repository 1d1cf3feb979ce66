// Package metric captures per-stage counters of the pipeline.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lineproc"

const (
	// LineCounter measures number of lines passed by a stage.
	LineCounter = "lines_total"
	// CharacterCounter measures number of characters passed by a stage.
	CharacterCounter = "characters_total"
	// QueueGauge reports number of lines in a queue.
	QueueGauge = "queue_lines"
)

// MeasureFunc captures metrics when a line is passed by a stage.
type MeasureFunc func(chars int)

// Measure calls the function if it's not nil.
func (fn MeasureFunc) Measure(chars int) {
	if fn != nil {
		fn(chars)
	}
}

// Metric holds collectors of a single pipeline.
type Metric struct {
	reg        prometheus.Registerer
	lines      *prometheus.CounterVec
	characters *prometheus.CounterVec
}

// New creates collectors and registers them.
func New(reg prometheus.Registerer) (*Metric, error) {
	m := Metric{
		reg: reg,
		lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      LineCounter,
			Help:      "Number of lines passed by a stage.",
		}, []string{"stage"}),
		characters: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      CharacterCounter,
			Help:      "Number of characters passed by a stage.",
		}, []string{"stage"}),
	}
	for _, c := range []prometheus.Collector{m.lines, m.characters} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return &m, nil
}

// Meter returns measure closure for the stage. Nil metric returns nil
// closure.
func (m *Metric) Meter(stage string) MeasureFunc {
	if m == nil {
		return nil
	}
	lines := m.lines.WithLabelValues(stage)
	characters := m.characters.WithLabelValues(stage)
	return func(chars int) {
		lines.Inc()
		characters.Add(float64(chars))
	}
}

// Queue registers gauge that reports the length of the queue.
func (m *Metric) Queue(name string, length func() int) error {
	if m == nil {
		return nil
	}
	return m.reg.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        QueueGauge,
		Help:        "Number of lines in a queue.",
		ConstLabels: prometheus.Labels{"queue": name},
	}, func() float64 {
		return float64(length())
	}))
}

// Lines returns the number of lines counted for the stage.
func (m *Metric) Lines(stage string) prometheus.Counter {
	return m.lines.WithLabelValues(stage)
}

// Characters returns the number of characters counted for the stage.
func (m *Metric) Characters(stage string) prometheus.Counter {
	return m.characters.WithLabelValues(stage)
}
