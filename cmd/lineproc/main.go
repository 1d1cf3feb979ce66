package main

import (
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"

	"github.com/pipelined/lineproc"
	"github.com/pipelined/lineproc/log"
	"github.com/pipelined/lineproc/metric"
	"github.com/pipelined/lineproc/run"
	"github.com/pipelined/lineproc/stdio"
	"github.com/pipelined/lineproc/text"
)

type config struct {
	in     io.Reader
	out    io.Writer
	logger logrus.FieldLogger

	// metrics receives counters in text exposition format when the run
	// is over. Nil disables the dump.
	metrics io.Writer
}

func (config *config) run() int {
	p, err := lineproc.New(lineproc.DefaultConfig(), lineproc.Routing{
		Source:     stdio.Source(config.in, stdio.WithLogger(config.logger)),
		Processors: lineproc.Processors(text.Normalizer(), text.Rewriter()),
		Sink:       stdio.Sink(config.out),
	})
	if err != nil {
		config.logger.WithError(err).Error("pipe failed")
		return errorExitCode
	}

	reg := prometheus.NewRegistry()
	m, err := metric.New(reg)
	if err != nil {
		config.logger.WithError(err).Error("metric failed")
		return errorExitCode
	}
	r, err := run.New(p, run.WithLogger(config.logger), run.WithMetric(m))
	if err != nil {
		config.logger.WithError(err).Error("run failed")
		return errorExitCode
	}
	err = r.Wait()
	config.dumpMetrics(reg)
	if err != nil {
		config.logger.WithError(err).Error("run failed")
		return errorExitCode
	}
	return successExitCode
}

func (config *config) dumpMetrics(g prometheus.Gatherer) {
	if config.metrics == nil {
		return
	}
	families, err := g.Gather()
	if err != nil {
		config.logger.WithError(err).Warn("gather metrics")
		return
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(config.metrics, mf); err != nil {
			config.logger.WithError(err).Warn("write metrics")
			return
		}
	}
}

var (
	successExitCode = 0
	errorExitCode   = 1
)

func main() {
	c := config{
		in:      os.Stdin,
		out:     os.Stdout,
		logger:  log.GetLogger(logrus.InfoLevel),
		metrics: os.Stderr,
	}
	os.Exit(c.run())
}
