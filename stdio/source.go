// Package stdio provides the reader and the formatter stages that connect
// the pipeline with text streams.
package stdio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pipelined/lineproc"
	"github.com/pipelined/lineproc/log"
)

// Source returns reader stage. It reads newline-terminated records from r
// until the "STOP" record. At most MaxLines lines are produced, the
// sentinel counting as one of them: if record number MaxLines isn't
// "STOP", it's dropped and the sentinel is produced instead. The source
// cannot be reused for consequent runs.
func Source(r io.Reader, options ...SourceOption) lineproc.SourceAllocatorFunc {
	return func(cfg lineproc.Config) (lineproc.Source, error) {
		if err := cfg.Validate(); err != nil {
			return lineproc.Source{}, err
		}
		s := reader{
			r:         bufio.NewReader(r),
			log:       log.Silent(),
			maxLines:  cfg.MaxLines,
			maxLength: cfg.MaxLineLength,
		}
		for _, option := range options {
			option(&s)
		}
		return lineproc.Source{
			Name:       "reader",
			SourceFunc: s.read,
		}, nil
	}
}

// SourceOption provides a way to set functional parameters to the reader.
type SourceOption func(*reader)

// WithLogger sets logger to the reader. It reports records that were
// never read because of the line cap. If this option is not provided,
// silent logger is used.
func WithLogger(l logrus.FieldLogger) SourceOption {
	return func(s *reader) {
		s.log = l
	}
}

type reader struct {
	r         *bufio.Reader
	log       logrus.FieldLogger
	maxLines  int
	maxLength int
	count     int
	stopped   bool
}

func (s *reader) read() (lineproc.Line, error) {
	if s.stopped {
		return nil, lineproc.ErrStopped
	}

	record, err := s.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return nil, fmt.Errorf("read record %d: %w", s.count+1, err)
		}
		if record == "" {
			return nil, lineproc.ErrNoSentinel
		}
	}
	s.count++

	payload := strings.TrimSuffix(record, "\n")
	if strings.TrimSuffix(payload, "\r") == lineproc.StopText {
		s.stopped = true
		return lineproc.Sentinel(), nil
	}
	// the sentinel is one of maxLines lines
	if s.count == s.maxLines {
		s.stopped = true
		s.log.WithFields(logrus.Fields{
			"max_lines": s.maxLines,
			"record":    s.count,
		}).Warn("line cap reached, record dropped")
		return lineproc.Sentinel(), nil
	}
	return lineproc.Line(truncate(payload, s.maxLength) + "\n"), nil
}

// truncate limits s to n characters.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
