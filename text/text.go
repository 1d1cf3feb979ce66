// Package text provides processors that transform lines between the
// reader and the formatter.
package text

import "github.com/pipelined/lineproc"

// Normalizer returns processor that replaces line terminators with
// spaces.
func Normalizer() lineproc.ProcessorAllocatorFunc {
	return func(lineproc.Config) (lineproc.Processor, error) {
		return lineproc.Processor{
			Name: "normalizer",
			ProcessFunc: func(l lineproc.Line) (lineproc.Line, error) {
				return Normalize(l), nil
			},
		}, nil
	}
}

// Rewriter returns processor that replaces every "++" with configured
// marker.
func Rewriter() lineproc.ProcessorAllocatorFunc {
	return func(cfg lineproc.Config) (lineproc.Processor, error) {
		marker := cfg.Marker
		return lineproc.Processor{
			Name: "rewriter",
			ProcessFunc: func(l lineproc.Line) (lineproc.Line, error) {
				return Rewrite(l, marker), nil
			},
		}, nil
	}
}

// Normalize replaces every '\n' and '\r' with a space in place. Length of
// the line is preserved.
func Normalize(l lineproc.Line) lineproc.Line {
	for i := range l {
		if l[i] == '\n' || l[i] == '\r' {
			l[i] = ' '
		}
	}
	return l
}

// Rewrite replaces every non-overlapping "++" with the marker in place.
// The scan resumes right after the inserted marker, so "+++" becomes
// marker followed by '+'. The returned line is shorter by one character
// per replacement.
func Rewrite(l lineproc.Line, marker byte) lineproc.Line {
	n := 0
	for i := 0; i < len(l); i++ {
		if l[i] == '+' && i+1 < len(l) && l[i+1] == '+' {
			l[n] = marker
			n++
			i++
			continue
		}
		l[n] = l[i]
		n++
	}
	return l[:n]
}
