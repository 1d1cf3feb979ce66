package lineproc

import "unicode/utf8"

const (
	// StopText is the record that terminates the pipeline.
	StopText = "STOP"

	sentinelRaw        = StopText + "\n"
	sentinelNormalized = StopText + " "
)

// Line is a single text record owned by one stage at a time. A producer
// must not touch the line after it was handed over to the next stage.
type Line []byte

// Sentinel returns a new sentinel line as it is created by the reader.
func Sentinel() Line {
	return Line(sentinelRaw)
}

// IsSentinel reports if the line is the sentinel, either as read or
// after its terminator was normalized to a space.
func (l Line) IsSentinel() bool {
	s := string(l)
	return s == sentinelRaw || s == sentinelNormalized
}

// Len returns the number of characters in the line.
func (l Line) Len() int {
	return utf8.RuneCount(l)
}

// String returns line content.
func (l Line) String() string {
	return string(l)
}
