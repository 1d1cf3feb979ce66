package stdio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipelined/lineproc"
	"github.com/pipelined/lineproc/mock"
	"github.com/pipelined/lineproc/stdio"
)

// readAll calls source function until the sentinel or an error.
func readAll(t *testing.T, source lineproc.Source) ([]string, error) {
	t.Helper()
	var lines []string
	for {
		l, err := source.SourceFunc()
		if err != nil {
			return lines, err
		}
		if l.IsSentinel() {
			return lines, nil
		}
		lines = append(lines, l.String())
	}
}

func TestSource(t *testing.T) {
	cfg := func(maxLines, maxLength int) lineproc.Config {
		c := lineproc.DefaultConfig()
		c.MaxLines = maxLines
		c.MaxLineLength = maxLength
		return c
	}
	mockError := errors.New("mock error")
	var tests = []struct {
		name     string
		cfg      lineproc.Config
		input    io.Reader
		expected []string
		err      error
	}{
		{
			name:     "ok",
			cfg:      lineproc.DefaultConfig(),
			input:    strings.NewReader("a++b\ncccc\nSTOP\n"),
			expected: []string{"a++b\n", "cccc\n"},
		},
		{
			name:     "no reads after sentinel",
			cfg:      lineproc.DefaultConfig(),
			input:    strings.NewReader("a\nSTOP\nb\n"),
			expected: []string{"a\n"},
		},
		{
			name:     "crlf sentinel",
			cfg:      lineproc.DefaultConfig(),
			input:    strings.NewReader("a\r\nSTOP\r\n"),
			expected: []string{"a\r\n"},
		},
		{
			name:     "unterminated sentinel",
			cfg:      lineproc.DefaultConfig(),
			input:    strings.NewReader("a\nSTOP"),
			expected: []string{"a\n"},
		},
		{
			name:     "sentinel is case sensitive",
			cfg:      lineproc.DefaultConfig(),
			input:    strings.NewReader("stop\n STOP\nSTOP\n"),
			expected: []string{"stop\n", " STOP\n"},
		},
		{
			name:     "empty records",
			cfg:      lineproc.DefaultConfig(),
			input:    strings.NewReader("\n\nSTOP\n"),
			expected: []string{"\n", "\n"},
		},
		{
			name:     "truncated",
			cfg:      cfg(lineproc.DefaultMaxLines, 5),
			input:    strings.NewReader("abcdefg\nab\nSTOP\n"),
			expected: []string{"abcde\n", "ab\n"},
		},
		{
			name:     "truncated runes",
			cfg:      cfg(lineproc.DefaultMaxLines, 5),
			input:    strings.NewReader("äöüäöüä\nSTOP\n"),
			expected: []string{"äöüäö\n"},
		},
		{
			name:     "truncated stop prefix",
			cfg:      cfg(lineproc.DefaultMaxLines, 5),
			input:    strings.NewReader("STOPPING\nSTOP\n"),
			expected: []string{"STOPP\n"},
		},
		{
			name:     "line cap",
			cfg:      cfg(3, lineproc.DefaultMaxLineLength),
			input:    strings.NewReader("a\nb\nc\nd\n"),
			expected: []string{"a\n", "b\n"},
		},
		{
			name:     "sentinel at line cap",
			cfg:      cfg(3, lineproc.DefaultMaxLineLength),
			input:    strings.NewReader("a\nb\nSTOP\n"),
			expected: []string{"a\n", "b\n"},
		},
		{
			name:     "no sentinel before line cap",
			cfg:      cfg(3, lineproc.DefaultMaxLineLength),
			input:    strings.NewReader("a\nb\n"),
			expected: []string{"a\n", "b\n"},
			err:      lineproc.ErrNoSentinel,
		},
		{
			name:     "no sentinel",
			cfg:      lineproc.DefaultConfig(),
			input:    strings.NewReader("a\nb\n"),
			expected: []string{"a\n", "b\n"},
			err:      lineproc.ErrNoSentinel,
		},
		{
			name:     "unterminated last record",
			cfg:      lineproc.DefaultConfig(),
			input:    strings.NewReader("a\nb"),
			expected: []string{"a\n", "b\n"},
			err:      lineproc.ErrNoSentinel,
		},
		{
			name:  "empty input",
			cfg:   lineproc.DefaultConfig(),
			input: strings.NewReader(""),
			err:   io.ErrUnexpectedEOF,
		},
		{
			name:     "read error",
			cfg:      lineproc.DefaultConfig(),
			input:    &mock.Reader{Data: "a\nb", Err: mockError},
			expected: []string{"a\n"},
			err:      mockError,
		},
	}

	for _, c := range tests {
		t.Run(c.name, func(t *testing.T) {
			source, err := stdio.Source(c.input)(c.cfg)
			require.NoError(t, err)
			assert.Equal(t, "reader", source.Name)

			lines, err := readAll(t, source)
			assert.Equal(t, c.expected, lines)
			if c.err != nil {
				assert.True(t, errors.Is(err, c.err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			// source is stopped after the sentinel
			_, err = source.SourceFunc()
			assert.Equal(t, lineproc.ErrStopped, err)
		})
	}
}

func TestSourceLineCapWarning(t *testing.T) {
	cfg := lineproc.DefaultConfig()
	cfg.MaxLines = 2

	testDropped := func(t *testing.T) {
		logger, hook := logtest.NewNullLogger()
		source, err := stdio.Source(strings.NewReader("a\nb\nSTOP\n"), stdio.WithLogger(logger))(cfg)
		require.NoError(t, err)

		lines, err := readAll(t, source)
		require.NoError(t, err)
		assert.Equal(t, []string{"a\n"}, lines)
		require.Len(t, hook.AllEntries(), 1)
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
		assert.Equal(t, 2, hook.LastEntry().Data["record"])
	}
	testSentinel := func(t *testing.T) {
		logger, hook := logtest.NewNullLogger()
		source, err := stdio.Source(strings.NewReader("a\nSTOP\n"), stdio.WithLogger(logger))(cfg)
		require.NoError(t, err)

		lines, err := readAll(t, source)
		require.NoError(t, err)
		assert.Equal(t, []string{"a\n"}, lines)
		assert.Empty(t, hook.AllEntries())
	}

	t.Run("record dropped", testDropped)
	t.Run("sentinel at cap", testSentinel)
}

func TestSourceInvalidConfig(t *testing.T) {
	cfg := lineproc.DefaultConfig()
	cfg.MaxLineLength = len(lineproc.StopText)
	_, err := stdio.Source(strings.NewReader("STOP\n"))(cfg)
	assert.True(t, errors.Is(err, lineproc.ErrInvalidConfig))
}

func TestSourceLineLength(t *testing.T) {
	long := strings.Repeat("x", lineproc.DefaultMaxLineLength+10)
	source, err := stdio.Source(strings.NewReader(long + "\nSTOP\n"))(lineproc.DefaultConfig())
	require.NoError(t, err)

	l, err := source.SourceFunc()
	require.NoError(t, err)
	assert.Equal(t, lineproc.DefaultMaxLineLength+1, l.Len())
	assert.Equal(t, byte('\n'), l[len(l)-1])
}
