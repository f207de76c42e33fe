package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEntry(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 30, 5, 250_000_000, time.Local)

	tests := []struct {
		name     string
		entry    Entry
		expected string
	}{
		{
			name: "PaddedFields",
			entry: Entry{
				Time:     ts.UnixNano(),
				Severity: INFO,
				Logger:   "gpbridge",
				Message:  "Starting workflow",
			},
			expected: "2024-03-09 14:30:05,250 [gpbridge        ] [INFO       ]  Starting workflow",
		},
		{
			name: "TruncatedLoggerName",
			entry: Entry{
				Time:     ts.UnixNano(),
				Severity: ERROR,
				Logger:   "a-logger-name-well-past-sixteen",
				Message:  "boom",
			},
			expected: "2024-03-09 14:30:05,250 [a-logger-name-we] [ERROR      ]  boom",
		},
		{
			name: "ToolLevelName",
			entry: Entry{
				Time:     ts.UnixNano(),
				Severity: GDBError,
				Logger:   "ToolMessages",
				Message:  "schema lock",
			},
			expected: "2024-03-09 14:30:05,250 [ToolMessages    ] [GDB_ERROR  ]  schema lock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatEntry(tt.entry))
		})
	}
}

func TestConsoleOutputColor(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		color    bool
	}{
		{"ColorDebug", DEBUG, true},
		{"ColorInfo", INFO, true},
		{"ColorWarn", WARNING, true},
		{"ColorError", ERROR, true},
		{"ColorAbort", ABORT, true},
		{"NoColor", INFO, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buffer := &bytes.Buffer{}
			console := &ConsoleOutput{
				writer: buffer,
				color:  tt.color,
			}

			entry := Entry{
				Time:     time.Now().UnixNano(),
				Severity: tt.severity,
				Message:  "test message",
			}

			err := console.Write(entry)
			require.NoError(t, err)

			output := buffer.String()
			if tt.color {
				assert.Contains(t, output, "\033[")
			} else {
				assert.NotContains(t, output, "\033[")
			}
		})
	}
}

func TestFileOutputWritesLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	out, err := NewFileOutput(path)
	require.NoError(t, err)

	entry := Entry{
		Time:     time.Now().UnixNano(),
		Severity: WARNING,
		Logger:   "gpbridge",
		Message:  "low disk space",
	}
	require.NoError(t, out.Write(entry))
	require.NoError(t, out.Sync())
	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[WARNING    ]  low disk space")
}

func TestFileOutputTruncatesOnOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	out, err := NewFileOutput(path)
	require.NoError(t, err)
	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileOutputBadPath(t *testing.T) {
	_, err := NewFileOutput(filepath.Join(t.TempDir(), "missing", "run.log"))
	assert.Error(t, err)
}
