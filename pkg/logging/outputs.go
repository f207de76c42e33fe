package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// Output interface allows for different logging destinations.
type Output interface {
	Write(Entry) error
	Sync() error
	Close() error
}

// lineTimeFormat matches the file format's timestamp down to milliseconds.
const lineTimeFormat = "2006-01-02 15:04:05,000"

// FormatEntry renders an entry in the canonical line format:
// timestamp, logger name padded to 16, level name padded to 11, two spaces,
// then the message. Names longer than their field are truncated.
func FormatEntry(e Entry) string {
	return fmt.Sprintf("%s [%-16.16s] [%-11.11s]  %s",
		time.Unix(0, e.Time).Format(lineTimeFormat),
		e.Logger,
		Levels().Name(e.Severity),
		e.Message,
	)
}

// ConsoleOutput formats logs for human readability.
type ConsoleOutput struct {
	mu     sync.Mutex
	writer io.Writer
	color  bool
}

type ConsoleOutputOption func(*ConsoleOutput)

// WithColor overrides the terminal autodetection.
func WithColor(enabled bool) ConsoleOutputOption {
	return func(c *ConsoleOutput) {
		c.color = enabled
	}
}

// NewConsoleOutput creates a console destination. Color is enabled when the
// chosen stream is a terminal.
func NewConsoleOutput(useStderr bool, opts ...ConsoleOutputOption) *ConsoleOutput {
	writer := os.Stdout
	if useStderr {
		writer = os.Stderr
	}

	c := &ConsoleOutput{
		writer: writer,
		color:  isatty.IsTerminal(writer.Fd()) || isatty.IsCygwinTerminal(writer.Fd()),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Helper function to get ANSI color codes for different severity levels.
func getSeverityColor(s Severity) string {
	switch {
	case s < INFO:
		return "\033[37m" // Gray
	case s < WARNING:
		return "\033[32m" // Green
	case s < ERROR:
		return "\033[33m" // Yellow
	default:
		return "\033[31m" // Red
	}
}

func (o *ConsoleOutput) Write(e Entry) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	line := FormatEntry(e)
	if o.color {
		line = getSeverityColor(e.Severity) + line + "\033[0m"
	}

	_, err := fmt.Fprintln(o.writer, line)
	return err
}

func (o *ConsoleOutput) Sync() error {
	if syncer, ok := o.writer.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}
	return nil
}

// Close cleans up any resources.
func (o *ConsoleOutput) Close() error {
	if closer, ok := o.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// FileOutput appends formatted entries to a log file. The file is truncated
// on open so each run starts a fresh record.
type FileOutput struct {
	mu   sync.Mutex
	file *os.File
}

// NewFileOutput opens (and truncates) the log file at path.
func NewFileOutput(path string) (*FileOutput, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return &FileOutput{file: f}, nil
}

func (o *FileOutput) Write(e Entry) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := fmt.Fprintln(o.file, FormatEntry(e))
	return err
}

func (o *FileOutput) Sync() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.file.Sync()
}

func (o *FileOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.file.Close()
}
