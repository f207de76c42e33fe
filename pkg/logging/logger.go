// Package logging provides the leveled logging facility shared by the
// workflow narration stream and the relayed tool-message stream. Levels are
// numeric and mirror the external runtime's severity vocabulary; the
// LevelTable maps raw tool codes onto them.
package logging

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	defaultLogger *Logger
	messageLogger *Logger
	mu            sync.RWMutex
)

// Logger provides the core logging functionality. Each logger has a name, a
// severity threshold, and a set of outputs the formatted entries fan out to.
type Logger struct {
	mu       sync.Mutex
	name     string
	severity Severity
	outputs  []Output
}

// Config allows flexible logger configuration.
type Config struct {
	Name     string
	Severity Severity
	Outputs  []Output
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(cfg Config) *Logger {
	return &Logger{
		name:     cfg.Name,
		severity: cfg.Severity,
		outputs:  cfg.Outputs,
	}
}

// Name returns the logger's name as it appears in formatted lines.
func (l *Logger) Name() string {
	return l.name
}

// Log emits a message at an arbitrary severity. Relayed tool messages use
// this directly with their resolved level.
func (l *Logger) Log(ctx context.Context, s Severity, format string, args ...interface{}) {
	l.logf(ctx, s, format, args...)
}

// logf is the core logging function that handles all severity levels.
func (l *Logger) logf(_ context.Context, s Severity, format string, args ...interface{}) {
	if s < l.severity {
		return
	}

	entry := Entry{
		Time:     time.Now().UnixNano(),
		Severity: s,
		Logger:   l.name,
		Message:  fmt.Sprintf(format, args...),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, out := range l.outputs {
		if err := out.Write(entry); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
		}
	}
}

// Regular severity-based logging methods.
func (l *Logger) Debug(ctx context.Context, format string, args ...interface{}) {
	l.logf(ctx, DEBUG, format, args...)
}

func (l *Logger) Info(ctx context.Context, format string, args ...interface{}) {
	l.logf(ctx, INFO, format, args...)
}

func (l *Logger) Warn(ctx context.Context, format string, args ...interface{}) {
	l.logf(ctx, WARNING, format, args...)
}

func (l *Logger) Error(ctx context.Context, format string, args ...interface{}) {
	l.logf(ctx, ERROR, format, args...)
}

// GetLogger returns the global workflow logger instance.
func GetLogger() *Logger {
	mu.RLock()
	if l := defaultLogger; l != nil {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	if defaultLogger == nil {
		defaultLogger = NewLogger(Config{
			Name:     "workflow",
			Severity: WARNING,
			Outputs:  []Output{NewConsoleOutput(false)},
		})
	}

	return defaultLogger
}

// GetMessageLogger returns the global logger dedicated to relayed tool
// messages.
func GetMessageLogger() *Logger {
	mu.RLock()
	if l := messageLogger; l != nil {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	if messageLogger == nil {
		messageLogger = NewLogger(Config{
			Name:     "ToolMessages",
			Severity: NOTSET,
			Outputs:  []Output{NewConsoleOutput(false)},
		})
	}

	return messageLogger
}

// SetLoggers installs a custom configured workflow/message logger pair as
// the global instances.
func SetLoggers(workflow, messages *Logger) {
	mu.Lock()
	defaultLogger = workflow
	messageLogger = messages
	mu.Unlock()
}
