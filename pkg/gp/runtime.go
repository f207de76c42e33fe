// Package gp defines the surface of the external geoprocessing runtime the
// bridge talks to: its severity threshold, its ambient message buffer, and
// the shape of a wrapped tool invocation.
package gp

import "context"

// Message is one diagnostic entry produced by the runtime for an
// invocation. Ordering within a batch is significant and preserved
// end-to-end into the log sink.
type Message struct {
	// Code is the raw severity code as reported by the runtime, before any
	// collision shift is applied.
	Code int32

	// Text is the message body.
	Text string
}

// Result is the handle for one completed invocation.
type Result struct {
	// ID uniquely identifies the invocation; relayed lines are prefixed
	// with it to disambiguate interleaved relays.
	ID string

	// Messages is the ordered batch the invocation produced.
	Messages []Message

	// Output carries the operation's return value, if any.
	Output any
}

// Operation is a tool invocation the bridge can wrap. It blocks until the
// runtime finishes or reports a failure.
type Operation func(ctx context.Context, args ...any) (*Result, error)

// Severity threshold values understood by the runtime.
const (
	// SeverityErrorsAbort aborts an invocation only on fatal-class
	// messages. This is the runtime's default.
	SeverityErrorsAbort = 2

	// SeverityWarningsAbort escalates warning-class messages to failures.
	SeverityWarningsAbort = 1
)

// Runtime is the external geoprocessing environment. It owns the process
// failure threshold and the ambient buffer holding the last invocation's
// messages.
type Runtime interface {
	// SeverityLevel returns the current failure threshold.
	SeverityLevel() int

	// SetSeverityLevel installs a new failure threshold. Callers go through
	// the bridge's severity scope so the previous value is restored.
	SetSeverityLevel(level int)

	// LastMessages returns the ordered message batch of the most recent
	// invocation.
	LastMessages() []Message

	// SetWorkspace points the runtime at a working directory.
	SetWorkspace(path string)

	// SetOverwriteOutput toggles whether outputs may replace existing data.
	SetOverwriteOutput(overwrite bool)
}
