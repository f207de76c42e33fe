// Package bridge merges the external runtime's diagnostics into the leveled
// logging facility. It wraps tool invocations so every call's messages are
// retrieved, classified, and logged in order, and any failure is re-raised
// after being recorded.
package bridge

import (
	"context"
	"sync"

	"github.com/openterra/gpbridge/pkg/errors"
	"github.com/openterra/gpbridge/pkg/gp"
	"github.com/openterra/gpbridge/pkg/logging"
)

// Bridge owns the diagnostic state for one process: the level table, the
// workflow and tool-message loggers, and the stack of saved severity
// thresholds. It is designed for a single active caller; the mutex keeps
// the threshold stack balanced if call sites ever overlap.
type Bridge struct {
	mu     sync.Mutex
	rt     gp.Runtime
	levels *logging.LevelTable
	log    *logging.Logger
	msgs   *logging.Logger
	stack  []int
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLevelTable overrides the process-default level table.
func WithLevelTable(t *logging.LevelTable) Option {
	return func(b *Bridge) {
		b.levels = t
	}
}

// WithLoggers overrides the global workflow and tool-message loggers.
func WithLoggers(workflow, messages *logging.Logger) Option {
	return func(b *Bridge) {
		b.log = workflow
		b.msgs = messages
	}
}

// New creates a Bridge over the given runtime, defaulting to the process
// level table and the global logger pair.
func New(rt gp.Runtime, opts ...Option) *Bridge {
	b := &Bridge{
		rt:     rt,
		levels: logging.Levels(),
		log:    logging.GetLogger(),
		msgs:   logging.GetMessageLogger(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Invoke runs one wrapped tool call: it logs the call signature, raises the
// runtime's failure threshold to severity for the duration, invokes op,
// logs the classified outcome, relays the invocation's messages, and
// restores the previous threshold. Failures are never swallowed; the
// original error returns to the caller after diagnostics are recorded.
func (b *Bridge) Invoke(ctx context.Context, name string, severity int, op gp.Operation, args ...any) (*gp.Result, error) {
	restore := b.PushSeverity(ctx, severity)
	defer restore()

	b.log.Info(ctx, "Starting %s with %v", name, args)

	res, err := op(ctx, args...)
	if err != nil {
		switch errors.Code(err) {
		case errors.ToolExecuteFailed:
			b.log.Error(ctx, "%s failed with a tool error", name)
		case errors.ToolWarningEscalated:
			b.log.Error(ctx, "%s stopped on a warning escalated to failure", name)
		default:
			b.log.Error(ctx, "Unexpected error in %s: %v", name, err)
		}
		// No invocation handle exists on failure; drain the ambient batch.
		b.Relay(ctx, nil)
		return nil, err
	}

	b.log.Info(ctx, "%s executed successfully", name)
	b.Relay(ctx, res)
	return res, nil
}

// Wrap binds an operation to the bridge so call sites can pass it around
// as a plain Operation that logs and relays on every call.
func (b *Bridge) Wrap(name string, severity int, op gp.Operation) gp.Operation {
	return func(ctx context.Context, args ...any) (*gp.Result, error) {
		return b.Invoke(ctx, name, severity, op, args...)
	}
}
