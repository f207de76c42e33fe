package gp

import (
	"context"

	"github.com/google/uuid"

	"github.com/openterra/gpbridge/pkg/errors"
)

// Raw code bands the runtime classifies messages into. Warnings abort an
// invocation only when the severity threshold is lowered to
// SeverityWarningsAbort; errors abort always.
const (
	warningBand int32 = 50
	errorBand   int32 = 100
)

// StubRuntime is an in-memory Runtime with scriptable message batches. It
// stands in for a host geoprocessing environment in tests, examples, and
// the starter workflow; a real binding implements Runtime the same way.
type StubRuntime struct {
	severity  int
	last      []Message
	workspace string
	overwrite bool
}

// NewStubRuntime creates a stub at the runtime's default threshold.
func NewStubRuntime() *StubRuntime {
	return &StubRuntime{severity: SeverityErrorsAbort}
}

func (s *StubRuntime) SeverityLevel() int {
	return s.severity
}

func (s *StubRuntime) SetSeverityLevel(level int) {
	s.severity = level
}

func (s *StubRuntime) LastMessages() []Message {
	return s.last
}

func (s *StubRuntime) SetWorkspace(path string) {
	s.workspace = path
}

func (s *StubRuntime) SetOverwriteOutput(overwrite bool) {
	s.overwrite = overwrite
}

// Workspace returns the last workspace handed to the stub.
func (s *StubRuntime) Workspace() string {
	return s.workspace
}

// OverwriteOutput returns the last overwrite policy handed to the stub.
func (s *StubRuntime) OverwriteOutput() bool {
	return s.overwrite
}

// Tool builds an Operation that deposits the given batch in the ambient
// buffer and then applies the runtime's abort rules: an error-band message
// always fails the invocation, a warning-band message fails it only when
// the threshold is SeverityWarningsAbort. On success the batch travels on
// the returned Result under a fresh invocation ID.
func (s *StubRuntime) Tool(name string, batch ...Message) Operation {
	return func(ctx context.Context, args ...any) (*Result, error) {
		if err := errors.CheckContext(ctx, name); err != nil {
			return nil, err
		}

		s.last = batch

		for _, m := range batch {
			if m.Code >= errorBand {
				return nil, errors.WithFields(
					errors.New(errors.ToolExecuteFailed, name+" reported a fatal error"),
					errors.Fields{"code": m.Code},
				)
			}
			if s.severity <= SeverityWarningsAbort && m.Code >= warningBand && m.Code < errorBand {
				return nil, errors.WithFields(
					errors.New(errors.ToolWarningEscalated, name+" warning escalated to failure"),
					errors.Fields{"code": m.Code},
				)
			}
		}

		return &Result{
			ID:       uuid.New().String(),
			Messages: batch,
			Output:   args,
		}, nil
	}
}
