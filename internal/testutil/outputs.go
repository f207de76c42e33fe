// Package testutil provides shared test helpers for packages that assert on
// emitted log entries.
package testutil

import (
	"sync"

	"github.com/openterra/gpbridge/pkg/logging"
)

// CaptureOutput is a logging.Output that records every entry it receives.
type CaptureOutput struct {
	mu      sync.Mutex
	entries []logging.Entry
}

// NewCaptureOutput creates an empty capture destination.
func NewCaptureOutput() *CaptureOutput {
	return &CaptureOutput{entries: make([]logging.Entry, 0)}
}

func (c *CaptureOutput) Write(entry logging.Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry)
	return nil
}

func (c *CaptureOutput) Sync() error {
	return nil
}

func (c *CaptureOutput) Close() error {
	return nil
}

// Entries returns a copy of the recorded entries in emission order.
func (c *CaptureOutput) Entries() []logging.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]logging.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// AtSeverity returns the recorded entries with the given level, in order.
func (c *CaptureOutput) AtSeverity(s logging.Severity) []logging.Entry {
	var out []logging.Entry
	for _, e := range c.Entries() {
		if e.Severity == s {
			out = append(out, e)
		}
	}
	return out
}
