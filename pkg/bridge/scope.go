package bridge

import "context"

// PushSeverity saves the runtime's current failure threshold, installs
// level in its place, and returns the restore func. Callers defer the
// restore so the previous threshold comes back on every exit path,
// including panics. Nested scopes restore in strict reverse order of
// acquisition.
func (b *Bridge) PushSeverity(ctx context.Context, level int) (restore func()) {
	b.mu.Lock()
	prev := b.rt.SeverityLevel()
	b.stack = append(b.stack, prev)
	b.rt.SetSeverityLevel(level)
	b.mu.Unlock()

	b.log.Debug(ctx, "tool severity set to level %d", level)

	return func() {
		b.mu.Lock()
		n := len(b.stack) - 1
		saved := b.stack[n]
		b.stack = b.stack[:n]
		b.rt.SetSeverityLevel(saved)
		b.mu.Unlock()

		b.log.Debug(ctx, "tool severity level set to %d", saved)
	}
}
