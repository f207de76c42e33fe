package bridge

import (
	"context"

	"github.com/openterra/gpbridge/pkg/gp"
)

// Relay drains one invocation's message batch into the tool-message logger.
// With a result handle the batch comes from the handle and every line is
// prefixed with the invocation ID; with res nil the runtime's ambient
// last-message buffer is used unprefixed. Messages are emitted in original
// order, each at its resolved level, and the consumed batch is returned for
// downstream inspection.
func (b *Bridge) Relay(ctx context.Context, res *gp.Result) []gp.Message {
	var batch []gp.Message
	var prefix string

	if res != nil {
		batch = res.Messages
		prefix = res.ID + " | "
	} else {
		batch = b.rt.LastMessages()
	}

	for _, m := range batch {
		b.msgs.Log(ctx, b.levels.Resolve(m.Code), "%s%s", prefix, m.Text)
	}

	return batch
}
