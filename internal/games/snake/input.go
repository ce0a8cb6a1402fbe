package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// InputBuffer latches the most recent direction pressed between two ticks.
// Later presses overwrite earlier ones; movement consumes the latch.
type InputBuffer struct {
	dir     core.Direction
	pending bool
}

// Press records d as the latest intent.
func (b *InputBuffer) Press(d core.Direction) {
	b.dir = d
	b.pending = true
}

// Take returns the buffered direction, if any, and empties the latch.
func (b *InputBuffer) Take() (core.Direction, bool) {
	if !b.pending {
		return b.dir, false
	}
	b.pending = false
	return b.dir, true
}

// Pending reports whether a direction is waiting for the next tick.
func (b *InputBuffer) Pending() bool {
	return b.pending
}
