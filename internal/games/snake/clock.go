package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Clock is a fixed-timestep accumulator with two independent timers: the
// movement tick and the food spawner. Presentation feeds it frame time and
// it reports how many of each are due.
type Clock struct {
	tickInterval time.Duration
	foodInterval time.Duration
	maxCatchUp   int

	moveAcc time.Duration
	foodAcc time.Duration
}

// NewClock creates a clock from the timing configuration.
func NewClock(t config.TimingConfig) *Clock {
	return &Clock{
		tickInterval: t.TickInterval,
		foodInterval: t.FoodInterval,
		maxCatchUp:   max(t.MaxCatchUp, 1),
	}
}

// Advance adds dt to both timers and returns the number of movement ticks
// and food firings that elapsed. Each count is capped at maxCatchUp; time
// beyond the cap is dropped rather than replayed later.
func (c *Clock) Advance(dt time.Duration) (ticks, spawns int) {
	if dt <= 0 {
		return 0, 0
	}
	c.moveAcc += dt
	c.foodAcc += dt

	ticks = drain(&c.moveAcc, c.tickInterval, c.maxCatchUp)
	spawns = drain(&c.foodAcc, c.foodInterval, c.maxCatchUp)
	return ticks, spawns
}

// Pending returns the time accumulated toward the next movement tick.
func (c *Clock) Pending() time.Duration {
	return c.moveAcc
}

func drain(acc *time.Duration, interval time.Duration, limit int) int {
	n := int(*acc / interval)
	*acc -= time.Duration(n) * interval
	return min(n, limit)
}
