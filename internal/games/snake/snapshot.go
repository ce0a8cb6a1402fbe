package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeState is a read-only copy of one snake.
type SnakeState struct {
	Index     int
	Direction core.Direction
	Food      int
	Segments  []SegmentPosition // Head first
}

// Head returns the head cell.
func (s SnakeState) Head() core.Cell {
	return s.Segments[0].Pos
}

// Len returns the number of segments.
func (s SnakeState) Len() int {
	return len(s.Segments)
}

// FoodState is a read-only copy of one food.
type FoodState struct {
	ID  EntityID
	Pos core.Cell
}

// Snapshot is a consistent copy of the world taken between ticks.
// It shares no memory with the world and may be read from any goroutine.
type Snapshot struct {
	Tick   uint64
	Phase  Phase
	Grid   core.Grid
	Snakes []SnakeState
	Foods  []FoodState
}

// Snapshot copies the world state under the read lock.
func (w *World) Snapshot() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()

	snap := Snapshot{
		Tick:   w.tick,
		Phase:  w.phase.Current(),
		Grid:   w.grid,
		Snakes: make([]SnakeState, 0, len(w.snakes)),
		Foods:  make([]FoodState, 0, w.foods.len()),
	}
	for _, s := range w.snakes {
		snap.Snakes = append(snap.Snakes, SnakeState{
			Index:     s.Index,
			Direction: s.Direction,
			Food:      s.Food,
			Segments:  w.chains.Snapshot(s.Head),
		})
	}
	for _, id := range w.foods.order {
		snap.Foods = append(snap.Foods, FoodState{ID: id, Pos: w.foods.items[id].Pos})
	}
	return snap
}

// Score returns the food eaten by snake i, or 0 if it does not exist.
func (s Snapshot) Score(i int) int {
	if i < 0 || i >= len(s.Snakes) {
		return 0
	}
	return s.Snakes[i].Food
}

// Occupied returns the cells holding a segment.
func (s Snapshot) Occupied() map[core.Cell]struct{} {
	cells := make(map[core.Cell]struct{})
	for _, sn := range s.Snakes {
		for _, seg := range sn.Segments {
			cells[seg.Pos] = struct{}{}
		}
	}
	return cells
}

// String returns a compact multi-line description for debugging and the sim command.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Phase: %s, Arena: %dx%d\n", s.Tick, s.Phase, s.Grid.Width, s.Grid.Height)
	for _, sn := range s.Snakes {
		fmt.Fprintf(&b, "Snake %d: len %d, food %d, heading %s, head %v\n",
			sn.Index, sn.Len(), sn.Food, sn.Direction, sn.Head())
	}
	for _, f := range s.Foods {
		fmt.Fprintf(&b, "Food %d at %v\n", f.ID, f.Pos)
	}
	return b.String()
}
