package snake

import "github.com/vovakirdan/tui-snake/internal/core"

func (w *World) moveSnakes() {
	for _, s := range w.snakes {
		w.moveSnake(s)
	}
}

// moveSnake turns the head by the buffered direction, advances it one cell
// with wrap, then shifts every body segment into the cell its front neighbor
// held before this tick. New positions are computed from a snapshot taken
// before any write.
func (w *World) moveSnake(s *Snake) {
	if dir, ok := s.input.Take(); ok && dir != s.Direction.Opposite() {
		s.Direction = dir
	}

	before := w.chains.Snapshot(s.Head)
	s.vacated = before[len(before)-1].Pos

	next := make([]core.Cell, len(before))
	next[0] = w.grid.Step(before[0].Pos, s.Direction)
	for i := 1; i < len(before); i++ {
		next[i] = before[i-1].Pos
	}

	for i, sp := range before {
		w.chains.setPos(sp.ID, next[i])
	}
}
