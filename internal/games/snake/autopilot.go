package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Autopilot picks a heading for snake i that avoids occupied cells and
// closes the distance to the nearest food. It returns false when every
// non-reversing move is blocked. Used by headless runs.
func Autopilot(s Snapshot, i int) (core.Direction, bool) {
	if i < 0 || i >= len(s.Snakes) {
		return core.DirUp, false
	}
	me := s.Snakes[i]
	head := me.Head()
	occupied := s.Occupied()

	best := me.Direction
	bestScore := -1
	found := false

	for _, d := range core.Directions {
		if d == me.Direction.Opposite() {
			continue
		}
		next := s.Grid.Step(head, d)
		if _, blocked := occupied[next]; blocked {
			continue
		}

		score := s.Grid.Area() // no food: every safe move is equal
		for _, f := range s.Foods {
			score = min(score, s.Grid.Distance(next, f.Pos))
		}
		// Prefer going straight on ties to keep the path smooth.
		if d == me.Direction {
			score = score*2 - 1
		} else {
			score *= 2
		}

		if !found || score < bestScore {
			best, bestScore, found = d, score, true
		}
	}
	return best, found
}
