package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// spawnFood places one food on a random free cell. A cell is free when no
// segment and no other food occupies it. Nothing happens when the arena is
// full or the concurrent food limit is reached.
func (w *World) spawnFood() (EntityID, bool) {
	if limit := w.cfg.Food.MaxConcurrent; limit > 0 && w.foods.len() >= limit {
		return NoEntity, false
	}

	free := w.grid.FreeCells(w.occupied())
	if len(free) == 0 {
		w.log.Warn("no free cell for food", "tick", w.tick)
		return NoEntity, false
	}

	pos := free[w.rng.Intn(len(free))]
	id := w.placeFood(pos)
	w.log.Debug("food spawned", "id", id, "at", pos, "tick", w.tick)
	return id, true
}

func (w *World) placeFood(pos core.Cell) EntityID {
	id := w.ids.alloc()
	w.foods.insert(id, Food{Pos: pos})
	return id
}

// occupied returns the set of cells holding a segment or a food.
func (w *World) occupied() map[core.Cell]struct{} {
	cells := make(map[core.Cell]struct{}, w.chains.Count()+w.foods.len())
	w.chains.occupy(cells)
	for _, id := range w.foods.order {
		cells[w.foods.items[id].Pos] = struct{}{}
	}
	return cells
}
