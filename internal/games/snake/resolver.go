package snake

type resolution struct {
	grown int
	lost  bool
}

// resolve applies this tick's events: every Eat first, then the first Bump.
// Eating and dying in the same tick both take effect.
func (w *World) resolve(events Events) resolution {
	var res resolution

	for _, e := range events.Eat {
		food, ok := w.foods.get(e.Eaten)
		if !ok {
			// Two heads reached the same food this tick; the first one in
			// detection order ate it.
			continue
		}
		s := w.snakes[e.Snake]

		tail := w.chains.TailOf(s.Head)
		w.chains.AppendTail(tail, s.vacated)
		w.foods.remove(e.Eaten)
		s.Food++
		res.grown++

		w.log.Debug("food eaten", "snake", s.Index, "at", food.Pos, "food", s.Food, "tick", w.tick)
	}

	if len(events.Bump) > 0 {
		b := events.Bump[0]
		w.log.Info("snake bumped", "snake", b.Snake, "obstacle", b.Obstacle, "tick", w.tick)
		res.lost = w.phase.Fire(TriggerBump)
	}
	return res
}
