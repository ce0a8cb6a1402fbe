package snake

// detectCollisions compares every head against every food and every non-head
// segment. It reads state only; resolution happens afterwards against the
// events it returns. Order: snakes by index, then foods and segments in
// creation order.
func (w *World) detectCollisions() Events {
	var events Events

	for _, s := range w.snakes {
		head := w.chains.Segment(s.Head)

		for _, fid := range w.foods.order {
			if w.foods.items[fid].Pos == head.Pos {
				events.Eat = append(events.Eat, EatEvent{Snake: s.Index, Eater: s.Head, Eaten: fid})
			}
		}

		for _, sid := range w.chains.segments.order {
			seg := w.chains.segments.items[sid]
			if seg.Front == NoEntity {
				continue // heads are not obstacles
			}
			if seg.Pos == head.Pos {
				events.Bump = append(events.Bump, BumpEvent{Snake: s.Index, Head: s.Head, Obstacle: sid})
			}
		}
	}
	return events
}
