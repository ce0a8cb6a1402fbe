package snake

// EatEvent is emitted when a head shares a cell with a food.
type EatEvent struct {
	Snake int      // Index of the eating snake
	Eater EntityID // Head segment
	Eaten EntityID // Food
}

// BumpEvent is emitted when a head shares a cell with a body segment.
type BumpEvent struct {
	Snake    int      // Index of the bumping snake
	Head     EntityID // Head segment
	Obstacle EntityID // Body segment that was hit
}

// Events holds the collisions detected in one tick, in detection order.
// They are consumed by the resolver in the same tick and never persist.
type Events struct {
	Eat  []EatEvent
	Bump []BumpEvent
}

// Empty reports whether no collision was detected.
func (e Events) Empty() bool {
	return len(e.Eat) == 0 && len(e.Bump) == 0
}
