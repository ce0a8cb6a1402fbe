package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Segment is one body piece of a snake, head included.
// Front points toward the head and Back toward the tail; both are handles
// into the same arena, never pointers.
type Segment struct {
	Pos   core.Cell
	Front EntityID // NoEntity for the head
	Back  EntityID // NoEntity for the tail
}

// SegmentPosition pairs a segment handle with its cell.
type SegmentPosition struct {
	ID  EntityID
	Pos core.Cell
}

// Chains holds the segments of every snake in one arena.
type Chains struct {
	ids      *idAllocator
	segments *store[Segment]
}

func newChains(ids *idAllocator) *Chains {
	return &Chains{
		ids:      ids,
		segments: newStore[Segment](),
	}
}

// SpawnHead creates a lone head segment and returns its handle.
func (c *Chains) SpawnHead(pos core.Cell) EntityID {
	id := c.ids.alloc()
	c.segments.insert(id, Segment{Pos: pos})
	return id
}

// AppendTail creates a segment behind tail. tail must be the current tail
// of its chain; the new segment becomes the tail.
func (c *Chains) AppendTail(tail EntityID, pos core.Cell) EntityID {
	old := c.segments.mustGet(tail)
	if old.Back != NoEntity {
		panic(fmt.Sprintf("snake: append behind %d, which is not a tail", tail))
	}

	id := c.ids.alloc()
	c.segments.insert(id, Segment{Pos: pos, Front: tail})
	old.Back = id
	c.segments.set(tail, old)
	return id
}

// Segment returns the segment for id. It panics if id does not exist.
func (c *Chains) Segment(id EntityID) Segment {
	return c.segments.mustGet(id)
}

// TailOf walks Back links from head to the last segment.
func (c *Chains) TailOf(head EntityID) EntityID {
	tail := head
	for steps := 0; ; steps++ {
		seg := c.segments.mustGet(tail)
		if seg.Back == NoEntity {
			return tail
		}
		if steps > c.segments.len() {
			panic(fmt.Sprintf("snake: chain from %d has a cycle", head))
		}
		tail = seg.Back
	}
}

// Snapshot returns every segment of the chain ordered head to tail.
func (c *Chains) Snapshot(head EntityID) []SegmentPosition {
	var out []SegmentPosition
	for id := head; id != NoEntity; {
		seg := c.segments.mustGet(id)
		out = append(out, SegmentPosition{ID: id, Pos: seg.Pos})
		if len(out) > c.segments.len() {
			panic(fmt.Sprintf("snake: chain from %d has a cycle", head))
		}
		id = seg.Back
	}
	return out
}

// Len returns the number of segments in the chain starting at head.
func (c *Chains) Len(head EntityID) int {
	return len(c.Snapshot(head))
}

// Count returns the number of live segments across all chains.
func (c *Chains) Count() int {
	return c.segments.len()
}

// Destroy removes a whole chain.
func (c *Chains) Destroy(head EntityID) {
	for _, sp := range c.Snapshot(head) {
		c.segments.remove(sp.ID)
	}
}

func (c *Chains) setPos(id EntityID, pos core.Cell) {
	seg := c.segments.mustGet(id)
	seg.Pos = pos
	c.segments.set(id, seg)
}

// occupy adds every live segment cell to occupied.
func (c *Chains) occupy(occupied map[core.Cell]struct{}) {
	for _, id := range c.segments.order {
		occupied[c.segments.items[id].Pos] = struct{}{}
	}
}
