package snake

import "fmt"

// EntityID is a stable handle to a segment or food. Handles are allocated
// once per world and never reused; the zero value means "no entity".
type EntityID uint64

// NoEntity marks an absent link.
const NoEntity EntityID = 0

// idAllocator hands out world-unique entity handles.
type idAllocator struct {
	next EntityID
}

func (a *idAllocator) alloc() EntityID {
	a.next++
	return a.next
}

// store is an arena of components keyed by entity handle.
// Iteration follows insertion order so every pass over it is deterministic.
type store[T any] struct {
	items map[EntityID]T
	order []EntityID
}

func newStore[T any]() *store[T] {
	return &store[T]{
		items: make(map[EntityID]T),
		order: make([]EntityID, 0, 64),
	}
}

func (s *store[T]) insert(id EntityID, v T) {
	if _, exists := s.items[id]; exists {
		panic(fmt.Sprintf("snake: entity %d inserted twice", id))
	}
	s.items[id] = v
	s.order = append(s.order, id)
}

func (s *store[T]) get(id EntityID) (T, bool) {
	v, ok := s.items[id]
	return v, ok
}

// mustGet fails fast on a dangling handle: chain links guarantee every
// referenced entity exists while the world is alive.
func (s *store[T]) mustGet(id EntityID) T {
	v, ok := s.items[id]
	if !ok {
		panic(fmt.Sprintf("snake: entity %d does not exist", id))
	}
	return v
}

func (s *store[T]) set(id EntityID, v T) {
	if _, ok := s.items[id]; !ok {
		panic(fmt.Sprintf("snake: entity %d does not exist", id))
	}
	s.items[id] = v
}

func (s *store[T]) remove(id EntityID) {
	if _, ok := s.items[id]; !ok {
		return
	}
	delete(s.items, id)
	for i, e := range s.order {
		if e == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *store[T]) ids() []EntityID {
	out := make([]EntityID, len(s.order))
	copy(out, s.order)
	return out
}

func (s *store[T]) len() int {
	return len(s.order)
}
