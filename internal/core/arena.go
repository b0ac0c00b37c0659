package core

// Arena is a fixed-capacity pool of T addressed by slot index.
// Released slots go onto a free list and are reused by later spawns, so a
// running game never allocates for short-lived entities such as bullets.
type Arena[T any] struct {
	slots []T
	alive []bool
	free  []int // stack; the top is the next slot handed out
	live  int
}

// NewArena allocates an arena with room for capacity entities.
func NewArena[T any](capacity int) *Arena[T] {
	capacity = max(capacity, 0)
	a := &Arena[T]{
		slots: make([]T, capacity),
		alive: make([]bool, capacity),
		free:  make([]int, 0, capacity),
	}
	a.Reset()
	return a
}

// Spawn stores v in a free slot and returns its index.
// ok is false when the arena is full; the value is dropped.
func (a *Arena[T]) Spawn(v T) (id int, ok bool) {
	if len(a.free) == 0 {
		return -1, false
	}
	id = a.free[len(a.free)-1]
	a.free = a.free[:len(a.free)-1]
	a.slots[id] = v
	a.alive[id] = true
	a.live++
	return id, true
}

// Release frees slot id. Releasing a dead or unknown slot is a no-op that returns false.
func (a *Arena[T]) Release(id int) bool {
	if id < 0 || id >= len(a.slots) || !a.alive[id] {
		return false
	}
	var zero T
	a.slots[id] = zero
	a.alive[id] = false
	a.free = append(a.free, id)
	a.live--
	return true
}

// Get returns a pointer to the live entity in slot id.
func (a *Arena[T]) Get(id int) (*T, bool) {
	if id < 0 || id >= len(a.slots) || !a.alive[id] {
		return nil, false
	}
	return &a.slots[id], true
}

// Alive reports whether slot id holds a live entity.
func (a *Arena[T]) Alive(id int) bool {
	return id >= 0 && id < len(a.slots) && a.alive[id]
}

// Each calls fn for every live entity in slot order. fn may Release the
// slot it is visiting; entities spawned during the walk may or may not be visited.
func (a *Arena[T]) Each(fn func(id int, v *T)) {
	for id := range a.slots {
		if a.alive[id] {
			fn(id, &a.slots[id])
		}
	}
}

// Len returns the number of live entities.
func (a *Arena[T]) Len() int {
	return a.live
}

// Cap returns the fixed capacity.
func (a *Arena[T]) Cap() int {
	return len(a.slots)
}

// Reset releases every slot. Spawns after a reset fill slots from index 0 upward.
func (a *Arena[T]) Reset() {
	var zero T
	a.free = a.free[:0]
	for id := len(a.slots) - 1; id >= 0; id-- {
		a.slots[id] = zero
		a.alive[id] = false
		a.free = append(a.free, id)
	}
	a.live = 0
}
