package arena

import "slices"

// alloc returns the index of a free slot, growing the storage when the free
// list is empty.
func (a *Arena[T]) alloc() int {
	// Fast path: reuse the most recently freed slot
	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		return i
	}

	// Slow path: append a new slot
	a.slots = append(a.slots, slot[T]{})
	return len(a.slots) - 1
}

// release returns slot i to the free list.
func (a *Arena[T]) release(i int) {
	a.free = append(a.free, i)
}

// Reserve ensures the next n calls to Insert do not reallocate the storage.
// Pointers returned by Ptr stay valid across those inserts.
func (a *Arena[T]) Reserve(n int) {
	a.panicIfReleased()
	need := n - len(a.free)
	if need <= 0 {
		return
	}
	a.slots = slices.Grow(a.slots, need)
}

// InsertAll stores vs in order and returns their handles.
func InsertAll[T any](a *Arena[T], vs ...T) []Handle {
	a.Reserve(len(vs))
	hs := make([]Handle, 0, len(vs))
	for _, v := range vs {
		hs = append(hs, a.Insert(v))
	}
	return hs
}

// Take removes the value at h and returns it, panicking if the slot is empty.
// Use it where an empty slot means the caller's bookkeeping is broken.
func Take[T any](a *Arena[T], h Handle) T {
	v, ok := a.Remove(h)
	if !ok {
		panic("arena: take from empty slot " + h.String())
	}
	return v
}
