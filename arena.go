// Package arena implements a slot arena: a growable table of slots that hands
// out stable integer handles. Linked structures store handles instead of
// pointers, so ownership lives in one place and removal never invalidates
// unrelated handles.
package arena

import (
	"fmt"
	"iter"
	"strconv"
)

// DefaultCapacity is the number of slots reserved up front by NewArena.
const DefaultCapacity = 16

// Handle identifies a slot in an Arena. The zero value is Nil and is never
// returned by Insert.
type Handle struct {
	n int // slot index + 1
}

// Nil is the handle that refers to no slot.
var Nil Handle

// IsNil reports whether h is the Nil handle.
func (h Handle) IsNil() bool { return h.n == 0 }

// Index returns the slot index of h, or -1 for Nil.
func (h Handle) Index() int { return h.n - 1 }

func (h Handle) String() string {
	if h.IsNil() {
		return "nil"
	}
	return strconv.Itoa(h.Index())
}

// slot is a single storage cell, either occupied or free.
type slot[T any] struct {
	value    T
	occupied bool
}

// Arena stores values of type T in reusable slots. Not goroutine-safe.
// Use SafeArena for concurrent access.
type Arena[T any] struct {
	slots []slot[T]
	free  []int // freed slot indices, reused LIFO
	live  int
}

// NewArena creates an empty Arena with room for capacity values before the
// storage grows. If capacity <= 0, DefaultCapacity is used.
func NewArena[T any](capacity int) *Arena[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Arena[T]{slots: make([]slot[T], 0, capacity)}
}

// Insert stores v and returns its handle. A previously freed slot is reused
// before the storage grows.
func (a *Arena[T]) Insert(v T) Handle {
	a.panicIfReleased()
	i := a.alloc()
	a.slots[i] = slot[T]{value: v, occupied: true}
	a.live++
	return Handle{n: i + 1}
}

// Remove frees the slot at h and returns the value it held. It returns false
// if the slot is already empty.
// Panics if h was never issued by this arena.
func (a *Arena[T]) Remove(h Handle) (T, bool) {
	s := a.slot(h)
	if !s.occupied {
		var zero T
		return zero, false
	}
	v := s.value
	*s = slot[T]{}
	a.live--
	a.release(h.Index())
	return v, true
}

// Get returns a copy of the value at h, or false if the slot is empty.
// Panics if h was never issued by this arena.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	s := a.slot(h)
	if !s.occupied {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Ptr returns a pointer to the value at h for in-place mutation, or nil if the
// slot is empty. The pointer is valid until the next call to Insert.
// Panics if h was never issued by this arena.
func (a *Arena[T]) Ptr(h Handle) *T {
	s := a.slot(h)
	if !s.occupied {
		return nil
	}
	return &s.value
}

// Contains reports whether h refers to an occupied slot. Unlike Get it never
// panics.
func (a *Arena[T]) Contains(h Handle) bool {
	a.panicIfReleased()
	i := h.Index()
	return i >= 0 && i < len(a.slots) && a.slots[i].occupied
}

// All yields every occupied slot in index order. The arena must not be
// mutated while iterating.
func (a *Arena[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		a.panicIfReleased()
		for i := range a.slots {
			if !a.slots[i].occupied {
				continue
			}
			if !yield(Handle{n: i + 1}, &a.slots[i].value) {
				return
			}
		}
	}
}

// Reset empties every slot but keeps the storage. Handles issued before Reset
// stay in bounds and read as empty.
func (a *Arena[T]) Reset() {
	a.panicIfReleased()
	clear(a.slots)
	a.free = a.free[:0]
	// Push in reverse so the lowest index is handed out first.
	for i := len(a.slots) - 1; i >= 0; i-- {
		a.free = append(a.free, i)
	}
	a.live = 0
}

// Release drops all storage and makes the arena unusable.
// Any subsequent operations will panic.
func (a *Arena[T]) Release() {
	a.slots = nil
	a.free = nil
	a.live = 0
}

// slot returns the cell addressed by h.
func (a *Arena[T]) slot(h Handle) *slot[T] {
	a.panicIfReleased()
	i := h.Index()
	if i < 0 || i >= len(a.slots) {
		panic(fmt.Sprintf("arena: handle %s out of bounds (%d slots)", h, len(a.slots)))
	}
	return &a.slots[i]
}

// panicIfReleased panics if the arena has been released.
func (a *Arena[T]) panicIfReleased() {
	if a.slots == nil {
		panic("arena: use after Release()")
	}
}
