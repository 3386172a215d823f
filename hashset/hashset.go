// Package hashset implements an open-addressing hash set with linear probing.
package hashset

import (
	"iter"
)

const (
	initialCapacity = 10
	// Grow before the table is more than 3/4 full; at that load a lookup
	// probes about 4 slots on average.
	maxLoad = 0.75
)

// Hasher maps a value to a 64-bit hash. Equal values must hash equally.
type Hasher[T comparable] func(T) uint64

type entry[T comparable] struct {
	value T
	used  bool
}

// Set is a hash set of comparable values. Not goroutine-safe.
type Set[T comparable] struct {
	slots []entry[T]
	hash  Hasher[T]
	count int
}

// New returns an empty set that hashes values with hash.
func New[T comparable](hash Hasher[T]) *Set[T] {
	return &Set[T]{
		slots: make([]entry[T], initialCapacity),
		hash:  hash,
	}
}

// Len returns the number of values in the set.
func (s *Set[T]) Len() int {
	return s.count
}

// Insert adds v. Inserting a value that is already present is a programming
// error and panics.
func (s *Set[T]) Insert(v T) {
	if float64(s.count+1) > float64(len(s.slots))*maxLoad {
		s.grow()
	}
	i, found := s.probe(v)
	if found {
		panic("hashset: duplicate value")
	}
	s.slots[i] = entry[T]{value: v, used: true}
	s.count++
}

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	_, found := s.probe(v)
	return found
}

// Lookup returns the stored value equal to v. An absent value reports false
// rather than panicking.
func (s *Set[T]) Lookup(v T) (T, bool) {
	i, found := s.probe(v)
	if !found {
		var zero T
		return zero, false
	}
	return s.slots[i].value, true
}

// Remove deletes v and returns the stored value. Removing an absent value is
// not an error: it returns the zero value and false.
func (s *Set[T]) Remove(v T) (T, bool) {
	i, found := s.probe(v)
	if !found {
		var zero T
		return zero, false
	}
	removed := s.slots[i].value
	s.slots[i] = entry[T]{}
	s.count--

	// The hole may cut a probe chain; re-place the rest of the run.
	for j := s.next(i); s.slots[j].used; j = s.next(j) {
		e := s.slots[j]
		s.slots[j] = entry[T]{}
		s.place(e.value)
	}
	return removed, true
}

// All yields every value in table order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range s.slots {
			if e.used && !yield(e.value) {
				return
			}
		}
	}
}

// probe returns the slot holding v, or the empty slot where v belongs.
// The load limit guarantees an empty slot exists.
func (s *Set[T]) probe(v T) (int, bool) {
	i := int(s.hash(v) % uint64(len(s.slots)))
	for s.slots[i].used {
		if s.slots[i].value == v {
			return i, true
		}
		i = s.next(i)
	}
	return i, false
}

// place stores v, which must not be present, without touching the count.
func (s *Set[T]) place(v T) {
	i, _ := s.probe(v)
	s.slots[i] = entry[T]{value: v, used: true}
}

func (s *Set[T]) next(i int) int {
	return (i + 1) % len(s.slots)
}

// grow doubles the table and re-places every value.
func (s *Set[T]) grow() {
	old := s.slots
	s.slots = make([]entry[T], 2*len(old))
	for _, e := range old {
		if e.used {
			s.place(e.value)
		}
	}
}
