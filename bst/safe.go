package bst

import (
	"sync"

	"golang.org/x/exp/constraints"

	arena "github.com/pavanmanishd/slotarena"
)

// SafeTree is a mutex-protected wrapper around Tree for concurrent access.
// One lock guards the whole tree, so traversal never interleaves with
// mutation.
type SafeTree[K constraints.Ordered, V any] struct {
	mu sync.Mutex
	t  *Tree[K, V]
}

// NewSafe returns an empty thread-safe tree.
func NewSafe[K constraints.Ordered, V any]() *SafeTree[K, V] {
	return &SafeTree[K, V]{t: New[K, V]()}
}

// Insert thread-safely adds key with value. It panics on a duplicate key.
func (s *SafeTree[K, V]) Insert(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.Insert(key, value)
}

// TryInsert thread-safely adds key with value, or returns an error wrapping
// ErrDuplicateKey.
func (s *SafeTree[K, V]) TryInsert(key K, value V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.TryInsert(key, value)
}

// Search thread-safely returns the value stored under key.
func (s *SafeTree[K, V]) Search(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Search(key)
}

// Remove thread-safely deletes key and returns its value.
func (s *SafeTree[K, V]) Remove(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Remove(key)
}

// Len thread-safely returns the number of entries.
func (s *SafeTree[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Len()
}

// Range calls fn for each entry in ascending key order while holding the
// lock, stopping early if fn returns false. fn must not call back into s.
func (s *SafeTree[K, V]) Range(fn func(K, V) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range s.t.All() {
		if !fn(k, v) {
			return
		}
	}
}

// Values thread-safely returns every value in ascending key order.
func (s *SafeTree[K, V]) Values() []V {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Values()
}

// Arena thread-safely returns a snapshot of the backing arena's statistics.
func (s *SafeTree[K, V]) Arena() arena.ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Arena()
}
