package arena

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
//
// There is no Ptr: a pointer into the storage would outlive the lock. Use
// Update to mutate a value in place.
type SafeArena[T any] struct {
	mu sync.Mutex
	a  *Arena[T]
}

// NewSafeArena creates a new thread-safe arena with the given capacity.
// If capacity <= 0, DefaultCapacity is used.
func NewSafeArena[T any](capacity int) *SafeArena[T] {
	return &SafeArena[T]{a: NewArena[T](capacity)}
}

// Insert thread-safely stores v and returns its handle.
func (s *SafeArena[T]) Insert(v T) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Insert(v)
}

// Remove thread-safely frees the slot at h and returns its value.
func (s *SafeArena[T]) Remove(h Handle) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Remove(h)
}

// Get thread-safely returns a copy of the value at h.
func (s *SafeArena[T]) Get(h Handle) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Get(h)
}

// Update thread-safely calls fn with a pointer to the value at h. It returns
// false without calling fn if the slot is empty. fn must not retain the
// pointer or call back into s.
func (s *SafeArena[T]) Update(h Handle, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.a.Ptr(h)
	if p == nil {
		return false
	}
	fn(p)
	return true
}

// Contains thread-safely reports whether h refers to an occupied slot.
func (s *SafeArena[T]) Contains(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Contains(h)
}

// Reset thread-safely empties every slot.
func (s *SafeArena[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops all storage and makes the arena unusable.
func (s *SafeArena[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}
