package arena

// Len returns the number of occupied slots.
func (a *Arena[T]) Len() int {
	return a.live
}

// Slots returns the number of slots ever created, occupied or free. Every
// handle issued so far has an index below Slots.
func (a *Arena[T]) Slots() int {
	return len(a.slots)
}

// FreeSlots returns the number of slots waiting to be reused.
func (a *Arena[T]) FreeSlots() int {
	return len(a.free)
}

// Capacity returns the number of slots the storage can hold before it has to
// reallocate.
func (a *Arena[T]) Capacity() int {
	return cap(a.slots)
}

// Utilization returns the ratio of occupied slots to created slots (0.0 to 1.0).
// Returns 0.0 if no slot was ever created.
func (a *Arena[T]) Utilization() float64 {
	if len(a.slots) == 0 {
		return 0
	}
	return float64(a.live) / float64(len(a.slots))
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Len:         a.Len(),
		Slots:       a.Slots(),
		FreeSlots:   a.FreeSlots(),
		Capacity:    a.Capacity(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Len         int     // Occupied slots
	Slots       int     // Created slots
	FreeSlots   int     // Slots waiting for reuse
	Capacity    int     // Slots available before reallocation
	Utilization float64 // Ratio of occupied to created slots (0.0-1.0)
}

// Thread-safe metrics for SafeArena

// Len thread-safely returns the number of occupied slots.
func (s *SafeArena[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Len()
}

// Slots thread-safely returns the number of created slots.
func (s *SafeArena[T]) Slots() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Slots()
}

// FreeSlots thread-safely returns the number of slots waiting for reuse.
func (s *SafeArena[T]) FreeSlots() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.FreeSlots()
}

// Utilization thread-safely returns the ratio of occupied to created slots.
func (s *SafeArena[T]) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena[T]) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
