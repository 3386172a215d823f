// Package arena implements a slot arena for building linked data structures
// out of integer handles instead of pointers.
//
// # Overview
//
// An Arena is a growable table of slots. Each slot is either free or holds one
// value. Insert returns a Handle naming the slot; the handle stays valid for
// the lifetime of the arena no matter what else is inserted or removed. This
// makes arenas a good home for:
//
//   - Tree and graph nodes that link to each other by handle
//   - Structures with parent links or cycles, where ownership must stay in one place
//   - Workloads with heavy insert/remove churn, since freed slots are reused
//
// # Basic Usage
//
//	a := arena.NewArena[string](0) // Use default capacity
//
//	h := a.Insert("hello")
//	v, ok := a.Get(h)   // "hello", true
//
//	// Mutate in place
//	*a.Ptr(h) = "goodbye"
//
//	// Free the slot; the next Insert reuses it
//	v, ok = a.Remove(h) // "goodbye", true
//	v, ok = a.Remove(h) // "", false
//
// # Handles
//
// A removed handle reads as empty rather than failing. Passing a handle that
// this arena never issued (including arena.Nil) to Get, Ptr or Remove is a
// programming error and panics with an out-of-bounds message.
//
// # Thread Safety
//
// The basic Arena type is not thread-safe. For concurrent access, use SafeArena:
//
//	s := arena.NewSafeArena[int](0)
//	h := s.Insert(1)
//	s.Update(h, func(v *int) { *v++ })
//
// # Memory
//
// Freed slots are reused before the storage grows, so the number of slots
// tracks the peak number of live values. Memory is never returned to the
// runtime until Release.
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Live values: %d of %d slots\n", m.Len, m.Slots)
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
package arena
