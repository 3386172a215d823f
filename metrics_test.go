package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaMetrics(t *testing.T) {
	a := NewArena[int](8)

	// Test initial state
	assert.Zero(t, a.Len())
	assert.Zero(t, a.Slots())
	assert.Zero(t, a.FreeSlots())
	assert.Equal(t, 8, a.Capacity())
	assert.Zero(t, a.Utilization())

	handles := InsertAll(a, 1, 2, 3, 4)
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, 1.0, a.Utilization())

	a.Remove(handles[0])
	a.Remove(handles[1])
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 4, a.Slots())
	assert.Equal(t, 2, a.FreeSlots())
	assert.Equal(t, 0.5, a.Utilization())

	// Force growth
	for i := range 10 {
		a.Insert(i)
	}
	assert.Greater(t, a.Capacity(), 8)

	// Test metrics snapshot
	m := a.Metrics()
	assert.Equal(t, ArenaMetrics{
		Len:         a.Len(),
		Slots:       a.Slots(),
		FreeSlots:   a.FreeSlots(),
		Capacity:    a.Capacity(),
		Utilization: a.Utilization(),
	}, m)
}

func TestArenaMetricsAfterRelease(t *testing.T) {
	a := NewArena[int](0)
	a.Insert(1)
	a.Release()

	assert.Zero(t, a.Len())
	assert.Zero(t, a.Slots())
	assert.Zero(t, a.Capacity())
	assert.Zero(t, a.Utilization())
}

func TestSafeArenaMetrics(t *testing.T) {
	s := NewSafeArena[int](0)
	h := s.Insert(1)
	s.Insert(2)
	s.Remove(h)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, s.Slots())
	assert.Equal(t, 1, s.FreeSlots())
	assert.Equal(t, 0.5, s.Utilization())
	assert.Equal(t, ArenaMetrics{Len: 1, Slots: 2, FreeSlots: 1, Capacity: DefaultCapacity, Utilization: 0.5}, s.Metrics())
}
