package bst

import (
	"cmp"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"

	arena "github.com/pavanmanishd/slotarena"
	"github.com/pavanmanishd/slotarena/hashset"
)

// checkInvariants walks every node reachable from the root and verifies key
// ordering, that no reachable handle points at a freed slot, and that the
// reachable node count matches Len.
func checkInvariants[K constraints.Ordered, V any](t *testing.T, tr *Tree[K, V]) {
	t.Helper()
	if tr.root.IsNil() {
		require.Zero(t, tr.Len(), "empty root with live nodes")
		return
	}

	type frame struct {
		h      arena.Handle
		lo, hi K
		hasLo  bool
		hasHi  bool
	}
	seen := 0
	stack := []frame{{h: tr.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		require.True(t, tr.nodes.Contains(f.h), "reachable handle %s is not occupied", f.h)
		n := tr.nodes.Ptr(f.h)
		if f.hasLo {
			require.Greater(t, n.key, f.lo)
		}
		if f.hasHi {
			require.Less(t, n.key, f.hi)
		}
		seen++
		if !n.left.IsNil() {
			stack = append(stack, frame{h: n.left, lo: f.lo, hasLo: f.hasLo, hi: n.key, hasHi: true})
		}
		if !n.right.IsNil() {
			stack = append(stack, frame{h: n.right, lo: n.key, hasLo: true, hi: f.hi, hasHi: f.hasHi})
		}
	}
	require.Equal(t, tr.Len(), seen, "reachable nodes vs live arena slots")
}

func TestEmptyTree(t *testing.T) {
	tr := New[int, string]()
	assert.Zero(t, tr.Len())
	assert.Zero(t, tr.Height())
	assert.Empty(t, tr.Values())
	assert.Empty(t, tr.Keys())

	_, ok := tr.Search(1)
	assert.False(t, ok)
	_, ok = tr.Remove(1)
	assert.False(t, ok)
	_, _, ok = tr.Min()
	assert.False(t, ok)
	_, _, ok = tr.Max()
	assert.False(t, ok)
	checkInvariants(t, tr)
}

// Ascending inserts: keys 0..99 with value 2*key.
func TestAscendingInsertScenario(t *testing.T) {
	tr := New[int, int]()
	for k := range 100 {
		tr.Insert(k, 2*k)
	}

	v, ok := tr.Search(50)
	require.True(t, ok)
	assert.Equal(t, 100, v)

	values := tr.Values()
	assert.Len(t, values, 100)
	assert.True(t, slices.IsSorted(values))
	assert.Equal(t, 100, tr.Height(), "sorted input degenerates into a list")
	checkInvariants(t, tr)
}

// Descending inserts, then ascending removals.
func TestDescendingInsertAscendingRemoveScenario(t *testing.T) {
	tr := New[int, int]()
	for k := 99; k >= 0; k-- {
		tr.Insert(k, 2*k)
	}

	for k := range 100 {
		v, ok := tr.Remove(k)
		require.True(t, ok, "remove(%d)", k)
		require.Equal(t, 2*k, v)
		_, ok = tr.Search(k)
		require.False(t, ok, "search(%d) after remove", k)
	}
	assert.Zero(t, tr.Len())
	assert.True(t, tr.root.IsNil())
	checkInvariants(t, tr)
}

// Hash-derived keys walk in the same order as the sorted inserted pairs.
func TestHashedKeysScenario(t *testing.T) {
	type pair struct {
		k uint64
		v int
	}
	tr := New[uint64, int]()
	var want []pair
	for i := range 1000 {
		k := hashset.Int(i)
		tr.Insert(k, i)
		want = append(want, pair{k, i})
	}
	slices.SortFunc(want, func(a, b pair) int { return cmp.Compare(a.k, b.k) })

	var got []pair
	it := tr.Iter()
	for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
		got = append(got, pair{k, v})
	}
	assert.Equal(t, want, got)
	checkInvariants(t, tr)
}

func TestSearch(t *testing.T) {
	tr := New[uint64, int]()
	inserted := map[uint64]int{}
	for i := range 500 {
		k := hashset.Int(i) % 10_000
		if tr.TryInsert(k, i) == nil {
			inserted[k] = i
		}
	}

	for k := range uint64(10_000) {
		v, ok := tr.Search(k)
		want, present := inserted[k]
		require.Equal(t, present, ok, "search(%d)", k)
		require.Equal(t, present, tr.Contains(k))
		if present {
			require.Equal(t, want, v)
		}
	}
}

func TestDuplicateKeyRejected(t *testing.T) {
	tr := New[int, string]()
	tr.Insert(5, "first")
	tr.Insert(3, "three")

	assert.PanicsWithError(t, "bst: duplicate key: 5", func() { tr.Insert(5, "second") })

	err := tr.TryInsert(3, "again")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateKey))

	v, ok := tr.Search(5)
	require.True(t, ok)
	assert.Equal(t, "first", v)
	v, _ = tr.Search(3)
	assert.Equal(t, "three", v)
	assert.Equal(t, 2, tr.Len())
	checkInvariants(t, tr)
}

func TestMinMax(t *testing.T) {
	tr := New[string, int]()
	for i, k := range []string{"m", "c", "x", "a", "e", "z"} {
		tr.Insert(k, i)
	}

	k, v, ok := tr.Min()
	require.True(t, ok)
	assert.Equal(t, "a", k)
	assert.Equal(t, 3, v)

	k, v, ok = tr.Max()
	require.True(t, ok)
	assert.Equal(t, "z", k)
	assert.Equal(t, 5, v)
}

func TestHeight(t *testing.T) {
	tests := []struct {
		name string
		keys []int
		want int
	}{
		{"single", []int{1}, 1},
		{"balanced", []int{4, 2, 6, 1, 3, 5, 7}, 3},
		{"left chain", []int{3, 2, 1}, 3},
		{"zig zag", []int{1, 5, 2, 4, 3}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New[int, struct{}]()
			for _, k := range tt.keys {
				tr.Insert(k, struct{}{})
			}
			assert.Equal(t, tt.want, tr.Height())
		})
	}
}

func TestArenaMetricsTrackNodes(t *testing.T) {
	tr := NewWithCapacity[int, int](8)
	for k := range 8 {
		tr.Insert(k, k)
	}
	tr.Remove(3)
	tr.Remove(4)

	m := tr.Arena()
	assert.Equal(t, 6, m.Len)
	assert.Equal(t, 8, m.Slots)
	assert.Equal(t, 2, m.FreeSlots)

	// Freed node slots are reused.
	tr.Insert(100, 100)
	tr.Insert(101, 101)
	assert.Equal(t, 8, tr.Arena().Slots)
}

func TestInternalInvariantPanics(t *testing.T) {
	tr := New[int, int]()
	tr.Insert(2, 2)
	tr.Insert(1, 1)

	// Free a node behind the tree's back to simulate corrupted bookkeeping.
	left := tr.nodes.Ptr(tr.root).left
	tr.nodes.Remove(left)

	assert.PanicsWithValue(t, "bst: internal invariant violated", func() { tr.Search(1) })
}
