package bst

import (
	"iter"

	"golang.org/x/exp/constraints"

	arena "github.com/pavanmanishd/slotarena"
)

// Iterator walks a tree in ascending key order, one entry per call to Next.
// It keeps the pending ancestors on an explicit stack, so each step resumes
// where the previous one stopped. An exhausted iterator stays exhausted; call
// Tree.Iter again to traverse anew.
//
// The tree must not be modified while an iterator is in use. Next panics if it
// detects a modification.
type Iterator[K constraints.Ordered, V any] struct {
	tree  *Tree[K, V]
	stack []arena.Handle
	mods  uint64
}

// Iter returns an iterator positioned before the smallest key.
func (t *Tree[K, V]) Iter() *Iterator[K, V] {
	it := &Iterator[K, V]{tree: t, mods: t.mods}
	it.pushLeft(t.root)
	return it
}

// Next returns the next entry in key order, or false once the tree is
// exhausted.
func (it *Iterator[K, V]) Next() (K, V, bool) {
	if it.mods != it.tree.mods {
		panic("bst: tree modified during iteration")
	}
	if len(it.stack) == 0 {
		var (
			k K
			v V
		)
		return k, v, false
	}
	h := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	n := it.tree.node(h)
	it.pushLeft(n.right)
	return n.key, n.value, true
}

// pushLeft stacks h and its chain of left descendants.
func (it *Iterator[K, V]) pushLeft(h arena.Handle) {
	for !h.IsNil() {
		it.stack = append(it.stack, h)
		h = it.tree.node(h).left
	}
}

// All yields every entry in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.Iter()
		for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Values returns every value in ascending key order.
func (t *Tree[K, V]) Values() []V {
	vs := make([]V, 0, t.Len())
	for _, v := range t.All() {
		vs = append(vs, v)
	}
	return vs
}

// Keys returns every key in ascending order.
func (t *Tree[K, V]) Keys() []K {
	ks := make([]K, 0, t.Len())
	for k := range t.All() {
		ks = append(ks, k)
	}
	return ks
}
