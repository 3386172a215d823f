// Package bst implements an unbalanced binary search tree whose nodes live in
// a slot arena and link to each other by handle.
//
// The tree is not rebalanced. Its height depends on insertion order: sorted
// input produces a tree as deep as it is long. Every operation is iterative,
// so depth costs time but not goroutine stack.
package bst

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	arena "github.com/pavanmanishd/slotarena"
)

// ErrDuplicateKey is returned by TryInsert (and raised by Insert) when the key
// is already present.
var ErrDuplicateKey = errors.New("bst: duplicate key")

type node[K constraints.Ordered, V any] struct {
	key   K
	value V
	left  arena.Handle
	right arena.Handle
}

// Tree is an ordered map from K to V. Not goroutine-safe; use SafeTree for
// concurrent access.
type Tree[K constraints.Ordered, V any] struct {
	nodes *arena.Arena[node[K, V]]
	root  arena.Handle
	// mods counts structural changes so iterators can detect them.
	mods uint64
}

// New returns an empty tree.
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return NewWithCapacity[K, V](0)
}

// NewWithCapacity returns an empty tree whose arena has room for capacity
// nodes before it grows.
func NewWithCapacity[K constraints.Ordered, V any](capacity int) *Tree[K, V] {
	return &Tree[K, V]{nodes: arena.NewArena[node[K, V]](capacity)}
}

// Len returns the number of entries.
func (t *Tree[K, V]) Len() int {
	return t.nodes.Len()
}

// Insert adds key with value. Duplicate keys are a programming error: Insert
// panics with an error wrapping ErrDuplicateKey and leaves the tree unchanged.
func (t *Tree[K, V]) Insert(key K, value V) {
	if err := t.TryInsert(key, value); err != nil {
		panic(err)
	}
}

// TryInsert adds key with value, or returns an error wrapping ErrDuplicateKey
// if key is already present.
func (t *Tree[K, V]) TryInsert(key K, value V) error {
	if t.root.IsNil() {
		t.root = t.nodes.Insert(node[K, V]{key: key, value: value})
		t.mods++
		return nil
	}

	cur := t.root
	for {
		n := t.node(cur)
		var next *arena.Handle
		switch {
		case key < n.key:
			next = &n.left
		case key > n.key:
			next = &n.right
		default:
			return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
		}
		if !next.IsNil() {
			cur = *next
			continue
		}
		// Insert may grow the storage, so re-resolve the parent afterwards.
		h := t.nodes.Insert(node[K, V]{key: key, value: value})
		n = t.node(cur)
		if key < n.key {
			n.left = h
		} else {
			n.right = h
		}
		t.mods++
		return nil
	}
}

// Search returns the value stored under key.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	if h := t.find(key); !h.IsNil() {
		return t.node(h).value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	return !t.find(key).IsNil()
}

// Min returns the smallest key and its value.
func (t *Tree[K, V]) Min() (K, V, bool) {
	return t.extreme(func(n *node[K, V]) arena.Handle { return n.left })
}

// Max returns the largest key and its value.
func (t *Tree[K, V]) Max() (K, V, bool) {
	return t.extreme(func(n *node[K, V]) arena.Handle { return n.right })
}

func (t *Tree[K, V]) extreme(child func(*node[K, V]) arena.Handle) (K, V, bool) {
	if t.root.IsNil() {
		var (
			k K
			v V
		)
		return k, v, false
	}
	n := t.node(t.root)
	for c := child(n); !c.IsNil(); c = child(n) {
		n = t.node(c)
	}
	return n.key, n.value, true
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[K, V]) Height() int {
	if t.root.IsNil() {
		return 0
	}
	type frame struct {
		h     arena.Handle
		depth int
	}
	height := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		height = max(height, f.depth)
		n := t.node(f.h)
		if !n.left.IsNil() {
			stack = append(stack, frame{n.left, f.depth + 1})
		}
		if !n.right.IsNil() {
			stack = append(stack, frame{n.right, f.depth + 1})
		}
	}
	return height
}

// Arena returns a snapshot of the backing arena's statistics.
func (t *Tree[K, V]) Arena() arena.ArenaMetrics {
	return t.nodes.Metrics()
}

// find returns the handle of the node holding key, or arena.Nil.
func (t *Tree[K, V]) find(key K) arena.Handle {
	cur := t.root
	for !cur.IsNil() {
		n := t.node(cur)
		switch {
		case key < n.key:
			cur = n.left
		case key > n.key:
			cur = n.right
		default:
			return cur
		}
	}
	return arena.Nil
}

// node resolves a handle reached by following links from the root. Such a
// handle must always name an occupied slot.
func (t *Tree[K, V]) node(h arena.Handle) *node[K, V] {
	n := t.nodes.Ptr(h)
	doAssert(n != nil)
	return n
}

func doAssert(condition bool) {
	if !condition {
		panic("bst: internal invariant violated")
	}
}
