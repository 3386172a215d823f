package bst

import arena "github.com/pavanmanishd/slotarena"

type side int

const (
	sideRoot side = iota
	sideLeft
	sideRight
)

// Remove deletes key and returns the value stored under it.
func (t *Tree[K, V]) Remove(key K) (V, bool) {
	target, parent, from := t.locate(key)
	if target.IsNil() {
		var zero V
		return zero, false
	}

	n := t.node(target)
	var replacement arena.Handle
	switch {
	case n.left.IsNil():
		// Leaf or lone right child.
		replacement = n.right
	case n.right.IsNil():
		replacement = n.left
	default:
		replacement = t.spliceSuccessor(target)
	}
	t.setChild(parent, from, replacement)
	t.mods++

	removed := arena.Take(t.nodes, target)
	return removed.value, true
}

// spliceSuccessor detaches the leftmost node of target's right subtree and
// hands it target's children. It returns the successor's handle.
func (t *Tree[K, V]) spliceSuccessor(target arena.Handle) arena.Handle {
	n := t.node(target)
	succParent := target
	succ := n.right
	for s := t.node(succ); !s.left.IsNil(); s = t.node(succ) {
		succParent = succ
		succ = s.left
	}

	s := t.node(succ)
	if succParent != target {
		// The successor has no left child, so detaching it is the one-child
		// (or leaf) case on its own parent.
		t.node(succParent).left = s.right
		s.right = n.right
	}
	s.left = n.left
	return succ
}

// locate finds the node holding key along with its parent and which side of
// the parent it hangs from. parent is arena.Nil when the node is the root.
func (t *Tree[K, V]) locate(key K) (target, parent arena.Handle, from side) {
	from = sideRoot
	cur := t.root
	for !cur.IsNil() {
		n := t.node(cur)
		switch {
		case key < n.key:
			parent, from, cur = cur, sideLeft, n.left
		case key > n.key:
			parent, from, cur = cur, sideRight, n.right
		default:
			return cur, parent, from
		}
	}
	return arena.Nil, arena.Nil, sideRoot
}

// setChild points parent's from-side link (or the root) at child.
func (t *Tree[K, V]) setChild(parent arena.Handle, from side, child arena.Handle) {
	switch from {
	case sideRoot:
		t.root = child
	case sideLeft:
		t.node(parent).left = child
	case sideRight:
		t.node(parent).right = child
	}
}
