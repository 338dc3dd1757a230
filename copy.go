package rbtree

import "cmp"

// Clone returns a deep structural copy of the tree. Keys, multiplicities and
// node colors carry over; the clone shares no node with its source, so
// mutating one tree never affects the other.
//
// The node graph is copied iteratively with an explicit work list, keeping
// the required stack flat even for degenerate shapes.
func (t *Tree[T]) Clone() *Tree[T] {
	clone := &Tree[T]{}
	if t == nil || t.root == nil {
		return clone
	}
	clone.size = t.size
	clone.root = cloneNode(t.root, nil)
	type pair struct {
		src, dst *node[T]
	}
	worklist := []pair{{t.root, clone.root}}
	for len(worklist) > 0 {
		p := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if p.src.left != nil {
			p.dst.left = cloneNode(p.src.left, p.dst)
			worklist = append(worklist, pair{p.src.left, p.dst.left})
		}
		if p.src.right != nil {
			p.dst.right = cloneNode(p.src.right, p.dst)
			worklist = append(worklist, pair{p.src.right, p.dst.right})
		}
	}
	return clone
}

func cloneNode[T cmp.Ordered](src, parent *node[T]) *node[T] {
	return &node[T]{
		key:    src.key,
		mult:   src.mult,
		red:    src.red,
		parent: parent,
	}
}

// CopyFrom replaces the tree's content with a deep copy of other, giving
// assignment semantics: the previous content is cleared first, and
// afterwards the two trees share no node. Self-assignment is a no-op.
func (t *Tree[T]) CopyFrom(other *Tree[T]) {
	if t == other {
		return
	}
	t.Clear()
	clone := other.Clone()
	t.root = clone.root
	t.size = clone.size
}

// Clear removes all elements. Calling Clear on an empty tree is harmless.
func (t *Tree[T]) Clear() {
	if t == nil {
		return
	}
	// Nodes are unreachable once the root reference is dropped; the
	// parent back links form no ownership cycle the collector would mind.
	t.root = nil
	t.size = 0
}
