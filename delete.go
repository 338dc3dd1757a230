package rbtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Remove deletes one occurrence of key from the multiset.
//
// If the key is absent, Remove returns ErrKeyNotFound and leaves the tree
// untouched. Otherwise the element count shrinks by exactly one: a key with
// multiplicity greater than one only has its counter decremented, the last
// occurrence removes the physical node and rebalances the tree.
func (t *Tree[T]) Remove(key T) error {
	target := t.findNode(key)
	if target == nil {
		return ErrKeyNotFound
	}
	if target.mult > 1 {
		target.mult--
	} else {
		t.rbDelete(target)
	}
	t.size--
	return nil
}

// rbDelete unlinks a node from the tree, dispatching on the number of its
// absent children.
func (t *Tree[T]) rbDelete(n *node[T]) {
	switch n.absentChildren() {
	case 0:
		// two children: swap payload with the in-order predecessor and
		// delete down there, where at most one child is present. Colors
		// stay in place, the node identities do not move.
		pred := n.inOrderPredecessor()
		n.key, pred.key = pred.key, n.key
		n.mult, pred.mult = pred.mult, n.mult
		t.rbDelete(pred)
	case 1:
		child := n.left
		if child == nil {
			child = n.right
		}
		// Any coloring other than black node/red child would already
		// violate the black-height rule.
		assert(!n.red && child.red, "rbDelete: single-child node must be black with a red child")
		child.red = false
		t.splice(n, child)
	case 2:
		if n == t.root {
			t.root = nil
			return
		}
		parent := n.parent
		vacatedLeft := n.isLeftChild()
		parent.setChild(vacatedLeft, nil)
		if !n.red {
			// detaching a black leaf leaves its paths one black node
			// short
			t.deleteFixup(parent, vacatedLeft)
		}
	}
}

// splice replaces n by child in n's parent (or as the new root) and repairs
// the child's parent link.
func (t *Tree[T]) splice(n, child *node[T]) {
	child.parent = n.parent
	if n.parent == nil {
		t.root = child
		return
	}
	if n.parent.left == n {
		n.parent.left = child
	} else {
		n.parent.right = child
	}
}

// deleteFixup resolves a black-height deficit at parent's child slot on the
// side selected by deficitLeft. Both orientations run through the same five
// cases; the deficit side parameterizes sibling selection and all rotation
// directions.
//
// Exactly one case applies per call. Case I re-enters with a new (black)
// sibling, case IV re-enters in case V position, and case II pushes the
// deficit one level up; the other cases terminate.
func (t *Tree[T]) deleteFixup(parent *node[T], deficitLeft bool) {
	if parent == nil {
		// the deficit reached the root and vanishes
		return
	}
	sibling := parent.child(!deficitLeft)
	// The deficit side is one black node short, so the sibling side holds
	// at least one: the sibling cannot be absent.
	assert(sibling != nil, "deleteFixup: missing sibling beside a black-height deficit")
	inner := sibling.child(deficitLeft) // sibling child nearer to the deficit
	outer := sibling.child(!deficitLeft)
	switch {
	case sibling.red:
		// Case I: red sibling (so the parent is black). Swap their colors
		// and rotate the sibling up; the deficit position is unchanged but
		// now has a black sibling.
		sibling.red, parent.red = parent.red, sibling.red
		t.rotate(sibling, deficitLeft)
		t.deleteFixup(parent, deficitLeft)
	case !parent.red && !inner.isRed() && !outer.isRed():
		// Case II: black parent, black sibling without red children.
		// Recoloring the sibling red evens out both sides locally and
		// moves the deficit up to the parent's position.
		sibling.red = true
		grand := parent.parent
		t.deleteFixup(grand, grand != nil && grand.left == parent)
	case parent.red && !inner.isRed() && !outer.isRed():
		// Case III: red parent, black sibling without red children.
		// Swapping the parent/sibling colors restores the missing black
		// node on the deficit side.
		sibling.red = true
		parent.red = false
	case inner.isRed() && !outer.isRed():
		// Case IV: red inner sibling child, black outer one. Swap colors
		// between sibling and inner child and rotate the inner child up,
		// which produces the case V configuration.
		sibling.red, inner.red = inner.red, sibling.red
		t.rotate(inner, !deficitLeft)
		t.deleteFixup(parent, deficitLeft)
	default:
		// Case V: red outer sibling child. Swap parent/sibling colors,
		// blacken the outer child and rotate the sibling up; the deficit
		// side gains one black node, the sibling side keeps its count.
		sibling.red, parent.red = parent.red, sibling.red
		outer.red = false
		t.rotate(sibling, deficitLeft)
	}
}
