package rbtree

import "cmp"

// node is one physical tree node, holding one distinct key.
//
// Ownership runs top-down: the tree owns the root, every node owns its two
// children. The parent pointer is a non-owning back link for navigation
// during rotation and fixup; it is nil at the root only.
type node[T cmp.Ordered] struct {
	key    T
	mult   int // number of logical duplicates collapsed into this node, >= 1
	red    bool
	parent *node[T]
	left   *node[T]
	right  *node[T]
}

func newNode[T cmp.Ordered](key T, parent *node[T], red bool) *node[T] {
	return &node[T]{
		key:    key,
		mult:   1,
		red:    red,
		parent: parent,
	}
}

// isRed is nil-safe: absent children count as black leaves.
func (n *node[T]) isRed() bool {
	return n != nil && n.red
}

// child returns the left or right child, selected by side.
func (n *node[T]) child(left bool) *node[T] {
	if left {
		return n.left
	}
	return n.right
}

// setChild replaces the left or right child link, selected by side.
// The child's parent link is not touched.
func (n *node[T]) setChild(left bool, c *node[T]) {
	if left {
		n.left = c
	} else {
		n.right = c
	}
}

// isLeftChild reports on which side of its parent n hangs.
// Must not be called on the root.
func (n *node[T]) isLeftChild() bool {
	return n.parent.left == n
}

func (n *node[T]) grandparent() *node[T] {
	if n == nil || n.parent == nil {
		return nil
	}
	return n.parent.parent
}

// uncle returns the parent's sibling, or nil if there is none.
func (n *node[T]) uncle() *node[T] {
	g := n.grandparent()
	if g == nil {
		return nil
	}
	if g.left == n.parent {
		return g.right
	}
	return g.left
}

// inOrderPredecessor returns the rightmost node of n's left subtree.
// Must not be called on a node without a left child.
func (n *node[T]) inOrderPredecessor() *node[T] {
	pred := n.left
	for pred.right != nil {
		pred = pred.right
	}
	return pred
}

// absentChildren returns the number of nil children of n.
func (n *node[T]) absentChildren() int {
	absent := 0
	if n.left == nil {
		absent++
	}
	if n.right == nil {
		absent++
	}
	return absent
}

// rotate performs a single rotation, promoting child above its parent.
// left selects the rotation direction: a left rotation promotes a right
// child, a right rotation a left child. The displaced inner subtree is
// reattached as the old parent's child on the rotation side, and all three
// affected parent links are repaired. Rotating the root's child updates the
// tree's root reference.
//
// Rotation preserves the in-order key sequence.
func (t *Tree[T]) rotate(child *node[T], left bool) {
	origParent := child.parent
	origGrandparent := origParent.parent
	child.parent = origGrandparent
	origParent.parent = child
	var origGrandchild *node[T]
	if left {
		origGrandchild = child.left
		child.left = origParent
		origParent.right = origGrandchild
	} else {
		origGrandchild = child.right
		child.right = origParent
		origParent.left = origGrandchild
	}
	if origGrandchild != nil {
		origGrandchild.parent = origParent
	}
	if origGrandparent == nil {
		t.root = child
		return
	}
	if origGrandparent.left == origParent {
		origGrandparent.left = child
	} else {
		origGrandparent.right = child
	}
}
