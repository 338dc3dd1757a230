package rbtree

// Insert adds key to the multiset. Inserting never fails and always grows
// the element count by exactly one: a previously absent key gets a fresh
// node, a present key only has its multiplicity incremented.
func (t *Tree[T]) Insert(key T) {
	t.size++
	if t.root == nil {
		t.root = newNode(key, nil, false)
		return
	}
	curr := t.root
	for {
		switch {
		case key < curr.key:
			if curr.left == nil {
				curr.left = newNode(key, curr, true)
				t.insertFixup(curr.left)
				return
			}
			curr = curr.left
		case key > curr.key:
			if curr.right == nil {
				curr.right = newNode(key, curr, true)
				t.insertFixup(curr.right)
				return
			}
			curr = curr.right
		default:
			curr.mult++
			return
		}
	}
}

// insertFixup restores the red-black coloring rules after child has been
// linked in as a red node. A double-red violation is either recolored away
// (red uncle), pushing the violation up two levels, or resolved with at most
// two rotations.
func (t *Tree[T]) insertFixup(child *node[T]) {
	if t.root.red {
		// recoloring walked the violation up to the root
		t.root.red = false
		return
	}
	if child.parent == nil || !child.parent.red {
		return
	}
	// double red below a black grandparent (the root is black, so the red
	// parent cannot be the root and the grandparent exists)
	parent := child.parent
	grand := parent.parent
	assert(grand != nil, "insertFixup: double red without grandparent")
	if uncle := child.uncle(); uncle.isRed() {
		// red uncle: pull the black level down one step and recurse
		parent.red = false
		uncle.red = false
		grand.red = true
		t.insertFixup(grand)
		return
	}
	childLeft := child.isLeftChild()
	parentLeft := parent.isLeftChild()
	if childLeft != parentLeft {
		// inner grandchild: rotate child past parent, which turns the
		// configuration into the outer case with the old parent as child
		t.rotate(child, !childLeft)
		t.insertFixup(parent)
		return
	}
	// outer case: swap colors between parent and grandparent, then rotate
	// parent past grandparent
	parent.red, grand.red = grand.red, parent.red
	t.rotate(parent, !parentLeft)
}
