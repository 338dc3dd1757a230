package rbtree

import "fmt"

// Check validates the structural red-black invariants of the tree:
// consistent parent/child linkage, a black root, no red node with a red
// child, equal black-heights on every path, and multiplicity counters
// summing up to Len.
//
// This checker is intentionally strict and meant for tests and debugging;
// ordinary operations maintain the invariants without consulting it. The
// returned error wraps ErrInvariantViolated and names the broken rule.
//
// All traversals are iterative with explicit work lists, so Check stays
// usable even on a degenerate node graph produced by a bug.
func (t *Tree[T]) Check() error {
	if t == nil || t.root == nil {
		if t != nil && t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size 0, has %d", ErrInvariantViolated, t.size)
		}
		return nil
	}
	if !t.linkageConsistent() {
		return fmt.Errorf("%w: parent and child links disagree", ErrInvariantViolated)
	}
	if !t.rootIsBlack() {
		return fmt.Errorf("%w: root is red", ErrInvariantViolated)
	}
	if !t.colorRuleHolds() {
		return fmt.Errorf("%w: red node with red child", ErrInvariantViolated)
	}
	if !t.blackHeightBalanced() {
		return fmt.Errorf("%w: unequal black-heights", ErrInvariantViolated)
	}
	if !t.multiplicityTotalsMatch() {
		return fmt.Errorf("%w: multiplicity totals do not match size", ErrInvariantViolated)
	}
	return nil
}

// Verify reports whether all red-black multiset invariants hold.
func (t *Tree[T]) Verify() bool {
	return t.Check() == nil
}

// rootIsBlack: the root is black, or the tree is empty.
func (t *Tree[T]) rootIsBlack() bool {
	return !t.root.isRed()
}

// colorRuleHolds: no red node has a red child.
func (t *Tree[T]) colorRuleHolds() bool {
	worklist := []*node[T]{t.root}
	for len(worklist) > 0 {
		n := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if n.red && (n.left.isRed() || n.right.isRed()) {
			return false
		}
		if n.left != nil {
			worklist = append(worklist, n.left)
		}
		if n.right != nil {
			worklist = append(worklist, n.right)
		}
	}
	return true
}

// linkageConsistent: every child's parent link points back at the node
// referencing it, and the root has no parent.
func (t *Tree[T]) linkageConsistent() bool {
	if t.root.parent != nil {
		return false
	}
	worklist := []*node[T]{t.root}
	for len(worklist) > 0 {
		n := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if n.left != nil {
			if n.left.parent != n {
				return false
			}
			worklist = append(worklist, n.left)
		}
		if n.right != nil {
			if n.right.parent != n {
				return false
			}
			worklist = append(worklist, n.right)
		}
	}
	return true
}

// blackHeightBalanced: for every node, the black-height of its left subtree
// equals that of its right subtree. An absent child contributes a
// black-height of 1.
func (t *Tree[T]) blackHeightBalanced() bool {
	// bottom-up over a reverse pre-order, so children are computed before
	// their parents
	var order []*node[T]
	worklist := []*node[T]{t.root}
	for len(worklist) > 0 {
		n := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		order = append(order, n)
		if n.left != nil {
			worklist = append(worklist, n.left)
		}
		if n.right != nil {
			worklist = append(worklist, n.right)
		}
	}
	// below[n] holds the number of black nodes from n (exclusive) down to
	// any leaf, including the absent-child pseudo leaves
	below := make(map[*node[T]]int, len(order))
	contribution := func(child *node[T]) int {
		if child == nil {
			return 1
		}
		h := below[child]
		if !child.red {
			h++
		}
		return h
	}
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		lh := contribution(n.left)
		rh := contribution(n.right)
		if lh != rh {
			return false
		}
		below[n] = lh
	}
	return true
}

// multiplicityTotalsMatch: every node counts at least one occurrence, and
// the multiplicities sum up to the tree's size.
func (t *Tree[T]) multiplicityTotalsMatch() bool {
	total := 0
	worklist := []*node[T]{t.root}
	for len(worklist) > 0 {
		n := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if n.mult < 1 {
			return false
		}
		total += n.mult
		if n.left != nil {
			worklist = append(worklist, n.left)
		}
		if n.right != nil {
			worklist = append(worklist, n.right)
		}
	}
	return total == t.size
}
