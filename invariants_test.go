package rbtree

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// The checker tests wire up node graphs by hand, bypassing Insert, so every
// single invariant can be broken in isolation.

func manualTree(root *node[int], size int) *Tree[int] {
	return &Tree[int]{root: root, size: size}
}

func manualNode(key int, red bool, parent *node[int]) *node[int] {
	n := &node[int]{key: key, mult: 1, red: red, parent: parent}
	if parent != nil {
		if key < parent.key {
			parent.left = n
		} else {
			parent.right = n
		}
	}
	return n
}

func TestCheckDetectsRedRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	tree := manualTree(manualNode(1, true, nil), 1)
	err := tree.Check()
	if !errors.Is(err, ErrInvariantViolated) {
		t.Fatalf("expected ErrInvariantViolated, have %v", err)
	}
	if !strings.Contains(err.Error(), "root") {
		t.Errorf("expected the red root to be named, have %q", err)
	}
}

func TestCheckDetectsDoubleRed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	root := manualNode(10, false, nil)
	inner := manualNode(5, true, root)
	manualNode(2, true, inner) // red child below a red node
	manualNode(20, false, root)
	tree := manualTree(root, 4)
	err := tree.Check()
	if !errors.Is(err, ErrInvariantViolated) {
		t.Fatalf("expected ErrInvariantViolated, have %v", err)
	}
	if !strings.Contains(err.Error(), "red node with red child") {
		t.Errorf("expected the color rule to be named, have %q", err)
	}
}

func TestCheckDetectsBlackHeightMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	root := manualNode(10, false, nil)
	manualNode(5, false, root) // black left child, absent right child
	tree := manualTree(root, 2)
	err := tree.Check()
	if !errors.Is(err, ErrInvariantViolated) {
		t.Fatalf("expected ErrInvariantViolated, have %v", err)
	}
	if !strings.Contains(err.Error(), "black-height") {
		t.Errorf("expected the black-height rule to be named, have %q", err)
	}
}

func TestCheckDetectsBrokenLinkage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	root := manualNode(10, false, nil)
	left := manualNode(5, true, root)
	manualNode(20, true, root)
	left.parent = left // corrupt the back link
	tree := manualTree(root, 3)
	err := tree.Check()
	if !errors.Is(err, ErrInvariantViolated) {
		t.Fatalf("expected ErrInvariantViolated, have %v", err)
	}
	if !strings.Contains(err.Error(), "links") {
		t.Errorf("expected the linkage rule to be named, have %q", err)
	}
}

func TestCheckDetectsMultiplicityMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	root := manualNode(10, false, nil)
	root.mult = 3
	tree := manualTree(root, 1) // size disagrees with the counter
	err := tree.Check()
	if !errors.Is(err, ErrInvariantViolated) {
		t.Fatalf("expected ErrInvariantViolated, have %v", err)
	}
	if !strings.Contains(err.Error(), "multiplicity") {
		t.Errorf("expected the multiplicity rule to be named, have %q", err)
	}
	root.mult = 0 // a node must count at least one occurrence
	tree.size = 0
	if tree.Verify() {
		t.Errorf("expected zero multiplicity to be rejected")
	}
}

func TestCheckDetectsStaleSizeOnEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	tree := manualTree(nil, 2)
	if err := tree.Check(); !errors.Is(err, ErrInvariantViolated) {
		t.Errorf("expected ErrInvariantViolated for empty tree with size 2, have %v", err)
	}
}

func TestCheckAcceptsValidTrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	tree := New[int]()
	for _, k := range []int{13, 8, 17, 1, 11, 15, 25, 6, 22, 27} {
		tree.Insert(k)
		if err := tree.Check(); err != nil {
			t.Fatalf("tree invalid after Insert(%d): %v", k, err)
		}
	}
	if !tree.Verify() {
		t.Errorf("Verify disagrees with Check")
	}
}
