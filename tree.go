package rbtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "cmp"

// Tree is an ordered multiset of keys, stored in a red-black tree.
//
// A tree created by
//
//	Tree[int]{}
//
// is a valid object and behaves like the empty multiset. Duplicate keys are
// collapsed into one node with a multiplicity counter, so performance
// characteristics depend on the number of distinct keys d rather than the
// total element count n.
//
//	Operation     |   Multiset tree |  Sorted slice
//	--------------+-----------------+--------------
//	Insert        |   O(log d)      |   O(n)
//	Remove        |   O(log d)      |   O(n)
//	Contains      |   O(log d)      |   O(log n)
//	Count         |   O(log d)      |   O(log n)
//
// Trees are not safe for concurrent use.
type Tree[T cmp.Ordered] struct {
	root *node[T]
	size int // total element count, including duplicates
}

// New creates an empty multiset tree.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Len returns the total number of elements in the multiset, counting
// duplicates.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the multiset has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t.Len() == 0
}

// Height returns the tree height, where 0 means empty and 1 means a
// single-node tree.
func (t *Tree[T]) Height() int {
	if t == nil || t.root == nil {
		return 0
	}
	height := 0
	level := []*node[T]{t.root}
	for len(level) > 0 {
		height++
		var next []*node[T]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}

// Contains reports whether key is an element of the multiset.
func (t *Tree[T]) Contains(key T) bool {
	return t.Count(key) != 0
}

// Count returns the number of times key is contained in the multiset,
// 0 if it is absent.
func (t *Tree[T]) Count(key T) int {
	n := t.findNode(key)
	if n == nil {
		return 0
	}
	return n.mult
}

// findNode descends from the root by key comparison and returns the node
// holding key, or nil if the key is absent. Read-only.
func (t *Tree[T]) findNode(key T) *node[T] {
	if t == nil {
		return nil
	}
	curr := t.root
	for curr != nil {
		switch {
		case key < curr.key:
			curr = curr.left
		case key > curr.key:
			curr = curr.right
		default:
			return curr
		}
	}
	return nil
}
