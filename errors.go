package rbtree

import "errors"

var (
	// ErrKeyNotFound signals a removal request for a key that is not in the tree.
	ErrKeyNotFound = errors.New("rbtree: key not found in tree")
	// ErrInvariantViolated marks a structural red-black invariant violation
	// detected by Check.
	ErrInvariantViolated = errors.New("rbtree: invariant violated")
)
