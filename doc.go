/*
Package rbtree implements an ordered multiset, backed by a red-black tree.

Multiset Trees

A multiset stores totally ordered keys and remembers how often each key has
been inserted. Duplicate insertions of a key are collapsed into a single
physical tree node carrying a multiplicity counter, so the tree height depends
on the number of distinct keys only. The container supports insertion, removal,
membership tests and duplicate counting, with automatic rebalancing after
every structural change.

The balancing scheme is the classic red-black tree (MIT OpenCourseware is a
good resource). A valid tree satisfies:

1) Each node is red or black.

2) The root and the conceptual NULL leaves are black.

3) A red node has two black children.

4) Every path from a node down to its descendant leaves passes through the
same number of black nodes.

These rules bound the height to O(log n) for n distinct keys, giving
logarithmic insert, remove, contains and count.

A tree created by

	rbtree.Tree[int]{}

is a valid object and behaves like the empty multiset.

Trees have full value semantics: Clone produces a deep structural copy which
shares no node with its source, and CopyFrom implements assignment, replacing
a tree's content with an independent copy of another tree's.

Trees are not safe for concurrent use. A tree instance is single-owner;
callers have to serialize access themselves if they share one.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package rbtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
