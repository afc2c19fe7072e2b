/*
Package leftist implements a persistent leftist heap.

A leftist heap is a heap-ordered binary tree which additionally keeps the
leftist property: the rank of every left child is at least the rank of its
right sibling, where the rank of a node is the length of its right spine.
The right spine of a leftist tree therefore has at most ⌈log₂(n+1)⌉ nodes,
and melding two heaps — the fundamental operation, from which insertion
and minimum-deletion derive — walks right spines only and costs O(log n).

All operations return new incarnations; subtrees untouched by an operation
are shared between incarnations.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package leftist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pfds.leftist'.
func tracer() tracing.Trace {
	return tracing.Select("pfds.leftist")
}
