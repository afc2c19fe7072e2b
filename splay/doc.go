/*
Package splay implements a persistent splay heap.

Unlike the leftist and binomial variants, a splay heap is ordered like a
binary search tree (values smaller than the node to the left, larger to
the right); its minimum is the leftmost node. No explicit balance
invariant is maintained. Instead, every insertion, meld and minimum
deletion restructures part of the tree along the path it touches —
“splaying” — which keeps operations at amortized O(log n) against a
standard potential-function argument.

The heart of the package is partition, which splits a tree around a pivot
into the values ≤ pivot and the values > pivot while flattening the
traversed path. The minimum is cached alongside the tree, so FindMin is
O(1).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package splay

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pfds.splay'.
func tracer() tracing.Trace {
	return tracing.Select("pfds.splay")
}
