/*
Package binomial implements a persistent binomial heap.

A binomial heap is a forest of heap-ordered binomial trees with pairwise
distinct ranks, kept in increasing rank order. A binomial tree of rank r
has exactly r children of ranks r−1 … 0 (highest rank in front) and 2^r
nodes, so the forest mirrors the binary representation of the element
count: bit i is set exactly when a tree of rank i is present. Inserting
links equal-rank trees and propagates the result like a binary carry;
melding two heaps is binary addition of their forests.

The minimum is cached alongside the forest, so FindMin is O(1); all other
operations cost O(log n), insertion O(1) amortized.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package binomial

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pfds.binomial'.
func tracer() tracing.Trace {
	return tracing.Select("pfds.binomial")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("binomial: "+msg, msgargs...)
		panic(msg)
	}
}
