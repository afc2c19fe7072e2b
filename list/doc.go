/*
Package list implements a persistent singly-linked list built from cons
cells. A nil *List is the empty list and is fully usable:

    var l *list.List[int]
    l = l.Cons(2).Cons(1)     // list ⟨1 2⟩

Lists are never modified in place. Cons allocates a single cell and shares
the whole receiver as the tail, so any number of lists may share a common
suffix; this is the structural-sharing backbone of the heap and queue
packages of this module.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pfds.list'.
func tracer() tracing.Trace {
	return tracing.Select("pfds.list")
}
