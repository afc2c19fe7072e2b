/*
Package searchtree implements a persistent unbalanced binary search tree,
usable as an ordered set.

No rebalancing is performed — the tree's shape depends on insertion
order, with O(log n) expected and O(n) worst-case operations. Insertion
and deletion copy the nodes on the path they touch and share everything
else with the previous incarnation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package searchtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pfds.searchtree'.
func tracer() tracing.Trace {
	return tracing.Select("pfds.searchtree")
}
