/*
Package pfds collects persistent (immutable) functional data structures:
linked lists, heap-ordered trees and double-ended queues.

Persistent data structures can be copied and modified efficiently, leaving
the original unchanged. Functional programming languages like Lisp and ML
have long relied on using them. Every “modifying” operation in this module
returns a new incarnation of the structure; prior incarnations stay valid
indefinitely. Under the hood most of the memory is shared between
incarnations (structural sharing), so copies are cheap in terms of space-
and time-complexity, and concurrent readers need no synchronization at all.

The sub-packages each implement one structure:

   list        persistent singly-linked list (cons cells)
   leftist     leftist heap (rank-balanced, merge-based)
   binomial    binomial heap (forest of rank-distinct trees)
   splay       splay heap (search-tree ordered, partition-rebalanced)
   queue       banker's queue and worst-case O(1) real-time queue
   searchtree  unbalanced persistent binary search tree

This package holds the contracts the variants share, together with a
heap-sort composition built on top of them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pfds
