package leftist

import (
	"github.com/npillmayer/pfds"
	"golang.org/x/exp/constraints"
)

// Heap is a persistent leftist heap. The zero value is an empty heap,
// ready to use:
//
//     var h leftist.Heap[int]
//     h = h.Insert(7)
//
type Heap[T constraints.Ordered] struct {
	root *node[T]
}

type node[T constraints.Ordered] struct {
	value       T
	left, right *node[T]
	rank        int // length of the right spine, ≥ 1 for any live node
}

// New builds a heap containing values.
func New[T constraints.Ordered](values ...T) Heap[T] {
	var h Heap[T]
	for _, v := range values {
		h = h.Insert(v)
	}
	return h
}

// IsEmpty is true for the empty heap.
func (h Heap[T]) IsEmpty() bool {
	return h.root == nil
}

// FindMin returns the minimum value of h, or pfds.ErrEmptyHeap. O(1).
func (h Heap[T]) FindMin() (T, error) {
	if h.root == nil {
		var none T
		return none, pfds.ErrEmptyHeap
	}
	return h.root.value, nil
}

// Insert returns a heap additionally containing x, melding h with a
// singleton. O(log n).
func (h Heap[T]) Insert(x T) Heap[T] {
	singleton := &node[T]{value: x, rank: 1}
	return Heap[T]{root: meld(h.root, singleton)}
}

// DeleteMin returns a heap without the minimum value of h, or
// pfds.ErrEmptyHeap. The minimum's subtrees are melded. O(log n).
func (h Heap[T]) DeleteMin() (Heap[T], error) {
	if h.root == nil {
		return h, pfds.ErrEmptyHeap
	}
	return Heap[T]{root: meld(h.root.left, h.root.right)}, nil
}

// Merge melds h and other into one heap. Both inputs stay valid. O(log n).
func (h Heap[T]) Merge(other Heap[T]) Heap[T] {
	return Heap[T]{root: meld(h.root, other.root)}
}

// meld recurses along the right spine of whichever tree has the larger
// root; ties go to a. Each step rebuilds a single node and swaps its
// children if the leftist property would be violated.
func meld[T constraints.Ordered](a, b *node[T]) *node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.value < a.value {
		a, b = b, a
	}
	tracer().Debugf("meld: %v wins, descending right spine", a.value)
	return build(a.value, a.left, meld(a.right, b))
}

// build makes a node ⟨value, left, right⟩, swapping the children so that
// the one with the larger rank ends up left.
func build[T constraints.Ordered](value T, left, right *node[T]) *node[T] {
	if rank(left) >= rank(right) {
		return &node[T]{value: value, left: left, right: right, rank: rank(right) + 1}
	}
	return &node[T]{value: value, left: right, right: left, rank: rank(left) + 1}
}

func rank[T constraints.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.rank
}
