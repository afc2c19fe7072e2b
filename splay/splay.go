package splay

import (
	"github.com/npillmayer/pfds"
	"github.com/npillmayer/pfds/maybe"
	"golang.org/x/exp/constraints"
)

// Heap is a persistent splay heap. The zero value is an empty heap,
// ready to use.
type Heap[T constraints.Ordered] struct {
	min  maybe.Maybe[T] // cached leftmost value
	root *node[T]
}

type node[T constraints.Ordered] struct {
	value       T
	left, right *node[T]
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

// FindMin returns the cached minimum of h, or pfds.ErrEmptyHeap. O(1).
func (h Heap[T]) FindMin() (T, error) {
	if m, ok := h.min.Value(); ok {
		return m, nil
	}
	var none T
	return none, pfds.ErrEmptyHeap
}

// Insert returns a heap additionally containing x. The tree is
// partitioned around x and x becomes the new root, with the traversed
// path flattened as a side effect. Amortized O(log n).
func (h Heap[T]) Insert(x T) Heap[T] {
	smaller, larger := partition(x, h.root)
	return Heap[T]{
		min:  lowered(h.min, x),
		root: &node[T]{value: x, left: smaller, right: larger},
	}
}

// Merge melds h and other into one heap. Both inputs stay valid.
// Amortized O(log n).
func (h Heap[T]) Merge(other Heap[T]) Heap[T] {
	min := h.min
	if m, ok := other.min.Value(); ok {
		min = lowered(min, m)
	}
	return Heap[T]{min: min, root: meld(h.root, other.root)}
}

// DeleteMin returns a heap without the minimum value of h, or
// pfds.ErrEmptyHeap. Deleting the leftmost node halves the depth of the
// left spine on the way, which is what keeps repeated deletion at
// amortized O(log n).
func (h Heap[T]) DeleteMin() (Heap[T], error) {
	if h.root == nil {
		return h, pfds.ErrEmptyHeap
	}
	root := deleteLeftmost(h.root)
	return Heap[T]{min: leftmost(root), root: root}, nil
}

// partition splits tree into the values ≤ pivot and the values > pivot.
// Each structural case performs one rotation and recurses into a subtree
// two levels down, so the cost is proportional to the depth traversed and
// the traversed path comes out halved.
func partition[T constraints.Ordered](pivot T, tree *node[T]) (smaller, larger *node[T]) {
	if tree == nil {
		return nil, nil
	}
	a, x, b := tree.left, tree.value, tree.right
	if x <= pivot {
		if b == nil {
			return tree, nil
		}
		b1, y, b2 := b.left, b.value, b.right
		if y <= pivot {
			tracer().Debugf("partition: zig-zig right at %v, %v", x, y)
			small, big := partition(pivot, b2)
			return &node[T]{value: y, left: &node[T]{value: x, left: a, right: b1}, right: small}, big
		}
		small, big := partition(pivot, b1)
		return &node[T]{value: x, left: a, right: small},
			&node[T]{value: y, left: big, right: b2}
	}
	if a == nil {
		return nil, tree
	}
	a1, y, a2 := a.left, a.value, a.right
	if y <= pivot {
		small, big := partition(pivot, a2)
		return &node[T]{value: y, left: a1, right: small},
			&node[T]{value: x, left: big, right: b}
	}
	tracer().Debugf("partition: zig-zig left at %v, %v", x, y)
	small, big := partition(pivot, a1)
	return small, &node[T]{value: y, left: big, right: &node[T]{value: x, left: a2, right: b}}
}

// meld partitions the second tree around the first tree's root and
// recurses into both halves.
func meld[T constraints.Ordered](a, b *node[T]) *node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	smaller, larger := partition(a.value, b)
	return &node[T]{
		value: a.value,
		left:  meld(smaller, a.left),
		right: meld(larger, a.right),
	}
}

// deleteLeftmost removes the leftmost node of a non-empty tree,
// rebalancing the left spine as it unwinds.
func deleteLeftmost[T constraints.Ordered](n *node[T]) *node[T] {
	if n.left == nil {
		return n.right
	}
	if n.left.left == nil { // leftmost is n.left: replace it with its right child
		return &node[T]{value: n.value, left: n.left.right, right: n.right}
	}
	a, x, b := n.left.left, n.left.value, n.left.right
	return &node[T]{
		value: x,
		left:  deleteLeftmost(a),
		right: &node[T]{value: n.value, left: b, right: n.right},
	}
}

func leftmost[T constraints.Ordered](n *node[T]) maybe.Maybe[T] {
	if n == nil {
		return maybe.Nothing[T]()
	}
	for n.left != nil {
		n = n.left
	}
	return maybe.Just(n.value)
}

func lowered[T constraints.Ordered](min maybe.Maybe[T], x T) maybe.Maybe[T] {
	if m, ok := min.Value(); ok && m <= x {
		return min
	}
	return maybe.Just(x)
}
