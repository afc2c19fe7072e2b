package searchtree

import (
	"github.com/npillmayer/pfds/maybe"
	"golang.org/x/exp/constraints"
)

// Tree is a persistent unbalanced binary search tree holding each value
// at most once. The zero value is an empty tree, ready to use:
//
//     var t searchtree.Tree[int]
//     t = t.With(7).With(3)
//
type Tree[T constraints.Ordered] struct {
	root *node[T]
}

type node[T constraints.Ordered] struct {
	value       T
	left, right *node[T]
}

// New builds a tree containing values.
func New[T constraints.Ordered](values ...T) Tree[T] {
	var t Tree[T]
	for _, v := range values {
		t = t.With(v)
	}
	return t
}

// IsEmpty is true for the empty tree.
func (t Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Contains reports whether x is in the tree. O(depth).
func (t Tree[T]) Contains(x T) bool {
	for n := t.root; n != nil; {
		switch {
		case x < n.value:
			n = n.left
		case n.value < x:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// With returns a tree additionally containing x. If x is already present
// the tree is returned unchanged. The search path is copied, all other
// nodes are shared.
func (t Tree[T]) With(x T) Tree[T] {
	if t.Contains(x) {
		return t // no need for modification
	}
	tracer().Debugf("insert %v: copying search path", x)
	return Tree[T]{root: inserted(x, t.root)}
}

func inserted[T constraints.Ordered](x T, n *node[T]) *node[T] {
	if n == nil {
		return &node[T]{value: x}
	}
	if x < n.value {
		return &node[T]{value: n.value, left: inserted(x, n.left), right: n.right}
	}
	return &node[T]{value: n.value, left: n.left, right: inserted(x, n.right)}
}

// Without returns a tree without x. If x is not present the tree is
// returned unchanged.
func (t Tree[T]) Without(x T) Tree[T] {
	if !t.Contains(x) {
		return t // no need for modification
	}
	return Tree[T]{root: deleted(x, t.root)}
}

func deleted[T constraints.Ordered](x T, n *node[T]) *node[T] {
	switch {
	case x < n.value:
		return &node[T]{value: n.value, left: deleted(x, n.left), right: n.right}
	case n.value < x:
		return &node[T]{value: n.value, left: n.left, right: deleted(x, n.right)}
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	}
	// two children: pull up the rightmost value of the left subtree
	pred := n.left
	for pred.right != nil {
		pred = pred.right
	}
	return &node[T]{value: pred.value, left: deleted(pred.value, n.left), right: n.right}
}

// Min returns the smallest value of the tree, Nothing for the empty
// tree. O(depth).
func (t Tree[T]) Min() maybe.Maybe[T] {
	if t.root == nil {
		return maybe.Nothing[T]()
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return maybe.Just(n.value)
}

// Each calls f on every value in ascending order.
func (t Tree[T]) Each(f func(T)) {
	visit(t.root, f)
}

func visit[T constraints.Ordered](n *node[T], f func(T)) {
	if n == nil {
		return
	}
	visit(n.left, f)
	f(n.value)
	visit(n.right, f)
}
