package binomial

import (
	"github.com/npillmayer/pfds"
	"github.com/npillmayer/pfds/list"
	"github.com/npillmayer/pfds/maybe"
	"golang.org/x/exp/constraints"
)

// Heap is a persistent binomial heap. The zero value is an empty heap,
// ready to use.
type Heap[T constraints.Ordered] struct {
	min   maybe.Maybe[T]       // cached minimum over all tree roots
	trees *list.List[*tree[T]] // forest, strictly increasing in rank
}

type tree[T constraints.Ordered] struct {
	value    T
	rank     int
	children *list.List[*tree[T]] // ranks rank−1 … 0, highest in front
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
	return h.trees.IsEmpty()
}

// FindMin returns the cached minimum of h, or pfds.ErrEmptyHeap. O(1).
func (h Heap[T]) FindMin() (T, error) {
	if m, ok := h.min.Value(); ok {
		return m, nil
	}
	var none T
	return none, pfds.ErrEmptyHeap
}

// Insert returns a heap additionally containing x by pushing a rank-0
// tree into the forest, linking and carrying as needed. Amortized O(1),
// worst case O(log n) when every bit of the element count is set.
func (h Heap[T]) Insert(x T) Heap[T] {
	singleton := &tree[T]{value: x}
	return Heap[T]{
		min:   lowered(h.min, x),
		trees: insertTree(singleton, h.trees),
	}
}

// Merge melds h and other into one heap. Both inputs stay valid. O(log n).
func (h Heap[T]) Merge(other Heap[T]) Heap[T] {
	min := h.min
	if m, ok := other.min.Value(); ok {
		min = lowered(min, m)
	}
	return Heap[T]{min: min, trees: meld(h.trees, other.trees)}
}

// DeleteMin returns a heap without the minimum value of h, or
// pfds.ErrEmptyHeap. The tree carrying the minimum root is removed from
// the forest and its children are melded back in; the cached minimum is
// recomputed by rescanning the remaining roots. O(log n).
func (h Heap[T]) DeleteMin() (Heap[T], error) {
	min, ok := h.min.Value()
	if !ok {
		return h, pfds.ErrEmptyHeap
	}
	winner, rest := detach(min, h.trees)
	tracer().Debugf("delete-min: removing rank-%d tree with root %v", winner.rank, winner.value)
	// children are highest-rank-first, the forest needs increasing ranks
	forest := meld(winner.children.Reverse(), rest)
	return Heap[T]{min: scanMin(forest), trees: forest}, nil
}

// --- Forest bookkeeping ----------------------------------------------------

// link joins two trees of equal rank into one of the next rank: the
// larger root becomes the new highest-rank child of the smaller root.
// Ties go to a. O(1).
func link[T constraints.Ordered](a, b *tree[T]) *tree[T] {
	assertThat(a.rank == b.rank, "attempt to link trees of ranks %d and %d", a.rank, b.rank)
	if b.value < a.value {
		a, b = b, a
	}
	return &tree[T]{value: a.value, rank: a.rank + 1, children: a.children.Cons(b)}
}

// insertTree pushes t into a forest of rank ≥ rank(t), linking equal
// ranks and carrying the result, like incrementing a binary number.
func insertTree[T constraints.Ordered](t *tree[T], forest *list.List[*tree[T]]) *list.List[*tree[T]] {
	head, rest, ok := forest.Uncons()
	if !ok {
		return forest.Cons(t)
	}
	if t.rank < head.rank {
		return forest.Cons(t)
	}
	return insertTree(link(t, head), rest)
}

// meld adds two forests like binary numbers: unequal front ranks pass
// through, equal front ranks link into a carry which is inserted — not
// merely consed — into the meld of the tails, to absorb further carries.
func meld[T constraints.Ordered](a, b *list.List[*tree[T]]) *list.List[*tree[T]] {
	ta, resta, ok := a.Uncons()
	if !ok {
		return b
	}
	tb, restb, ok := b.Uncons()
	if !ok {
		return a
	}
	switch {
	case ta.rank < tb.rank:
		return meld(resta, b).Cons(ta)
	case tb.rank < ta.rank:
		return meld(a, restb).Cons(tb)
	default:
		return insertTree(link(ta, tb), meld(resta, restb))
	}
}

// detach removes the first tree whose root carries min from the forest.
// The cached minimum is always present verbatim at some root, so the
// scan must find it.
func detach[T constraints.Ordered](min T, forest *list.List[*tree[T]]) (*tree[T], *list.List[*tree[T]]) {
	head, rest, ok := forest.Uncons()
	assertThat(ok, "cached minimum not found at any root")
	if head.value == min {
		return head, rest
	}
	winner, remainder := detach(min, rest)
	return winner, remainder.Cons(head)
}

func scanMin[T constraints.Ordered](forest *list.List[*tree[T]]) maybe.Maybe[T] {
	min := maybe.Nothing[T]()
	forest.Each(func(t *tree[T]) {
		min = lowered(min, t.value)
	})
	return min
}

func lowered[T constraints.Ordered](min maybe.Maybe[T], x T) maybe.Maybe[T] {
	if m, ok := min.Value(); ok && m <= x {
		return min
	}
	return maybe.Just(x)
}
