package pfds

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmptyHeap is returned by FindMin and DeleteMin when called on an empty
// heap. This is a precondition violation on the caller's side; heaps never
// hand out sentinel minima instead.
var ErrEmptyHeap = errors.New("find-min or delete-min on empty heap")

// ErrEmptyQueue is returned by Front and Dequeue when called on an empty
// queue.
var ErrEmptyQueue = errors.New("front or dequeue on empty queue")

// Heap is the contract shared by the heap variants of this module
// (leftist, binomial, splay). H is the concrete implementing type, so
// “modifying” operations stay fully typed:
//
//     var h leftist.Heap[int]    // implements Heap[int, leftist.Heap[int]]
//     h = h.Insert(7)
//
// All operations are persistent: the receiver is never changed.
type Heap[T constraints.Ordered, H any] interface {
	IsEmpty() bool
	FindMin() (T, error)
	Insert(x T) H
	DeleteMin() (H, error)
	Merge(other H) H
}

// Queue is the contract shared by the queue variants of this module
// (banker's, real-time). Q is the concrete implementing type.
type Queue[T any, Q any] interface {
	IsEmpty() bool
	Front() (T, error)
	Enqueue(x T) Q
	Dequeue() (Q, error)
}

// HeapSort sorts values by melding them into a heap and extracting the
// minimum repeatedly. The heap is built by pairwise merging a worklist of
// singleton heaps, round by round, which costs O(n) in total — sequential
// insertion would cost O(n log n) for the merge-based heaps.
//
// `empty` is an empty heap of the desired variant and only selects the
// implementation:
//
//     sorted := pfds.HeapSort(values, leftist.Heap[int]{})
//
func HeapSort[T constraints.Ordered, H Heap[T, H]](values []T, empty H) []T {
	if len(values) == 0 {
		return []T{}
	}
	work := make([]H, len(values))
	for i, v := range values {
		work[i] = empty.Insert(v)
	}
	for len(work) > 1 {
		melded := make([]H, 0, (len(work)+1)/2)
		for i := 0; i+1 < len(work); i += 2 {
			melded = append(melded, work[i].Merge(work[i+1]))
		}
		if len(work)%2 == 1 {
			melded = append(melded, work[len(work)-1])
		}
		work = melded
	}
	heap := work[0]
	sorted := make([]T, 0, len(values))
	for !heap.IsEmpty() {
		m, err := heap.FindMin()
		if err != nil {
			break // unreachable: IsEmpty was false
		}
		sorted = append(sorted, m)
		heap, _ = heap.DeleteMin()
	}
	return sorted
}
