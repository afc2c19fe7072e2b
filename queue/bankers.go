package queue

import (
	"github.com/npillmayer/pfds"
	"github.com/npillmayer/pfds/list"
)

// Bankers is a persistent FIFO queue with amortized O(1) operations.
// The zero value is an empty queue, ready to use:
//
//     var q queue.Bankers[int]
//     q = q.Enqueue(7)
//
// Logical queue order is front ++ reverse(back). The invariant “front is
// only empty when back is empty too” is restored by every operation, so
// Front never has to look at the back list.
type Bankers[T any] struct {
	front, back *list.List[T]
}

// IsEmpty is true for the empty queue.
func (q Bankers[T]) IsEmpty() bool {
	return q.front.IsEmpty()
}

// Enqueue returns a queue with x appended at the back. Amortized O(1).
func (q Bankers[T]) Enqueue(x T) Bankers[T] {
	return balanced(q.front, q.back.Cons(x))
}

// Front returns the oldest element of q, or pfds.ErrEmptyQueue. O(1).
func (q Bankers[T]) Front() (T, error) {
	head, err := q.front.Head()
	if err != nil {
		var none T
		return none, pfds.ErrEmptyQueue
	}
	return head, nil
}

// Dequeue returns a queue without the oldest element, or
// pfds.ErrEmptyQueue. Amortized O(1); the call which drains the front
// list pays O(n) to reverse the back list into it.
func (q Bankers[T]) Dequeue() (Bankers[T], error) {
	rest, err := q.front.Tail()
	if err != nil {
		return q, pfds.ErrEmptyQueue
	}
	return balanced(rest, q.back), nil
}

// balanced is the only constructor path for Bankers; it re-establishes
// the front/back invariant.
func balanced[T any](front, back *list.List[T]) Bankers[T] {
	if front.IsEmpty() {
		tracer().Debugf("bankers: reversing %d elements into the front", back.Len())
		return Bankers[T]{front: back.Reverse()}
	}
	return Bankers[T]{front: front, back: back}
}
