package queue

import (
	"github.com/npillmayer/pfds"
	"github.com/npillmayer/pfds/list"
)

// RealTime is a persistent FIFO queue with worst-case O(1) operations.
// The zero value is an empty queue, ready to use.
//
// The front is a stream whose unevaluated suffix represents the pending
// rotation; sched is exactly that suffix. Every operation forces at most
// one step of it, and the invariant len(back) ≤ len(front) guarantees the
// schedule drains before the next rotation becomes due — this is what
// spreads the reversal cost evenly instead of paying it on a single call.
type RealTime[T any] struct {
	front *stream[T]
	back  *list.List[T]
	sched *stream[T]
}

// IsEmpty is true for the empty queue.
func (q RealTime[T]) IsEmpty() bool {
	return force(q.front) == nil
}

// Enqueue returns a queue with x appended at the back. O(1) worst case.
func (q RealTime[T]) Enqueue(x T) RealTime[T] {
	return step(q.front, q.back.Cons(x), q.sched)
}

// Front returns the oldest element of q, or pfds.ErrEmptyQueue. O(1)
// worst case.
func (q RealTime[T]) Front() (T, error) {
	c := force(q.front)
	if c == nil {
		var none T
		return none, pfds.ErrEmptyQueue
	}
	return c.head, nil
}

// Dequeue returns a queue without the oldest element, or
// pfds.ErrEmptyQueue. O(1) worst case.
func (q RealTime[T]) Dequeue() (RealTime[T], error) {
	c := force(q.front)
	if c == nil {
		return q, pfds.ErrEmptyQueue
	}
	return step(c.tail, q.back, q.sched), nil
}

// step is the only constructor path for RealTime. With work left on the
// schedule it forces one node and moves on; with the schedule drained, a
// rotation is due: the whole queue becomes a single suspended rotation,
// which doubles as the new schedule.
func step[T any](front *stream[T], back *list.List[T], sched *stream[T]) RealTime[T] {
	if c := force(sched); c != nil {
		return RealTime[T]{front: front, back: back, sched: c.tail}
	}
	tracer().Debugf("realtime: schedule drained, suspending a rotation")
	rotated := rotate(front, back, nil)
	return RealTime[T]{front: rotated, sched: rotated}
}

// rotate is reverse-and-append as a resumable computation: forcing the
// result produces one node and leaves the rest suspended. Precondition
// (maintained by step): len(back) = len(front) + 1.
func rotate[T any](front *stream[T], back *list.List[T], acc *stream[T]) *stream[T] {
	return suspend(func() *cell[T] {
		y, ytail, ok := back.Uncons()
		assertThat(ok, "rotation started with empty back list")
		f := force(front)
		if f == nil { // back holds exactly one element
			return &cell[T]{head: y, tail: acc}
		}
		return &cell[T]{
			head: f.head,
			tail: rotate(f.tail, ytail, emit(y, acc)),
		}
	})
}
