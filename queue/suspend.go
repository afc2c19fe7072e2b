package queue

import "sync/atomic"

// stepCount counts suspension evaluations. It exists solely so that
// tests can verify the per-operation cost bound of the real-time queue;
// no algorithm reads it.
var stepCount uint64

// stream is a lazy list: a suspension of a cons cell. A nil *stream is
// the (forced) empty stream. Each suspension is evaluated at most once,
// its result memoized in place — the only write-after-construction in
// this module, invisible to callers and required for the worst-case
// analysis: without memoization, revisiting an old incarnation of a
// queue would re-run rotation steps that have already been paid for.
type stream[T any] struct {
	cell  *cell[T]
	thunk func() *cell[T]
}

// cell is one evaluated stream node; tail may still be suspended.
type cell[T any] struct {
	head T
	tail *stream[T]
}

// suspend wraps a computation of a stream node without running it.
func suspend[T any](thunk func() *cell[T]) *stream[T] {
	return &stream[T]{thunk: thunk}
}

// emit makes an already-forced stream node. O(1), no suspension involved.
func emit[T any](head T, tail *stream[T]) *stream[T] {
	return &stream[T]{cell: &cell[T]{head: head, tail: tail}}
}

// force evaluates a suspension on first access and returns the memoized
// cell thereafter; nil for the empty stream.
func force[T any](s *stream[T]) *cell[T] {
	if s == nil {
		return nil
	}
	if s.thunk != nil {
		atomic.AddUint64(&stepCount, 1)
		s.cell = s.thunk()
		s.thunk = nil
	}
	return s.cell
}
