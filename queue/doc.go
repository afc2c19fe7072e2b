/*
Package queue implements two persistent FIFO queues.

Bankers is the classic two-list queue: elements are enqueued onto a back
list and dequeued from a front list; when the front drains, the back is
reversed into it in one go. A single call may therefore cost O(n), but
each element is moved exactly once, paid for by a credit deposited when
it was enqueued, so the amortized cost per operation is O(1).

RealTime removes the O(n) spike. The pending reversal is expressed as a
suspended, resumable rotation which produces one node per evaluation
step, and every queue operation forces at most one previously-unevaluated
step as part of its bookkeeping (tracked by a schedule which is always a
suffix of the front stream). Suspensions are memoized — each one is
evaluated at most once — which is what turns the amortized bound into a
true worst-case O(1) bound even when old incarnations of a queue are
revisited.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package queue

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pfds.queue'.
func tracer() tracing.Trace {
	return tracing.Select("pfds.queue")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("queue: "+msg, msgargs...)
		panic(msg)
	}
}
