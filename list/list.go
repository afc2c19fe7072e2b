package list

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyList is returned by Head and Tail when called on an empty list.
var ErrEmptyList = errors.New("head or tail of empty list")

// List is a cons cell. A nil *List is the empty list.
type List[T any] struct {
	head T
	tail *List[T]
}

// New builds a list from items, first item in front.
func New[T any](items ...T) *List[T] {
	var l *List[T]
	for i := len(items) - 1; i >= 0; i-- {
		l = l.Cons(items[i])
	}
	return l
}

// Cons returns a list with x in front of l. l is shared as the tail of the
// new list, not copied.
func (l *List[T]) Cons(x T) *List[T] {
	return &List[T]{head: x, tail: l}
}

// IsEmpty is true for the empty list.
func (l *List[T]) IsEmpty() bool {
	return l == nil
}

// Head returns the first item of l, or ErrEmptyList.
func (l *List[T]) Head() (T, error) {
	if l == nil {
		var none T
		return none, ErrEmptyList
	}
	return l.head, nil
}

// Tail returns l without its first item, or ErrEmptyList. The returned
// list is shared with l.
func (l *List[T]) Tail() (*List[T], error) {
	if l == nil {
		return nil, ErrEmptyList
	}
	return l.tail, nil
}

// Uncons splits l into its first item and the rest, with ok=false for the
// empty list. It is the pattern-match workhorse for clients which already
// hold a non-emptiness invariant and do not want the error plumbing of
// Head/Tail.
func (l *List[T]) Uncons() (head T, tail *List[T], ok bool) {
	if l == nil {
		return
	}
	return l.head, l.tail, true
}

// Len walks the list and counts its cells. O(n).
func (l *List[T]) Len() int {
	n := 0
	for ; l != nil; l = l.tail {
		n++
	}
	return n
}

// Reverse returns l in reverse order. O(n), no sharing with l.
func (l *List[T]) Reverse() *List[T] {
	var rev *List[T]
	for ; l != nil; l = l.tail {
		rev = rev.Cons(l.head)
	}
	return rev
}

// Concat appends m to l. The cells of l are copied, m is shared as the
// common suffix. O(len(l)).
func (l *List[T]) Concat(m *List[T]) *List[T] {
	if l == nil {
		return m
	}
	if m == nil {
		return l
	}
	tracer().Debugf("concat: copying %d cells", l.Len())
	return catenate(l, m)
}

func catenate[T any](l, m *List[T]) *List[T] {
	if l == nil {
		return m
	}
	return catenate(l.tail, m).Cons(l.head)
}

// Each calls f on every item of l, front to back.
func (l *List[T]) Each(f func(T)) {
	for ; l != nil; l = l.tail {
		f(l.head)
	}
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteString("(")
	for ; l != nil; l = l.tail {
		if b.Len() > 1 {
			b.WriteString(" ")
		}
		fmt.Fprint(&b, l.head)
	}
	b.WriteString(")")
	return b.String()
}
