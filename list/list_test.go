package list

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestListEmpty(t *testing.T) {
	var l *List[int]
	if !l.IsEmpty() {
		t.Error("expected nil list to be empty, isn't")
	}
	if _, err := l.Head(); !errors.Is(err, ErrEmptyList) {
		t.Errorf("expected Head of empty list to fail with ErrEmptyList, got %v", err)
	}
	if _, err := l.Tail(); !errors.Is(err, ErrEmptyList) {
		t.Errorf("expected Tail of empty list to fail with ErrEmptyList, got %v", err)
	}
	if _, _, ok := l.Uncons(); ok {
		t.Error("expected Uncons of empty list to report ok=false, didn't")
	}
}

func TestListCons(t *testing.T) {
	l := New(1, 2, 3)
	if l.Len() != 3 {
		t.Errorf("expected list of length 3, is %d", l.Len())
	}
	head, err := l.Head()
	if err != nil || head != 1 {
		t.Errorf("expected head of (1 2 3) to be 1, is %v", head)
	}
	if l.String() != "(1 2 3)" {
		t.Errorf("expected list to print as (1 2 3), is %s", l)
	}
}

func TestListSharing(t *testing.T) {
	l := New(2, 3)
	m := l.Cons(1)
	n := l.Cons(7)
	tail1, _ := m.Tail()
	tail2, _ := n.Tail()
	if tail1 != tail2 {
		t.Error("expected both lists to share their suffix, don't")
	}
	if l.String() != "(2 3)" {
		t.Errorf("expected original list to be unchanged, is %s", l)
	}
}

func TestListReverse(t *testing.T) {
	l := New(1, 2, 3, 4)
	r := l.Reverse()
	if r.String() != "(4 3 2 1)" {
		t.Errorf("expected reversal of (1 2 3 4) to be (4 3 2 1), is %s", r)
	}
	if l.String() != "(1 2 3 4)" {
		t.Errorf("expected original list to be unchanged by Reverse, is %s", l)
	}
	var empty *List[int]
	if !empty.Reverse().IsEmpty() {
		t.Error("expected reversal of empty list to be empty, isn't")
	}
}

func TestListConcat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pfds.list")
	defer teardown()
	//
	l := New(1, 2)
	m := New(3, 4)
	c := l.Concat(m)
	if c.String() != "(1 2 3 4)" {
		t.Errorf("expected concat to yield (1 2 3 4), is %s", c)
	}
	// the argument's cells must be shared, not copied
	tail, _ := c.Tail()
	tail, _ = tail.Tail()
	if tail != m {
		t.Error("expected concat to share its second argument, doesn't")
	}
	if c2 := m.Concat(nil); c2 != m {
		t.Error("expected concat with empty list to reuse the receiver, doesn't")
	}
}

func TestListEach(t *testing.T) {
	l := New(1, 2, 3)
	sum := 0
	l.Each(func(n int) { sum += n })
	if sum != 6 {
		t.Errorf("expected sum over (1 2 3) to be 6, is %d", sum)
	}
}
