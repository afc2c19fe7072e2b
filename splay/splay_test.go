package splay

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/npillmayer/pfds"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSplayEmpty(t *testing.T) {
	var h Heap[int]
	if !h.IsEmpty() {
		t.Error("expected zero value heap to be empty, isn't")
	}
	if _, err := h.FindMin(); !errors.Is(err, pfds.ErrEmptyHeap) {
		t.Errorf("expected FindMin on empty heap to fail with ErrEmptyHeap, got %v", err)
	}
	if _, err := h.DeleteMin(); !errors.Is(err, pfds.ErrEmptyHeap) {
		t.Errorf("expected DeleteMin on empty heap to fail with ErrEmptyHeap, got %v", err)
	}
}

func TestSplayPartition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pfds.splay")
	defer teardown()
	//
	h := New(5, 2, 8, 1, 9, 3, 7)
	smaller, larger := partition(5, h.root)
	visit(smaller, func(v int) {
		if v > 5 {
			t.Errorf("expected smaller half to hold values ≤ 5, holds %d", v)
		}
	})
	visit(larger, func(v int) {
		if v <= 5 {
			t.Errorf("expected larger half to hold values > 5, holds %d", v)
		}
	})
	checkSearchOrder(t, smaller, -1<<62, 5)
	checkSearchOrder(t, larger, 5, 1<<62)
}

func TestSplayScenario(t *testing.T) {
	h := New(5, 3, 8, 1)
	if m, _ := h.FindMin(); m != 1 {
		t.Errorf("expected minimum of {5,3,8,1} to be 1, is %v", m)
	}
	for _, want := range []int{1, 3, 5, 8} {
		m, _ := h.FindMin()
		if m != want {
			t.Errorf("expected extraction to yield %d, yields %d", want, m)
		}
		var err error
		h, err = h.DeleteMin()
		if err != nil {
			t.Fatalf("unexpected error during extraction: %v", err)
		}
	}
	if !h.IsEmpty() {
		t.Error("expected heap to be empty after deleting all items, isn't")
	}
}

func TestSplayInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(20230217))
	h := New[int]()
	for i := 0; i < 300; i++ {
		h = h.Insert(rng.Intn(100))
		if i%13 == 0 {
			h = h.Merge(New(rng.Intn(100), rng.Intn(100)))
			h, _ = h.DeleteMin()
		}
		checkSearchOrder(t, h.root, -1<<62, 1<<62)
		checkCachedMin(t, h)
	}
}

func TestSplayExtraction(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var values []int
	h := New[int]()
	for i := 0; i < 200; i++ {
		v := rng.Intn(40) // duplicates on purpose
		values = append(values, v)
		h = h.Insert(v)
	}
	sort.Ints(values)
	got := extract(t, h)
	if len(got) != len(values) {
		t.Fatalf("expected extraction of %d items, got %d", len(values), len(got))
	}
	for i := range values {
		if got[i] != values[i] {
			t.Fatalf("expected sorted extraction, differs at %d: %d vs %d", i, got[i], values[i])
		}
	}
}

func TestSplayMerge(t *testing.T) {
	a := New(4, 1, 12, 7)
	b := New(3, 9, 2)
	m := a.Merge(b)
	checkSearchOrder(t, m.root, -1<<62, 1<<62)
	want := []int{1, 2, 3, 4, 7, 9, 12}
	got := extract(t, m)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected meld extraction %v, got %v", want, got)
		}
	}
	if m, _ := a.FindMin(); m != 1 {
		t.Errorf("expected first input heap to be unchanged, minimum is %v", m)
	}
	if m, _ := b.FindMin(); m != 2 {
		t.Errorf("expected second input heap to be unchanged, minimum is %v", m)
	}
}

func TestSplayPersistence(t *testing.T) {
	h1 := New(5, 3, 8, 1)
	before := extract(t, h1)
	_ = h1.Insert(0)
	_, _ = h1.DeleteMin()
	after := extract(t, h1)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("expected h1 extraction to be unchanged, was %v, is %v", before, after)
		}
	}
}

// --- Invariant checkers ----------------------------------------------------

// checkSearchOrder verifies the search-tree invariant with duplicates
// allowed to the left (partition splits “≤ pivot” from “> pivot”).
func checkSearchOrder(t *testing.T, n *node[int], lo, hi int) {
	if n == nil {
		return
	}
	if n.value < lo || n.value > hi {
		t.Fatalf("search order violated: %d outside (%d, %d)", n.value, lo, hi)
	}
	checkSearchOrder(t, n.left, lo, n.value)
	checkSearchOrder(t, n.right, n.value, hi)
}

func checkCachedMin(t *testing.T, h Heap[int]) {
	want, ok := leftmost(h.root).Value()
	got, hasMin := h.min.Value()
	if ok != hasMin || (ok && want != got) {
		t.Fatalf("cached minimum %v does not match leftmost value %v", got, want)
	}
}

func visit(n *node[int], f func(int)) {
	if n == nil {
		return
	}
	visit(n.left, f)
	f(n.value)
	visit(n.right, f)
}

func extract(t *testing.T, h Heap[int]) []int {
	var seq []int
	for !h.IsEmpty() {
		m, err := h.FindMin()
		if err != nil {
			t.Fatalf("unexpected error during extraction: %v", err)
		}
		seq = append(seq, m)
		h, _ = h.DeleteMin()
	}
	return seq
}
