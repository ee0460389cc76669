package stack

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/persistent"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

func TestStackZeroValue(t *testing.T) {
	s := Stack[int]{}
	if s.Len() != 0 {
		t.Errorf("expected zero value stack to have length 0, has %d", s.Len())
	}
	if !s.IsEmpty() {
		t.Error("expected zero value stack to be empty, isn't")
	}
	s = Immutable[int]()
	if !s.IsEmpty() {
		t.Error("expected Immutable[int]() to be empty, isn't")
	}
}

func TestStackPush(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.stack")
	defer teardown()
	//
	s := Immutable[int]().Push(1).Push(2).Push(3)
	if s.Len() != 3 {
		t.Logf(printStack(s))
		t.Errorf("expected stack of 3 pushes to have length 3, has %d", s.Len())
	}
	top, err := s.Peek()
	if err != nil {
		t.Fatalf("unexpected error peeking at non-empty stack: %v", err)
	}
	if top != 3 {
		t.Logf(printStack(s))
		t.Errorf("expected top of stack to be 3, is %d", top)
	}
}

func TestStackPopOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.stack")
	defer teardown()
	//
	s := Immutable[string]().Push("a").Push("b").Push("c")
	want := []string{"c", "b", "a"}
	for i, w := range want {
		top, err := s.Peek()
		if err != nil {
			t.Fatalf("%d: unexpected error peeking: %v", i, err)
		}
		if top != w {
			t.Errorf("%d: expected top to be %q, is %q", i, w, top)
		}
		if s, err = s.Pop(); err != nil {
			t.Fatalf("%d: unexpected error popping: %v", i, err)
		}
	}
	if !s.IsEmpty() {
		t.Errorf("expected popped-out stack to be empty, has length %d", s.Len())
	}
}

func TestStackEmptyFaults(t *testing.T) {
	s := Stack[int]{}
	if _, err := s.Peek(); !errors.Is(err, persistent.ErrEmptyCollection) {
		t.Errorf("expected Peek on empty stack to fail with ErrEmptyCollection, got %v", err)
	}
	if _, err := s.Pop(); !errors.Is(err, persistent.ErrEmptyCollection) {
		t.Errorf("expected Pop on empty stack to fail with ErrEmptyCollection, got %v", err)
	}
}

func TestStackCachedSize(t *testing.T) {
	s := Immutable[int]()
	for i := 1; i <= 10; i++ {
		s = s.Push(i)
		if s.top.size != i {
			t.Errorf("expected cached size after %d pushes to be %d, is %d", i, i, s.top.size)
		}
	}
	// size invariant holds along the whole chain
	for walk := s.top; walk != nil; walk = walk.tail {
		tailSize := 0
		if walk.tail != nil {
			tailSize = walk.tail.size
		}
		if walk.size != tailSize+1 {
			t.Errorf("expected cell size %d to be tail size %d + 1", walk.size, tailSize)
		}
	}
}

func TestStackSharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.stack")
	defer teardown()
	//
	s1 := Immutable[int]().Push(1).Push(2)
	s2 := s1.Push(3)
	s3 := s1.Push(4)
	if s2.top.tail != s1.top {
		t.Error("expected s2 to share the cells of s1, doesn't")
	}
	if s3.top.tail != s1.top {
		t.Error("expected s3 to share the cells of s1, doesn't")
	}
	// deriving s2 and s3 must leave s1 untouched
	if s1.Len() != 2 {
		t.Errorf("expected s1 to still have length 2, has %d", s1.Len())
	}
	if top, _ := s1.Peek(); top != 2 {
		t.Errorf("expected top of s1 to still be 2, is %d", top)
	}
	if top, _ := s2.Peek(); top != 3 {
		t.Errorf("expected top of s2 to be 3, is %d", top)
	}
	if top, _ := s3.Peek(); top != 4 {
		t.Errorf("expected top of s3 to be 4, is %d", top)
	}
}

func TestStackReverse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.stack")
	defer teardown()
	//
	s := Immutable[int]().Push(1).Push(2).Push(3)
	r := s.Reverse()
	if r.Len() != s.Len() {
		t.Errorf("expected reversed stack to have length %d, has %d", s.Len(), r.Len())
	}
	want := []int{1, 2, 3}
	walk := r
	for i, w := range want {
		top, err := walk.Peek()
		if err != nil {
			t.Fatalf("%d: unexpected error peeking at reversed stack: %v", i, err)
		}
		if top != w {
			t.Logf(printStack(r))
			t.Errorf("%d: expected element of reversed stack to be %d, is %d", i, w, top)
		}
		walk, _ = walk.Pop()
	}
	// the receiver is untouched
	if top, _ := s.Peek(); top != 3 {
		t.Errorf("expected top of original stack to still be 3, is %d", top)
	}
}

func TestStackReverseAllocatesFreshCells(t *testing.T) {
	s := Immutable[int]().Push(1).Push(2).Push(3)
	r := s.Reverse()
	orig := map[*cell[int]]bool{}
	for walk := s.top; walk != nil; walk = walk.tail {
		orig[walk] = true
	}
	for walk := r.top; walk != nil; walk = walk.tail {
		if orig[walk] {
			t.Error("expected every cell of the reversed stack to be newly allocated, found a shared one")
		}
	}
}

func TestStackReverseRoundTrip(t *testing.T) {
	s := Immutable[int]()
	for i := 0; i < 20; i++ {
		s = s.Push(i * i)
	}
	rr := s.Reverse().Reverse()
	if rr.Len() != s.Len() {
		t.Errorf("expected double reversal to preserve length %d, has %d", s.Len(), rr.Len())
	}
	for a, b := s, rr; !a.IsEmpty(); {
		x, _ := a.Peek()
		y, _ := b.Peek()
		if x != y {
			t.Errorf("expected double reversal to preserve order, %d != %d", x, y)
		}
		a, _ = a.Pop()
		b, _ = b.Pop()
	}
}

func TestStackReverseEmpty(t *testing.T) {
	r := Stack[int]{}.Reverse()
	if !r.IsEmpty() {
		t.Errorf("expected reversal of the empty stack to be empty, has length %d", r.Len())
	}
}

func TestStackTop(t *testing.T) {
	s := Immutable[int]().Push(7)
	var v int
	switch m := s.Top().Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Error("expected Top of non-empty stack to be Just, is Nothing")
	}
	if v != 7 {
		t.Errorf("expected Top to carry 7, carries %d", v)
	}
	switch m := (Stack[int]{}).Top().Match(); m {
	case m.Just(&v):
		t.Error("expected Top of empty stack to be Nothing, is Just")
	case m.Nothing():
	}
}

func TestStackString(t *testing.T) {
	s := Immutable[int]().Push(1).Push(2).Push(3)
	if s.String() != "[3,2,1]" {
		t.Errorf("expected stack to print as [3,2,1], is %s", s.String())
	}
	if (Stack[int]{}).String() != "[]" {
		t.Errorf("expected empty stack to print as [], is %s", Stack[int]{}.String())
	}
}

// --- Print stack -----------------------------------------------------------

func printStack[T any](s Stack[T]) string {
	header := fmt.Sprintf("\nStack(len=%d)\n", s.Len())
	printer := tp.New()
	branch := printer
	for walk := s.top; walk != nil; walk = walk.tail {
		branch = branch.AddBranch(fmt.Sprintf("%v  size=%d", walk.item, walk.size))
	}
	return header + printer.String() + "\n"
}
