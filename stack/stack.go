package stack

import (
	"github.com/npillmayer/persistent"
	"github.com/npillmayer/persistent/maybe"
)

// Stack is an immutable stack of elements of type T, with the most recently
// pushed element on top. An empty instance is usable as an empty stack, i.e.
// this is legal:
//
//     s := stack.Stack[int]{}.Push(42)
//
// returning a stack containing the single element 42.
type Stack[T any] struct {
	top *cell[T]
}

// Immutable constructs an empty stack.
// Use it like this:
//
//     s := stack.Immutable[string]()
//     s = s.Push("world").Push("hello")
//
func Immutable[T any]() Stack[T] {
	return Stack[T]{}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in the stack. It is cached in the top
// cell and not recomputed by traversal.
func (s Stack[T]) Len() int {
	if s.top == nil {
		return 0
	}
	return s.top.size
}

// IsEmpty is a shortcut for Len() == 0.
func (s Stack[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Push returns a stack with v on top and s as the remainder, leaving s
// unmodified. It allocates a single cell; every cell of s is shared with the
// new incarnation.
func (s Stack[T]) Push(v T) Stack[T] {
	return Stack[T]{top: &cell[T]{item: v, tail: s.top, size: s.Len() + 1}}
}

// Pop returns the stack without its top element, leaving s unmodified.
// Popping the empty stack fails with persistent.ErrEmptyCollection.
func (s Stack[T]) Pop() (Stack[T], error) {
	if s.IsEmpty() {
		return Stack[T]{}, persistent.ErrEmptyCollection
	}
	return Stack[T]{top: s.top.tail}, nil
}

// Peek returns the top element without removing it. Peeking at the empty
// stack fails with persistent.ErrEmptyCollection.
func (s Stack[T]) Peek() (T, error) {
	if s.IsEmpty() {
		var none T
		return none, persistent.ErrEmptyCollection
	}
	return s.top.item, nil
}

// Top returns the top element, or Nothing for the empty stack.
func (s Stack[T]) Top() maybe.Maybe[T] {
	if s.IsEmpty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s.top.item)
}

// Reverse returns a stack containing the same elements in reverse order.
// It walks s once, pushing onto a fresh accumulator, so every cell of the
// result is newly allocated and no cell of s ends up with a different tail.
func (s Stack[T]) Reverse() Stack[T] {
	rev := Stack[T]{}
	for walk := s.top; walk != nil; walk = walk.tail {
		rev = rev.Push(walk.item)
	}
	assertThat(rev.Len() == s.Len(), "inconsistency: reversal changed element count from %d to %d", s.Len(), rev.Len())
	tracer().Debugf("reversed stack of %d elements", rev.Len())
	return rev
}
