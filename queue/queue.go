package queue

import (
	"github.com/npillmayer/persistent"
	"github.com/npillmayer/persistent/maybe"
	"github.com/npillmayer/persistent/result"
	"github.com/npillmayer/persistent/stack"
)

// Queue is an immutable queue of elements of type T, in FIFO order.
// An empty instance is usable as an empty queue, i.e. this is legal:
//
//     q, err := queue.Queue[int]{}.Enqueue(42)
//
// returning a queue containing the single element 42.
//
// Queue maintains the invariant that the removal side is non-empty whenever
// the queue as a whole is non-empty; it is what makes Peek O(1).
type Queue[T any] struct {
	in  stack.Stack[T] // elements pending since the last promotion, newest on top
	out stack.Stack[T] // elements ready for removal, head of the queue on top
}

// Immutable constructs an empty queue.
// Use it like this:
//
//     q := queue.Immutable[string]()
//     q, _ = q.Enqueue("hello")
//     q, _ = q.Enqueue("world")
//     head, _ := q.Peek()          // returns "hello"
//
func Immutable[T any]() Queue[T] {
	return Queue[T]{}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in the queue, in O(1).
func (q Queue[T]) Len() int {
	return q.in.Len() + q.out.Len()
}

// IsEmpty is a shortcut for Len() == 0.
func (q Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Enqueue returns a queue with v appended at the tail, leaving q unmodified.
// v must be a present value: enqueueing an untyped nil, or a nil pointer,
// interface, map, slice, channel or function hiding behind the type
// parameter, fails with persistent.ErrInvalidArgument. O(1).
func (q Queue[T]) Enqueue(v T) (Queue[T], error) {
	if isAbsent(v) {
		return q, persistent.ErrInvalidArgument
	}
	if q.IsEmpty() {
		// straight onto the removal side: a following Peek needs no reversal
		return Queue[T]{out: q.out.Push(v)}, nil
	}
	return Queue[T]{in: q.in.Push(v), out: q.out}, nil
}

// Dequeue returns a queue with the head element removed, leaving q
// unmodified. Dequeueing the empty queue fails with
// persistent.ErrEmptyCollection.
//
// When the removal side is down to its last element and enqueues are pending,
// the pending side is reversed onto the removal side. That single call costs
// O(n), but each element is reversed at most once between being enqueued and
// dequeued, so the cost per Dequeue is amortized O(1) over any sequence of
// operations.
func (q Queue[T]) Dequeue() (Queue[T], error) {
	switch {
	case q.IsEmpty():
		return Queue[T]{}, persistent.ErrEmptyCollection
	case q.out.Len() > 1: // head is on top of the removal side
		rest, err := q.out.Pop()
		assertThat(err == nil, "inconsistency: removal side of non-empty queue is empty")
		return Queue[T]{in: q.in, out: rest}, nil
	case q.in.IsEmpty(): // removing the sole remaining element
		return Queue[T]{}, nil
	default: // removal side runs dry ⇒ promote the pending enqueues
		tracer().Debugf("promoting %d pending elements to the removal side", q.in.Len())
		return Queue[T]{out: q.in.Reverse()}, nil
	}
}

// Peek returns the head of the queue without removing it. Peeking at the
// empty queue fails with persistent.ErrEmptyCollection. O(1).
func (q Queue[T]) Peek() (T, error) {
	if q.IsEmpty() {
		var none T
		return none, persistent.ErrEmptyCollection
	}
	head, err := q.out.Peek()
	assertThat(err == nil, "inconsistency: removal side of non-empty queue is empty")
	return head, nil
}

// First returns the head of the queue, or Nothing for the empty queue.
func (q Queue[T]) First() maybe.Maybe[T] {
	return q.out.Top()
}

// Take removes the head of the queue and returns it together with the
// remaining queue, leaving q unmodified. Taking from the empty queue fails
// with persistent.ErrEmptyCollection.
func (q Queue[T]) Take() (T, Queue[T], error) {
	head, err := q.Peek()
	if err != nil {
		return head, q, err
	}
	rest, err := q.Dequeue()
	assertThat(err == nil, "inconsistency: Peek succeeded but Dequeue failed")
	return head, rest, nil
}

// Head wraps Peek into a result.Result for chaining.
func Head[T any](q Queue[T]) result.Result[T] {
	return result.Of(q.Peek())
}
