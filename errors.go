package persistent

import "errors"

// Error values shared by the collection packages of this module. Operations on
// immutable values never leave a partially modified structure behind, so these
// signal a rejected call, not a corrupted one.
var (
	// ErrEmptyCollection is returned by accessors and removers invoked on a
	// collection with zero elements.
	ErrEmptyCollection = errors.New("collection is empty")

	// ErrInvalidArgument is returned when an element handed to a collection is
	// an absent value, e.g. a nil pointer given to queue.Enqueue.
	ErrInvalidArgument = errors.New("invalid argument")
)
