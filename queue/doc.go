/*
Package queue implements an immutable persistent queue (FIFO).

An immutable persistent queue has copy-on-write behaviour: Each “modification” of the queue
(enqueueing or dequeueing) creates a copy, leaving the original unmodified.
The queue is built from a pair of persistent stacks, one holding pending
enqueues and one holding the elements ready for removal. Most operations touch
a single stack cell; when the removal side runs dry, the pending side is
reversed onto it in one go. A reversal moves each element at most once between
enqueueing and dequeueing it, so enqueue, dequeue and peek all cost amortized
O(1), and all incarnations derived from a queue share stack cells with it.

Immutable queues are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package queue

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.queue'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.queue")
}
