/*
Package stack implements an immutable persistent stack (LIFO).

An immutable persistent stack has copy-on-write behaviour: Each “modification” of the stack
(pushing, popping or reversing) creates a copy, leaving the original unmodified.
Under the hood, copy-on-write retains most of the memory held by the original:
pushing allocates a single cell pointing at the unchanged remainder, so all
incarnations derived from a stack share its cells, transparently to clients.

Immutable stacks are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.stack'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.stack")
}
