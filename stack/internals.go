package stack

import (
	"fmt"
	"strings"
)

// cell is a cons cell of a stack. Cells are shared between stack incarnations
// and never modified after construction; a nil cell is the empty stack.
type cell[T any] struct {
	item T
	tail *cell[T]
	size int // element count from this cell downwards, cached
}

func (s Stack[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for walk := s.top; walk != nil; walk = walk.tail {
		if walk != s.top {
			b.WriteByte(',')
		}
		b.WriteString(fmt.Sprintf("%v", walk.item))
	}
	b.WriteByte(']')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("stack: "+msg, msgargs...)
		panic(msg)
	}
}
