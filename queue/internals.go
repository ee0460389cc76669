package queue

import (
	"fmt"
	"reflect"
	"strings"
)

// isAbsent reports whether v is a missing value: an untyped nil, or a typed
// nil hiding behind the type parameter. Validation happens at the queue
// level; the stacks underneath store whatever they are given.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

func (q Queue[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	first := true
	for walk := q; !walk.IsEmpty(); {
		head, rest, err := walk.Take()
		assertThat(err == nil, "inconsistency: Take failed on a non-empty queue")
		if !first {
			b.WriteByte(',')
		}
		b.WriteString(fmt.Sprintf("%v", head))
		first = false
		walk = rest
	}
	b.WriteByte(']')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("queue: "+msg, msgargs...)
		panic(msg)
	}
}
