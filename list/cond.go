package list

import (
	"fmt"
	"strings"
)

func (l *List[T]) IsEmpty() bool {
	return l.len == 0
}

// Array returns the elements front to back, or nil for an empty list.
func (l *List[T]) Array() []T {
	if l.len == 0 {
		return nil
	}
	array := make([]T, 0, l.len)
	it := l.Iter()
	for {
		value, ok := it.Next()
		if !ok {
			return array
		}
		array = append(array, value)
	}
}

// Extend appends values in argument order via PushBack.
func (l *List[T]) Extend(values ...T) {
	for _, value := range values {
		l.PushBack(value)
	}
}

// Clone returns an independent list holding a copy of every element, front
// to back. Element copies are plain value copies.
func (l *List[T]) Clone() *List[T] {
	clone := New[T]()
	it := l.Iter()
	for {
		value, ok := it.Next()
		if !ok {
			return clone
		}
		clone.PushBack(value)
	}
}

// String renders the elements front to back in sequence form, [e0 e1 e2].
func (l *List[T]) String() string {
	var builder strings.Builder
	builder.WriteByte('[')
	it := l.Iter()
	for index := 0; ; index++ {
		value, ok := it.Next()
		if !ok {
			break
		}
		if index > 0 {
			builder.WriteByte(' ')
		}
		fmt.Fprint(&builder, value)
	}
	builder.WriteByte(']')
	return builder.String()
}
