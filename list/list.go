package list

import (
	"github.com/sagernet/sing-collections/internal/debug"
)

// List is a doubly-linked double-ended queue. Elements are stored by value
// in unexported nodes; no node or link ever crosses the public API, so the
// chain cannot be corrupted or aliased from outside the package. Push and
// pop at either end run in constant time.
//
// The zero List is an empty list ready for use.
//
// A List carries no synchronization of its own: it may be handed off between
// goroutines, and concurrent reads are safe while nothing mutates it, but
// mixed access requires external locking, the same as the element type would.
type List[T any] struct {
	front *node[T]
	back  *node[T]
	len   int
}

type node[T any] struct {
	prev  *node[T]
	next  *node[T]
	value T
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// Of builds a list holding values in order, front to back. It is equivalent
// to New followed by Extend.
func Of[T any](values ...T) *List[T] {
	list := New[T]()
	list.Extend(values...)
	return list
}

// Len returns the cached element count in constant time.
func (l *List[T]) Len() int {
	return l.len
}

// PushFront inserts value at the front of the list.
func (l *List[T]) PushFront(value T) {
	entry := &node[T]{value: value, next: l.front}
	if l.front != nil {
		l.front.prev = entry
	} else {
		l.back = entry
	}
	l.front = entry
	l.len++
	if debug.Enabled {
		l.check()
	}
}

// PushBack inserts value at the back of the list.
func (l *List[T]) PushBack(value T) {
	entry := &node[T]{value: value, prev: l.back}
	if l.back != nil {
		l.back.next = entry
	} else {
		l.front = entry
	}
	l.back = entry
	l.len++
	if debug.Enabled {
		l.check()
	}
}

// PopFront removes and returns the front element. The second result is false
// when the list is empty.
func (l *List[T]) PopFront() (T, bool) {
	entry := l.front
	if entry == nil {
		var defaultValue T
		return defaultValue, false
	}
	l.front = entry.next
	if l.front != nil {
		l.front.prev = nil
	} else {
		if debug.Enabled && l.len != 1 {
			panic("list: back link reached from front with more than one element")
		}
		l.back = nil
	}
	entry.next = nil // detach so the popped node pins nothing
	l.len--
	if debug.Enabled {
		l.check()
	}
	return entry.value, true
}

// PopBack removes and returns the back element. The second result is false
// when the list is empty.
func (l *List[T]) PopBack() (T, bool) {
	entry := l.back
	if entry == nil {
		var defaultValue T
		return defaultValue, false
	}
	l.back = entry.prev
	if l.back != nil {
		l.back.next = nil
	} else {
		if debug.Enabled && l.len != 1 {
			panic("list: front link reached from back with more than one element")
		}
		l.front = nil
	}
	entry.prev = nil
	l.len--
	if debug.Enabled {
		l.check()
	}
	return entry.value, true
}

// Front returns a copy of the front element.
func (l *List[T]) Front() (T, bool) {
	if l.front == nil {
		var defaultValue T
		return defaultValue, false
	}
	return l.front.value, true
}

// Back returns a copy of the back element.
func (l *List[T]) Back() (T, bool) {
	if l.back == nil {
		var defaultValue T
		return defaultValue, false
	}
	return l.back.value, true
}

// FrontMut returns a pointer to the front element for in-place update, or
// nil when the list is empty. The pointer stays valid until the element is
// popped or the list is cleared.
func (l *List[T]) FrontMut() *T {
	if l.front == nil {
		return nil
	}
	return &l.front.value
}

// BackMut returns a pointer to the back element for in-place update, or nil
// when the list is empty.
func (l *List[T]) BackMut() *T {
	if l.back == nil {
		return nil
	}
	return &l.back.value
}

// Clear removes every element. The chain is unlinked node by node with
// constant stack usage, so a node still referenced outside the list cannot
// pin its former neighbors.
func (l *List[T]) Clear() {
	for entry := l.front; entry != nil; {
		next := entry.next
		entry.prev = nil
		entry.next = nil
		entry = next
	}
	l.front = nil
	l.back = nil
	l.len = 0
}
