package queue

// Queue is a singly-linked FIFO with O(1) push and pop. The zero Queue is
// empty and ready for use. It carries no synchronization; see the list
// package for the access contract shared by all containers in this module.
type Queue[T any] struct {
	head *node[T]
	tail *node[T]
	len  int
}

type node[T any] struct {
	next  *node[T]
	value T
}

func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) Len() int {
	return q.len
}

func (q *Queue[T]) IsEmpty() bool {
	return q.len == 0
}

// Push appends value at the tail of the queue.
func (q *Queue[T]) Push(value T) {
	entry := &node[T]{value: value}
	if q.tail != nil {
		q.tail.next = entry
	} else {
		q.head = entry
	}
	q.tail = entry
	q.len++
}

// Pop removes and returns the head of the queue. The second result is false
// when the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	entry := q.head
	if entry == nil {
		var defaultValue T
		return defaultValue, false
	}
	q.head = entry.next
	if q.head == nil {
		q.tail = nil
	}
	entry.next = nil
	q.len--
	return entry.value, true
}

// Peek returns a copy of the head without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.head == nil {
		var defaultValue T
		return defaultValue, false
	}
	return q.head.value, true
}

// PeekMut returns a pointer to the head for in-place update, or nil when the
// queue is empty.
func (q *Queue[T]) PeekMut() *T {
	if q.head == nil {
		return nil
	}
	return &q.head.value
}

// Clear unlinks every node iteratively.
func (q *Queue[T]) Clear() {
	for entry := q.head; entry != nil; {
		next := entry.next
		entry.next = nil
		entry = next
	}
	q.head = nil
	q.tail = nil
	q.len = 0
}

// Array returns the queued values in pop order, or nil for an empty queue.
func (q *Queue[T]) Array() []T {
	if q.len == 0 {
		return nil
	}
	array := make([]T, 0, q.len)
	for entry := q.head; entry != nil; entry = entry.next {
		array = append(array, entry.value)
	}
	return array
}
