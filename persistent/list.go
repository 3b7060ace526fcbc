package persistent

// List is an immutable singly-linked list. Operations never modify the
// receiver, they return a new List sharing all surviving nodes with it, so
// any number of versions built from a common base remain valid and cheap to
// hold concurrently.
//
// The zero List and the nil *List are both empty lists.
type List[T any] struct {
	head *node[T]
	len  int
}

type node[T any] struct {
	next  *node[T]
	value T
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.len
}

func (l *List[T]) IsEmpty() bool {
	return l == nil || l.head == nil
}

// Prepend returns a new list with value at the head and the receiver as its
// tail. The receiver is left unchanged.
func (l *List[T]) Prepend(value T) *List[T] {
	if l == nil {
		l = &List[T]{}
	}
	return &List[T]{
		head: &node[T]{next: l.head, value: value},
		len:  l.len + 1,
	}
}

// Tail returns the list without its head, sharing every remaining node with
// the receiver. The tail of an empty list is empty.
func (l *List[T]) Tail() *List[T] {
	if l.IsEmpty() {
		return &List[T]{}
	}
	return &List[T]{head: l.head.next, len: l.len - 1}
}

// Head returns a copy of the first value. The second result is false when
// the list is empty.
func (l *List[T]) Head() (T, bool) {
	if l.IsEmpty() {
		var defaultValue T
		return defaultValue, false
	}
	return l.head.value, true
}

// Range calls f for each value from head to tail, stopping early when f
// returns false.
func (l *List[T]) Range(f func(value T) bool) {
	if l == nil {
		return
	}
	for entry := l.head; entry != nil; entry = entry.next {
		if !f(entry.value) {
			return
		}
	}
}

// Array returns the values from head to tail, or nil for an empty list.
func (l *List[T]) Array() []T {
	if l.IsEmpty() {
		return nil
	}
	array := make([]T, 0, l.len)
	for entry := l.head; entry != nil; entry = entry.next {
		array = append(array, entry.value)
	}
	return array
}
