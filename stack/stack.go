package stack

// Stack is a singly-linked LIFO with O(1) push and pop. The zero Stack is
// empty and ready for use.
type Stack[T any] struct {
	head *node[T]
	len  int
}

type node[T any] struct {
	next  *node[T]
	value T
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Len() int {
	return s.len
}

func (s *Stack[T]) IsEmpty() bool {
	return s.len == 0
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.head = &node[T]{next: s.head, value: value}
	s.len++
}

// Pop removes and returns the top of the stack. The second result is false
// when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	entry := s.head
	if entry == nil {
		var defaultValue T
		return defaultValue, false
	}
	s.head = entry.next
	entry.next = nil
	s.len--
	return entry.value, true
}

// Peek returns a copy of the top without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.head == nil {
		var defaultValue T
		return defaultValue, false
	}
	return s.head.value, true
}

// PeekMut returns a pointer to the top for in-place update, or nil when the
// stack is empty.
func (s *Stack[T]) PeekMut() *T {
	if s.head == nil {
		return nil
	}
	return &s.head.value
}

// Clear unlinks every node iteratively so deep stacks release without
// recursing through the chain.
func (s *Stack[T]) Clear() {
	for entry := s.head; entry != nil; {
		next := entry.next
		entry.next = nil
		entry = next
	}
	s.head = nil
	s.len = 0
}

// Array returns the stacked values in pop order, or nil for an empty stack.
func (s *Stack[T]) Array() []T {
	if s.len == 0 {
		return nil
	}
	array := make([]T, 0, s.len)
	for entry := s.head; entry != nil; entry = entry.next {
		array = append(array, entry.value)
	}
	return array
}
