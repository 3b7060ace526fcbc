package list

// Iterator is a double-ended cursor over the elements of a list. It holds
// its own front cursor, back cursor and remaining count, snapshotted when it
// was created: the owning list is never consulted again, and structural
// mutation of the list while an Iterator is live invalidates it.
//
// Stepping from either end decrements the shared remaining count, so the two
// cursors can never cross; once the count reaches zero both directions keep
// reporting exhaustion.
type Iterator[T any] struct {
	head      *node[T]
	tail      *node[T]
	remaining int
}

// Iter returns an iterator positioned at both ends of the list.
func (l *List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{head: l.front, tail: l.back, remaining: l.len}
}

// Next yields a copy of the element at the front cursor and advances it.
func (it *Iterator[T]) Next() (T, bool) {
	if it.remaining == 0 {
		var defaultValue T
		return defaultValue, false
	}
	entry := it.head
	it.head = entry.next
	it.remaining--
	return entry.value, true
}

// NextBack yields a copy of the element at the back cursor and retreats it.
func (it *Iterator[T]) NextBack() (T, bool) {
	if it.remaining == 0 {
		var defaultValue T
		return defaultValue, false
	}
	entry := it.tail
	it.tail = entry.prev
	it.remaining--
	return entry.value, true
}

// Len reports exactly how many elements remain.
func (it *Iterator[T]) Len() int {
	return it.remaining
}

// MutIterator is a double-ended cursor yielding pointers to the elements
// inside the list for in-place updates. It follows the same snapshot and
// exhaustion rules as Iterator, and the same invalidation rule: only element
// values may change while it is live, never the structure.
type MutIterator[T any] struct {
	head      *node[T]
	tail      *node[T]
	remaining int
}

// IterMut returns a mutating iterator positioned at both ends of the list.
func (l *List[T]) IterMut() *MutIterator[T] {
	return &MutIterator[T]{head: l.front, tail: l.back, remaining: l.len}
}

// Next yields a pointer to the element at the front cursor, or nil once the
// iterator is exhausted.
func (it *MutIterator[T]) Next() *T {
	if it.remaining == 0 {
		return nil
	}
	entry := it.head
	it.head = entry.next
	it.remaining--
	return &entry.value
}

// NextBack yields a pointer to the element at the back cursor, or nil once
// the iterator is exhausted.
func (it *MutIterator[T]) NextBack() *T {
	if it.remaining == 0 {
		return nil
	}
	entry := it.tail
	it.tail = entry.prev
	it.remaining--
	return &entry.value
}

// Len reports exactly how many elements remain.
func (it *MutIterator[T]) Len() int {
	return it.remaining
}

// Drain consumes the list it was created from: every step pops the yielded
// element, so abandoning a Drain halfway leaves the unvisited elements in
// place. Unlike the borrowing iterators it reads the live list on every
// step.
type Drain[T any] struct {
	list *List[T]
}

// Drain returns a consuming iterator over the list.
func (l *List[T]) Drain() *Drain[T] {
	return &Drain[T]{list: l}
}

// Next pops and returns the front element.
func (d *Drain[T]) Next() (T, bool) {
	return d.list.PopFront()
}

// NextBack pops and returns the back element.
func (d *Drain[T]) NextBack() (T, bool) {
	return d.list.PopBack()
}

// Len reports exactly how many elements remain.
func (d *Drain[T]) Len() int {
	return d.list.Len()
}
