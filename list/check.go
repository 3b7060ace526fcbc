package list

import "fmt"

// check walks the chain and verifies the structural invariants: the cached
// length matches a full walk in both directions, the end links of the chain
// are nil, and every forward link is mirrored by a backward link. Callers
// gate it behind debug.Enabled; it costs a pair of full traversals.
func (l *List[T]) check() {
	if l.len == 0 {
		if l.front != nil || l.back != nil {
			panic("list: dangling end link on empty list")
		}
		return
	}
	if l.front == nil || l.back == nil {
		panic("list: missing end link on non-empty list")
	}
	if l.front.prev != nil {
		panic("list: front node has a previous link")
	}
	if l.back.next != nil {
		panic("list: back node has a next link")
	}
	if l.len == 1 && l.front != l.back {
		panic("list: single-element list with distinct ends")
	}
	forward := 0
	for entry := l.front; entry != nil; entry = entry.next {
		if entry.next != nil && entry.next.prev != entry {
			panic("list: forward link not mirrored")
		}
		forward++
	}
	if forward != l.len {
		panic(fmt.Sprintf("list: length %d but forward walk found %d", l.len, forward))
	}
	backward := 0
	for entry := l.back; entry != nil; entry = entry.prev {
		backward++
	}
	if backward != l.len {
		panic(fmt.Sprintf("list: length %d but backward walk found %d", l.len, backward))
	}
}
