package list

import (
	"encoding/binary"
	"hash"
)

// Hash feeds the list length, then every element front to back, into h via
// the item function. The order is fixed, so equal lists fed into equal hash
// states produce equal sums.
func Hash[T any](h hash.Hash, l *List[T], item func(hash.Hash, T)) {
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(l.Len()))
	h.Write(length[:])
	it := l.Iter()
	for {
		value, ok := it.Next()
		if !ok {
			return
		}
		item(h, value)
	}
}
