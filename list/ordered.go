//go:build go1.21

package list

import (
	"cmp"
)

// Compare orders x and y lexicographically: the first unequal element pair
// decides, and a list that is a proper prefix of the other orders first.
// Element pairs follow the cmp.Compare discipline, so for floats a NaN
// orders before any non-NaN value and two NaN count as equal.
func Compare[T cmp.Ordered](x, y *List[T]) int {
	return CompareFunc(x, y, cmp.Compare[T])
}
