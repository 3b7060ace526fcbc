//go:build go1.20 && !go1.21

package list

import "github.com/sagernet/sing-collections/constraints"

// Compare orders x and y lexicographically: the first unequal element pair
// decides, and a list that is a proper prefix of the other orders first.
// Element pairs follow the cmp.Compare discipline, so for floats a NaN
// orders before any non-NaN value and two NaN count as equal.
func Compare[T constraints.Ordered](x, y *List[T]) int {
	return CompareFunc(x, y, func(xValue, yValue T) int {
		xNaN := xValue != xValue
		yNaN := yValue != yValue
		if xNaN {
			if yNaN {
				return 0
			}
			return -1
		}
		if yNaN {
			return 1
		}
		switch {
		case xValue < yValue:
			return -1
		case yValue < xValue:
			return 1
		default:
			return 0
		}
	})
}
