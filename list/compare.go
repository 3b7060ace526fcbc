package list

// Equal reports whether x and y hold the same elements in the same order.
// Lists of different lengths are unequal before any traversal.
func Equal[T comparable](x, y *List[T]) bool {
	return EqualFunc(x, y, func(xValue, yValue T) bool {
		return xValue == yValue
	})
}

// EqualFunc is Equal under a custom element predicate.
func EqualFunc[T1, T2 any](x *List[T1], y *List[T2], eq func(T1, T2) bool) bool {
	if x.Len() != y.Len() {
		return false
	}
	xIt, yIt := x.Iter(), y.Iter()
	for {
		xValue, ok := xIt.Next()
		if !ok {
			return true
		}
		yValue, _ := yIt.Next()
		if !eq(xValue, yValue) {
			return false
		}
	}
}

// CompareFunc is Compare under a three-way element comparison, inheriting
// whatever order discipline cmp implements.
func CompareFunc[T1, T2 any](x *List[T1], y *List[T2], cmp func(T1, T2) int) int {
	xIt, yIt := x.Iter(), y.Iter()
	for {
		xValue, xOk := xIt.Next()
		yValue, yOk := yIt.Next()
		switch {
		case !xOk && !yOk:
			return 0
		case !xOk:
			return -1
		case !yOk:
			return 1
		}
		if order := cmp(xValue, yValue); order != 0 {
			return order
		}
	}
}
