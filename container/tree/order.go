package tree

import "golang.org/x/exp/constraints"

// compare returns
//
//	-1 if a < b
//	 0 if a == b
//	 1 if a > b
//
// Values that are neither lower nor greater than each
// other, such as a floating point NaN, compare as equal
func compare[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	} else {
		return 0
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
