package sort

import (
	"cmp"

	"github.com/pkg/errors"
)

// Helper functions shared across all the sorts. None of them is called
// at runtime to check a result; the IsSorted family exists for callers and tests.

// ErrNilCompare is the panic value (wrapped with a stack) raised when a Func
// variant is given a nil comparison function.
var ErrNilCompare = errors.New("sort: nil compare function")

// checkCompare panics before any element is touched if c is nil.
func checkCompare[T any](c func(a, b T) int) {
	if c == nil {
		panic(errors.WithStack(ErrNilCompare))
	}
}

// Less reports whether a precedes b in natural order.
func Less[T cmp.Ordered](a, b T) bool {
	return cmp.Less(a, b)
}

func less[T any](c func(a, b T) int, a, b T) bool {
	return c(a, b) < 0
}

// Exch swaps data[i] and data[j]. It panics if either index is out of range.
func Exch[T any](data []T, i, j int) {
	if i == j {
		_ = data[i]
		return
	}
	data[i], data[j] = data[j], data[i]
}

// IsSorted reports whether data is in non-decreasing natural order.
func IsSorted[T cmp.Ordered](data []T) bool {
	return IsSortedFunc(data, cmp.Compare[T])
}

// IsSortedFunc reports whether data is in non-decreasing order under c.
func IsSortedFunc[T any](data []T, c func(a, b T) int) bool {
	return IsSortedRange(data, c, 0, len(data)-1)
}

// IsSortedRange reports whether data[lo..hi] (hi inclusive) is in
// non-decreasing order under c. An empty or single-element range is sorted.
func IsSortedRange[T any](data []T, c func(a, b T) int, lo, hi int) bool {
	checkCompare(c)
	for i := lo + 1; i <= hi; i++ {
		if less(c, data[i], data[i-1]) {
			return false
		}
	}
	return true
}

// IsHSorted reports whether every element of data is less than or equal to
// the element h positions to its right.
func IsHSorted[T any](data []T, c func(a, b T) int, h int) bool {
	checkCompare(c)
	for i := h; i < len(data); i++ {
		if less(c, data[i], data[i-h]) {
			return false
		}
	}
	return true
}

// identity returns the permutation [0, 1, ..., n-1].
func identity(n int) []int {
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}
	return index
}
