// Copyright 2025 go-algs4 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import "cmp"

// Merge sorts data in natural order using top-down mergesort.
func Merge[T cmp.Ordered](data []T) {
	MergeTrace(data, cmp.Compare[T], nil)
}

// MergeFunc sorts data using top-down mergesort and the comparison function
// c. The sort is stable and allocates one auxiliary slice of len(data).
func MergeFunc[T any](data []T, c func(a, b T) int) {
	MergeTrace(data, c, nil)
}

// MergeTrace is MergeFunc reporting every recursive call and merge to trace.
func MergeTrace[T any](data []T, c func(a, b T) int, trace TraceFunc) {
	checkCompare(c)
	aux := make([]T, len(data))
	mergeSort(data, aux, c, trace, 0, len(data)-1, 0)
}

// mergeSort sorts data[lo..hi] using aux[lo..hi].
func mergeSort[T any](data, aux []T, c func(a, b T) int, trace TraceFunc, lo, hi, depth int) {
	trace.emit(TraceSort, depth, lo, -1, hi)
	if hi <= lo {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(data, aux, c, trace, lo, mid, depth+1)
	mergeSort(data, aux, c, trace, mid+1, hi, depth+1)
	trace.emit(TraceMerge, depth, lo, mid, hi)
	merge(data, aux, c, lo, mid, hi)
}

// merge stably merges data[lo..mid] with data[mid+1..hi] using aux[lo..hi].
// Both halves must already be sorted.
func merge[T any](data, aux []T, c func(a, b T) int, lo, mid, hi int) {
	copy(aux[lo:hi+1], data[lo:hi+1])

	i, j := lo, mid+1
	for k := lo; k <= hi; k++ {
		switch {
		case i > mid:
			data[k] = aux[j]
			j++
		case j > hi:
			data[k] = aux[i]
			i++
		case less(c, aux[j], aux[i]):
			// Right only on strict less: ties come from the left.
			data[k] = aux[j]
			j++
		default:
			data[k] = aux[i]
			i++
		}
	}
}

// =============================================================================
// Index mergesort
// =============================================================================

// IndexMerge returns a permutation that gives the elements of data in
// natural order. data is not modified.
func IndexMerge[T cmp.Ordered](data []T) []int {
	return IndexMergeFunc(data, cmp.Compare[T])
}

// IndexMergeFunc returns a permutation p such that data[p[0]], data[p[1]],
// ... is in order under c. Equal elements keep their input order, so p is
// the unique stable permutation. data is not modified.
func IndexMergeFunc[T any](data []T, c func(a, b T) int) []int {
	checkCompare(c)
	n := len(data)
	index := identity(n)
	aux := make([]int, n)
	indexMergeSort(data, index, aux, c, 0, n-1)
	return index
}

func indexMergeSort[T any](data []T, index, aux []int, c func(a, b T) int, lo, hi int) {
	if hi <= lo {
		return
	}
	mid := lo + (hi-lo)/2
	indexMergeSort(data, index, aux, c, lo, mid)
	indexMergeSort(data, index, aux, c, mid+1, hi)
	indexMerge(data, index, aux, c, lo, mid, hi)
}

// indexMerge stably merges index[lo..mid] with index[mid+1..hi], ordering
// positions by the data they refer to.
func indexMerge[T any](data []T, index, aux []int, c func(a, b T) int, lo, mid, hi int) {
	copy(aux[lo:hi+1], index[lo:hi+1])

	i, j := lo, mid+1
	for k := lo; k <= hi; k++ {
		switch {
		case i > mid:
			index[k] = aux[j]
			j++
		case j > hi:
			index[k] = aux[i]
			i++
		case less(c, data[aux[j]], data[aux[i]]):
			index[k] = aux[j]
			j++
		default:
			index[k] = aux[i]
			i++
		}
	}
}
