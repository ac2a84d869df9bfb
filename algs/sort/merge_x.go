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

import (
	"cmp"
	"slices"
)

// MergeX sorts data in natural order using the optimized mergesort.
func MergeX[T cmp.Ordered](data []T) {
	MergeXTrace(data, cmp.Compare[T], nil)
}

// MergeXFunc sorts data using mergesort with three optimizations:
//   - subarrays of at most mergeXCutoff+1 elements are insertion sorted
//   - the merge is replaced by a block copy when the halves are already in order
//   - source and destination swap roles at each level, so no copy to an
//     auxiliary slice precedes a merge
//
// The sort is stable and allocates one clone of data.
func MergeXFunc[T any](data []T, c func(a, b T) int) {
	MergeXTrace(data, c, nil)
}

// MergeXTrace is MergeXFunc reporting every recursive call, cutoff, skipped
// merge and merge to trace.
func MergeXTrace[T any](data []T, c func(a, b T) int, trace TraceFunc) {
	checkCompare(c)
	if len(data) <= 1 {
		return
	}
	src := slices.Clone(data)
	mergeXSort(src, data, c, trace, 0, len(data)-1, 0)
}

// mergeXSort sorts the elements of src[lo..hi] into dst[lo..hi].
// On entry src[lo..hi] and dst[lo..hi] hold the same elements.
func mergeXSort[T any](src, dst []T, c func(a, b T) int, trace TraceFunc, lo, hi, depth int) {
	trace.emit(TraceSort, depth, lo, -1, hi)
	if hi <= lo+mergeXCutoff {
		trace.emit(TraceCutoff, depth, lo, -1, hi)
		insertionRange(dst, c, lo, hi)
		return
	}
	mid := lo + (hi-lo)/2
	// Sort both halves into src, then merge them from src into dst.
	mergeXSort(dst, src, c, trace, lo, mid, depth+1)
	mergeXSort(dst, src, c, trace, mid+1, hi, depth+1)

	if !less(c, src[mid+1], src[mid]) {
		trace.emit(TraceSkip, depth, lo, mid, hi)
		copy(dst[lo:hi+1], src[lo:hi+1])
		return
	}
	trace.emit(TraceMerge, depth, lo, mid, hi)
	mergeX(src, dst, c, lo, mid, hi)
}

// mergeX stably merges src[lo..mid] with src[mid+1..hi] into dst[lo..hi].
func mergeX[T any](src, dst []T, c func(a, b T) int, lo, mid, hi int) {
	i, j := lo, mid+1
	for k := lo; k <= hi; k++ {
		switch {
		case i > mid:
			dst[k] = src[j]
			j++
		case j > hi:
			dst[k] = src[i]
			i++
		case less(c, src[j], src[i]):
			dst[k] = src[j]
			j++
		default:
			dst[k] = src[i]
			i++
		}
	}
}
