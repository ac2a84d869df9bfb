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

// MergeBU sorts data in natural order using bottom-up mergesort.
func MergeBU[T cmp.Ordered](data []T) {
	MergeBUTrace(data, cmp.Compare[T], nil)
}

// MergeBUFunc sorts data using bottom-up mergesort and the comparison
// function c. It produces the same result as MergeFunc.
func MergeBUFunc[T any](data []T, c func(a, b T) int) {
	MergeBUTrace(data, c, nil)
}

// MergeBUTrace is MergeBUFunc reporting every merge to trace. The event
// Depth is the pass number, starting at 0 for runs of width 1.
func MergeBUTrace[T any](data []T, c func(a, b T) int, trace TraceFunc) {
	checkCompare(c)
	n := len(data)
	aux := make([]T, n)
	pass := 0
	for width := 1; width < n; width += width {
		for lo := 0; lo < n-width; lo += width + width {
			mid := lo + width - 1
			hi := min(lo+width+width-1, n-1)
			trace.emit(TraceMerge, pass, lo, mid, hi)
			merge(data, aux, c, lo, mid, hi)
		}
		pass++
	}
}
