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

// Shell sorts data in-place in natural order using shellsort.
func Shell[T cmp.Ordered](data []T) {
	ShellFunc(data, cmp.Compare[T])
}

// ShellFunc sorts data in-place using shellsort with Knuth's 3h+1 increment
// sequence and the comparison function c. The sort is not stable.
func ShellFunc[T any](data []T, c func(a, b T) int) {
	checkCompare(c)
	n := len(data)
	for h := maxGap(n); h >= 1; h /= knuthStep {
		// h-sort the slice
		for i := h; i < n; i++ {
			for j := i; j >= h && less(c, data[j], data[j-h]); j -= h {
				Exch(data, j, j-h)
			}
		}
	}
}

// maxGap returns the largest term of 1, 4, 13, 40, ... that the 3h+1 loop
// reaches for n elements: the first h with h >= n/3.
func maxGap(n int) int {
	h := 1
	for h < n/knuthStep {
		h = knuthStep*h + 1
	}
	return h
}

// ShellGaps returns the decreasing gap sequence ShellFunc uses for a slice of
// length n. The last gap is always 1.
func ShellGaps(n int) []int {
	var gaps []int
	for h := maxGap(n); h >= 1; h /= knuthStep {
		gaps = append(gaps, h)
	}
	return gaps
}
