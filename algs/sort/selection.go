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

// Selection sorts data in-place in natural order using selection sort.
func Selection[T cmp.Ordered](data []T) {
	SelectionFunc(data, cmp.Compare[T])
}

// SelectionFunc sorts data in-place using selection sort and the comparison
// function c. It uses ~N²/2 compares and exactly N exchanges. The sort is
// not stable.
func SelectionFunc[T any](data []T, c func(a, b T) int) {
	checkCompare(c)
	n := len(data)
	for i := 0; i < n; i++ {
		// First occurrence wins on ties.
		least := i
		for j := i + 1; j < n; j++ {
			if less(c, data[j], data[least]) {
				least = j
			}
		}
		Exch(data, i, least)
	}
}
