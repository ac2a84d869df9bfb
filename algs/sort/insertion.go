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

// Insertion sorts data in-place in natural order using insertion sort.
func Insertion[T cmp.Ordered](data []T) {
	InsertionFunc(data, cmp.Compare[T])
}

// InsertionFunc sorts data in-place using insertion sort and the comparison
// function c. The sort is stable and takes linear time on sorted input.
func InsertionFunc[T any](data []T, c func(a, b T) int) {
	checkCompare(c)
	insertionRange(data, c, 0, len(data)-1)
}

// insertionRange insertion-sorts data[lo..hi] (hi inclusive).
func insertionRange[T any](data []T, c func(a, b T) int, lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo && less(c, data[j], data[j-1]); j-- {
			Exch(data, j, j-1)
		}
	}
}

// IndexInsertion returns a permutation that gives the elements of data in
// natural order. data is not modified.
func IndexInsertion[T cmp.Ordered](data []T) []int {
	return IndexInsertionFunc(data, cmp.Compare[T])
}

// IndexInsertionFunc returns a permutation p such that data[p[0]],
// data[p[1]], ... is in order under c, ties kept in input order.
// data is not modified.
func IndexInsertionFunc[T any](data []T, c func(a, b T) int) []int {
	checkCompare(c)
	index := identity(len(data))
	for i := 1; i < len(index); i++ {
		for j := i; j > 0 && less(c, data[index[j]], data[index[j-1]]); j-- {
			Exch(index, j, j-1)
		}
	}
	return index
}
