// Package sort provides the elementary comparison sorts of Algorithms,
// 4th Edition (Sedgewick & Wayne), sections 2.1 and 2.2.
//
// Every algorithm is a free generic function over a slice. The plain form
// sorts by the natural order of a [cmp.Ordered] element type; the Func form
// takes an explicit comparison function with the same contract as
// [slices.SortFunc] (negative, zero or positive).
//
// # Algorithms
//
//   - Selection: O(N²) compares, N exchanges, not stable
//   - Insertion: O(N²) worst case, linear on sorted input, stable
//   - Shell: insertion sort over Knuth's 3h+1 gaps, not stable
//   - Merge: top-down mergesort with one auxiliary buffer, stable
//   - MergeBU: bottom-up mergesort, stable, same output as Merge
//   - MergeX: mergesort with an insertion-sort cutoff, a skip when the halves
//     are already in order, and ping-pong buffers, stable
//
// IndexMerge and IndexInsertion return a permutation p such that
// data[p[0]], data[p[1]], ... is in order and leave data untouched.
//
// # Stability
//
// All algorithms compare with a strict less-than only. The mergesorts take
// from the left half on ties, so equal elements keep their input order.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-algs4/algs/sort"
//
//	func ByName(people []Person) {
//	    sort.MergeFunc(people, func(a, b Person) int {
//	        return strings.Compare(a.Name, b.Name)
//	    })
//	}
//
// # Tracing
//
// MergeTrace, MergeBUTrace and MergeXTrace report each recursive call,
// merge, cutoff and skipped merge to a [TraceFunc]. Passing nil disables
// tracing.
package sort
