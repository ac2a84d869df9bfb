package sort_test

import (
	"fmt"
	"strings"

	"github.com/ajroetker/go-algs4/algs/sort"
)

func ExampleMerge() {
	data := strings.Fields("S O R T E X A M P L E")
	sort.Merge(data)
	fmt.Println(data)
	// Output: [A E E L M O P R S T X]
}

func ExampleIndexMerge() {
	data := strings.Fields("S O R T E X A M P L E")
	fmt.Println(sort.IndexMerge(data))
	fmt.Println(data)
	// Output:
	// [6 4 10 9 7 1 8 2 0 3 5]
	// [S O R T E X A M P L E]
}

func ExampleMergeFunc() {
	type person struct {
		name string
		age  int
	}
	people := []person{{"Gopher", 13}, {"Alice", 55}, {"Vera", 24}, {"Bob", 55}}
	sort.MergeFunc(people, func(a, b person) int { return b.age - a.age })
	fmt.Println(people)
	// Output: [{Alice 55} {Bob 55} {Vera 24} {Gopher 13}]
}

func ExampleMergeXTrace() {
	data := strings.Fields("S O R T E X A M P L E")
	sort.MergeXTrace(data, strings.Compare, func(ev sort.TraceEvent) {
		fmt.Println(strings.Repeat("  ", ev.Depth) + ev.String())
	})
	// Output:
	// sort lo=0 hi=10
	//   sort lo=0 hi=5
	//   cutoff lo=0 hi=5
	//   sort lo=6 hi=10
	//   cutoff lo=6 hi=10
	// merge lo=0 mid=5 hi=10
}

func ExampleShellGaps() {
	fmt.Println(sort.ShellGaps(1000))
	// Output: [364 121 40 13 4 1]
}
