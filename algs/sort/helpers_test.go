package sort

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExch(t *testing.T) {
	data := []string{"a", "b", "c"}
	Exch(data, 0, 2)
	assert.Equal(t, []string{"c", "b", "a"}, data)

	Exch(data, 1, 1)
	assert.Equal(t, []string{"c", "b", "a"}, data)

	assert.Panics(t, func() { Exch(data, 0, 3) })
	assert.Panics(t, func() { Exch(data, -1, 0) })
	assert.Panics(t, func() { Exch(data, 3, 3) })
	assert.Panics(t, func() { Exch([]string{}, 0, 0) })
}

func TestLess(t *testing.T) {
	assert.True(t, Less("A", "B"))
	assert.False(t, Less("B", "B"))
	assert.False(t, Less(2, 1))
}

func TestIsSortedRange(t *testing.T) {
	data := []int{5, 4, 1, 2, 3, 0}
	assert.False(t, IsSorted(data))
	assert.True(t, IsSortedRange(data, cmp.Compare[int], 2, 4))
	assert.False(t, IsSortedRange(data, cmp.Compare[int], 2, 5))
	assert.True(t, IsSortedRange(data, cmp.Compare[int], 3, 3))
	assert.True(t, IsSorted([]int{}))
	assert.True(t, IsSorted([]int{1, 1, 1}))
}

func TestIsHSorted(t *testing.T) {
	data := []int{1, 5, 2, 6, 3, 7}
	assert.True(t, IsHSorted(data, cmp.Compare[int], 2))
	assert.False(t, IsHSorted(data, cmp.Compare[int], 1))
	assert.True(t, IsHSorted(data, cmp.Compare[int], 6))
}

// TestShellGaps tests the 3h+1 sequence chosen for several lengths
func TestShellGaps(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{0, []int{1}},
		{1, []int{1}},
		{11, []int{4, 1}},
		{12, []int{4, 1}},
		{13, []int{4, 1}},
		{15, []int{13, 4, 1}},
		{100, []int{40, 13, 4, 1}},
		{1000, []int{364, 121, 40, 13, 4, 1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ShellGaps(tt.n), "n=%d", tt.n)
	}
}

// TestShellLeavesEveryGapSorted tests that the result is h-sorted for every
// gap of its sequence.
func TestShellLeavesEveryGapSorted(t *testing.T) {
	data := []int{9, 3, 7, 1, 8, 2, 6, 0, 5, 4, 11, 10, 13, 12, 15, 14}
	ShellFunc(data, cmp.Compare[int])
	for _, h := range ShellGaps(len(data)) {
		assert.True(t, IsHSorted(data, cmp.Compare[int], h), "h=%d", h)
	}
}

func TestParseAlgorithm(t *testing.T) {
	alg, err := ParseAlgorithm("  MergeX ")
	require.NoError(t, err)
	assert.Equal(t, AlgoMergeX, alg)

	for _, known := range Algorithms() {
		got, err := ParseAlgorithm(known.String())
		require.NoError(t, err)
		assert.Equal(t, known, got)
	}

	_, err = ParseAlgorithm("quick")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Contains(t, err.Error(), `"quick"`)
}

func TestAlgorithmStable(t *testing.T) {
	for _, s := range sorters {
		assert.Equal(t, s.stable, Algorithm(s.name).Stable(), s.name)
	}
}

func TestSortDispatch(t *testing.T) {
	for _, alg := range Algorithms() {
		data := tinyInput()
		require.NoError(t, Sort(alg, data))
		assert.True(t, IsSorted(data), alg.String())
	}

	data := tinyInput()
	err := SortFunc(Algorithm("bogo"), data, cmp.Compare[string])
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Equal(t, tinyInput(), data)
}

func TestSortTraceDispatch(t *testing.T) {
	for _, alg := range Algorithms() {
		var events []TraceEvent
		data := tinyInput()
		require.NoError(t, SortTrace(alg, data, cmp.Compare[string], recordTrace(&events)))
		assert.True(t, IsSorted(data), alg.String())
		switch alg {
		case AlgoMerge, AlgoMergeBU, AlgoMergeX:
			assert.NotEmpty(t, events, alg.String())
		default:
			assert.Empty(t, events, alg.String())
		}
	}
}
