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
	"strings"

	"github.com/pkg/errors"
)

// Algorithm names one of the sorts in this package.
type Algorithm string

// Registered algorithms.
const (
	AlgoSelection Algorithm = "selection"
	AlgoInsertion Algorithm = "insertion"
	AlgoShell     Algorithm = "shell"
	AlgoMerge     Algorithm = "merge"
	AlgoMergeBU   Algorithm = "mergebu"
	AlgoMergeX    Algorithm = "mergex"
)

// ErrUnknownAlgorithm is returned (wrapped) for names that are not registered.
var ErrUnknownAlgorithm = errors.New("unknown sort algorithm")

// Algorithms returns every registered algorithm, elementary sorts first.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgoSelection,
		AlgoInsertion,
		AlgoShell,
		AlgoMerge,
		AlgoMergeX,
		AlgoMergeBU,
	}
}

// ParseAlgorithm looks up an algorithm by name, ignoring case and
// surrounding space.
func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Algorithms() {
		if alg == known {
			return alg, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// Stable reports whether the algorithm keeps equal elements in input order.
func (a Algorithm) Stable() bool {
	switch a {
	case AlgoInsertion, AlgoMerge, AlgoMergeBU, AlgoMergeX:
		return true
	}
	return false
}

func (a Algorithm) String() string { return string(a) }

// Sort sorts data in natural order with the named algorithm.
func Sort[T cmp.Ordered](alg Algorithm, data []T) error {
	return SortFunc(alg, data, cmp.Compare[T])
}

// SortFunc sorts data under c with the named algorithm. It returns an error
// wrapping ErrUnknownAlgorithm, without touching data, if alg is not
// registered.
func SortFunc[T any](alg Algorithm, data []T, c func(a, b T) int) error {
	switch alg {
	case AlgoSelection:
		SelectionFunc(data, c)
	case AlgoInsertion:
		InsertionFunc(data, c)
	case AlgoShell:
		ShellFunc(data, c)
	case AlgoMerge:
		MergeFunc(data, c)
	case AlgoMergeBU:
		MergeBUFunc(data, c)
	case AlgoMergeX:
		MergeXFunc(data, c)
	default:
		return errors.Wrapf(ErrUnknownAlgorithm, "%q", string(alg))
	}
	return nil
}

// SortTrace is SortFunc for the mergesorts with a trace hook. The other
// algorithms ignore trace.
func SortTrace[T any](alg Algorithm, data []T, c func(a, b T) int, trace TraceFunc) error {
	switch alg {
	case AlgoMerge:
		MergeTrace(data, c, trace)
	case AlgoMergeBU:
		MergeBUTrace(data, c, trace)
	case AlgoMergeX:
		MergeXTrace(data, c, trace)
	default:
		return SortFunc(alg, data, c)
	}
	return nil
}
