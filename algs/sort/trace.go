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

import "fmt"

// TraceOp identifies the step a mergesort reports to a TraceFunc.
type TraceOp uint8

const (
	// TraceSort is reported on entry to a recursive sort of a[Lo..Hi].
	TraceSort TraceOp = iota
	// TraceMerge is reported before a[Lo..Mid] and a[Mid+1..Hi] are merged.
	TraceMerge
	// TraceCutoff is reported when MergeX insertion-sorts a[Lo..Hi].
	TraceCutoff
	// TraceSkip is reported when MergeX finds a[Lo..Mid] <= a[Mid+1..Hi]
	// and copies the block instead of merging.
	TraceSkip
)

var traceOpNames = [...]string{
	TraceSort:   "sort",
	TraceMerge:  "merge",
	TraceCutoff: "cutoff",
	TraceSkip:   "skip",
}

func (op TraceOp) String() string {
	if int(op) < len(traceOpNames) {
		return traceOpNames[op]
	}
	return fmt.Sprintf("TraceOp(%d)", uint8(op))
}

// TraceEvent describes one step of a mergesort. Depth is 0 for the
// outermost call and grows by one per recursion level; bottom-up mergesort
// reports the pass number instead. Mid is -1 for TraceSort and TraceCutoff.
type TraceEvent struct {
	Op    TraceOp
	Depth int
	Lo    int
	Mid   int
	Hi    int
}

func (e TraceEvent) String() string {
	if e.Mid < 0 {
		return fmt.Sprintf("%s lo=%d hi=%d", e.Op, e.Lo, e.Hi)
	}
	return fmt.Sprintf("%s lo=%d mid=%d hi=%d", e.Op, e.Lo, e.Mid, e.Hi)
}

// TraceFunc receives trace events. A nil TraceFunc disables tracing.
type TraceFunc func(TraceEvent)

func (f TraceFunc) emit(op TraceOp, depth, lo, mid, hi int) {
	if f != nil {
		f(TraceEvent{Op: op, Depth: depth, Lo: lo, Mid: mid, Hi: hi})
	}
}
