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

// =============================================================================
// Constants for the optimized mergesort and shellsort
// =============================================================================

// mergeXCutoff: MergeX insertion-sorts a subarray a[lo..hi] once hi <= lo+mergeXCutoff.
const mergeXCutoff = 7

// knuthStep is the multiplier of the 3h+1 increment sequence (1, 4, 13, 40, 121, ...).
const knuthStep = 3
