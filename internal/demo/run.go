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

package demo

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/ajroetker/go-algs4/algs/sort"
)

// IndexTitle is the sink title of the index mergesort result.
const IndexTitle = "index merge"

// Run sorts the configured input with every configured algorithm and writes
// each result to sink.
func Run(cfg Config, sink Sink, log *logrus.Logger) error {
	algs, err := cfg.Validate()
	if err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if cfg.Trace {
		log.SetLevel(logrus.DebugLevel)
	} else {
		level, _ := logrus.ParseLevel(cfg.LogLevel)
		log.SetLevel(level)
	}

	input := Tokenize(cfg.Input)
	compare := strings.Compare
	if cfg.Descending {
		compare = func(a, b string) int { return strings.Compare(b, a) }
	}
	log.WithFields(logrus.Fields{
		"elements":   len(input),
		"algorithms": len(algs),
		"descending": cfg.Descending,
	}).Info("sorting")

	for _, alg := range algs {
		data := slices.Clone(input)
		var trace sort.TraceFunc
		if cfg.Trace {
			trace = traceLogger(log.WithField("algorithm", alg.String()))
		}
		if err := sort.SortTrace(alg, data, compare, trace); err != nil {
			return err
		}
		if !sort.IsSortedFunc(data, compare) {
			return errors.Errorf("%s left the input unsorted: %v", alg, data)
		}
		log.WithFields(logrus.Fields{"algorithm": alg.String(), "stable": alg.Stable()}).Debug("sorted")
		if err := sink.Write(alg.String(), data); err != nil {
			return err
		}
	}

	if cfg.Index {
		perm := sort.IndexMergeFunc(input, compare)
		log.WithField("permutation", perm).Debug("index merge")
		ordered := lo.Map(perm, func(p int, _ int) string { return input[p] })
		if err := sink.Write(IndexTitle, ordered); err != nil {
			return err
		}
	}
	return nil
}

// traceLogger logs each mergesort step indented by its recursion depth.
func traceLogger(entry *logrus.Entry) sort.TraceFunc {
	return func(ev sort.TraceEvent) {
		entry.WithFields(logrus.Fields{
			"depth": ev.Depth,
			"lo":    ev.Lo,
			"mid":   ev.Mid,
			"hi":    ev.Hi,
		}).Debug(strings.Repeat(" ", ev.Depth+1) + ev.Op.String())
	}
}
