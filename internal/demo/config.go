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

// Package demo runs the sorts on a literal input and writes the results to
// a Sink, one element per line.
package demo

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-algs4/algs/sort"
)

// DefaultInput is the textbook input used by every sort demo.
const DefaultInput = "S O R T E X A M P L E"

// Config selects what Run sorts and how.
type Config struct {
	// Input is split on whitespace into the elements to sort.
	Input string
	// Algorithms to run, in order. Empty means all of sort.Algorithms().
	Algorithms []string
	// Descending reverses the natural string order.
	Descending bool
	// Index also writes the index mergesort permutation applied to the input.
	Index bool
	// Trace logs the mergesort recursion at debug level.
	Trace bool
	// LogLevel is a logrus level name.
	LogLevel string
}

// DefaultConfig returns the configuration of the textbook demo.
func DefaultConfig() Config {
	return Config{
		Input:    DefaultInput,
		LogLevel: logrus.InfoLevel.String(),
	}
}

// BindFlags registers one flag per Config field on fs.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Input, "input", "i", c.Input, "whitespace separated elements to sort")
	fs.BoolVarP(&c.Descending, "desc", "d", c.Descending, "sort in descending order")
	fs.BoolVar(&c.Index, "index", c.Index, "also print the index mergesort permutation applied to the input")
	fs.BoolVarP(&c.Trace, "trace", "t", c.Trace, "log the mergesort recursion (implies --log-level=debug)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (panic, fatal, error, warn, info, debug, trace)")
}

// Validate checks the configuration and resolves the algorithm names.
func (c Config) Validate() ([]sort.Algorithm, error) {
	if len(Tokenize(c.Input)) == 0 {
		return nil, errors.New("input has no elements")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	if len(c.Algorithms) == 0 {
		return sort.Algorithms(), nil
	}
	algs := make([]sort.Algorithm, 0, len(c.Algorithms))
	for _, name := range c.Algorithms {
		alg, err := sort.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}
	return algs, nil
}

// Tokenize splits input into its elements on runs of whitespace.
func Tokenize(input string) []string {
	return strings.Fields(input)
}
