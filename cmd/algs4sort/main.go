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

// Command algs4sort sorts a whitespace separated input with the elementary
// sorts and prints each result, one element per line.
//
// Usage:
//
//	algs4sort                              # every algorithm on "S O R T E X A M P L E"
//	algs4sort merge mergex --trace         # log the mergesort recursion to stderr
//	algs4sort -i "bed bug dad yes zoo" -d  # descending order
//	algs4sort --list
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-algs4/algs/sort"
	"github.com/ajroetker/go-algs4/internal/demo"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := demo.DefaultConfig()
	var list bool

	cmd := &cobra.Command{
		Use:           "algs4sort [algorithm...]",
		Short:         "Sort a literal input with the elementary sorts",
		SilenceUsage:  true,
		SilenceErrors: true,
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			var names []string
			for _, alg := range sort.Algorithms() {
				names = append(names, alg.String())
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, alg := range sort.Algorithms() {
					fmt.Fprintf(stdout, "%s\tstable=%t\n", alg, alg.Stable())
				}
				return nil
			}
			cfg.Algorithms = args

			log := logrus.New()
			log.SetOutput(stderr)
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			return demo.Run(cfg, demo.NewLineSink(stdout), log)
		},
	}
	cfg.BindFlags(cmd.Flags())
	cmd.Flags().BoolVar(&list, "list", false, "list the available algorithms and exit")
	return cmd
}
