// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bufbuild/exprc/grammar"
)

func newGrammarCommand(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print FIRST/FOLLOW sets and the predictive table of a grammar",
		Long: `Print the rules, FIRST and FOLLOW sets, and LL(1) predictive table of the
built-in expression grammar, or of a grammar loaded from a YAML file:

  start: S
  rules:
    - "S -> number E'"
    - "E' -> '+' number E'"
    - "E' -> ε"

A grammar that is not LL(1) is reported as an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := grammar.Expr()
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				if g, err = grammar.Load(data); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			printSets(out, g)

			table, err := grammar.Build(g)
			if err != nil {
				r := opts.newReport()
				r.Push(err)
				return opts.finish(cmd, r)
			}
			printTable(out, table)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML grammar to analyze instead of the built-in one")
	return cmd
}

func printSets(out io.Writer, g *grammar.Grammar) {
	fmt.Fprintln(out, "rules:")
	for _, r := range g.Rules() {
		fmt.Fprintf(out, "  %s\n", r.Name)
	}

	fmt.Fprintln(out, "\nsets:")
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  nonterminal\tFIRST\tFOLLOW")
	for _, nt := range g.Nonterminals() {
		fmt.Fprintf(w, "  %s\t%v\t%v\n", nt, g.First(nt), g.Follow(nt))
	}
	w.Flush()
}

func printTable(out io.Writer, table *grammar.Table) {
	fmt.Fprintf(out, "\ntable (%d entries):\n", table.Len())
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for e := range table.Entries() {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", e.Nonterminal, e.Terminal.Terminal(), e.Rule.Name)
	}
	w.Flush()
}
