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

	"github.com/spf13/cobra"

	"github.com/bufbuild/exprc/token"
)

func newLexCommand(opts *options) *cobra.Command {
	var layout, concat bool
	cmd := &cobra.Command{
		Use:   "lex FILE",
		Short: "Print the tokens of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := opts.open(cmd, args[0])
			if err != nil {
				return err
			}

			f := opts.config.Frontend()
			tokens := f.Tokens(file)
			if layout {
				tokens = f.Lexer.Lex(file)
			}

			r := opts.newReport()
			out := cmd.OutOrStdout()
			if concat {
				text, err := token.Concat(tokens)
				if joined, ok := err.(interface{ Unwrap() []error }); ok {
					for _, err := range joined.Unwrap() {
						r.Push(err)
					}
				}
				fmt.Fprint(out, text)
				return opts.finish(cmd, r)
			}

			for tok, err := range tokens {
				if err != nil {
					r.Push(err)
					continue
				}
				fmt.Fprintf(out, "%-7s %s\n", tok.At.Start, tok)
			}
			return opts.finish(cmd, r)
		},
	}
	cmd.Flags().BoolVar(&layout, "layout", false, "include whitespace and comments")
	cmd.Flags().BoolVar(&concat, "concat", false, "print the token texts joined back together")
	return cmd
}
