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

	"github.com/bufbuild/exprc/parser"
)

func newParseCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the parse tree of each statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := opts.open(cmd, args[0])
			if err != nil {
				return err
			}

			r := opts.newReport()
			out := cmd.OutOrStdout()
			for tree, err := range opts.config.Frontend().Trees(file) {
				if err != nil {
					r.Push(err)
					continue
				}
				fmt.Fprint(out, parser.Dump(tree))
			}
			return opts.finish(cmd, r)
		},
	}
}
