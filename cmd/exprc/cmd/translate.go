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

)

func newTranslateCommand(opts *options) *cobra.Command {
	var searchPaths []string
	cmd := &cobra.Command{
		Use:   "translate FILE...",
		Short: "Print the expression for each statement, in FullForm",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.config.Translate.SearchPaths = append(opts.config.Translate.SearchPaths, searchPaths...)

			f := opts.config.Frontend()
			f.Resolver = opts.resolver(cmd)
			results, err := f.TranslateAll(cmd.Context(), args...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := opts.newReport()
			if n := countStdin(args); n > 1 {
				r.Warnf("standard input is named %d times; it is read once", n)
			}
			for _, result := range results {
				prefix := ""
				if len(results) > 1 {
					prefix = result.Path + ": "
				}
				for _, e := range result.Exprs {
					fmt.Fprintf(out, "%s%v\n", prefix, e)
				}
				r.Merge(result.Report)
			}
			return opts.finish(cmd, r)
		},
	}
	cmd.Flags().StringSliceVarP(&searchPaths, "search-path", "I", nil, "directories to look for files in")
	return cmd
}

func countStdin(args []string) int {
	var n int
	for _, arg := range args {
		if arg == "-" {
			n++
		}
	}
	return n
}
