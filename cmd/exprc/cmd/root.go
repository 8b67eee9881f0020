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
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/spf13/cobra"

	"github.com/bufbuild/exprc"
	"github.com/bufbuild/exprc/report"
	"github.com/bufbuild/exprc/source"
)

// options is the state shared by every command.
type options struct {
	configFile string
	color      bool
	compact    bool
	debug      bool

	config Config
}

// NewRootCommand builds the exprc command tree.
func NewRootCommand() *cobra.Command {
	opts := new(options)
	root := &cobra.Command{
		Use:   "exprc",
		Short: "Inspect the stages of the expression front end",
		Long: `exprc runs source files through the expression front end and prints
what a stage produces.

Stages:
  lex        - tokens
  parse      - LL(1) parse trees
  translate  - expressions, in FullForm
  grammar    - FIRST/FOLLOW sets and the predictive table

A file named "-" is read from standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (TOML)")
	flags.BoolVar(&opts.color, "color", false, "colorize diagnostics")
	flags.BoolVar(&opts.compact, "compact", false, "print diagnostics one per line")
	flags.BoolVar(&opts.debug, "debug", false, "include debugging information in diagnostics")

	root.AddCommand(
		newLexCommand(opts),
		newParseCommand(opts),
		newTranslateCommand(opts),
		newGrammarCommand(opts),
	)
	return root
}

// Execute runs exprc with the process's arguments.
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	var reported *report.AsError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintf(root.ErrOrStderr(), "exprc: %v\n", err)
	}
	return err
}

// load reads the config file, then applies any flags given explicitly on
// the command line over it.
func (o *options) load(cmd *cobra.Command) error {
	if o.configFile != "" {
		cfg, err := LoadConfig(o.configFile)
		if err != nil {
			return err
		}
		o.config = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		o.config.Render.Color = o.color
	}
	if flags.Changed("compact") {
		o.config.Render.Compact = o.compact
	}
	if flags.Changed("debug") {
		o.config.Render.ShowDebug = o.debug
	}
	return nil
}

// resolver finds files on the command line: "-" is standard input, and
// anything else is looked up in the configured search paths.
// resolver returns a resolver that reads "-" from standard input. Standard
// input is read at most once, however many times it is named.
func (o *options) resolver(cmd *cobra.Command) exprc.Resolver {
	disk := &exprc.SourceResolver{SearchPaths: o.config.Translate.SearchPaths}
	stdin := sync.OnceValues(func() (*source.File, error) {
		text, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return source.NewFile("<stdin>", string(text)), nil
	})
	return exprc.ResolverFunc(func(path string) (*source.File, error) {
		if path != "-" {
			return disk.FindFileByPath(path)
		}
		return stdin()
	})
}

// open resolves a single file.
func (o *options) open(cmd *cobra.Command, path string) (*source.File, error) {
	return o.resolver(cmd).FindFileByPath(path)
}

// newReport returns a report for a command to collect diagnostics in.
// With --debug, diagnostics record where they were raised.
func (o *options) newReport() *report.Report {
	r := new(report.Report)
	if o.config.Render.ShowDebug {
		r.Tracing = 16
	}
	return r
}

// finish renders r to stderr. If it holds errors, they are returned as an
// [*report.AsError], which [Execute] does not print again.
func (o *options) finish(cmd *cobra.Command, r *report.Report) error {
	errs, _, err := o.config.Renderer().Render(r, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if errs > 0 {
		return &report.AsError{Report: r}
	}
	return nil
}
