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

package exprc

import (
	"context"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/exprc/expr"
	"github.com/bufbuild/exprc/lexer"
	"github.com/bufbuild/exprc/parser"
	"github.com/bufbuild/exprc/report"
	"github.com/bufbuild/exprc/source"
	"github.com/bufbuild/exprc/token"
	"github.com/bufbuild/exprc/translate"
)

// Frontend runs source files through the lexer, parser, and translator.
//
// The zero value is ready to use. A Frontend holds only configuration, so it
// may be used from several goroutines at once; each run builds its own
// pipeline state.
type Frontend struct {
	Lexer      lexer.Lexer
	Parser     parser.Parser
	Translator translate.Translator

	// Finds files for [Frontend.TranslateAll]. Defaults to reading them from
	// disk with a [SourceResolver].
	Resolver Resolver

	// The maximum number of files [Frontend.TranslateAll] works on at once.
	// Defaults to GOMAXPROCS, capped at the number of CPUs.
	MaxParallelism int
}

// Tokens returns the significant tokens of file: layout is dropped and
// semicolons become end-of-statement markers.
func (f *Frontend) Tokens(file *source.File) token.Stream {
	return token.Drop(
		token.RemapSemicolon(f.Lexer.Lex(file)),
		token.Blank, token.Comment,
	)
}

// Trees returns the parse tree of each statement of file.
func (f *Frontend) Trees(file *source.File) iter.Seq2[*parser.NonTerminal, error] {
	return f.Parser.Parse(f.Tokens(file))
}

// Translate returns the expression for each statement of file.
//
// A statement that fails yields its error in place of an expression. If r is
// not nil, every error is also added to it.
func (f *Frontend) Translate(file *source.File, r *report.Report) iter.Seq2[expr.Expr, error] {
	exprs := f.Translator.Stream(f.Trees(file))
	return func(yield func(expr.Expr, error) bool) {
		for e, err := range exprs {
			if err != nil && r != nil {
				r.Push(err)
			}
			if !yield(e, err) {
				return
			}
		}
	}
}

// Result is the outcome of translating one file.
type Result struct {
	// The path the file was requested by. File is nil if it could not be
	// found.
	Path  string
	File  *source.File
	Exprs []expr.Expr

	// Every diagnostic for this file.
	Report *report.Report
}

// TranslateAll translates the files at the given paths concurrently.
//
// Results are returned in the order of paths, and each has its own report.
// A file that cannot be found is an error in its report, like any problem
// inside a file. An error is returned only if ctx is cancelled.
// Cancellation stops new files from being started, but a file already
// underway runs to completion.
func (f *Frontend) TranslateAll(ctx context.Context, paths ...string) ([]Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	resolver := f.Resolver
	if resolver == nil {
		resolver = new(SourceResolver)
	}

	par := f.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	results := make([]Result, len(paths))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(par)
	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			file, err := resolver.FindFileByPath(path)
			if err != nil {
				results[i] = Result{Path: path, Report: new(report.Report)}
				results[i].Report.Error(&report.ErrInFile{Err: err, Path: path})
				return nil
			}
			results[i] = f.translateFile(path, file)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (f *Frontend) translateFile(path string, file *source.File) (result Result) {
	result = Result{Path: path, File: file, Report: new(report.Report)}
	defer result.Report.CatchICE(true, func(d *report.Diagnostic) {
		d.Apply(report.InFile(file.Path()))
	})

	var statements int
	for e, err := range f.Translate(file, result.Report) {
		statements++
		if err == nil {
			result.Exprs = append(result.Exprs, e)
		}
	}

	if statements == 0 {
		result.Report.Warnf("file contains no statements").Apply(report.InFile(file.Path()))
	}
	result.Report.Remarkf("translated %d of %d statements", len(result.Exprs), statements).
		Apply(report.InFile(file.Path()))
	return result
}
