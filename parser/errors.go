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

package parser

import (
	"fmt"
	"strings"

	"github.com/bufbuild/exprc/grammar"
	"github.com/bufbuild/exprc/report"
	"github.com/bufbuild/exprc/source"
	"github.com/bufbuild/exprc/token"
)

// TagSyntaxError is the diagnostic tag for every [SyntaxError].
const TagSyntaxError report.Tag = "syntax-error"

// SyntaxError is an error produced when the lookahead token does not fit
// the grammar.
type SyntaxError struct {
	At source.Span

	// The tokens that would have been accepted here.
	Expected grammar.Set
	Found    token.Token

	// The nonterminal being expanded, if the failure was a missing table
	// entry; zero if it was a mismatched terminal.
	In grammar.Symbol
}

var _ report.Diagnose = (*SyntaxError)(nil)

// Span implements [source.Spanner].
func (e *SyntaxError) Span() source.Span {
	return e.At
}

// Error implements [error].
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s; %s", e.At.Start, e.unexpected(), e.expected())
}

// Diagnose implements [report.Diagnose].
func (e *SyntaxError) Diagnose(d *report.Diagnostic) {
	d.Apply(
		report.Message("%s", e.unexpected()),
		report.Snippet(e.At, "%s", e.expected()),
		TagSyntaxError,
	)
	if e.In.Name != "" {
		d.Apply(report.Debug("no table entry for (%s, %s)", e.In, e.Found.Kind.Terminal()))
	}
	if e.Found.Kind == token.EOF {
		d.Apply(report.Help("the statement is incomplete"))
	}
}

func (e *SyntaxError) unexpected() string {
	if e.Found.Kind == token.EOF {
		return "unexpected end of input"
	}
	return "unexpected " + e.Found.String()
}

func (e *SyntaxError) expected() string {
	kinds := e.Expected.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	switch len(names) {
	case 0:
		return "expected nothing"
	case 1:
		return "expected " + names[0]
	case 2:
		return "expected " + names[0] + " or " + names[1]
	default:
		return "expected one of " + strings.Join(names, ", ")
	}
}
