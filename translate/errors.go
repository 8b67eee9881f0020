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

package translate

import (
	"fmt"

	"github.com/bufbuild/exprc/grammar"
	"github.com/bufbuild/exprc/parser"
	"github.com/bufbuild/exprc/report"
	"github.com/bufbuild/exprc/source"
)

const (
	TagTranslationError report.Tag = "translation-error"
	TagInternalError    report.Tag = "internal-error"
)

// TranslationError is an error for a literal that is well-formed lexically
// but cannot be given a value, such as the number 1.2.3.
type TranslationError struct {
	At      source.Span
	Literal string
	Err     error
}

var _ report.Diagnose = (*TranslationError)(nil)

// Span implements [source.Spanner].
func (e *TranslationError) Span() source.Span {
	return e.At
}

// Error implements [error].
func (e *TranslationError) Error() string {
	return fmt.Sprintf("%s: invalid literal %s: %v", e.At.Start, e.Literal, e.Err)
}

// Unwrap returns the underlying error.
func (e *TranslationError) Unwrap() error {
	return e.Err
}

// Diagnose implements [report.Diagnose].
func (e *TranslationError) Diagnose(d *report.Diagnostic) {
	d.Apply(
		report.Message("invalid literal %s", e.Literal),
		report.Snippet(e.At, "%v", e.Err),
		TagTranslationError,
	)
}

// InternalError is a mismatch between the grammar and the translator, such
// as a rule with no reduction procedure. It indicates a bug, never bad
// input.
type InternalError struct {
	Rule   *grammar.Rule // May be nil.
	Node   parser.Node   // May be nil.
	Reason string
}

var _ report.Diagnose = (*InternalError)(nil)

// Span implements [source.Spanner].
func (e *InternalError) Span() source.Span {
	if e.Node == nil {
		return source.Span{}
	}
	return e.Node.Span()
}

// Level returns the diagnostic level for this error, which is always
// [report.ICE].
func (e *InternalError) Level() report.Level {
	return report.ICE
}

// Error implements [error].
func (e *InternalError) Error() string {
	if e.Rule == nil {
		return "internal error: " + e.Reason
	}
	return fmt.Sprintf("internal error in %q: %s", e.Rule.Name, e.Reason)
}

// Diagnose implements [report.Diagnose].
func (e *InternalError) Diagnose(d *report.Diagnostic) {
	d.Apply(
		report.Message("failed to translate statement; this is a bug"),
		report.Snippet(e.Span()),
		report.Note("%s", e.Reason),
		TagInternalError,
	)
	if e.Rule != nil {
		d.Apply(report.Debug("rule: %s", e.Rule.Name))
	}
	if e.Node != nil {
		d.Apply(report.Debug("tree:\n%s", parser.Dump(e.Node)))
	}
}
