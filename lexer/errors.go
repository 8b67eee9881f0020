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

package lexer

import (
	"fmt"

	"github.com/bufbuild/exprc/report"
	"github.com/bufbuild/exprc/source"
)

// TagLexicalError is the diagnostic tag for every [LexicalError].
const TagLexicalError report.Tag = "lexical-error"

// ErrorKind says what went wrong in a [LexicalError].
type ErrorKind int8

const (
	ErrUnrecognized        ErrorKind = iota + 1 // A character that cannot start any token.
	ErrUnterminatedString                       // A string with no closing quote on its line.
	ErrUnterminatedComment                      // A block comment with no closing delimiter.
	ErrBadEscape                                // An unknown escape sequence in a string.
)

// LexicalError is an error produced while turning characters into tokens.
type LexicalError struct {
	At   source.Span
	Kind ErrorKind
	Char rune // The offending character, for ErrUnrecognized and ErrBadEscape.
}

var _ report.Diagnose = (*LexicalError)(nil)

// Span implements [source.Spanner].
func (e *LexicalError) Span() source.Span {
	return e.At
}

// Error implements [error].
func (e *LexicalError) Error() string {
	return fmt.Sprintf("%s: %s", e.At.Start, e.message())
}

// Diagnose implements [report.Diagnose].
func (e *LexicalError) Diagnose(d *report.Diagnostic) {
	d.Apply(
		report.Message("%s", e.message()),
		report.Snippet(e.At),
		TagLexicalError,
	)

	switch e.Kind {
	case ErrUnterminatedString:
		d.Apply(report.Help("strings cannot span lines; use \\n for a line break"))
	case ErrBadEscape:
		d.Apply(report.Note("the supported escapes are \\n \\t \\r \\0 \\\\ and \\\""))
	}
}

func (e *LexicalError) message() string {
	switch e.Kind {
	case ErrUnrecognized:
		return fmt.Sprintf("unrecognized character %q", e.Char)
	case ErrUnterminatedString:
		return "unterminated string literal"
	case ErrUnterminatedComment:
		return "unterminated block comment"
	case ErrBadEscape:
		return fmt.Sprintf("unknown escape sequence \\%c", e.Char)
	default:
		return "lexical error"
	}
}
