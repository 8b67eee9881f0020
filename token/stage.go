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

package token

import (
	"errors"
	"iter"
	"slices"
	"strings"
)

// Stream is the shape of every token stage: a lazy sequence of tokens,
// interleaved with the errors encountered producing them.
//
// A non-nil error is yielded with the zero token.
type Stream = iter.Seq2[Token, error]

// RemapSemicolon turns every [Semicolon] into an [EOS], which is what the
// parser uses to split statements.
func RemapSemicolon(tokens Stream) Stream {
	return func(yield func(Token, error) bool) {
		for tok, err := range tokens {
			if err == nil && tok.Kind == Semicolon {
				tok.Kind = EOS
			}
			if !yield(tok, err) {
				return
			}
		}
	}
}

// Drop removes tokens of the given kinds from the stream. Errors always pass
// through.
func Drop(tokens Stream, kinds ...Kind) Stream {
	return func(yield func(Token, error) bool) {
		for tok, err := range tokens {
			if err == nil && slices.Contains(kinds, tok.Kind) {
				continue
			}
			if !yield(tok, err) {
				return
			}
		}
	}
}

// Collect drains a stream into a slice, returning every error joined.
func Collect(tokens Stream) ([]Token, error) {
	var out []Token
	var errs []error
	for tok, err := range tokens {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, tok)
	}
	return out, errors.Join(errs...)
}

// Concat re-joins the text of every token in the stream.
//
// For a stream straight out of the lexer this reproduces the input; for one
// that went through [Drop], the input minus the dropped layout.
func Concat(tokens Stream) (string, error) {
	var out strings.Builder
	var errs []error
	for tok, err := range tokens {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out.WriteString(tok.Text)
	}
	return out.String(), errors.Join(errs...)
}
