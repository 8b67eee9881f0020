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
	"fmt"

	"github.com/bufbuild/exprc/source"
)

// Token is a single lexical unit.
//
// Text is exactly the source text the token was scanned from; downstream
// stages parse numbers and decode string escapes from it. Tokens are plain
// values and are never mutated after the lexer produces them.
type Token struct {
	Kind Kind
	Text string
	At   source.Span
}

// Span implements [source.Spanner].
func (t Token) Span() source.Span {
	return t.At
}

// IsZero returns whether this is the zero token.
func (t Token) IsZero() bool {
	return t.Kind == Unrecognized && t.Text == ""
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	switch t.Kind {
	case EOS, EOF:
		return t.Kind.String()
	case Number, String, Ident:
		return fmt.Sprintf("%v %q", t.Kind, t.Text)
	default:
		return t.Kind.String()
	}
}
