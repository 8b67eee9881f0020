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
	"strings"
)

// Kind identifies the category of a token.
type Kind int8

const (
	Unrecognized Kind = iota // Garbage in the input; never produced without an error.

	Number // A run of digits and decimal points.
	String // A double-quoted string, quotes and escapes included.
	Ident  // An identifier.

	Plus         // +
	Minus        // -
	Times        // *
	Divide       // /
	Remainder    // %
	Power        // ^
	Assign       // =
	Equal        // ==
	Greater      // >
	Less         // <
	GreaterEqual // >=
	LessEqual    // <=

	LParen   // (
	RParen   // )
	LBracket // [
	RBracket // ]
	LBrace   // {
	RBrace   // }
	Comma    // ,

	Semicolon // ;, before it is remapped to EOS.
	Blank     // A run of whitespace.
	Comment   // A single comment.
	EOS       // End of statement.
	EOF       // End of input.

	kindCount
)

// kinds is the terminal name of each kind, in declaration order.
var kinds = [...]string{
	Unrecognized: "unrecognized",
	Number:       "number",
	String:       "str",
	Ident:        "id",
	Plus:         "+",
	Minus:        "-",
	Times:        "*",
	Divide:       "/",
	Remainder:    "%",
	Power:        "^",
	Assign:       "=",
	Equal:        "==",
	Greater:      ">",
	Less:         "<",
	GreaterEqual: ">=",
	LessEqual:    "<=",
	LParen:       "(",
	RParen:       ")",
	LBracket:     "[",
	RBracket:     "]",
	LBrace:       "{",
	RBrace:       "}",
	Comma:        ",",
	Semicolon:    ";",
	Blank:        "blank",
	Comment:      "comment",
	EOS:          "eol",
	EOF:          "$",
}

var byTerminal = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := range kindCount {
		m[kinds[k]] = k
	}
	return m
}()

// Kinds returns every valid kind, in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := Number; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Lookup looks up a kind by its terminal name.
//
// Names may be wrapped in single quotes, so that both + and '+' refer to
// [Plus]. Returns [Unrecognized] and false for unknown names.
func Lookup(name string) (Kind, bool) {
	if len(name) > 2 && strings.HasPrefix(name, "'") && strings.HasSuffix(name, "'") {
		name = name[1 : len(name)-1]
	}
	k, ok := byTerminal[name]
	if !ok || k == Unrecognized {
		return Unrecognized, false
	}
	return k, true
}

// Terminal returns the grammar terminal name for this kind.
func (k Kind) Terminal() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k]
}

// IsPunct returns whether this kind is an operator or punctuation.
func (k Kind) IsPunct() bool {
	return k >= Plus && k <= Semicolon
}

// IsLayout returns whether this kind carries no meaning for the parser.
func (k Kind) IsLayout() bool {
	return k == Blank || k == Comment
}

// String implements [fmt.Stringer]. The result is suitable for diagnostics.
func (k Kind) String() string {
	switch {
	case k == Number:
		return "number"
	case k == String:
		return "string"
	case k == Ident:
		return "identifier"
	case k == EOS:
		return "end of statement"
	case k == EOF:
		return "end of input"
	case k.IsPunct():
		return "'" + k.Terminal() + "'"
	default:
		return k.Terminal()
	}
}
