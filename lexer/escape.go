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
	"errors"
	"fmt"
	"strings"
)

// escapes is the fixed set of escape sequences recognized in strings.
var escapes = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'0':  0,
	'\\': '\\',
	'"':  '"',
}

// Unquote decodes the text of a string token: it strips the quotes and
// replaces every escape sequence with the character it stands for.
//
// Unknown escapes are kept verbatim, which matches what the lexer does when
// [Lexer.LenientEscapes] is set.
func Unquote(text string) (string, error) {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return "", fmt.Errorf("not a quoted string: %q", text)
	}
	text = text[1 : len(text)-1]
	if !strings.ContainsRune(text, '\\') {
		return text, nil
	}

	var out strings.Builder
	out.Grow(len(text))
	escaped := false
	for _, r := range text {
		switch {
		case escaped:
			if c, ok := escapes[r]; ok {
				out.WriteRune(c)
			} else {
				out.WriteByte('\\')
				out.WriteRune(r)
			}
			escaped = false
		case r == '\\':
			escaped = true
		default:
			out.WriteRune(r)
		}
	}
	if escaped {
		return "", errors.New("string ends in a backslash")
	}
	return out.String(), nil
}
