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

// Package lexer converts a sequence of characters into a sequence of tokens.
//
// The lexer is a pure, lazy transform: it pulls runes from its input only as
// it needs them, holding at most two runes of lookahead (the length of the
// longest operator), and yields each token as soon as it is complete.
package lexer

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bufbuild/exprc/source"
	"github.com/bufbuild/exprc/token"
)

// Lexer is the lexer configuration. The zero value is ready to use.
type Lexer struct {
	// If set, unknown escape sequences in strings are kept verbatim instead of
	// being diagnosed.
	LenientEscapes bool
}

// Lex lexes the contents of file.
func (l *Lexer) Lex(file *source.File) token.Stream {
	return l.LexRunes(file, file.Runes())
}

// LexRunes lexes an arbitrary, possibly unbounded, sequence of runes.
//
// file is used only to attribute spans, and may be nil. The stream always
// ends with exactly one [token.EOF], unless the consumer stops early.
//
// Lexical errors are yielded in-line and lexing continues after them, so
// that only the statement containing the error is lost.
func (l *Lexer) LexRunes(file *source.File, chars iter.Seq[rune]) token.Stream {
	return func(yield func(token.Token, error) bool) {
		next, stop := iter.Pull(chars)
		defer stop()

		lex := &lexer{
			Lexer: l,
			file:  file,
			next:  next,
			pos:   source.Pos{Line: 1, Column: 1},
			yield: yield,
		}
		lex.run()
	}
}

// lexer is the book-keeping for a single run of the lexer.
type lexer struct {
	*Lexer
	file  *source.File
	next  func() (rune, bool)
	yield func(token.Token, error) bool

	lookahead []rune
	eof       bool

	pos   source.Pos      // Position of the next rune to pop.
	start source.Pos      // Start of the token being scanned.
	text  strings.Builder // Text of the token being scanned.
}

// run drives the lexer until the input is exhausted or the consumer stops.
func (l *lexer) run() {
	for {
		r := l.peek(0)
		if r == -1 {
			l.start = l.pos
			l.text.Reset()
			l.emit(token.EOF)
			return
		}

		l.start = l.pos
		l.text.Reset()

		var ok bool
		switch {
		case unicode.IsSpace(r):
			l.takeWhile(unicode.IsSpace)
			ok = l.emit(token.Blank)

		case r == '/' && l.peek(1) == '/':
			l.takeWhile(func(r rune) bool { return r != '\n' })
			ok = l.emit(token.Comment)

		case r == '(' && l.peek(1) == '*':
			ok = l.blockComment()

		case isDigit(r):
			l.takeWhile(func(r rune) bool { return isDigit(r) || r == '.' })
			ok = l.emit(token.Number)

		case r == '"':
			ok = l.string()

		case isIdentStart(r):
			l.takeWhile(isIdentContinue)
			ok = l.emit(token.Ident)

		default:
			ok = l.punct()
		}

		if !ok {
			return
		}
	}
}

// punct lexes an operator or punctuation, preferring the longest match.
func (l *lexer) punct() bool {
	r := l.pop()
	kind := token.Unrecognized
	switch r {
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Times
	case '/':
		kind = token.Divide
	case '%':
		kind = token.Remainder
	case '^':
		kind = token.Power
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case ',':
		kind = token.Comma
	case ';':
		kind = token.Semicolon
	case '=':
		kind = l.maybeEqual(token.Assign, token.Equal)
	case '>':
		kind = l.maybeEqual(token.Greater, token.GreaterEqual)
	case '<':
		kind = l.maybeEqual(token.Less, token.LessEqual)
	}

	if kind == token.Unrecognized {
		return l.fail(&LexicalError{At: l.span(), Kind: ErrUnrecognized, Char: r})
	}
	return l.emit(kind)
}

// maybeEqual picks between a one-rune operator and the same operator
// followed by '='.
func (l *lexer) maybeEqual(short, long token.Kind) token.Kind {
	if l.peek(0) == '=' {
		l.pop()
		return long
	}
	return short
}

// blockComment lexes a (* ... *) comment. These nest.
func (l *lexer) blockComment() bool {
	l.pop()
	l.pop()

	depth := 1
	for depth > 0 {
		switch r := l.pop(); {
		case r == -1:
			return l.fail(&LexicalError{At: l.span(), Kind: ErrUnterminatedComment})
		case r == '(' && l.peek(0) == '*':
			l.pop()
			depth++
		case r == '*' && l.peek(0) == ')':
			l.pop()
			depth--
		}
	}
	return l.emit(token.Comment)
}

// string lexes a quoted string. Escapes are validated here and decoded later
// by [Unquote].
//
// A string may not span lines: a newline or the end of input before the
// closing quote is an error. In that case the string's statement is ended
// at the line break, so that the following lines lex and parse normally.
//
// An unknown escape is reported in place of the string once its closing
// quote is found; the string is scanned to the end regardless.
func (l *lexer) string() bool {
	var bad *LexicalError
	l.pop()
	for {
		switch r := l.peek(0); r {
		case '"':
			l.pop()
			if bad != nil {
				return l.fail(bad)
			}
			return l.emit(token.String)

		case '\n', -1:
			if bad != nil && !l.fail(bad) {
				return false
			}
			if !l.fail(&LexicalError{At: l.span(), Kind: ErrUnterminatedString}) {
				return false
			}
			l.start = l.pos
			l.text.Reset()
			return l.emit(token.EOS)

		case '\\':
			escStart := l.pos
			l.pop()
			c := l.peek(0)
			if c == '\n' || c == -1 {
				continue
			}
			l.pop()
			if _, ok := escapes[c]; !ok && !l.LenientEscapes && bad == nil {
				bad = &LexicalError{
					At:   source.Span{File: l.file, Start: escStart, End: l.pos},
					Kind: ErrBadEscape,
					Char: c,
				}
			}

		default:
			l.pop()
		}
	}
}

// emit yields the token currently being scanned.
func (l *lexer) emit(kind token.Kind) bool {
	return l.yield(token.Token{
		Kind: kind,
		Text: l.text.String(),
		At:   l.span(),
	}, nil)
}

// fail yields an error.
func (l *lexer) fail(err *LexicalError) bool {
	return l.yield(token.Token{}, err)
}

// span returns the span of the token currently being scanned.
func (l *lexer) span() source.Span {
	return source.Span{File: l.file, Start: l.start, End: l.pos}
}

// peek returns the nth rune of lookahead, or -1 at the end of input.
func (l *lexer) peek(n int) rune {
	for len(l.lookahead) <= n && !l.eof {
		r, ok := l.next()
		if !ok {
			l.eof = true
			break
		}
		l.lookahead = append(l.lookahead, r)
	}
	if n >= len(l.lookahead) {
		return -1
	}
	return l.lookahead[n]
}

// pop consumes the next rune, returning -1 at the end of input.
func (l *lexer) pop() rune {
	r := l.peek(0)
	if r == -1 {
		return -1
	}
	l.lookahead = l.lookahead[1:]
	l.text.WriteRune(r)
	l.pos = l.pos.Advance(r, utf8.RuneLen(r))
	return r
}

// takeWhile consumes runes while they match f.
func (l *lexer) takeWhile(f func(rune) bool) {
	for {
		r := l.peek(0)
		if r == -1 || !f(r) {
			return
		}
		l.pop()
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
