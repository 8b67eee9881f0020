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

package parser_test

import (
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/exprc/grammar"
	"github.com/bufbuild/exprc/lexer"
	"github.com/bufbuild/exprc/parser"
	"github.com/bufbuild/exprc/source"
	"github.com/bufbuild/exprc/token"
)

func tokens(text string) token.Stream {
	file := source.NewFile("test.expr", text)
	return token.Drop(
		token.RemapSemicolon(new(lexer.Lexer).Lex(file)),
		token.Blank, token.Comment,
	)
}

// outline summarizes a parse as one line per statement: the tree's text, or
// "error: " and the error.
func outline(p *parser.Parser, text string) []string {
	var out []string
	for tree, err := range p.Parse(tokens(text)) {
		if err != nil {
			out = append(out, "error: "+err.Error())
			continue
		}
		out = append(out, tree.Span().Text())
	}
	return out
}

func TestStatements(t *testing.T) {
	t.Parallel()

	var trees []*parser.NonTerminal
	for tree, err := range new(parser.Parser).Parse(tokens("1 + 2; x;; f[y] // done\n; 3")) {
		require.NoError(t, err)
		trees = append(trees, tree)
	}
	require.Len(t, trees, 4)

	for _, tree := range trees {
		assert.Equal(t, grammar.RuleStatement, tree.Rule.ID)
	}

	var texts []string
	for term := range trees[0].Terminals() {
		texts = append(texts, term.Token.Text)
	}
	assert.Equal(t, []string{"1", "+", "2"}, texts)
	assert.Equal(t, "f[y]", trees[2].Span().Text())
	assert.Equal(t, "test.expr:2:3", trees[3].Span().String())
}

func TestTreeShape(t *testing.T) {
	t.Parallel()

	next, stop := iter.Pull2(new(parser.Parser).Parse(tokens("1")))
	defer stop()
	tree, err, ok := next()
	require.True(t, ok)
	require.NoError(t, err)

	assert.Equal(t, strings.TrimLeft(`
S -> S' CMP_0 A
  S' -> E CMP_2
    E -> T E'
      T -> REM_0 T'
        REM_0 -> NEG REM_1
          NEG -> POW_0
            POW_0 -> F POW_1
              F -> F' P
                F' -> number
                  number "1"
                P -> ε
              POW_1 -> ε
          REM_1 -> ε
        T' -> ε
      E' -> ε
    CMP_2 -> ε
  CMP_0 -> ε
  A -> ε
`, "\n"), parser.Dump(tree))

	_, _, ok = next()
	assert.False(t, ok)
}

func TestChildrenMatchRules(t *testing.T) {
	t.Parallel()

	for tree, err := range new(parser.Parser).Parse(tokens(`x = {1, -2 ^ 3, "s"}[1] % (4 - 5) >= 6 == 7 < 8`)) {
		require.NoError(t, err)
		for node := range parser.Walk(tree) {
			nt, ok := node.(*parser.NonTerminal)
			if !ok {
				continue
			}
			require.Len(t, nt.Children, len(nt.Rule.RHS), nt.Rule.Name)
			for i, sym := range nt.Rule.RHS {
				switch child := nt.Child(i).(type) {
				case *parser.Terminal:
					assert.Equal(t, sym.Kind, child.Token.Kind)
				case *parser.NonTerminal:
					assert.Equal(t, sym, child.Rule.LHS)
				}
			}
			assert.Nil(t, nt.Child(len(nt.Children)))
		}
	}
}

func TestEndOfInput(t *testing.T) {
	t.Parallel()

	var errs []error
	for tree, err := range new(parser.Parser).Parse(tokens("f[1, 2")) {
		assert.Nil(t, tree)
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)

	var se *parser.SyntaxError
	require.ErrorAs(t, errs[0], &se)
	assert.Equal(t, token.EOF, se.Found.Kind)
	assert.Equal(t, 7, se.At.Start.Column)
	assert.Equal(t, "L'", se.In.Name)
	assert.True(t, se.Expected.Has(token.RBracket))
	assert.False(t, se.Expected.Has(token.RBrace))
	assert.Equal(t, "1:7: unexpected end of input; expected ']' or ','", se.Error())
}

func TestExpectedInContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text, want string
	}{
		{"{f[1}", "error: 1:5: unexpected '}'; expected ']'"},
		{"f[{1]", "error: 1:5: unexpected ']'; expected '}'"},
		{"{1 2", "error: 1:4: unexpected number \"2\"; expected one of '+', '-', '*', '/', '%', '^', '=', '==', '>', '<', '>=', '<=', '[', '}', ','"},
	}
	for _, tt := range tests {
		assert.Equal(t, []string{tt.want}, outline(new(parser.Parser), tt.text), "%q", tt.text)
	}
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"error: 1:4: unexpected end of statement; expected one of number, string, identifier, '-', '(', '{'",
		"2",
		"error: 1:11: unexpected end of statement; expected ')'",
		"4",
		"error: 1:18: unexpected ']'; expected end of statement or end of input",
		"5",
	}, outline(new(parser.Parser), "1 +; 2; (3; 4; 1 ]; 5"))
}

func TestLexicalRecovery(t *testing.T) {
	t.Parallel()

	lines := outline(new(parser.Parser), "1 $ 2; 3")
	assert.Equal(t, []string{"error: 1:3: unrecognized character '$'", "3"}, lines)

	// The unterminated string ends its statement at the line break.
	var errs []error
	var trees []string
	for tree, err := range new(parser.Parser).Parse(tokens("\"abc\n1 + 1")) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		trees = append(trees, tree.Span().Text())
	}
	require.Len(t, errs, 1)
	var le *lexer.LexicalError
	assert.ErrorAs(t, errs[0], &le)
	assert.Equal(t, []string{"1 + 1"}, trees)
}

func TestStopEarly(t *testing.T) {
	t.Parallel()

	var n int
	for range new(parser.Parser).Parse(tokens("1; 2; 3")) {
		n++
		break
	}
	assert.Equal(t, 1, n)

	// Also after an error.
	n = 0
	for _, err := range new(parser.Parser).Parse(tokens("1 +; 2")) {
		assert.Error(t, err)
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestCustomTable(t *testing.T) {
	t.Parallel()

	g, err := grammar.Load([]byte(`
start: S
rules:
  - "S -> number E'"
  - "E' -> '+' number E'"
  - "E' -> ε"
`))
	require.NoError(t, err)
	p := &parser.Parser{Table: grammar.MustBuild(g)}

	lines := outline(p, "1 + 2 + 3; 4 5; x")
	require.Len(t, lines, 3)
	assert.Equal(t, "1 + 2 + 3", lines[0])
	assert.Equal(t, "error: 1:14: unexpected number \"5\"; expected one of '+', end of statement, end of input", lines[1])
	assert.Equal(t, "error: 1:17: unexpected identifier \"x\"; expected number", lines[2])
}

func TestNoEOF(t *testing.T) {
	t.Parallel()

	// A stream that stops without an end-of-input token still terminates
	// the last statement.
	toks, err := token.Collect(tokens("1 +"))
	require.NoError(t, err)
	toks = slices.DeleteFunc(toks, func(tok token.Token) bool { return tok.Kind == token.EOF })
	stream := func(yield func(token.Token, error) bool) {
		for _, tok := range toks {
			if !yield(tok, nil) {
				return
			}
		}
	}

	var errs []error
	for _, err := range new(parser.Parser).Parse(stream) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	var se *parser.SyntaxError
	require.ErrorAs(t, errs[0], &se)
	assert.Equal(t, token.EOF, se.Found.Kind)
	assert.Equal(t, 4, se.At.Start.Column)
}
