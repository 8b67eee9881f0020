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
	"iter"

	"github.com/bufbuild/exprc/grammar"
	"github.com/bufbuild/exprc/internal/ext/slicesx"
	"github.com/bufbuild/exprc/source"
	"github.com/bufbuild/exprc/token"
)

// Parser is the parser configuration. The zero value parses the built-in
// expression grammar.
type Parser struct {
	// The table to drive the parse with. Defaults to [grammar.ExprTable].
	Table *grammar.Table
}

// Parse parses a token stream into one tree per statement.
//
// tokens must not contain layout; see [token.Drop]. Statements are
// separated by [token.EOS] and the stream is finished by [token.EOF] or by
// running out of tokens. Empty statements are skipped.
//
// Errors in tokens, and syntax errors, are yielded in place of the statement
// they occur in; parsing resumes after the next [token.EOS].
func (p *Parser) Parse(tokens token.Stream) iter.Seq2[*NonTerminal, error] {
	return func(yield func(*NonTerminal, error) bool) {
		next, stop := iter.Pull2(tokens)
		defer stop()

		table := p.Table
		if table == nil {
			table = grammar.ExprTable()
		}

		ps := &parser{table: table, next: next, yield: yield}
		ps.run()
	}
}

// parser is the book-keeping for a single run of the parser.
type parser struct {
	table *grammar.Table
	next  func() (token.Token, error, bool)
	yield func(*NonTerminal, error) bool

	lookahead token.Token
	loaded    bool
	end       source.Pos // End of the last token seen.
}

// frame is a pending symbol on the parse stack, along with the node that
// its subtree will be appended to.
type frame struct {
	symbol grammar.Symbol
	parent *NonTerminal
}

func (p *parser) run() {
	for {
		tok, err := p.peek()
		if err != nil {
			if !p.fail(err) {
				return
			}
			continue
		}

		switch tok.Kind {
		case token.EOF:
			return
		case token.EOS:
			p.advance()
			continue
		}

		tree, err := p.statement()
		if err != nil {
			if !p.fail(err) {
				return
			}
			continue
		}
		if !p.yield(tree, nil) {
			return
		}
	}
}

// statement parses one statement, starting with a fresh stack.
func (p *parser) statement() (*NonTerminal, error) {
	root := new(NonTerminal)
	stack := []frame{{symbol: p.table.Grammar().Start(), parent: root}}

	for {
		top, ok := slicesx.Pop(&stack)
		if !ok {
			break
		}

		tok, err := p.peek()
		if err != nil {
			return nil, err
		}

		if top.symbol.IsTerminal() {
			if tok.Kind != top.symbol.Kind {
				return nil, &SyntaxError{
					At:       tok.Span(),
					Expected: grammar.SetOf(top.symbol.Kind),
					Found:    tok,
				}
			}
			top.parent.Children = append(top.parent.Children, &Terminal{Token: tok})
			p.advance()
			continue
		}

		rule, ok := p.table.Lookup(top.symbol, tok.Kind)
		if !ok {
			return nil, &SyntaxError{
				At:       tok.Span(),
				Expected: p.expected(top.symbol, stack),
				Found:    tok,
				In:       top.symbol,
			}
		}

		node := &NonTerminal{Rule: rule, Children: make([]Node, 0, len(rule.RHS))}
		top.parent.Children = append(top.parent.Children, node)
		for i := len(rule.RHS) - 1; i >= 0; i-- {
			stack = append(stack, frame{symbol: rule.RHS[i], parent: node})
		}
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case token.EOS:
		p.advance()
	case token.EOF:
	default:
		return nil, &SyntaxError{
			At:       tok.Span(),
			Expected: grammar.SetOf(token.EOS, token.EOF),
			Found:    tok,
		}
	}

	tree, _ := root.Children[0].(*NonTerminal)
	return tree, nil
}

// expected returns the terminals that can come next when nt is on top of
// the stack and rest lies below it.
//
// This is narrower than nt's row of the table: the row also holds all of
// FOLLOW(nt), most of which the enclosing frames rule out.
func (p *parser) expected(nt grammar.Symbol, rest []frame) grammar.Set {
	pending := make([]grammar.Symbol, 0, len(rest)+1)
	pending = append(pending, nt)
	for i := len(rest) - 1; i >= 0; i-- {
		pending = append(pending, rest[i].symbol)
	}

	set := p.table.Grammar().First(pending...)
	if set.Nullable() {
		set = set.Terminals() | grammar.SetOf(token.EOS, token.EOF)
	}
	return set
}

// fail reports err and then discards tokens through the next end of
// statement. Returns false if the consumer asked to stop.
func (p *parser) fail(err error) bool {
	if !p.yield(nil, err) {
		return false
	}

	for {
		tok, err := p.peek()
		if err != nil {
			if !p.yield(nil, err) {
				return false
			}
			continue
		}

		switch tok.Kind {
		case token.EOF:
			return true
		case token.EOS:
			p.advance()
			return true
		}
		p.advance()
	}
}

// peek returns the lookahead token, pulling a new one if necessary.
//
// An error from upstream is returned instead of a token, and is consumed.
// If upstream runs dry without an explicit end of input, peek synthesizes
// one.
func (p *parser) peek() (token.Token, error) {
	if p.loaded {
		return p.lookahead, nil
	}

	tok, err, ok := p.next()
	switch {
	case !ok:
		span := source.Span{Start: p.end, End: p.end}
		if p.end.IsZero() {
			span = source.Span{}
		}
		tok = token.Token{Kind: token.EOF, At: span}
	case err != nil:
		return token.Token{}, err
	default:
		p.end = tok.At.End
	}

	p.lookahead, p.loaded = tok, true
	return tok, nil
}

func (p *parser) advance() {
	p.loaded = false
}
