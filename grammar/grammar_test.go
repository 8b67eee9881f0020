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

package grammar_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/exprc/grammar"
	"github.com/bufbuild/exprc/report"
	"github.com/bufbuild/exprc/token"
)

func nt(name string) grammar.Symbol { return grammar.Nonterminal(name) }

func TestExprRules(t *testing.T) {
	t.Parallel()

	g := grammar.Expr()
	require.Len(t, g.Rules(), len(grammar.RuleIDs()))
	for i, id := range grammar.RuleIDs() {
		r := g.Rules()[i]
		assert.Equal(t, id, r.ID)
		assert.Equal(t, id.Name(), r.Name)
		assert.Same(t, r, g.Rule(id.Name()))

		found, ok := grammar.LookupRule(r.Name)
		assert.True(t, ok)
		assert.Equal(t, id, found)
	}

	assert.Equal(t, nt("S"), g.Start())
	assert.Empty(t, grammar.RuleUnknown.Name())
	assert.Equal(t, "RuleID(0)", grammar.RuleUnknown.String())
}

func TestExprFirstFollow(t *testing.T) {
	t.Parallel()

	g := grammar.Expr()
	operand := grammar.SetOf(token.LParen, token.Number, token.Ident, token.String, token.LBrace)

	assert.Equal(t, operand, g.First(nt("F")))
	assert.Equal(t, operand.With(token.Minus), g.First(nt("E")))
	assert.Equal(t, operand.With(token.Minus), g.First(nt("S")))
	assert.Equal(t, grammar.SetOf(token.Plus, token.Minus)|grammar.Epsilon, g.First(nt("E'")))
	assert.Equal(t, grammar.Epsilon, g.First())
	assert.True(t, g.First(nt("L")).Nullable())
	assert.False(t, g.First(nt("L"), grammar.Terminal(token.RBracket)).Nullable())

	end := grammar.SetOf(token.EOS, token.EOF, token.Comma, token.RBracket, token.RBrace)
	assert.Equal(t, end, g.Follow(nt("S")))
	assert.Equal(t, end, g.Follow(nt("A")))
	assert.Equal(t,
		end.With(token.Assign).With(token.Equal),
		g.Follow(nt("S'")),
	)
	assert.Equal(t,
		end.With(token.Assign).With(token.Equal).With(token.RParen).
			With(token.Greater).With(token.Less).With(token.GreaterEqual).With(token.LessEqual),
		g.Follow(nt("E'")),
	)
	assert.False(t, g.Follow(nt("P")).Has(token.LBracket))
	assert.False(t, g.Follow(nt("P")).Nullable())
}

func TestExprTable(t *testing.T) {
	t.Parallel()

	table := grammar.ExprTable()
	lookup := func(name string, k token.Kind) grammar.RuleID {
		r, ok := table.Lookup(nt(name), k)
		if !ok {
			return grammar.RuleUnknown
		}
		return r.ID
	}

	assert.Equal(t, grammar.RulePlus, lookup("E'", token.Plus))
	assert.Equal(t, grammar.RuleMinus, lookup("E'", token.Minus))
	assert.Equal(t, grammar.RuleSumEmpty, lookup("E'", token.EOS))
	assert.Equal(t, grammar.RuleSumEmpty, lookup("E'", token.RParen))
	assert.Equal(t, grammar.RuleUnknown, lookup("E'", token.Number))
	assert.Equal(t, grammar.RuleNegative, lookup("NEG", token.Minus))
	assert.Equal(t, grammar.RulePositive, lookup("NEG", token.Number))
	assert.Equal(t, grammar.RuleAssign, lookup("A", token.Assign))
	assert.Equal(t, grammar.RuleElementsEmpty, lookup("L", token.RBracket))
	assert.Equal(t, grammar.RuleUnknown, lookup("nope", token.Number))

	assert.Equal(t,
		grammar.SetOf(token.Plus, token.Minus, token.RParen, token.Greater, token.Less,
			token.GreaterEqual, token.LessEqual, token.Equal, token.Assign,
			token.EOS, token.EOF, token.Comma, token.RBracket, token.RBrace),
		table.Expected(nt("E'")),
	)

	// Each slot holds one rule, and every rule is reachable from some slot.
	type slot struct {
		nt grammar.Symbol
		k  token.Kind
	}
	seen := make(map[slot]bool)
	used := make(map[grammar.RuleID]bool)
	for e := range table.Entries() {
		s := slot{e.Nonterminal, e.Terminal}
		assert.False(t, seen[s], "duplicate slot %v", s)
		seen[s] = true
		used[e.Rule.ID] = true
		assert.Equal(t, e.Nonterminal, e.Rule.LHS)
	}
	assert.Len(t, seen, table.Len())
	for _, id := range grammar.RuleIDs() {
		assert.True(t, used[id], "rule %q has no table entry", id)
	}

	// Rows come out in terminal order.
	var last token.Kind = -1
	for e := range table.Row(nt("CMP_2")) {
		assert.Greater(t, e.Terminal, last)
		last = e.Terminal
	}
}

func TestAmbiguous(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/suffix_assign.yaml")
	require.NoError(t, err)
	g, err := grammar.Load(data)
	require.NoError(t, err)

	table, err := grammar.Build(g)
	assert.Nil(t, table)

	var ge *grammar.GrammarError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, nt("CMP_0"), ge.Nonterminal)
	assert.Equal(t, token.Equal, ge.Terminal)
	assert.Equal(t, "CMP_0 -> == S' CMP_0", ge.Existing.Name)
	assert.Equal(t, "CMP_0 -> ε", ge.Conflicting.Name)
	assert.Equal(t, grammar.RuleEqualChain, ge.Existing.ID)

	assert.Panics(t, func() { grammar.MustBuild(g) })

	r := new(report.Report)
	r.Push(err)
	require.Len(t, r.Diagnostics, 1)
	assert.True(t, r.Diagnostics[0].Is(grammar.TagGrammarError))
	assert.Equal(t, []report.Tag{grammar.TagGrammarError}, r.Tags())
	assert.Equal(t, report.Error, r.Diagnostics[0].Level())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/sum.yaml")
	require.NoError(t, err)
	g, err := grammar.Load(data)
	require.NoError(t, err)

	assert.Equal(t, []grammar.Symbol{nt("S"), nt("E'")}, g.Nonterminals())
	assert.Len(t, g.RulesFor(nt("E'")), 2)
	assert.Equal(t, grammar.RuleSumEmpty, g.Rule("E' -> ε").ID)
	assert.Equal(t, grammar.RuleUnknown, g.Rule("S -> number E'").ID)

	table, err := grammar.Build(g)
	require.NoError(t, err)
	assert.Equal(t, 4, table.Len())

	for _, bad := range []string{
		"rules: [\"S -> x\"]",
		"start: S\nrules: [\"S -> X\"]",
		"start: S\nrules: [\"S -> number\", \"S -> number\"]",
		"start: S\nrules: [\"T -> number\"]",
		"start: S\nrules: [\"S number\"]",
		"start: [",
	} {
		_, err := grammar.Load([]byte(bad))
		assert.Error(t, err, bad)
	}
}

func TestParseRule(t *testing.T) {
	t.Parallel()

	r, err := grammar.ParseRule("E' -> '+' T E'")
	require.NoError(t, err)
	assert.Equal(t, nt("E'"), r.LHS)
	assert.Equal(t, []grammar.Symbol{grammar.Terminal(token.Plus), nt("T"), nt("E'")}, r.RHS)
	assert.False(t, r.IsEpsilon())

	r, err = grammar.ParseRule("L -> ε")
	require.NoError(t, err)
	assert.True(t, r.IsEpsilon())

	for _, bad := range []string{"", "L", "L ->", "a b -> c", "number -> c", "L -> S ε"} {
		_, err := grammar.ParseRule(bad)
		assert.Error(t, err, bad)
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	s := grammar.SetOf(token.Minus, token.Plus) | grammar.Epsilon
	assert.Equal(t, "{+, -, ε}", s.String())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []token.Kind{token.Plus, token.Minus}, s.Kinds())
	assert.True(t, s.Has(token.Plus))
	assert.False(t, s.Has(token.Times))
	assert.Equal(t, "{}", grammar.Set(0).String())
}
