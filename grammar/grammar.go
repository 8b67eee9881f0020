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

package grammar

import (
	"fmt"

	"github.com/bufbuild/exprc/token"
)

// Grammar is a context-free grammar with a distinguished start symbol.
//
// A Grammar is immutable once constructed, and its FIRST and FOLLOW sets are
// computed eagerly by [New].
type Grammar struct {
	start Symbol
	rules []*Rule

	nonterminals []Symbol
	index        map[Symbol]int
	byLHS        map[Symbol][]*Rule

	first  map[Symbol]Set
	follow map[Symbol]Set
}

// New builds a grammar from the given rules, whose order is preserved.
//
// Returns an error if the start symbol has no rules, if a nonterminal is
// used without being defined, or if two rules share a name.
func New(start string, rules ...*Rule) (*Grammar, error) {
	g := &Grammar{
		start: Nonterminal(start),
		rules: rules,
		index: make(map[Symbol]int),
		byLHS: make(map[Symbol][]*Rule),
	}

	names := make(map[string]bool, len(rules))
	for _, r := range rules {
		if names[r.Name] {
			return nil, fmt.Errorf("duplicate rule %q", r.Name)
		}
		names[r.Name] = true

		if _, ok := g.index[r.LHS]; !ok {
			g.index[r.LHS] = len(g.nonterminals)
			g.nonterminals = append(g.nonterminals, r.LHS)
		}
		g.byLHS[r.LHS] = append(g.byLHS[r.LHS], r)
	}

	if _, ok := g.index[g.start]; !ok {
		return nil, fmt.Errorf("start symbol %s has no rules", g.start)
	}
	for _, r := range rules {
		for _, sym := range r.RHS {
			if sym.IsTerminal() {
				continue
			}
			if _, ok := g.index[sym]; !ok {
				return nil, fmt.Errorf("rule %q: nonterminal %s is never defined", r.Name, sym)
			}
		}
	}

	g.computeFirst()
	g.computeFollow()
	return g, nil
}

// Start returns the start symbol.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Rules returns every rule, in definition order.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// Nonterminals returns every nonterminal, in order of first definition.
func (g *Grammar) Nonterminals() []Symbol {
	return g.nonterminals
}

// RulesFor returns the rules whose left-hand side is nt.
func (g *Grammar) RulesFor(nt Symbol) []*Rule {
	return g.byLHS[nt]
}

// Rule returns the rule with the given name, or nil.
func (g *Grammar) Rule(name string) *Rule {
	for _, r := range g.rules {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// First returns FIRST of a sequence of symbols: the terminals that can begin
// a string derived from it, plus ε if the whole sequence is nullable.
//
// FIRST of the empty sequence is {ε}.
func (g *Grammar) First(symbols ...Symbol) Set {
	var out Set
	for _, sym := range symbols {
		f := g.firstOf(sym)
		out |= f.Terminals()
		if !f.Nullable() {
			return out
		}
	}
	return out | Epsilon
}

// Follow returns FOLLOW of a nonterminal: the terminals that can appear
// immediately after it in a sentential form.
//
// FOLLOW of the start symbol always contains the end-of-statement and
// end-of-input markers.
func (g *Grammar) Follow(nt Symbol) Set {
	return g.follow[nt]
}

func (g *Grammar) firstOf(sym Symbol) Set {
	if sym.IsTerminal() {
		return SetOf(sym.Kind)
	}
	return g.first[sym]
}

// computeFirst iterates to a fixed point.
func (g *Grammar) computeFirst() {
	g.first = make(map[Symbol]Set, len(g.nonterminals))
	for changed := true; changed; {
		changed = false
		for _, r := range g.rules {
			prev := g.first[r.LHS]
			next := prev | g.First(r.RHS...)
			if next != prev {
				g.first[r.LHS] = next
				changed = true
			}
		}
	}
}

// computeFollow iterates to a fixed point. Must run after computeFirst.
func (g *Grammar) computeFollow() {
	g.follow = make(map[Symbol]Set, len(g.nonterminals))
	g.follow[g.start] = SetOf(token.EOS, token.EOF)
	for changed := true; changed; {
		changed = false
		for _, r := range g.rules {
			for i, sym := range r.RHS {
				if sym.IsTerminal() {
					continue
				}

				prev := g.follow[sym]
				rest := g.First(r.RHS[i+1:]...)
				next := prev | rest.Terminals()
				if rest.Nullable() {
					next |= g.follow[r.LHS]
				}
				if next != prev {
					g.follow[sym] = next
					changed = true
				}
			}
		}
	}
}
