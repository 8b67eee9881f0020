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
	"iter"

	"github.com/tidwall/btree"

	"github.com/bufbuild/exprc/token"
)

// Table is an LL(1) predictive parsing table: for each nonterminal and each
// lookahead terminal, at most one rule to expand.
//
// A Table is immutable once built and safe for concurrent readers.
type Table struct {
	grammar *Grammar

	// Keyed by nonterminal index and terminal kind; see key.
	entries btree.Map[uint32, *Rule]
}

// Entry is a single filled slot of a [Table].
type Entry struct {
	Nonterminal Symbol
	Terminal    token.Kind
	Rule        *Rule
}

func key(nt int, k token.Kind) uint32 {
	return uint32(nt)<<8 | uint32(uint8(k))
}

// Build constructs the predictive table for g.
//
// For each rule A -> α, the rule is entered at (A, t) for every terminal t in
// FIRST(α); if α is nullable, also for every t in FOLLOW(A). If two distinct
// rules land in the same slot the grammar is not LL(1), and construction
// stops with a [*GrammarError] describing the first such slot.
func Build(g *Grammar) (*Table, error) {
	t := &Table{grammar: g}
	for _, r := range g.Rules() {
		nt := g.index[r.LHS]

		predict := g.First(r.RHS...)
		if predict.Nullable() {
			predict |= g.Follow(r.LHS)
		}

		for _, k := range predict.Kinds() {
			prev, ok := t.entries.Set(key(nt, k), r)
			if ok && prev != r {
				return nil, &GrammarError{
					Nonterminal: r.LHS,
					Terminal:    k,
					Existing:    prev,
					Conflicting: r,
				}
			}
		}
	}
	return t, nil
}

// MustBuild is like [Build], but panics on error.
func MustBuild(g *Grammar) *Table {
	t, err := Build(g)
	if err != nil {
		panic(err)
	}
	return t
}

// Grammar returns the grammar this table was built for.
func (t *Table) Grammar() *Grammar {
	return t.grammar
}

// Len returns the number of filled slots.
func (t *Table) Len() int {
	return t.entries.Len()
}

// Lookup returns the rule to expand nt with when the lookahead is k.
func (t *Table) Lookup(nt Symbol, k token.Kind) (*Rule, bool) {
	idx, ok := t.grammar.index[nt]
	if !ok {
		return nil, false
	}
	return t.entries.Get(key(idx, k))
}

// Expected returns the terminals for which nt has an entry.
func (t *Table) Expected(nt Symbol) Set {
	var out Set
	for e := range t.Row(nt) {
		out = out.With(e.Terminal)
	}
	return out
}

// Row returns the filled slots for nt, in terminal order.
func (t *Table) Row(nt Symbol) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		idx, ok := t.grammar.index[nt]
		if !ok {
			return
		}

		it := t.entries.Iter()
		for more := it.Seek(key(idx, 0)); more; more = it.Next() {
			if int(it.Key()>>8) != idx {
				return
			}
			if !yield(t.entry(it.Key(), it.Value())) {
				return
			}
		}
	}
}

// Entries returns every filled slot, grouped by nonterminal in definition
// order and then by terminal.
func (t *Table) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		t.entries.Scan(func(k uint32, r *Rule) bool {
			return yield(t.entry(k, r))
		})
	}
}

func (t *Table) entry(k uint32, r *Rule) Entry {
	return Entry{
		Nonterminal: t.grammar.nonterminals[k>>8],
		Terminal:    token.Kind(k & 0xff),
		Rule:        r,
	}
}
