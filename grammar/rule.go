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
	"strings"

	"github.com/bufbuild/exprc/token"
)

// Rule is a production rule, LHS -> RHS.
//
// Rules are identified by their name, which is the rule written out, e.g.
// "E' -> '+' T E'". An empty RHS is an ε-rule.
type Rule struct {
	// The identity of this rule within the built-in grammar; [RuleUnknown]
	// for rules of other grammars.
	ID RuleID

	Name string
	LHS  Symbol
	RHS  []Symbol
}

// IsEpsilon returns whether this is an ε-rule.
func (r *Rule) IsEpsilon() bool {
	return len(r.RHS) == 0
}

// String implements [fmt.Stringer].
func (r *Rule) String() string {
	return r.Name
}

// ParseRule parses a rule from its name.
//
// The name has the form "LHS -> sym sym ...", with symbols separated by
// spaces. A symbol that names a token kind (see [token.Lookup]; quotes are
// optional) is a terminal; "ε" alone denotes the empty sequence; anything
// else is a nonterminal.
func ParseRule(name string) (*Rule, error) {
	lhs, rhs, ok := strings.Cut(name, "->")
	if !ok {
		return nil, fmt.Errorf("rule %q: missing ->", name)
	}

	lhs = strings.TrimSpace(lhs)
	if lhs == "" || strings.ContainsAny(lhs, " \t") {
		return nil, fmt.Errorf("rule %q: left-hand side must be a single nonterminal", name)
	}
	if _, ok := token.Lookup(lhs); ok {
		return nil, fmt.Errorf("rule %q: left-hand side %q is a terminal", name, lhs)
	}

	rule := &Rule{Name: name, LHS: Nonterminal(lhs)}
	fields := strings.Fields(rhs)
	if len(fields) == 1 && fields[0] == "ε" {
		return rule, nil
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("rule %q: empty right-hand side; write ε", name)
	}

	for _, field := range fields {
		if field == "ε" {
			return nil, fmt.Errorf("rule %q: ε must appear alone", name)
		}
		if k, ok := token.Lookup(field); ok {
			rule.RHS = append(rule.RHS, Terminal(k))
		} else {
			rule.RHS = append(rule.RHS, Nonterminal(field))
		}
	}
	return rule, nil
}
