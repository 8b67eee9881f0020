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

import "fmt"

// ExprStart is the start symbol of the built-in grammar.
const ExprStart = "S"

var exprGrammar, exprTable = func() (*Grammar, *Table) {
	rules := make([]*Rule, 0, ruleCount-1)
	for _, id := range RuleIDs() {
		r, err := ParseRule(id.Name())
		if err != nil {
			panic(fmt.Sprintf("grammar: bad built-in rule: %v", err))
		}
		r.ID = id
		rules = append(rules, r)
	}

	g, err := New(ExprStart, rules...)
	if err != nil {
		panic(fmt.Sprintf("grammar: bad built-in grammar: %v", err))
	}
	return g, MustBuild(g)
}()

// Expr returns the built-in expression grammar.
//
// Precedence, loosest first: assignment, ==, the ordering comparisons,
// + and -, * and /, %, unary -, ^, then postfix brackets. Every binary
// operator is left-associative.
func Expr() *Grammar {
	return exprGrammar
}

// ExprTable returns the predictive table for [Expr].
//
// It is built once, when this package is initialized; a conflict there
// aborts the process.
func ExprTable() *Table {
	return exprTable
}
