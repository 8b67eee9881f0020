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

package translate

import "github.com/bufbuild/exprc/expr"

// group is a run of sibling expressions that a reduction has produced and
// that may need to be reshaped before being pushed.
type group []expr.Expr

// option is one way of reshaping a group.
type option struct {
	name    string
	matches func(group) bool
	rewrite func(group) expr.Expr
}

// selector is an ordered list of options. The first option whose shape
// matches a group is the one applied.
type selector []option

// choose returns the first option that matches g.
func (s selector) choose(g group) (option, bool) {
	for _, opt := range s {
		if opt.matches(g) {
			return opt, true
		}
	}
	return option{}, false
}

// bracket reshapes callee[args...], given as the group (callee, args...).
var bracket = selector{
	{
		name:    "bare call",
		matches: func(g group) bool { return len(g) == 1 },
		rewrite: func(g group) expr.Expr { return expr.Call(g[0]) },
	},
	{
		name:    "part",
		matches: func(g group) bool { return isIndexable(g[0]) },
		rewrite: func(g group) expr.Expr { return expr.Call(expr.Part, g...) },
	},
	{
		name:    "call",
		matches: func(group) bool { return true },
		rewrite: func(g group) expr.Expr { return expr.Call(g[0], g[1:]...) },
	},
}

// isIndexable returns whether brackets after e index into it rather than
// call it.
func isIndexable(e expr.Expr) bool {
	if _, ok := e.(expr.String); ok {
		return true
	}
	return expr.Is(e, expr.List) || expr.Is(e, expr.Part)
}

// ordering reshapes a comparison among >, <, >= and <=, given as the group
// (left, op, right).
var ordering = selector{
	flatten,
	{
		name: "inequality",
		matches: func(g group) bool {
			return expr.Is(g[0], expr.Inequality) || isOrdering(g[0])
		},
		rewrite: func(g group) expr.Expr {
			left, _ := g[0].(expr.Compound)
			op := g[1]
			if !expr.Is(left, expr.Inequality) {
				left = inequality(left)
			}
			return left.Append(op, g[2])
		},
	},
	binary,
}

// equality reshapes an == comparison, given as the group (left, op, right).
var equality = selector{flatten, binary}

// flatten merges a comparison into the same comparison on its left:
// Less[a, b] < c is Less[a, b, c].
var flatten = option{
	name: "flatten",
	matches: func(g group) bool {
		op, ok := g[1].(expr.Symbol)
		return ok && expr.Is(g[0], op)
	},
	rewrite: func(g group) expr.Expr {
		left, _ := g[0].(expr.Compound)
		return left.Append(g[2])
	},
}

// binary is the fallback: op[left, right].
var binary = option{
	name:    "binary",
	matches: func(group) bool { return true },
	rewrite: func(g group) expr.Expr { return expr.Call(g[1], g[0], g[2]) },
}

func isOrdering(e expr.Expr) bool {
	c, ok := e.(expr.Compound)
	if !ok {
		return false
	}
	head, ok := c.Head.(expr.Symbol)
	return ok && head != expr.Equal && expr.IsComparison(head)
}

// inequality converts op[a, b, c] into Inequality[a, op, b, op, c].
func inequality(c expr.Compound) expr.Compound {
	args := make([]expr.Expr, 0, 2*len(c.Args))
	for i, arg := range c.Args {
		if i > 0 {
			args = append(args, c.Head)
		}
		args = append(args, arg)
	}
	return expr.Call(expr.Inequality, args...)
}
