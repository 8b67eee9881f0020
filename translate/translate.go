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

import (
	"errors"
	"fmt"
	"iter"
	"strconv"

	"github.com/bufbuild/exprc/expr"
	"github.com/bufbuild/exprc/grammar"
	"github.com/bufbuild/exprc/internal/ext/slicesx"
	"github.com/bufbuild/exprc/lexer"
	"github.com/bufbuild/exprc/parser"
)

// Translator translates parse trees of the built-in grammar, see
// [grammar.Expr]. The zero value is ready to use, and a Translator may be
// used from several goroutines at once.
type Translator struct{}

// Translate translates the parse tree of a single statement.
//
// The tree is walked with explicit stacks, so arbitrarily deep nesting does
// not grow the goroutine stack.
func (t *Translator) Translate(tree *parser.NonTerminal) (result expr.Expr, err error) {
	defer func() {
		if panicked := recover(); panicked != nil {
			result = nil
			err = &InternalError{Node: tree, Reason: fmt.Sprintf("panic: %v", panicked)}
		}
	}()

	tr := &translator{root: tree}
	return tr.run()
}

// Stream translates every tree in a stream. Errors, whether from upstream or
// from translation, are yielded in place of the failing statement.
func (t *Translator) Stream(trees iter.Seq2[*parser.NonTerminal, error]) iter.Seq2[expr.Expr, error] {
	return func(yield func(expr.Expr, error) bool) {
		for tree, err := range trees {
			var result expr.Expr
			if err == nil {
				result, err = t.Translate(tree)
			}
			if !yield(result, err) {
				return
			}
		}
	}
}

// op is a kind of work item.
type op int8

const (
	visit    op = iota // Run the node's reduction procedure.
	reduce             // Combine the top two values with head.
	appendTo           // Append the top value to the compound below it.
	negate             // Wrap the top value in Negative.
	index              // Reshape the bracket suffix on top of the stack.
)

type step struct {
	op   op
	node parser.Node
	head expr.Symbol
}

// translator is the book-keeping for translating a single statement.
type translator struct {
	root   *parser.NonTerminal
	work   []step
	values []expr.Expr
}

func (tr *translator) run() (expr.Expr, error) {
	tr.work = append(tr.work, step{op: visit, node: tr.root})
	for {
		s, ok := slicesx.Pop(&tr.work)
		if !ok {
			break
		}

		var err error
		switch s.op {
		case visit:
			err = tr.visit(s.node)
		case reduce:
			err = tr.reduce(s)
		case appendTo:
			err = tr.append(s)
		case negate:
			var value expr.Expr
			if value, err = tr.pop(s); err == nil {
				tr.push(expr.Call(expr.Negative, value))
			}
		case index:
			err = tr.index(s)
		}
		if err != nil {
			return nil, err
		}
	}

	if len(tr.values) != 1 {
		return nil, &InternalError{
			Node:   tr.root,
			Reason: fmt.Sprintf("statement left %d values, expected 1", len(tr.values)),
		}
	}
	return tr.values[0], nil
}

// then schedules steps to run in the order given, before any step already
// scheduled.
func (tr *translator) then(steps ...step) {
	slicesx.PushReversed(&tr.work, steps...)
}

func (tr *translator) push(e expr.Expr) {
	tr.values = append(tr.values, e)
}

func (tr *translator) pop(s step) (expr.Expr, error) {
	e, ok := slicesx.Pop(&tr.values)
	if !ok {
		return nil, tr.internal(s.node, "value stack underflow")
	}
	return e, nil
}

func (tr *translator) popCompound(s step) (expr.Compound, error) {
	e, err := tr.pop(s)
	if err != nil {
		return expr.Compound{}, err
	}
	c, ok := e.(expr.Compound)
	if !ok {
		return expr.Compound{}, tr.internal(s.node, fmt.Sprintf("expected a compound on the stack, got %v", e))
	}
	return c, nil
}

func (tr *translator) visit(node parser.Node) error {
	n, ok := node.(*parser.NonTerminal)
	switch {
	case node == nil:
		return &InternalError{Node: tr.root, Reason: "missing child node"}
	case !ok:
		return &InternalError{Node: node, Reason: "attempted to translate a terminal"}
	case n.Rule == nil:
		return &InternalError{Node: node, Reason: "node has no rule"}
	}

	proc := procedureFor(n.Rule.ID)
	if proc == nil {
		return tr.internal(n, "no reduction procedure for rule")
	}
	return proc(tr, n)
}

func (tr *translator) reduce(s step) error {
	right, err := tr.pop(s)
	if err != nil {
		return err
	}
	left, err := tr.pop(s)
	if err != nil {
		return err
	}
	return tr.rewrite(s, selectorFor(s.head), group{left, s.head, right})
}

func (tr *translator) append(s step) error {
	item, err := tr.pop(s)
	if err != nil {
		return err
	}
	c, err := tr.popCompound(s)
	if err != nil {
		return err
	}
	tr.push(c.Append(item))
	return nil
}

func (tr *translator) index(s step) error {
	c, err := tr.popCompound(s)
	if err != nil {
		return err
	}
	g := make(group, 0, len(c.Args)+1)
	g = append(g, c.Head)
	g = append(g, c.Args...)
	return tr.rewrite(s, bracket, g)
}

func (tr *translator) rewrite(s step, sel selector, g group) error {
	opt, ok := sel.choose(g)
	if !ok {
		return tr.internal(s.node, fmt.Sprintf("no rewrite applies to %v", []expr.Expr(g)))
	}
	tr.push(opt.rewrite(g))
	return nil
}

func selectorFor(head expr.Symbol) selector {
	switch {
	case head == expr.Equal:
		return equality
	case expr.IsComparison(head):
		return ordering
	default:
		return selector{binary}
	}
}

func (tr *translator) internal(node parser.Node, reason string) *InternalError {
	err := &InternalError{Node: node, Reason: reason}
	if n, ok := node.(*parser.NonTerminal); ok {
		err.Rule = n.Rule
	}
	if node == nil {
		err.Node = tr.root
	}
	return err
}

func (tr *translator) terminal(n *parser.NonTerminal, i int) (*parser.Terminal, error) {
	t, ok := n.Child(i).(*parser.Terminal)
	if !ok {
		return nil, tr.internal(n, fmt.Sprintf("expected a token at child %d", i))
	}
	return t, nil
}

// procedure is the reduction procedure for one rule.
type procedure func(*translator, *parser.NonTerminal) error

// procedureFor returns the reduction procedure for a rule, or nil if it has
// none.
func procedureFor(id grammar.RuleID) procedure {
	switch id {
	case grammar.RuleStatement,
		grammar.RuleComparison,
		grammar.RuleSum,
		grammar.RuleProduct,
		grammar.RuleRemainder,
		grammar.RulePositive,
		grammar.RulePowerChain,
		grammar.RuleFactor:
		return children

	case grammar.RuleAssignEmpty,
		grammar.RuleEqualEmpty,
		grammar.RuleComparisonTail,
		grammar.RuleSumEmpty,
		grammar.RuleProductEmpty,
		grammar.RuleRemainderEmpty,
		grammar.RulePowerEmpty,
		grammar.RuleApplyEmpty,
		grammar.RuleElementsEmpty,
		grammar.RuleMoreEmpty:
		return empty

	case grammar.RuleAssign:
		return assign
	case grammar.RuleEqualChain:
		return tail(expr.Equal)
	case grammar.RuleGreater:
		return tail(expr.Greater)
	case grammar.RuleLess:
		return tail(expr.Less)
	case grammar.RuleGreaterEqual:
		return tail(expr.GreaterEqual)
	case grammar.RuleLessEqual:
		return tail(expr.LessEqual)
	case grammar.RulePlus:
		return tail(expr.Plus)
	case grammar.RuleMinus:
		return tail(expr.Minus)
	case grammar.RuleTimes:
		return tail(expr.Times)
	case grammar.RuleDivide:
		return tail(expr.Divide)
	case grammar.RuleMod:
		return tail(expr.Mod)
	case grammar.RulePower:
		return tail(expr.Power)

	case grammar.RuleNegative:
		return negative
	case grammar.RuleParen:
		return paren
	case grammar.RuleNumber:
		return number
	case grammar.RuleIdent:
		return ident
	case grammar.RuleString:
		return str
	case grammar.RuleList:
		return list
	case grammar.RuleApply:
		return apply
	case grammar.RuleElements:
		return elements(0)
	case grammar.RuleMore:
		return elements(1)

	default:
		return nil
	}
}

// children translates every child in order, leaving their values on the
// stack.
func children(tr *translator, n *parser.NonTerminal) error {
	steps := make([]step, len(n.Children))
	for i, child := range n.Children {
		steps[i] = step{op: visit, node: child}
	}
	tr.then(steps...)
	return nil
}

func empty(*translator, *parser.NonTerminal) error {
	return nil
}

// tail folds one link of an operator tail, X' -> op Y X', into the value
// on top of the stack: left becomes op[left, Y], and folding continues with
// the rest of the tail.
func tail(head expr.Symbol) procedure {
	return func(tr *translator, n *parser.NonTerminal) error {
		tr.then(
			step{op: visit, node: n.Child(1)},
			step{op: reduce, node: n, head: head},
			step{op: visit, node: n.Child(2)},
		)
		return nil
	}
}

// assign handles A -> = S. The assignment is right-associative because S
// itself may end in another assignment.
func assign(tr *translator, n *parser.NonTerminal) error {
	tr.then(
		step{op: visit, node: n.Child(1)},
		step{op: reduce, node: n, head: expr.Assign},
	)
	return nil
}

func negative(tr *translator, n *parser.NonTerminal) error {
	tr.then(
		step{op: visit, node: n.Child(1)},
		step{op: negate, node: n},
	)
	return nil
}

func paren(tr *translator, n *parser.NonTerminal) error {
	tr.then(step{op: visit, node: n.Child(1)})
	return nil
}

func number(tr *translator, n *parser.NonTerminal) error {
	t, err := tr.terminal(n, 0)
	if err != nil {
		return err
	}

	v, err := strconv.ParseFloat(t.Token.Text, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return &TranslationError{At: t.Span(), Literal: t.Token.Text, Err: err}
	}
	tr.push(expr.Number{Value: v})
	return nil
}

func ident(tr *translator, n *parser.NonTerminal) error {
	t, err := tr.terminal(n, 0)
	if err != nil {
		return err
	}
	tr.push(expr.Symbol{Name: t.Token.Text})
	return nil
}

func str(tr *translator, n *parser.NonTerminal) error {
	t, err := tr.terminal(n, 0)
	if err != nil {
		return err
	}

	v, err := lexer.Unquote(t.Token.Text)
	if err != nil {
		return &TranslationError{At: t.Span(), Literal: t.Token.Text, Err: err}
	}
	tr.push(expr.String{Value: v})
	return nil
}

// list handles F' -> { L }: an empty List that the elements of L are then
// appended to.
func list(tr *translator, n *parser.NonTerminal) error {
	tr.push(expr.Call(expr.List))
	tr.then(step{op: visit, node: n.Child(1)})
	return nil
}

// apply handles P -> [ L ] P. The value on top of the stack is the callee;
// it becomes the head of a compound that L's elements are appended to, and
// the result is then reshaped by the bracket rewrite.
func apply(tr *translator, n *parser.NonTerminal) error {
	callee, err := tr.pop(step{node: n})
	if err != nil {
		return err
	}
	tr.push(expr.Call(callee))
	tr.then(
		step{op: visit, node: n.Child(1)},
		step{op: index, node: n},
		step{op: visit, node: n.Child(3)},
	)
	return nil
}

// elements handles L -> S L' and L' -> , S L', appending S to the compound
// on top of the stack. first is the index of S.
func elements(first int) procedure {
	return func(tr *translator, n *parser.NonTerminal) error {
		tr.then(
			step{op: visit, node: n.Child(first)},
			step{op: appendTo, node: n},
			step{op: visit, node: n.Child(first + 1)},
		)
		return nil
	}
}
