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

package expr

import (
	"strconv"
	"strings"

	"github.com/bufbuild/exprc/internal/ext/slicesx"
)

// Expr is an expression: one of [Number], [String], [Symbol], or
// [Compound].
type Expr interface {
	// String returns the FullForm of this expression.
	String() string

	// Equal returns whether this expression is structurally identical to
	// another.
	Equal(Expr) bool

	isExpr()
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// String is a string literal, with escapes already decoded.
type String struct {
	Value string
}

// Symbol is a name.
type Symbol struct {
	Name string
}

// Compound is a head applied to arguments.
type Compound struct {
	Head Expr
	Args []Expr
}

func (Number) isExpr()   {}
func (String) isExpr()   {}
func (Symbol) isExpr()   {}
func (Compound) isExpr() {}

// Head returns the head of an expression. For a compound this is its Head
// field; atoms have the symbol naming their type as their head.
func Head(e Expr) Expr {
	switch e := e.(type) {
	case Number:
		return NumberHead
	case String:
		return StringHead
	case Symbol:
		return SymbolHead
	case Compound:
		return e.Head
	default:
		return nil
	}
}

// Is returns whether e is a compound with the given head.
func Is(e Expr, head Symbol) bool {
	c, ok := e.(Compound)
	if !ok {
		return false
	}
	h, ok := c.Head.(Symbol)
	return ok && h == head
}

// Call builds a compound.
func Call(head Expr, args ...Expr) Compound {
	return Compound{Head: head, Args: args}
}

// Append returns a copy of c with args added to the end. c itself is not
// modified.
func (c Compound) Append(args ...Expr) Compound {
	out := make([]Expr, 0, len(c.Args)+len(args))
	out = append(out, c.Args...)
	out = append(out, args...)
	return Compound{Head: c.Head, Args: out}
}

// Len returns the number of arguments.
func (c Compound) Len() int {
	return len(c.Args)
}

// Arg returns the ith argument, or nil if there is none.
func (c Compound) Arg(i int) Expr {
	arg, _ := slicesx.Get(c.Args, i)
	return arg
}

// String implements [Expr].
func (n Number) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// String implements [Expr].
func (s String) String() string {
	return strconv.Quote(s.Value)
}

// String implements [Expr].
func (s Symbol) String() string {
	return s.Name
}

// String implements [Expr].
func (c Compound) String() string {
	return fullForm(c)
}

// Equal implements [Expr].
func (n Number) Equal(e Expr) bool {
	m, ok := e.(Number)
	return ok && n == m
}

// Equal implements [Expr].
func (s String) Equal(e Expr) bool {
	t, ok := e.(String)
	return ok && s == t
}

// Equal implements [Expr].
func (s Symbol) Equal(e Expr) bool {
	t, ok := e.(Symbol)
	return ok && s == t
}

// Equal implements [Expr].
func (c Compound) Equal(e Expr) bool {
	return equal(c, e)
}

// equal compares two trees with an explicit stack, so that deeply nested
// expressions cannot overflow the goroutine stack.
func equal(a, b Expr) bool {
	type pair struct{ a, b Expr }
	stack := []pair{{a, b}}
	for {
		top, ok := slicesx.Pop(&stack)
		if !ok {
			return true
		}

		ca, ok := top.a.(Compound)
		if !ok {
			if top.a == nil || top.b == nil {
				if (top.a == nil) != (top.b == nil) {
					return false
				}
				continue
			}
			if !top.a.Equal(top.b) {
				return false
			}
			continue
		}

		cb, ok := top.b.(Compound)
		if !ok || len(ca.Args) != len(cb.Args) {
			return false
		}
		stack = append(stack, pair{ca.Head, cb.Head})
		for i := range ca.Args {
			stack = append(stack, pair{ca.Args[i], cb.Args[i]})
		}
	}
}

// fullForm prints an expression with an explicit stack of pending pieces:
// either an expression to print or literal punctuation.
func fullForm(e Expr) string {
	type piece struct {
		expr Expr
		text string
	}

	var out strings.Builder
	stack := []piece{{expr: e}}
	for {
		top, ok := slicesx.Pop(&stack)
		if !ok {
			return out.String()
		}

		switch e := top.expr.(type) {
		case nil:
			if top.text == "" {
				out.WriteString("Null")
			}
			out.WriteString(top.text)
		case Compound:
			stack = append(stack, piece{text: "]"})
			for i := len(e.Args) - 1; i >= 0; i-- {
				stack = append(stack, piece{expr: e.Args[i]})
				if i > 0 {
					stack = append(stack, piece{text: ", "})
				}
			}
			stack = append(stack, piece{text: "["}, piece{expr: e.Head})
		default:
			out.WriteString(e.String())
		}
	}
}
