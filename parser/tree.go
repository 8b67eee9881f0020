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
	"fmt"
	"iter"
	"strings"

	"github.com/bufbuild/exprc/grammar"
	"github.com/bufbuild/exprc/source"
	"github.com/bufbuild/exprc/token"
)

// Node is a node in a parse tree: either a [*Terminal] or a [*NonTerminal].
type Node interface {
	source.Spanner

	isNode()
}

// Terminal is a leaf of the parse tree: a single matched token.
type Terminal struct {
	Token token.Token
}

// NonTerminal is an interior node of the parse tree, recording which rule
// expanded it.
//
// Children correspond one-to-one with Rule.RHS; an ε-rule has no children.
type NonTerminal struct {
	Rule     *grammar.Rule
	Children []Node
}

func (*Terminal) isNode()    {}
func (*NonTerminal) isNode() {}

// Span implements [source.Spanner].
func (t *Terminal) Span() source.Span {
	return t.Token.Span()
}

// String implements [fmt.Stringer].
func (t *Terminal) String() string {
	return t.Token.String()
}

// Span implements [source.Spanner].
//
// The span runs from the first token under this node to the last; nodes
// that cover no tokens have the zero span.
func (n *NonTerminal) Span() source.Span {
	var first, last *Terminal
	for t := range n.Terminals() {
		if first == nil {
			first = t
		}
		last = t
	}
	if first == nil {
		return source.Span{}
	}
	return source.Join(first, last)
}

// String implements [fmt.Stringer].
func (n *NonTerminal) String() string {
	return n.Rule.Name
}

// Child returns the ith child, or nil if there is no such child.
func (n *NonTerminal) Child(i int) Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Terminals returns every token under this node, in source order.
func (n *NonTerminal) Terminals() iter.Seq[*Terminal] {
	return func(yield func(*Terminal) bool) {
		for node := range Walk(n) {
			if t, ok := node.(*Terminal); ok && !yield(t) {
				return
			}
		}
	}
}

// Walk returns every node of the tree rooted at root, in pre-order.
func Walk(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for node := range walkDepth(root) {
			if !yield(node.Node) {
				return
			}
		}
	}
}

type nodeDepth struct {
	Node
	depth int
}

func walkDepth(root Node) iter.Seq[nodeDepth] {
	return func(yield func(nodeDepth) bool) {
		stack := []nodeDepth{{root, 0}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(top) {
				return
			}

			if nt, ok := top.Node.(*NonTerminal); ok {
				for i := len(nt.Children) - 1; i >= 0; i-- {
					stack = append(stack, nodeDepth{nt.Children[i], top.depth + 1})
				}
			}
		}
	}
}

// Dump renders a parse tree as indented text, one node per line.
func Dump(root Node) string {
	var out strings.Builder
	for node := range walkDepth(root) {
		fmt.Fprintf(&out, "%s%v\n", strings.Repeat("  ", node.depth), node.Node)
	}
	return out.String()
}
