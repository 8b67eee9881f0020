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
	"math/bits"
	"strings"

	"github.com/bufbuild/exprc/token"
)

// Symbol is a grammar symbol: a terminal, which matches exactly one
// [token.Kind], or a nonterminal, which is expanded by rules.
//
// Symbols are comparable and may be used as map keys.
type Symbol struct {
	Name string

	// The kind a terminal matches; [token.Unrecognized] for nonterminals.
	Kind token.Kind
}

// Terminal returns the terminal symbol for a token kind.
func Terminal(k token.Kind) Symbol {
	return Symbol{Name: k.Terminal(), Kind: k}
}

// Nonterminal returns the nonterminal symbol with the given name.
func Nonterminal(name string) Symbol {
	return Symbol{Name: name}
}

// IsTerminal returns whether this is a terminal.
func (s Symbol) IsTerminal() bool {
	return s.Kind != token.Unrecognized
}

// String implements [fmt.Stringer].
func (s Symbol) String() string {
	return s.Name
}

// epsilon is the bit of a [Set] that marks nullability.
const epsilon = 63

// Set is a set of terminals, plus a marker for ε: the ability to derive the
// empty string.
//
// The zero Set is empty.
type Set uint64

// Epsilon is the set containing only ε.
const Epsilon Set = 1 << epsilon

// SetOf returns the set containing the given kinds.
func SetOf(kinds ...token.Kind) Set {
	var s Set
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

// Has returns whether k is in this set.
func (s Set) Has(k token.Kind) bool {
	return s&(1<<uint(k)) != 0
}

// Nullable returns whether this set contains ε.
func (s Set) Nullable() bool {
	return s&Epsilon != 0
}

// With returns this set with k added.
func (s Set) With(k token.Kind) Set {
	return s | 1<<uint(k)
}

// Terminals returns this set without ε.
func (s Set) Terminals() Set {
	return s &^ Epsilon
}

// Len returns the number of terminals in this set, not counting ε.
func (s Set) Len() int {
	return bits.OnesCount64(uint64(s.Terminals()))
}

// Kinds returns the terminals in this set, in ascending order.
func (s Set) Kinds() []token.Kind {
	var out []token.Kind
	for t := s.Terminals(); t != 0; t &= t - 1 {
		out = append(out, token.Kind(bits.TrailingZeros64(uint64(t))))
	}
	return out
}

// String implements [fmt.Stringer].
func (s Set) String() string {
	var names []string
	for _, k := range s.Kinds() {
		names = append(names, k.Terminal())
	}
	if s.Nullable() {
		names = append(names, "ε")
	}
	return "{" + strings.Join(names, ", ") + "}"
}
