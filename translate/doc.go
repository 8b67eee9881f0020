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

// Package translate turns parse trees into [expr.Expr] values by
// syntax-directed translation.
//
// The grammar factors left-recursive operators into right-recursive tails,
// such as E -> T E' and E' -> '+' T E' | ε, so that it can be parsed LL(1).
// Translation folds those tails back into left-associative trees: each rule
// of the grammar has one reduction procedure, which combines the values its
// children leave on a value stack.
//
// A few shapes are resolved after reduction by a small rewrite step: a
// bracket suffix is either a call or a Part index depending on what it is
// applied to, and chains of comparisons are flattened.
package translate
