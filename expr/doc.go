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

// Package expr is the abstract syntax of the expression language, in
// "FullForm": every expression is either an atom or a head applied to
// arguments.
//
// # Atoms
//
//	Number  1, 2.5
//	String  "text"
//	Symbol  x, Plus, f
//
// # Compounds
//
// A [Compound] is a head applied to a list of arguments, written
// head[arg, arg, ...]. Operators are compounds whose head is one of the
// built-in symbols in this package:
//
//	1 + 2       Plus[1, 2]
//	-x          Negative[x]
//	{1, 2}      List[1, 2]
//	f[x]        f[x]
//	{1, 2}[1]   Part[List[1, 2], 1]
//	x = 1       Assign[x, 1]
//	a < b <= c  Inequality[a, Less, b, LessEqual, c]
//
// Expressions are immutable values. Operations that would grow a compound,
// such as [Compound.Append], return a new value instead.
package expr
