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

// Heads of atoms.
var (
	NumberHead = Symbol{"Number"}
	StringHead = Symbol{"String"}
	SymbolHead = Symbol{"Symbol"}
)

// Operator heads.
var (
	Plus     = Symbol{"Plus"}
	Minus    = Symbol{"Minus"}
	Times    = Symbol{"Times"}
	Divide   = Symbol{"Divide"}
	Mod      = Symbol{"Mod"}
	Power    = Symbol{"Power"}
	Negative = Symbol{"Negative"}

	Equal        = Symbol{"Equal"}
	Greater      = Symbol{"Greater"}
	Less         = Symbol{"Less"}
	GreaterEqual = Symbol{"GreaterEqual"}
	LessEqual    = Symbol{"LessEqual"}
	Inequality   = Symbol{"Inequality"}

	List   = Symbol{"List"}
	Assign = Symbol{"Assign"}
	Part   = Symbol{"Part"}
)

// IsComparison returns whether head is one of the comparison operators that
// can be chained, such as [Less].
func IsComparison(head Symbol) bool {
	switch head {
	case Equal, Greater, Less, GreaterEqual, LessEqual:
		return true
	default:
		return false
	}
}
