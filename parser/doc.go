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

// Package parser is a table-driven LL(1) parser.
//
// The parser consumes a token stream, with layout already removed, and
// produces one parse tree per statement. It keeps an explicit stack of
// pending grammar symbols and never backtracks: at each step the symbol on
// top of the stack and the next token select exactly one action from a
// [grammar.Table].
//
// A statement that fails to parse is reported and skipped up to the next
// end-of-statement marker; parsing then resumes with an empty stack.
package parser
