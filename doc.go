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

// Package exprc is the front end of an expression-language interpreter.
//
// Source text goes through a pipeline of lazy stages, each pulling from the
// one before it:
//
//	characters -> lexer -> tokens -> parser -> parse trees -> translator -> expressions
//
// The lexer is package lexer, the LL(1) parser and its grammar are packages
// parser and grammar, and the translator from parse trees to [expr.Expr]
// values is package translate. [Frontend] wires them together.
//
// Errors are per statement: a statement that fails to lex, parse, or
// translate is reported, and the pipeline carries on with the next one.
// Diagnostics are collected into a [report.Report], which can be rendered
// for humans with a [report.Renderer].
package exprc
