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

// Package report provides a robust diagnostics framework: every error the
// front end produces is a [Diagnostic] collected into a [Report], and can be
// rendered for a user with a [Renderer].
//
// Errors that know how to describe themselves implement [Diagnose]; pushing
// them with [Report.Error] gives a [Diagnostic] that carries a message, a
// machine-readable [Tag], source snippets, and notes.
//
// Setting the environment variable EXPRC_DEBUG to a non-empty value other than
// "0" or "false" records a stack trace for every diagnostic, which
// [Renderer.ShowDebug] will print.
package report
