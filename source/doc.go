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

// Package source provides the book-keeping for input text: files, positions,
// and spans.
//
// The lexer does not require a [File]: input may be an arbitrary sequence of
// runes, in which case the lexer tracks [Pos] values itself and spans carry a
// nil file. When a file is present, diagnostics can show source snippets.
package source
