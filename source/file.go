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

package source

import (
	"iter"
	"slices"
	"strings"
	"sync"
)

// File is a named piece of source text.
//
// Files are immutable once created. A nil *File behaves like an empty file
// with the path name "".
type File struct {
	path, text string

	once sync.Once
	// The byte offset of the start of each line. lineIndex[0] is always 0.
	lineIndex []int
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's path. It does not need to be a real filesystem
// path.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Runes returns an iterator over the runes of this file.
func (f *File) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range f.Text() {
			if !yield(r) {
				return
			}
		}
	}
}

// Lines returns the number of lines in this file. An empty file has one line.
func (f *File) Lines() int {
	return len(f.lines())
}

// Line returns the given 1-indexed line, without its trailing newline.
//
// Returns "" for out-of-range lines.
func (f *File) Line(line int) string {
	lines := f.lines()
	if line < 1 || line > len(lines) {
		return ""
	}

	start := lines[line-1]
	end := len(f.Text())
	if line < len(lines) {
		end = lines[line]
	}
	return strings.TrimRight(f.Text()[start:end], "\r\n")
}

// Pos converts a byte offset into a full position.
//
// This operation is O(log n).
func (f *File) Pos(offset int) Pos {
	if f == nil || offset <= 0 {
		return Pos{Offset: 0, Line: 1, Column: 1}
	}
	offset = min(offset, len(f.Text()))

	lines := f.lines()
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	column := 1
	for range f.Text()[lines[line]:offset] {
		column++
	}
	return Pos{Offset: offset, Line: line + 1, Column: column}
}

// Span is a shorthand for creating a new Span from byte offsets.
func (f *File) Span(start, end int) Span {
	return Span{File: f, Start: f.Pos(start), End: f.Pos(end)}
}

func (f *File) lines() []int {
	if f == nil {
		return []int{0}
	}

	f.once.Do(func() {
		f.lineIndex = append(f.lineIndex, 0)
		text := f.text
		base := 0
		for {
			nl := strings.IndexByte(text, '\n')
			if nl == -1 {
				break
			}
			base += nl + 1
			text = text[nl+1:]
			f.lineIndex = append(f.lineIndex, base)
		}
	})
	return f.lineIndex
}
