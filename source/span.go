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
	"fmt"
)

// Pos is a position within some input.
//
// Line and Column are 1-indexed; Column counts runes. The zero Pos is not a
// valid position and is used to mean "unknown".
type Pos struct {
	Offset, Line, Column int
}

// IsZero returns whether this is the zero (unknown) position.
func (p Pos) IsZero() bool {
	return p.Line == 0
}

// Advance returns the position immediately after r, assuming r is at p.
func (p Pos) Advance(r rune, size int) Pos {
	if p.IsZero() {
		p = Pos{Line: 1, Column: 1}
	}
	p.Offset += size
	if r == '\n' {
		p.Line++
		p.Column = 1
	} else {
		p.Column++
	}
	return p
}

// String implements [fmt.Stringer].
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Spanner is any type with a [Span].
type Spanner interface {
	// Should return the zero [Span] to indicate that it does not contribute
	// span information.
	Span() Span
}

// Span is a half-open range of input, [Start, End).
//
// File may be nil when the input did not come from a [File]; in that case
// the positions are still meaningful but no source text is available.
type Span struct {
	File       *File
	Start, End Pos
}

// IsZero returns whether or not this is the zero span.
func (s Span) IsZero() bool {
	return s.Start.IsZero()
}

// Len returns the length of this span, in bytes.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Text returns the text corresponding to this span, if the file is known.
func (s Span) Text() string {
	text := s.File.Text()
	if s.IsZero() || s.End.Offset > len(text) {
		return ""
	}
	return text[s.Start.Offset:s.End.Offset]
}

// Path returns the path of the file this span is in.
func (s Span) Path() string {
	return s.File.Path()
}

// Span implements [Spanner].
func (s Span) Span() Span {
	return s
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	path := s.Path()
	if path == "" {
		path = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d", path, s.Start.Line, s.Start.Column)
}

// Join returns the smallest span that contains all of the given spans.
//
// Zero spans are ignored. If every span is zero, returns the zero span.
func Join(spans ...Spanner) Span {
	var out Span
	for _, s := range spans {
		if s == nil {
			continue
		}
		span := s.Span()
		if span.IsZero() {
			continue
		}
		if out.IsZero() {
			out = span
			continue
		}
		if span.Start.Offset < out.Start.Offset {
			out.Start = span.Start
		}
		if span.End.Offset > out.End.Offset {
			out.End = span.End
		}
	}
	return out
}
