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

package source_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/exprc/source"
)

func TestFile(t *testing.T) {
	t.Parallel()

	f := source.NewFile("a.expr", "x = 1\nhé + 2\r\n\nlast")
	assert.Equal(t, 4, f.Lines())
	assert.Equal(t, "x = 1", f.Line(1))
	assert.Equal(t, "hé + 2", f.Line(2))
	assert.Empty(t, f.Line(3))
	assert.Equal(t, "last", f.Line(4))
	assert.Empty(t, f.Line(0))
	assert.Empty(t, f.Line(5))

	assert.Equal(t, source.Pos{Offset: 0, Line: 1, Column: 1}, f.Pos(0))
	assert.Equal(t, source.Pos{Offset: 6, Line: 2, Column: 1}, f.Pos(6))
	// é is two bytes but one column.
	assert.Equal(t, source.Pos{Offset: 9, Line: 2, Column: 3}, f.Pos(9))
	assert.Equal(t, "2:3", f.Pos(9).String())

	assert.Equal(t, []rune("x = 1"), slices.Collect(source.NewFile("", "x = 1").Runes()))

	var none *source.File
	assert.Empty(t, none.Path())
	assert.Equal(t, 1, none.Lines())
}

func TestPosAdvance(t *testing.T) {
	t.Parallel()

	var p source.Pos
	assert.True(t, p.IsZero())

	p = p.Advance('a', 1)
	assert.Equal(t, source.Pos{Offset: 1, Line: 1, Column: 2}, p)
	p = p.Advance('é', 2)
	assert.Equal(t, source.Pos{Offset: 3, Line: 1, Column: 3}, p)
	p = p.Advance('\n', 1)
	assert.Equal(t, source.Pos{Offset: 4, Line: 2, Column: 1}, p)
}

func TestSpan(t *testing.T) {
	t.Parallel()

	f := source.NewFile("a.expr", "f[1, 2]\ng[3]")
	callee := f.Span(0, 1)
	args := f.Span(2, 6)
	assert.Equal(t, "f", callee.Text())
	assert.Equal(t, "1, 2", args.Text())
	assert.Equal(t, 4, args.Len())
	assert.Equal(t, "a.expr:1:3", args.String())
	assert.Equal(t, "a.expr:2:1", f.Span(8, 9).String())

	joined := source.Join(args, source.Span{}, nil, callee)
	assert.Equal(t, "f[1, 2", joined.Text())
	assert.True(t, source.Join().IsZero())
	assert.True(t, source.Join(source.Span{}).IsZero())

	assert.Equal(t, "<input>:1:1", source.NewFile("", "x").Span(0, 1).String())
	assert.Empty(t, source.Span{}.Text())
}
