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

package slicesx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/exprc/internal/ext/slicesx"
)

func TestGet(t *testing.T) {
	t.Parallel()

	s := []int{1, 2, 3}
	v, ok := slicesx.Get(s, 1)
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = slicesx.Get(s, 3)
	assert.False(t, ok)
	_, ok = slicesx.Get(s, -1)
	assert.False(t, ok)

	v, ok = slicesx.Last(s)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = slicesx.Last([]int(nil))
	assert.False(t, ok)
}

func TestStack(t *testing.T) {
	t.Parallel()

	var s []string
	slicesx.PushReversed(&s, "a", "b", "c")
	assert.Equal(t, []string{"c", "b", "a"}, s)

	v, ok := slicesx.Pop(&s)
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, []string{"c", "b"}, s)
	assert.Empty(t, s[:cap(s)][2], "popped slot is cleared")

	top, ok := slicesx.PopN(&s, 2)
	assert.True(t, ok)
	assert.Equal(t, []string{"c", "b"}, top)
	assert.Empty(t, s)

	_, ok = slicesx.PopN(&s, 1)
	assert.False(t, ok)
	_, ok = slicesx.Pop(&s)
	assert.False(t, ok)

	top, ok = slicesx.PopN(&s, 0)
	assert.True(t, ok)
	assert.Empty(t, top)
}
