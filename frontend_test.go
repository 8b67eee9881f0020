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

package exprc_test

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/exprc"
	"github.com/bufbuild/exprc/expr"
	"github.com/bufbuild/exprc/lexer"
	"github.com/bufbuild/exprc/parser"
	"github.com/bufbuild/exprc/report"
	"github.com/bufbuild/exprc/source"
)

func fullForms(exprs []expr.Expr) []string {
	out := make([]string, len(exprs))
	for i, e := range exprs {
		out[i] = e.String()
	}
	return out
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.expr", "x = 1; f[")
	r := new(report.Report)

	var got []expr.Expr
	var errs []error
	for e, err := range new(exprc.Frontend).Translate(file, r) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = append(got, e)
	}

	assert.Equal(t, []string{"Assign[x, 1]"}, fullForms(got))
	require.Len(t, errs, 1)
	var se *parser.SyntaxError
	assert.ErrorAs(t, errs[0], &se)

	require.Len(t, r.Diagnostics, 1)
	assert.True(t, r.Diagnostics[0].Is(parser.TagSyntaxError))
	text, errCount, _ := report.Renderer{Compact: true}.RenderString(r)
	assert.Equal(t, "test.expr:1:10: error: unexpected end of input\n", text)
	assert.Equal(t, 1, errCount)
}

func TestTranslateBadEscape(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.expr", `"\q\"x"; 1; 2`)
	r := new(report.Report)

	var got []expr.Expr
	for e, err := range new(exprc.Frontend).Translate(file, r) {
		if err == nil {
			got = append(got, e)
		}
	}
	assert.Equal(t, []string{"1", "2"}, fullForms(got))
	assert.Equal(t, []report.Tag{lexer.TagLexicalError}, r.Tags())
}

func TestTranslateNoReport(t *testing.T) {
	t.Parallel()

	var n int
	for _, err := range new(exprc.Frontend).Translate(source.NewFile("", "1 +; 2"), nil) {
		n++
		if n == 1 {
			assert.Error(t, err)
		}
	}
	assert.Equal(t, 2, n)
}

func TestTranslateAll(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"a.expr": "1 + 2; {1, 2}[1]",
		"b.expr": "f[x] = x ^ 2",
		"c.expr": "1 $ 2; ok",
	}
	f := &exprc.Frontend{
		MaxParallelism: 2,
		Resolver: exprc.ResolverFunc(func(path string) (*source.File, error) {
			text, ok := files[path]
			if !ok {
				return nil, fmt.Errorf("%s: %w", path, fs.ErrNotExist)
			}
			return source.NewFile(path, text), nil
		}),
	}

	results, err := f.TranslateAll(context.Background(), "c.expr", "a.expr", "b.expr")
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "c.expr", results[0].Path)
	assert.Equal(t, "c.expr", results[0].File.Path())
	assert.Equal(t, []string{"ok"}, fullForms(results[0].Exprs))
	assert.Equal(t, 1, results[0].Report.ErrorCount())

	assert.Equal(t, []string{"Plus[1, 2]", "Part[List[1, 2], 1]"}, fullForms(results[1].Exprs))
	assert.False(t, results[1].Report.HasErrors())

	assert.Equal(t, []string{"Assign[f[x], Power[x, 2]]"}, fullForms(results[2].Exprs))

	// A missing file fails only its own result.
	results, err = f.TranslateAll(context.Background(), "a.expr", "missing.expr")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.False(t, results[0].Report.HasErrors())
	assert.Equal(t, "missing.expr", results[1].Path)
	assert.Nil(t, results[1].File)
	assert.Empty(t, results[1].Exprs)
	require.Len(t, results[1].Report.Diagnostics, 1)
	assert.ErrorIs(t, results[1].Report.Diagnostics[0].Err(), fs.ErrNotExist)
	text, _, _ := report.Renderer{Compact: true}.RenderString(results[1].Report)
	assert.Equal(t, "missing.expr: error: missing.expr: file does not exist\n", text)

	results, err = f.TranslateAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestTranslateAllDiagnostics(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"empty.expr": "// nothing here\n;;",
		"two.expr":   "1; 2 +",
	}
	f := &exprc.Frontend{
		Resolver: exprc.ResolverFunc(func(path string) (*source.File, error) {
			return source.NewFile(path, files[path]), nil
		}),
	}

	results, err := f.TranslateAll(context.Background(), "empty.expr", "two.expr")
	require.NoError(t, err)
	require.Len(t, results, 2)

	text, errs, warns := report.Renderer{Compact: true, ShowRemarks: true}.RenderString(results[0].Report)
	assert.Equal(t, ""+
		"empty.expr: warning: file contains no statements\n"+
		"empty.expr: remark: translated 0 of 0 statements\n",
		text)
	assert.Equal(t, 0, errs)
	assert.Equal(t, 1, warns)

	text, _, _ = report.Renderer{Compact: true, ShowRemarks: true}.RenderString(results[1].Report)
	assert.Equal(t, ""+
		"two.expr:1:7: error: unexpected end of input\n"+
		"two.expr: remark: translated 1 of 2 statements\n",
		text)

	// Remarks are hidden by default.
	text, _, _ = report.Renderer{Compact: true}.RenderString(results[0].Report)
	assert.Equal(t, "empty.expr: warning: file contains no statements\n", text)
}

func TestTranslateAllCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := new(exprc.Frontend).TranslateAll(ctx, "does-not-matter.expr")
	require.ErrorIs(t, err, context.Canceled)
}

func TestSourceResolver(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "lib"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib", "a.expr"), []byte("a"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.expr"), []byte("b"), 0o600))

	r := &exprc.SourceResolver{SearchPaths: []string{dir, filepath.Join(dir, "lib")}}
	file, err := r.FindFileByPath("a.expr")
	require.NoError(t, err)
	assert.Equal(t, "a.expr", file.Path())
	assert.Equal(t, "a", file.Text())

	file, err = r.FindFileByPath("b.expr")
	require.NoError(t, err)
	assert.Equal(t, "b", file.Text())

	_, err = r.FindFileByPath("c.expr")
	require.ErrorIs(t, err, fs.ErrNotExist)

	// Without search paths, paths are used as-is.
	file, err = new(exprc.SourceResolver).FindFileByPath(filepath.Join(dir, "b.expr"))
	require.NoError(t, err)
	assert.Equal(t, "b", file.Text())

	composite := exprc.CompositeResolver{
		exprc.ResolverFunc(func(string) (*source.File, error) { return nil, fs.ErrPermission }),
		r,
	}
	file, err = composite.FindFileByPath("a.expr")
	require.NoError(t, err)
	assert.Equal(t, "a", file.Text())
	_, err = composite.FindFileByPath("c.expr")
	require.ErrorIs(t, err, fs.ErrPermission)
	_, err = exprc.CompositeResolver{}.FindFileByPath("a.expr")
	require.ErrorIs(t, err, fs.ErrNotExist)

	custom := &exprc.SourceResolver{Accessor: func(path string) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("from " + path)), nil
	}}
	file, err = custom.FindFileByPath("x")
	require.NoError(t, err)
	assert.Equal(t, "from x", file.Text())
}
