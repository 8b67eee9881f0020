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

package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/exprc/cmd/exprc/cmd"
	"github.com/bufbuild/exprc/report"
)

// run executes exprc with args and stdin, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := cmd.NewRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := run(t, "1 + 2; f[x]", "translate", "-")
	require.NoError(t, err)
	assert.Equal(t, "Plus[1, 2]\nf[x]\n", stdout)
	assert.Empty(t, stderr)

	stdout, stderr, err = run(t, "ok; 1 +", "translate", "--compact", "-")
	var reported *report.AsError
	require.ErrorAs(t, err, &reported)
	assert.Equal(t, 1, reported.Report.ErrorCount())
	assert.Equal(t, "ok\n", stdout)
	assert.Equal(t, "<stdin>:1:8: error: unexpected end of input\n", stderr)
}

func TestTranslateStdinTwice(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := run(t, "1", "translate", "--compact", "-", "-")
	require.NoError(t, err)
	assert.Equal(t, "-: 1\n-: 1\n", stdout)
	assert.Equal(t, "warning: standard input is named 2 times; it is read once\n", stderr)

	config := filepath.Join(t.TempDir(), "strict.toml")
	require.NoError(t, os.WriteFile(config, []byte("[render]\nwarnings_are_errors = true\n"), 0o600))
	_, stderr, err = run(t, "1", "translate", "--compact", "--config", config, "-", "-")
	require.Error(t, err)
	assert.Equal(t, "error: standard input is named 2 times; it is read once\n", stderr)
}

func TestTranslateFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.expr"), []byte("{1}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.expr"), []byte("x = 2"), 0o600))

	stdout, _, err := run(t, "", "translate", "-I", dir, "a.expr", "b.expr")
	require.NoError(t, err)
	assert.Equal(t, "a.expr: List[1]\nb.expr: Assign[x, 2]\n", stdout)

	// A missing file is reported, and the others are still translated.
	stdout, stderr, err := run(t, "", "translate", "--compact", "-I", dir, "a.expr", "c.expr")
	require.Error(t, err)
	assert.Equal(t, "a.expr: List[1]\n", stdout)
	assert.True(t, strings.HasPrefix(stderr, "c.expr: error: open "), stderr)
}

func TestLex(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "x=1", "lex", "-")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"1:1     identifier \"x\"\n"+
		"1:2     '='\n"+
		"1:3     number \"1\"\n"+
		"1:4     end of input\n",
		stdout)

	const text = "a  +  b // c\n(* d *) ;"
	stdout, _, err = run(t, text, "lex", "--layout", "--concat", "-")
	require.NoError(t, err)
	assert.Equal(t, text, stdout)

	stdout, _, err = run(t, text, "lex", "--concat", "-")
	require.NoError(t, err)
	assert.Equal(t, "a+b;", stdout)

	_, stderr, err := run(t, "1 $", "lex", "--compact", "-")
	require.Error(t, err)
	assert.Equal(t, "<stdin>:1:3: error: unrecognized character '$'\n", stderr)
}

func TestParse(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "f[]", "parse", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "S -> S' CMP_0 A\n"))
	assert.Contains(t, stdout, "P -> [ L ] P\n")
	assert.Contains(t, stdout, "'['\n")
}

func TestGrammar(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "", "grammar")
	require.NoError(t, err)
	assert.Contains(t, stdout, "E' -> '+' T E'")
	assert.Contains(t, stdout, "table (")

	stdout, stderr, err := run(t, "", "grammar", "--file", "../../../grammar/testdata/suffix_assign.yaml")
	require.Error(t, err)
	assert.Contains(t, stdout, "P -> = S")
	assert.NotContains(t, stdout, "table (")
	assert.Contains(t, stderr, "grammar is not LL(1)")
}

func TestConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.toml")
	require.NoError(t, os.WriteFile(good, []byte("[render]\ncompact = true\n"), 0o600))
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[render]\ncompakt = true\n"), 0o600))

	_, stderr, err := run(t, "1 +", "translate", "--config", good, "-")
	require.Error(t, err)
	assert.Equal(t, "<stdin>:1:4: error: unexpected end of input\n", stderr)

	// Flags win over the file.
	_, stderr, err = run(t, "1 +", "translate", "--config", good, "--compact=false", "-")
	require.Error(t, err)
	assert.Contains(t, stderr, "encountered 1 error")

	_, _, err = run(t, "1", "translate", "--config", bad, "-")
	require.ErrorContains(t, err, "render.compakt")

	remarks := filepath.Join(dir, "remarks.toml")
	require.NoError(t, os.WriteFile(remarks, []byte("[render]\ncompact = true\nshow_remarks = true\n"), 0o600))
	_, stderr, err = run(t, "1; 2", "translate", "--config", remarks, "-")
	require.NoError(t, err)
	assert.Equal(t, "<stdin>: remark: translated 2 of 2 statements\n", stderr)

	cfg, err := cmd.LoadConfig(good)
	require.NoError(t, err)
	assert.True(t, cfg.Renderer().Compact)
}
