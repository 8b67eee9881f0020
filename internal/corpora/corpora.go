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

// Package corpora runs golden-file tests: each input file in a directory is
// a test case, and its expected outputs live next to it in files with extra
// extensions.
package corpora

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus is a directory of golden-file test cases.
type Corpus struct {
	// The directory to search, relative to the file calling [Corpus.Run].
	Dir string

	// The glob, relative to Dir, that selects input files, e.g. "**/*.expr".
	Inputs string

	// An environment variable holding a glob of test names whose outputs
	// should be rewritten instead of checked.
	RefreshEnv string

	// The outputs each test case produces. A missing output file is the
	// same as an empty one.
	Outputs []Output

	// Test runs one test case and returns one string per element of Outputs.
	Test func(t *testing.T, name, text string) []string
}

// Output is one output of a test case.
type Output struct {
	// The suffix of the output file: for input "a.expr" and extension
	// "stderr", the output is "a.expr.stderr".
	Extension string

	// Compares outputs; defaults to an exact match. Returns "" on a match
	// and a description of the mismatch otherwise.
	Compare func(got, want string) string
}

// Run runs every test case in the corpus as a subtest.
func (c Corpus) Run(t *testing.T) {
	_, caller, _, ok := runtime.Caller(1)
	if !ok {
		t.Fatal("corpora: cannot determine caller's directory")
	}
	root := filepath.Join(filepath.Dir(caller), c.Dir)

	names, err := doublestar.Glob(os.DirFS(root), c.Inputs, doublestar.WithFilesOnly())
	if err != nil {
		t.Fatalf("corpora: listing %q: %v", root, err)
	}
	if len(names) == 0 {
		t.Fatalf("corpora: no files match %q in %q", c.Inputs, root)
	}

	refresh := os.Getenv(c.RefreshEnv)
	if refresh != "" {
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: %s=%q is not a valid glob", c.RefreshEnv, refresh)
		}
		t.Logf("corpora: rewriting outputs matching %q", refresh)
		t.Fail()
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			input := filepath.Join(root, filepath.FromSlash(name))
			text, err := os.ReadFile(input)
			if err != nil {
				t.Fatalf("corpora: %v", err)
			}

			got := c.Test(t, name, string(text))
			if len(got) != len(c.Outputs) {
				t.Fatalf("corpora: test returned %d outputs, want %d", len(got), len(c.Outputs))
			}

			rewrite := refresh != "" && doublestar.MatchUnvalidated(refresh, name)
			for i, output := range c.Outputs {
				path := input + "." + output.Extension
				if rewrite {
					if err := write(path, got[i]); err != nil {
						t.Errorf("corpora: %v", err)
					}
					continue
				}

				want, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: %v", err)
					continue
				}

				compare := output.Compare
				if compare == nil {
					compare = Diff
				}
				if msg := compare(got[i], string(want)); msg != "" {
					t.Errorf("%s: output mismatch:\n%s", filepath.Base(path), msg)
				}
			}
		})
	}
}

// write replaces an output file; an empty output deletes it.
func write(path, text string) error {
	if text == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	return os.WriteFile(path, []byte(text), 0o600)
}

// Diff is the default comparison for [Output]: an exact match, reported as
// a unified diff.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return fmt.Sprintf("diff failed: %v", err)
	}

	// Highlight added and removed lines.
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = "\033[1;92m" + line + "\033[0m"
		case strings.HasPrefix(line, "-"):
			lines[i] = "\033[1;91m" + line + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}
