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

// Package corpora runs golden-file tests over a directory of test cases.
//
// Each test case is an input file; each of its outputs lives next to it, in a
// file named after the input with an extra extension. For example, the views
// of foo.yaml are compared against foo.yaml.views.
package corpora

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus is a table-driven test whose table is a directory tree.
type Corpus struct {
	// The directory containing the test cases, relative to the directory of
	// the test file that calls [Corpus.Run].
	Root string

	// An environment variable holding a glob of test cases whose outputs
	// should be rewritten instead of compared. Globs are matched against the
	// test case's path relative to the calling test file.
	Refresh string

	// The extension (without a dot) of files that define a test case.
	Extension string

	// The outputs of each test case. A missing output file is treated as
	// empty.
	Outputs []Output

	// Test runs one test case, returning one string per element of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output is one output of a test case.
type Output struct {
	// The extension appended to the test case's file name to find this
	// output.
	Extension string

	// Compares the outputs. If nil, they are compared byte-for-byte and
	// mismatches are reported as a unified diff.
	Compare Compare
}

// Compare compares the output of a test to its golden value.
//
// Returns an empty string if they match, or a description of the mismatch.
type Compare func(got, want string) string

// Run runs every test case in the corpus as a subtest of t.
func (c Corpus) Run(t *testing.T) {
	t.Helper()

	dir := callerDir()
	root := filepath.Join(dir, c.Root)

	var cases []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(path), ".") == c.Extension {
			cases = append(cases, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("corpora: could not walk %q: %v", root, err)
	}
	if len(cases) == 0 {
		t.Fatalf("corpora: no *.%s files in %q", c.Extension, root)
	}
	slices.Sort(cases)

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: %s=%q is not a valid glob", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing outputs matching %s=%s", c.Refresh, refresh)
		t.Fail() // A refresh run never passes.
	}

	for _, path := range cases {
		name, _ := filepath.Rel(dir, path)
		t.Run(filepath.ToSlash(name), func(t *testing.T) {
			text, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: could not read %q: %v", path, err)
			}

			results := c.Test(t, name, string(text))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: got %d results, want %d", len(results), len(c.Outputs))
			}

			write := false
			if refresh != "" {
				write, _ = doublestar.Match(refresh, filepath.ToSlash(name))
			}

			for i, output := range c.Outputs {
				golden := fmt.Sprint(path, ".", output.Extension)
				if write {
					c.refresh(t, golden, results[i])
				} else {
					output.check(t, golden, results[i])
				}
			}
		})
	}
}

func (c Corpus) refresh(t *testing.T, golden, got string) {
	t.Helper()

	var err error
	if got == "" {
		err = os.Remove(golden)
		if errors.Is(err, os.ErrNotExist) {
			err = nil
		}
	} else {
		err = os.WriteFile(golden, []byte(got), 0o644)
	}
	if err != nil {
		t.Errorf("corpora: could not refresh %q: %v", golden, err)
	}
}

func (o Output) check(t *testing.T, golden, got string) {
	t.Helper()

	want, err := os.ReadFile(golden)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		t.Errorf("corpora: could not read %q: %v", golden, err)
		return
	}

	compare := o.Compare
	if compare == nil {
		compare = diff
	}
	if msg := compare(got, string(want)); msg != "" {
		t.Errorf("output mismatch for %q:\n%s", golden, msg)
	}
}

// diff is the default [Compare].
func diff(got, want string) string {
	if got == want {
		return ""
	}

	// SplitLines yields a trailing "\n" line for text ending in a newline.
	a, b := strings.TrimSuffix(want, "\n"), strings.TrimSuffix(got, "\n")
	if a == b {
		return "--- want\n+++ got\ntrailing newline differs\n"
	}

	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return out
}

// callerDir returns the directory of the file that called [Corpus.Run].
func callerDir() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		panic("corpora: could not determine the calling test file")
	}
	return filepath.Dir(file)
}
