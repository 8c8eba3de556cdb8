// Package testutils provides golden-file assertions for uconv tests.
package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// UpdateEnvVar rewrites golden files with the actual output when set to a non-empty value.
const UpdateEnvVar = "UPDATE_GOLDEN"

// AssertGolden compares actual against the golden file at path (relative to the test's
// package directory). Trailing newlines are ignored. On mismatch the test fails with a
// line diff.
func AssertGolden(t testing.TB, path string, actual string) {
	t.Helper()

	if os.Getenv(UpdateEnvVar) != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("creating golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(strings.TrimRight(actual, "\n")+"\n"), 0644); err != nil {
			t.Fatalf("updating golden file %s: %v", path, err)
		}
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading golden file %s: %v", path, err)
	}

	expected := strings.TrimRight(string(content), "\n")
	actual = strings.TrimRight(actual, "\n")
	if expected == actual {
		return
	}

	t.Errorf("output does not match %s (set %s=1 to update):\n%s", path, UpdateEnvVar, Diff(expected, actual))
}

// Diff returns a line-oriented diff of expected and actual, prefixing removed lines
// with "-" and added lines with "+".
func Diff(expected, actual string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(strings.TrimSuffix(line, "\n"))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
