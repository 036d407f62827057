package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/html"
	"github.com/goliatone/go-formfield/pkg/model"
)

// ResetIDs restarts the process-wide id counters so generated ids start at
// w1 again, and resets them once more when the test finishes.
func ResetIDs(t *testing.T) {
	t.Helper()
	html.DefaultIDs.Reset()
	t.Cleanup(html.DefaultIDs.Reset)
}

// TypeWithHintForm returns the fixture form used across widget tests: a
// "login" attribute carrying a hint, plus attributes without one.
func TypeWithHintForm() *model.Form {
	return model.NewForm("TypeWithHintForm",
		model.Attribute{Name: "login", Label: "Login", Hint: "Please enter your login.", Placeholder: "Your login"},
		model.Attribute{Name: "password", Label: "Password"},
		model.Attribute{Name: "email", Hint: "We never share it.", Value: "ana@example.com"},
		model.Attribute{Name: "bio", Value: "Hello <world>"},
	)
}

// NormalizeLineEndings converts CRLF and CR line endings to LF.
func NormalizeLineEndings(value string) string {
	value = strings.ReplaceAll(value, "\r\n", "\n")
	return strings.ReplaceAll(value, "\r", "\n")
}

// AssertEqualWithoutLE fails the test when want and got differ after line
// ending normalisation, printing a go-cmp diff.
func AssertEqualWithoutLE(t *testing.T, want, got string) {
	t.Helper()
	if diff := cmp.Diff(NormalizeLineEndings(want), NormalizeLineEndings(got)); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// AssertGolden compares got with the golden file at path, rewriting the file
// instead when UPDATE_GOLDENS is set.
func AssertGolden(t *testing.T, path, got string) {
	t.Helper()
	if WriteMaybeGolden(t, path, []byte(got)) {
		return
	}
	AssertEqualWithoutLE(t, MustReadGoldenString(t, path), got)
}
