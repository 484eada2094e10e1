package ripit

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// fakeBackend writes an executable shell script into a temp dir and returns
// its path. Tests drive the Searcher against it instead of a real ripgrep.
func fakeBackend(t *testing.T, script string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "fake-rg")
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("write fake backend: %v", err)
	}
	return p
}

func TestSearch_PassesTranslatedRegexAndArgs(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	t.Setenv("RIPIT_TEST_ARGS", argsFile)
	bin := fakeBackend(t, `printf '%s\n' "$@" > "$RIPIT_TEST_ARGS"`)

	s := New([]string{"--type", "py"}, WithBinary(bin))
	if _, err := s.Search("class <name>:", "-n"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	b, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("read args: %v", err)
	}
	got := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	want := []string{`class \w+:`, "--type", "py", "-n"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("backend argv = %v, want %v", got, want)
	}
}

func TestSearch_NoMatchesIsNotAnError(t *testing.T) {
	bin := fakeBackend(t, "exit 1")
	out, err := New(nil, WithBinary(bin)).Search("nothing")
	if err != nil {
		t.Fatalf("exit 1 must be success, got %v", err)
	}
	if out != "" {
		t.Fatalf("want empty output, got %q", out)
	}
}

func TestSearch_ExecutionErrorCarriesStderr(t *testing.T) {
	bin := fakeBackend(t, `echo 'regex parse error' >&2; exit 2`)
	_, err := New(nil, WithBinary(bin)).Search("[oops")
	var be *BackendError
	if !errors.As(err, &be) {
		t.Fatalf("want *BackendError, got %v", err)
	}
	if be.Code != 2 {
		t.Errorf("code = %d, want 2", be.Code)
	}
	if !strings.Contains(be.Error(), "regex parse error") {
		t.Errorf("diagnostic not propagated: %v", be)
	}
}

func TestSearch_MissingBinary(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "absent")
	_, err := New(nil, WithBinary(bin)).Search("x")
	var be *BackendError
	if !errors.As(err, &be) {
		t.Fatalf("want *BackendError, got %v", err)
	}
	if be.Err == nil {
		t.Fatal("spawn failure should wrap the lookup error")
	}
}

func TestLines_FiltersBlanksPreservesOrder(t *testing.T) {
	bin := fakeBackend(t, `printf 'first\n\n  \nsecond\n\nthird\n'`)
	got, err := New(nil, WithBinary(bin)).Lines("p")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %v, want %v", got, want)
	}
}

func TestCount_SumsPerFileTotals(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	t.Setenv("RIPIT_TEST_ARGS", argsFile)
	bin := fakeBackend(t, `printf '%s\n' "$@" > "$RIPIT_TEST_ARGS"
printf 'a.go:3\nsub/dir/b.go:2\nnot a count line\n'`)

	s := New([]string{"--hidden"}, WithBinary(bin))
	n, err := s.Count("p", "--max-depth", "2")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 5 {
		t.Fatalf("count = %d, want 5", n)
	}
	b, _ := os.ReadFile(argsFile)
	got := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	want := []string{"p", "--hidden", "-c", "--max-depth", "2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("backend argv = %v, want %v", got, want)
	}
}

func TestCount_EmptyOutput(t *testing.T) {
	bin := fakeBackend(t, "exit 1")
	n, err := New(nil, WithBinary(bin)).Count("p")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 0 {
		t.Fatalf("count = %d, want 0", n)
	}
}

func TestNew_CopiesDefaultArgs(t *testing.T) {
	defaults := []string{"--type", "py"}
	argsFile := filepath.Join(t.TempDir(), "args")
	t.Setenv("RIPIT_TEST_ARGS", argsFile)
	bin := fakeBackend(t, `printf '%s\n' "$@" > "$RIPIT_TEST_ARGS"`)
	s := New(defaults, WithBinary(bin))
	defaults[1] = "rs"
	if _, err := s.Search("x"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	b, _ := os.ReadFile(argsFile)
	if !strings.Contains(string(b), "py") || strings.Contains(string(b), "rs") {
		t.Fatalf("default args not copied: %q", string(b))
	}
}

func TestSearcher_Translate(t *testing.T) {
	s := New(nil)
	if got := s.Translate("with <> as <name>:"); got != `with .* as \w+:` {
		t.Fatalf("Translate = %q", got)
	}
}
