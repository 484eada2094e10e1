// Package ripit runs friendly-pattern searches through an external
// line-oriented search backend, ripgrep by default.
//
// The package-level Search, Lines and Count functions use the shipped alias
// table, the rg binary from PATH and no default arguments. Construct a
// Searcher to fix a backend binary, an alternate alias table, or a set of
// default arguments shared by every call.
package ripit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ripit/ripit-cli/internal/executil"
	"github.com/ripit/ripit-cli/pkg/pattern"
)

// DefaultBinary is the backend executable used when none is configured.
const DefaultBinary = "rg"

// BackendError reports a backend that could not be located, could not be
// started, or exited with an execution error (exit status >= 2, which
// ripgrep also uses for rejected regexes). The backend's own diagnostic is
// carried verbatim in Stderr. "No matches" (exit status 1) is not an error.
type BackendError struct {
	Binary string
	Code   int
	Stderr string
	Err    error
}

func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Binary, e.Err)
	}
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = fmt.Sprintf("exit status %d", e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Binary, msg)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Searcher holds a backend binary, an alias table and a fixed list of
// default arguments prepended to every call's own arguments. It is
// immutable after New and safe for concurrent use; each call owns its own
// backend subprocess.
type Searcher struct {
	binary      string
	table       pattern.Table
	defaultArgs []string
}

// Option adjusts a Searcher during construction.
type Option func(*Searcher)

// WithBinary sets the backend executable name or path.
func WithBinary(bin string) Option {
	return func(s *Searcher) {
		if bin != "" {
			s.binary = bin
		}
	}
}

// WithTable sets the alias table used for translation.
func WithTable(t pattern.Table) Option {
	return func(s *Searcher) { s.table = t }
}

// New builds a Searcher with the given default arguments. The slice is
// copied; later mutation by the caller does not affect the Searcher.
func New(defaultArgs []string, opts ...Option) *Searcher {
	s := &Searcher{
		binary:      DefaultBinary,
		table:       pattern.Default(),
		defaultArgs: append([]string(nil), defaultArgs...),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Translate exposes the searcher's pattern translation without invoking the
// backend.
func (s *Searcher) Translate(p string) string {
	return s.table.Translate(p)
}

// Search translates the pattern and invokes the backend with the regex
// followed by the default arguments and then extra, blocking until the
// subprocess exits. It returns the backend's raw stdout; zero matches yield
// an empty string and a nil error.
func (s *Searcher) Search(p string, extra ...string) (string, error) {
	regex := s.table.Translate(p)
	argv := make([]string, 0, 1+len(s.defaultArgs)+len(extra))
	argv = append(argv, regex)
	argv = append(argv, s.defaultArgs...)
	argv = append(argv, extra...)

	res, err := executil.Run(s.binary, argv)
	if err != nil {
		return "", &BackendError{Binary: s.binary, Err: err}
	}
	// ripgrep exit codes: 0 matches, 1 no matches, >= 2 execution error.
	if res.Code >= 2 {
		return "", &BackendError{Binary: s.binary, Code: res.Code, Stderr: res.Stderr}
	}
	return res.Stdout, nil
}

// Lines runs Search and returns the non-blank output lines in order.
func (s *Searcher) Lines(p string, extra ...string) ([]string, error) {
	out, err := s.Search(p, extra...)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, l := range strings.Split(out, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines, nil
}

// Count runs the backend in count mode (-c prepended to the per-call
// arguments) and sums the per-file totals. Count-mode output is one
// "path:count" line per file; lines without a parseable count are skipped.
func (s *Searcher) Count(p string, extra ...string) (int, error) {
	out, err := s.Search(p, append([]string{"-c"}, extra...)...)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, l := range strings.Split(out, "\n") {
		i := strings.LastIndex(l, ":")
		if i < 0 {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(l[i+1:]))
		if err != nil {
			continue
		}
		total += n
	}
	return total, nil
}

// Search is the zero-default convenience form of Searcher.Search.
func Search(p string, extra ...string) (string, error) {
	return New(nil).Search(p, extra...)
}

// Lines is the zero-default convenience form of Searcher.Lines.
func Lines(p string, extra ...string) ([]string, error) {
	return New(nil).Lines(p, extra...)
}

// Count is the zero-default convenience form of Searcher.Count.
func Count(p string, extra ...string) (int, error) {
	return New(nil).Count(p, extra...)
}
