// Package pattern translates friendly search patterns into regular
// expressions.
//
// A friendly pattern is literal text mixed with alias tokens, e.g.
// "def <name>(<>):". Translation first escapes a small set of literal
// characters, then expands each alias token in declared order by plain
// substring replacement. Both steps are textual, never regex-aware, so the
// result of Translate is fully determined by the table and the input string.
package pattern

import (
	"fmt"
	"strings"
)

// Rule maps one alias token to the regex fragment it expands to.
type Rule struct {
	Token     string
	Expansion string
}

// Table holds an ordered list of rewrite rules plus the characters escaped
// before any rule is applied. A Table is immutable once built; share it
// freely across goroutines.
type Table struct {
	rules   []Rule
	escapes []string
}

// Option adjusts a Table during construction.
type Option func(*Table)

// WithEscapes replaces the default escape set.
func WithEscapes(chars ...string) Option {
	return func(t *Table) { t.escapes = chars }
}

// DefaultRules returns the shipped alias table.
func DefaultRules() []Rule {
	return []Rule{
		{Token: "<>", Expansion: `.*`},
		{Token: "<name>", Expansion: `\w+`},
		{Token: "<word>", Expansion: `[a-zA-Z]+`},
		{Token: "<number>", Expansion: `\d+`},
		{Token: "<filename>", Expansion: `[a-zA-Z0-9_-]+`},
	}
}

// DefaultEscapes returns the shipped escape set. Only parentheses are
// escaped; literal brackets, braces and dots reach the backend as regex
// metacharacters. That narrower behavior is deliberate and documented, so
// widening the set is a config decision, not a fix to make here.
func DefaultEscapes() []string {
	return []string{"(", ")"}
}

// Default returns the table ripit ships with.
func Default() Table {
	t, err := New(DefaultRules())
	if err != nil {
		// the shipped rules are validated by tests; this cannot happen
		panic(err)
	}
	return t
}

// New builds a Table from rules, applying opts over the default escape set.
//
// Because expansion is naive substring replacement, the rules must be
// unambiguous: no token may contain another token, and no escape character
// may occur inside a token (it would be rewritten before the token could
// match). New rejects tables violating either rule.
func New(rules []Rule, opts ...Option) (Table, error) {
	t := Table{
		rules:   append([]Rule(nil), rules...),
		escapes: DefaultEscapes(),
	}
	for _, opt := range opts {
		opt(&t)
	}
	t.escapes = append([]string(nil), t.escapes...)

	for i, r := range t.rules {
		if r.Token == "" {
			return Table{}, fmt.Errorf("rule %d: empty token", i)
		}
		if r.Expansion == "" {
			return Table{}, fmt.Errorf("token %q: empty expansion", r.Token)
		}
		for j, other := range t.rules {
			if i == j {
				continue
			}
			if strings.Contains(r.Token, other.Token) {
				return Table{}, fmt.Errorf("token %q overlaps token %q", r.Token, other.Token)
			}
		}
	}
	for _, c := range t.escapes {
		if len(c) != 1 {
			return Table{}, fmt.Errorf("escape %q: must be a single character", c)
		}
		for _, r := range t.rules {
			if strings.Contains(r.Token, c) {
				return Table{}, fmt.Errorf("escape %q occurs inside token %q", c, r.Token)
			}
		}
	}
	return t, nil
}

// Rules returns a copy of the table's rules in application order.
func (t Table) Rules() []Rule {
	return append([]Rule(nil), t.rules...)
}

// Escapes returns a copy of the escape set.
func (t Table) Escapes() []string {
	return append([]string(nil), t.escapes...)
}

// Translate rewrites a friendly pattern into a regex string. It is total:
// any input yields some output, and a pattern with no alias tokens passes
// through unchanged apart from escaping.
//
// Escaping runs before expansion so that parentheses typed by the user are
// not confused with ones injected by an expansion.
func (t Table) Translate(pattern string) string {
	for _, c := range t.escapes {
		pattern = strings.ReplaceAll(pattern, c, `\`+c)
	}
	return rewrite(t.rules, pattern)
}

// rewrite applies each rule left to right over the whole string. The order
// is observable when tokens overlap, which is why New refuses such tables.
func rewrite(rules []Rule, s string) string {
	for _, r := range rules {
		s = strings.ReplaceAll(s, r.Token, r.Expansion)
	}
	return s
}
