// Package regexgen composes regular-expression pattern fragments from
// declarative pieces: literal text, alternation, sequencing, quantifiers,
// named captures, lookaround assertions, reusable named sub-patterns, and
// numeric interval matching.
//
// The numeric core turns an integer range into a regex fragment matching
// exactly the decimal representations of the integers in the range (no
// leading zeros except "0" itself), as an ordered set of fixed-width
// digit-class alternatives with adjacency guards, so the fragment never
// half-matches inside a longer digit run.
//
// Basic usage:
//
//	octet := regexgen.Range("0-255")
//	expr := regexgen.FullMatch(octet, ".", octet, ".", octet, ".", octet)
//	re, err := regexgen.Compile(expr)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("192.168.1.1") // true
//	re.MatchString("256.0.0.1")   // false
//
// Reusable sub-patterns:
//
//	c := regexgen.NewComposer()
//	c.Join(regexgen.Raw(`\w`).OneOrMore().Save("word"))
//	c.Join("<word>", "-", "<word>") // substitutes the saved fragment twice
//
// regexgen only generates fragments; matching is delegated to a host engine.
// Compile selects coregex for RE2-compatible fragments and falls back to
// regexp2 when the fragment uses lookaround, which RE2 cannot execute.
package regexgen

import (
	"errors"
	"strings"

	coregex "github.com/coregx/coregex"
	"github.com/dlclark/regexp2"

	"github.com/coregx/regexgen/interval"
)

// ErrUnresolvedRef is wrapped by JoinStrict when a "<name>" token has no
// registry entry.
var ErrUnresolvedRef = errors.New("regexgen: unresolved pattern reference")

// Range compiles a mixed list of range tokens into a deferred Pattern.
//
// Numeric tokens ("7", "0-255") become a guarded numeric alternation;
// everything else is treated as raw character-class material ("a-z", "_").
// See the interval package for the exact classification, guarding, and
// ordering rules. Compilation of the tokens is deferred until the node is
// first serialized.
//
// Example:
//
//	regexgen.Join(regexgen.Range("0-255"))
//	// `(?:(?<![\d-])(?:25[0-5]|24[0-9]|...|[1-9]|0)(?!\d))`
func Range(tokens ...string) *Pattern {
	return Defer(func() string { return interval.CompileTokens(tokens...) })
}

// Between is Range for a single integer interval, without the string round
// trip: the guarded alternation for [lo, hi], bounds in either order.
func Between(lo, hi int) *Pattern {
	return Defer(func() string { return interval.Guard(interval.Decompose(lo, hi).Pattern()) })
}

// Config controls how Compile selects and configures the host engine.
//
// Example:
//
//	cfg := regexgen.DefaultConfig()
//	cfg.ForceECMA = true // always use regexp2
//	re, err := regexgen.CompileWithConfig(expr, cfg)
type Config struct {
	// ForceECMA always compiles with the regexp2 engine, even for fragments
	// coregex could execute.
	// Default: false
	ForceECMA bool

	// ECMAOptions is passed to regexp2 when that engine is selected.
	// Default: regexp2.None
	ECMAOptions regexp2.RegexOptions
}

// DefaultConfig returns the default engine-selection configuration.
func DefaultConfig() Config {
	return Config{ECMAOptions: regexp2.None}
}

// Regex is a compiled fragment bound to whichever host engine Compile
// selected. It exposes only the matching surface composition tests need;
// callers wanting the full engine API should compile the fragment string
// with their engine of choice directly.
type Regex struct {
	pattern string
	re2     *coregex.Regex
	ecma    *regexp2.Regexp
}

// Compile turns a composed fragment into an executable matcher using the
// default configuration: coregex for RE2-compatible fragments, regexp2 for
// fragments with lookaround.
func Compile(fragment string) (*Regex, error) {
	return CompileWithConfig(fragment, DefaultConfig())
}

// MustCompile is Compile for fragments known to be valid; it panics on error.
func MustCompile(fragment string) *Regex {
	re, err := Compile(fragment)
	if err != nil {
		panic("regexgen: Compile(`" + fragment + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a fragment with explicit engine selection.
func CompileWithConfig(fragment string, cfg Config) (*Regex, error) {
	if !cfg.ForceECMA && !needsECMA(fragment) {
		re, err := coregex.Compile(fragment)
		if err == nil {
			return &Regex{pattern: fragment, re2: re}, nil
		}
		// coregex rejected the fragment; regexp2 accepts a superset, so fall
		// through rather than failing here.
	}
	re, err := regexp2.Compile(fragment, cfg.ECMAOptions)
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: fragment, ecma: re}, nil
}

// needsECMA reports whether the fragment uses syntax RE2 cannot execute.
func needsECMA(fragment string) bool {
	for _, op := range []string{"(?=", "(?!", "(?<=", "(?<!"} {
		if strings.Contains(fragment, op) {
			return true
		}
	}
	return false
}

// MatchString reports whether s contains a match of the compiled fragment.
func (r *Regex) MatchString(s string) bool {
	if r.re2 != nil {
		return r.re2.MatchString(s)
	}
	// regexp2 only errors on match timeout, and no timeout is configured.
	m, err := r.ecma.MatchString(s)
	return err == nil && m
}

// FindString returns the text of the leftmost match of the compiled fragment
// in s, or "" when there is no match.
func (r *Regex) FindString(s string) string {
	if r.re2 != nil {
		return r.re2.FindString(s)
	}
	m, err := r.ecma.FindStringMatch(s)
	if err != nil || m == nil {
		return ""
	}
	return m.String()
}

// String returns the fragment the matcher was compiled from.
func (r *Regex) String() string {
	return r.pattern
}

// Engine names the host engine backing the matcher: "coregex" or "regexp2".
func (r *Regex) Engine() string {
	if r.re2 != nil {
		return "coregex"
	}
	return "regexp2"
}
