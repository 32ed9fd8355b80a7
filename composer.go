package regexgen

import (
	"fmt"
	"strings"

	"github.com/coregx/regexgen/internal/escape"
)

// Composer owns the mutable state of one composition context: the variable
// registry (save-name -> final serialized fragment) and the literal escape
// cache. Both grow monotonically and are never evicted or reset.
//
// The package-level Join, FullMatch, Or, and Seq helpers run on a shared
// Default composer, reproducing the original process-wide registry semantics:
// every composition in the process observes and mutates the same entries,
// last writer wins on a name collision. Compositions that must not share
// saved names (independent tests, concurrent requests) should each own a
// Composer.
//
// A Composer is not synchronized; concurrent use requires an external lock.
type Composer struct {
	vars    map[string]string
	escapes *escape.Cache
	missing []string
}

// NewComposer returns a composer with an empty registry and escape cache.
func NewComposer() *Composer {
	return &Composer{
		vars:    make(map[string]string),
		escapes: escape.NewCache(),
	}
}

// Default is the shared composer behind the package-level composition
// functions.
var Default = NewComposer()

// Join serializes the tokens in order and concatenates them.
//
// Token kinds:
//   - string "<name>": replaced by the registry entry for name. An
//     unregistered name degrades to an empty substitution; use JoinStrict to
//     surface it as an error instead.
//   - any other string: literal text, metacharacter-escaped.
//   - *Pattern, *Lookaround: serialized per their node rules; a Pattern with
//     a save name registers its final form as a side effect.
//
// Any other token type panics: it is a malformed program, not input.
//
// Example:
//
//	c := regexgen.NewComposer()
//	c.Join("x=", regexgen.Raw(`\d`).OneOrMore())
//	// `x=(?:\d)+`
func (c *Composer) Join(tokens ...any) string {
	c.missing = c.missing[:0]
	return c.join(tokens, "")
}

// JoinStrict is Join with loud unresolved-reference handling: if any "<name>"
// token (at any nesting depth) has no registry entry, it returns an error
// wrapping ErrUnresolvedRef instead of silently substituting nothing.
func (c *Composer) JoinStrict(tokens ...any) (string, error) {
	c.missing = c.missing[:0]
	s := c.join(tokens, "")
	if len(c.missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrUnresolvedRef, strings.Join(c.missing, ", "))
	}
	return s, nil
}

// FullMatch composes the tokens like Join and anchors the result to the
// whole input with ^ and $.
func (c *Composer) FullMatch(tokens ...any) string {
	c.missing = c.missing[:0]
	return "^" + c.join(tokens, "") + "$"
}

// Or builds a deferred Pattern whose base is the tokens joined as top-level
// alternatives. Serialization of the tokens is deferred until the returned
// node is first serialized itself.
func (c *Composer) Or(tokens ...any) *Pattern {
	return Defer(func() string { return c.join(tokens, "|") })
}

// Seq builds a deferred Pattern whose base is the tokens joined in sequence.
func (c *Composer) Seq(tokens ...any) *Pattern {
	return Defer(func() string { return c.join(tokens, "") })
}

// SaveRaw seeds the registry directly, the programmatic twin of the
// Pattern.Save side effect. Last writer wins.
func (c *Composer) SaveRaw(name, fragment string) {
	c.vars[name] = fragment
}

// Saved reports the registry entry for name.
func (c *Composer) Saved(name string) (string, bool) {
	s, ok := c.vars[name]
	return s, ok
}

func (c *Composer) join(tokens []any, sep string) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = c.render(tok)
	}
	return strings.Join(parts, sep)
}

func (c *Composer) render(tok any) string {
	switch v := tok.(type) {
	case string:
		if name, ok := refName(v); ok {
			s, ok := c.vars[name]
			if !ok {
				c.missing = append(c.missing, name)
			}
			return s
		}
		return c.escapes.Literal(v)
	case *Pattern:
		return v.serialize(c)
	case *Lookaround:
		return v.serialize(c)
	default:
		panic(fmt.Sprintf("regexgen: unsupported composition token type %T", tok))
	}
}

// refName reports whether s has the "<name>" reference shape.
func refName(s string) (string, bool) {
	if len(s) > 2 && s[0] == '<' && s[len(s)-1] == '>' {
		return s[1 : len(s)-1], true
	}
	return "", false
}

// Join composes tokens on the Default composer. See Composer.Join.
func Join(tokens ...any) string {
	return Default.Join(tokens...)
}

// FullMatch composes and anchors tokens on the Default composer.
func FullMatch(tokens ...any) string {
	return Default.FullMatch(tokens...)
}

// Or builds an alternation Pattern on the Default composer.
func Or(tokens ...any) *Pattern {
	return Default.Or(tokens...)
}

// Seq builds a sequence Pattern on the Default composer.
func Seq(tokens ...any) *Pattern {
	return Default.Seq(tokens...)
}
