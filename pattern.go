package regexgen

import "strconv"

// Pattern is a composable fragment under construction: a base fragment plus
// optional decorations (capture name, quantifier, laziness, alternation
// continuation, save name).
//
// The base is either a literal string or a deferred producer invoked exactly
// once, on first serialization; the produced string is memoized, so
// serializing the same node repeatedly always yields the same text and the
// save-name side effect only ever registers that one final value.
//
// Decorations mutate the node in place and return it, so construction chains:
//
//	regexgen.Raw(`\w`).OneOrMore().Group("word").Save("word")
//
// A Pattern is serialized as (?:base) followed by the quantifier suffix and
// the alternation suffix, then wrapped as (?<name>...) when a capture name is
// set. Serialization happens through a Composer, which receives the save-name
// side effect.
type Pattern struct {
	text     string
	deferred func() string

	group    string
	quant    string
	lazy     bool
	alt      bool
	saveName string
}

// Raw wraps an already-valid regex fragment. The text is not escaped; use a
// plain string token in a composition for escaped literal text.
func Raw(fragment string) *Pattern {
	return &Pattern{text: fragment}
}

// Defer wraps a producer that builds the base fragment on first
// serialization. The producer runs at most once; its result is memoized.
func Defer(produce func() string) *Pattern {
	return &Pattern{deferred: produce}
}

// Group tags the node with a named capture: the serialized form is wrapped
// as (?<name>...). The default is a non-capturing group.
func (p *Pattern) Group(name string) *Pattern {
	p.group = name
	return p
}

// OneOrMore sets the + quantifier.
func (p *Pattern) OneOrMore() *Pattern {
	p.quant = "+"
	return p
}

// ZeroOrMore sets the * quantifier.
func (p *Pattern) ZeroOrMore() *Pattern {
	p.quant = "*"
	return p
}

// Optional sets the ? quantifier.
func (p *Pattern) Optional() *Pattern {
	p.quant = "?"
	return p
}

// Repeat sets an exact-repetition quantifier: Repeat(m) sets {m},
// Repeat(m, n) sets {m,n}, and Repeat() with no bounds defaults to +.
// Extra bounds beyond the first two are ignored.
func (p *Pattern) Repeat(bounds ...int) *Pattern {
	switch len(bounds) {
	case 0:
		p.quant = "+"
	case 1:
		p.quant = "{" + strconv.Itoa(bounds[0]) + "}"
	default:
		p.quant = "{" + strconv.Itoa(bounds[0]) + "," + strconv.Itoa(bounds[1]) + "}"
	}
	return p
}

// Lazy makes the quantifier non-greedy by appending ? to whatever quantifier
// suffix is set at serialization time. Calling Lazy with no quantifier set is
// permitted and produces a bare ? suffix, equivalent to Optional.
func (p *Pattern) Lazy() *Pattern {
	p.lazy = true
	return p
}

// Or marks the node as an alternation continuation: its serialized form ends
// with |, so the next sibling in the same flat composition joins as a
// top-level alternative. The mark only relates a node to its immediate next
// sibling; it cannot express alternation between arbitrary positions.
func (p *Pattern) Or() *Pattern {
	p.alt = true
	return p
}

// Save registers the node's final serialized form in the composing
// Composer's registry under name, for later reuse via a "<name>" token.
func (p *Pattern) Save(name string) *Pattern {
	p.saveName = name
	return p
}

// base returns the base fragment, producing and memoizing it on first use.
func (p *Pattern) base() string {
	if p.deferred != nil {
		p.text = p.deferred()
		p.deferred = nil
	}
	return p.text
}

func (p *Pattern) suffix() string {
	s := p.quant
	if p.lazy {
		s += "?"
	}
	if p.alt {
		s += "|"
	}
	return s
}

func (p *Pattern) serialize(c *Composer) string {
	s := "(?:" + p.base() + ")" + p.suffix()
	if p.group != "" {
		s = "(?<" + p.group + ">" + s + ")"
	}
	if p.saveName != "" {
		c.vars[p.saveName] = s
	}
	return s
}

// String returns a debug form of the node without forcing production of a
// deferred base.
func (p *Pattern) String() string {
	base := p.text
	if p.deferred != nil {
		base = "<deferred>"
	}
	s := "pattern{" + base
	if p.group != "" {
		s += ", group=" + p.group
	}
	if q := p.suffix(); q != "" {
		s += ", suffix=" + q
	}
	if p.saveName != "" {
		s += ", save=" + p.saveName
	}
	return s + "}"
}
