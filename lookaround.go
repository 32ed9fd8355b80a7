package regexgen

// Lookaround is a zero-width assertion node: lookahead or lookbehind,
// positive or negative, built by one of the four constructors. The inner
// content is any list of composition tokens and is rendered by the composing
// Composer, so saved-name references and literal escaping work inside an
// assertion exactly as they do at the top level.
//
// Lookaround deliberately has no quantifier decorations. An assertion
// consumes no input, so quantifying it is always a bug; omitting the fields
// makes the mistake unrepresentable instead of silently ignored.
type Lookaround struct {
	tokens []any
	behind bool
	negate bool
	group  string
}

// Ahead builds a positive lookahead: (?=...).
func Ahead(tokens ...any) *Lookaround {
	return &Lookaround{tokens: tokens}
}

// NotAhead builds a negative lookahead: (?!...).
func NotAhead(tokens ...any) *Lookaround {
	return &Lookaround{tokens: tokens, negate: true}
}

// Behind builds a positive lookbehind: (?<=...).
func Behind(tokens ...any) *Lookaround {
	return &Lookaround{tokens: tokens, behind: true}
}

// NotBehind builds a negative lookbehind: (?<!...).
func NotBehind(tokens ...any) *Lookaround {
	return &Lookaround{tokens: tokens, behind: true, negate: true}
}

// Group tags the assertion with a named capture: the serialized form is
// wrapped as (?<name>...).
func (l *Lookaround) Group(name string) *Lookaround {
	l.group = name
	return l
}

func (l *Lookaround) serialize(c *Composer) string {
	op := "?="
	switch {
	case l.behind && l.negate:
		op = "?<!"
	case l.behind:
		op = "?<="
	case l.negate:
		op = "?!"
	}
	s := "(" + op + c.join(l.tokens, "") + ")"
	if l.group != "" {
		s = "(?<" + l.group + ">" + s + ")"
	}
	return s
}
