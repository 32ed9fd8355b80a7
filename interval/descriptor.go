package interval

import (
	"strconv"
	"strings"
)

// Guard wraps a numeric alternation with adjacency assertions: the match may
// not be preceded by a digit or a hyphen, and may not be followed by a digit.
// This keeps a numeric alternative from matching inside a longer digit run
// ("99" inside "1999") or right after a hyphen that belongs to a different
// range expression.
func Guard(alternation string) string {
	return `(?<![\d-])(?:` + alternation + `)(?!\d)`
}

// CompileTokens compiles a mixed list of range tokens into one fragment.
//
// Each token is classified by shape:
//   - "N", a bare non-negative integer: one literal numeric alternative,
//     used as-is without decomposition.
//   - "N-M", both sides non-negative integers: decomposed via Decompose
//     (bounds in either order).
//   - anything else: raw character-class material, e.g. "a-z" or "_". No
//     validation is applied; an inverted range like "z-a" is passed through
//     and left for the host engine to reject.
//
// All-numeric input yields the guarded numeric alternation; all-class input
// yields a single unguarded bracket class; mixed input yields the guarded
// numeric alternation OR'd with the class, in that order.
//
// Numeric tokens are joined in reverse declaration order, matching the
// largest-value-first ordering inside each decomposed range. Callers that
// care about match precedence between overlapping tokens must account for
// this reversal.
func CompileTokens(tokens ...string) string {
	var numeric []string
	var class []string
	for _, tok := range tokens {
		if n, ok := parseBound(tok); ok {
			numeric = append(numeric, strconv.Itoa(n))
			continue
		}
		if lo, hi, ok := parseBoundPair(tok); ok {
			numeric = append(numeric, Decompose(lo, hi).Pattern())
			continue
		}
		class = append(class, tok)
	}

	for i, j := 0, len(numeric)-1; i < j; i, j = i+1, j-1 {
		numeric[i], numeric[j] = numeric[j], numeric[i]
	}

	switch {
	case len(numeric) == 0 && len(class) == 0:
		return ""
	case len(class) == 0:
		return Guard(joinAlternation(numeric))
	case len(numeric) == 0:
		return "[" + strings.Join(class, "") + "]"
	}
	return Guard(joinAlternation(numeric)) + "|[" + strings.Join(class, "") + "]"
}

// parseBound parses a bare non-negative decimal integer. Signed, fractional,
// or otherwise unparseable text is rejected and ends up classified as
// character-class material.
func parseBound(s string) (int, bool) {
	n, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// parseBoundPair parses "N-M" where both sides are non-negative integers.
func parseBoundPair(s string) (lo, hi int, ok bool) {
	a, b, found := strings.Cut(s, "-")
	if !found {
		return 0, 0, false
	}
	lo, okA := parseBound(a)
	hi, okB := parseBound(b)
	if !okA || !okB {
		return 0, 0, false
	}
	return lo, hi, true
}
