// Package interval compiles non-negative integer intervals into regex
// alternations.
//
// An interval such as [0, 255] becomes an ordered set of fixed-width
// alternatives over digit classes:
//
//	25[0-5]|24[0-9]|23[0-9]|22[0-9]|21[0-9]|20[0-9]|1[0-9]{2}|[1-9][0-9]|[1-9]|0
//
// The union of the alternatives matches exactly the decimal representations
// of the integers in the interval, with no leading zeros except the literal
// "0". Alternatives are ordered largest-value first so that an unanchored use
// tries longer numbers before their prefixes.
//
// Key concepts:
//   - A ClassToken is one position (or a run of identical positions) of a
//     fixed-width alternative: a literal digit or a digit class.
//   - An Alternative is one fixed-width branch of the alternation.
//   - A Fragment is the ordered alternation for a whole interval.
package interval

import (
	"strconv"
	"strings"
)

// ClassToken represents one column of a fixed-width alternative: a literal
// digit when Lo == Hi, otherwise the digit class [Lo-Hi]. Count is the number
// of consecutive columns the token covers; only digit classes are ever
// run-compressed, so a literal token always has Count 1.
type ClassToken struct {
	// Lo and Hi are digit values in 0..9 with Lo <= Hi.
	Lo, Hi byte

	// Count is the consecutive-repetition count, >= 1.
	Count int
}

// IsLiteral reports whether the token is a single literal digit rather than
// a digit class.
func (t ClassToken) IsLiteral() bool {
	return t.Lo == t.Hi
}

// String renders the token as regex syntax: "7", "[3-7]", or "[0-9]{3}".
func (t ClassToken) String() string {
	if t.IsLiteral() {
		return string('0' + t.Lo)
	}
	s := "[" + string('0'+t.Lo) + "-" + string('0'+t.Hi) + "]"
	if t.Count > 1 {
		s += "{" + strconv.Itoa(t.Count) + "}"
	}
	return s
}

// Alternative is one fixed-width branch of an interval alternation.
type Alternative []ClassToken

// String renders the alternative by concatenating its tokens.
func (a Alternative) String() string {
	var b strings.Builder
	for _, t := range a {
		b.WriteString(t.String())
	}
	return b.String()
}

// Width returns the number of digit positions the alternative matches.
func (a Alternative) Width() int {
	w := 0
	for _, t := range a {
		w += t.Count
	}
	return w
}

// MergeBounds builds the fixed-width alternative matching every decimal
// string s of the bounds' common length with lo <= s <= hi.
//
// Both bounds must have the same length and lo must not exceed hi; the caller
// (the decomposer) guarantees that every position where the bounds differ
// spans the full sub-decade, so per-position classes are independent.
//
// Positions where the bounds agree become literal digits; positions where
// they differ become digit classes, and maximal runs of identical classes are
// compressed into one token with a repetition count. Compression only changes
// the serialized size, never the matched set.
func MergeBounds(lo, hi string) Alternative {
	toks := make(Alternative, 0, len(lo))
	for i := 0; i < len(lo); i++ {
		dl, dh := lo[i]-'0', hi[i]-'0'
		if dl == dh {
			// Literal digits are never compressed: adjacent equal digits
			// carry distinct positional meaning.
			toks = append(toks, ClassToken{Lo: dl, Hi: dl, Count: 1})
			continue
		}
		if n := len(toks) - 1; n >= 0 && !toks[n].IsLiteral() && toks[n].Lo == dl && toks[n].Hi == dh {
			toks[n].Count++
			continue
		}
		toks = append(toks, ClassToken{Lo: dl, Hi: dh, Count: 1})
	}
	return toks
}
