package interval

import "strconv"

// Fragment is the compiled alternation for one integer interval: an ordered
// list of fixed-width alternatives, largest matched value first.
type Fragment struct {
	Alternatives []Alternative
}

// Pattern joins the alternatives into one alternation fragment.
//
// The result carries no grouping, guards, or anchors; see Guard for the
// adjacency-guarded form.
func (f Fragment) Pattern() string {
	parts := make([]string, len(f.Alternatives))
	for i, a := range f.Alternatives {
		parts[i] = a.String()
	}
	return joinAlternation(parts)
}

func joinAlternation(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	n := len(parts) - 1
	for _, p := range parts {
		n += len(p)
	}
	b := make([]byte, 0, n)
	for i, p := range parts {
		if i > 0 {
			b = append(b, '|')
		}
		b = append(b, p...)
	}
	return string(b)
}

// Decompose compiles the integer interval [lo, hi] into a Fragment.
//
// Bound order does not matter; the bounds are swapped when lo > hi. Both must
// be non-negative.
//
// The interval is carved, lower end first, into maximal chunks that are each
// exactly one fixed-width alternative, then the alternatives are reversed so
// the largest values come first. The value 0 is split off as its own
// alternative when the interval also contains multi-digit values, since "0"
// cannot join a wider alternative without permitting leading zeros; a purely
// single-digit interval merges 0 directly into its digit class, which is why
// Decompose(0, 9) yields exactly [0-9].
//
// Example:
//
//	interval.Decompose(0, 255).Pattern()
//	// "25[0-5]|24[0-9]|23[0-9]|22[0-9]|21[0-9]|20[0-9]|1[0-9]{2}|[1-9][0-9]|[1-9]|0"
func Decompose(lo, hi int) Fragment {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return Fragment{Alternatives: []Alternative{literalAlternative(strconv.Itoa(lo))}}
	}

	var alts []Alternative
	if lo == 0 && hi > 9 {
		alts = append(alts, literalAlternative("0"))
		lo = 1
	}
	for lo <= hi {
		b := chunkCeiling(lo, hi)
		alts = append(alts, MergeBounds(strconv.Itoa(lo), strconv.Itoa(b)))
		lo = b + 1
	}

	// Largest-value alternatives first. The ordering is load-bearing for
	// unanchored use: a longer number must be tried before its own prefix so
	// the adjacency guard rejects the prefix instead of half-matching it.
	for i, j := 0, len(alts)-1; i < j; i, j = i+1, j-1 {
		alts[i], alts[j] = alts[j], alts[i]
	}
	return Fragment{Alternatives: alts}
}

// literalAlternative builds the alternative matching exactly the decimal
// string s, one literal token per digit.
func literalAlternative(s string) Alternative {
	a := make(Alternative, len(s))
	for i := 0; i < len(s); i++ {
		d := s[i] - '0'
		a[i] = ClassToken{Lo: d, Hi: d, Count: 1}
	}
	return a
}

// chunkCeiling returns the largest b <= hi such that [lo, b] is exactly one
// fixed-width alternative.
//
// Starting from lo's decade ceiling (42 -> 49), the trailing-nines suffix is
// widened one digit at a time (109 -> 199 -> 999) while two conditions hold:
// lo ends in enough zeros for every widened column to span the full 0-9
// class, and the widened value stays within hi. Without the alignment
// condition a chunk like [42, 79] would merge into [4-7][2-9], which fails to
// match 50. When even the decade ceiling overshoots hi, both bounds share a
// decade and hi itself is exact.
func chunkCeiling(lo, hi int) int {
	b := lo - lo%10 + 9
	if b > hi {
		return hi
	}
	for step := 100; lo%(step/10) == 0; step *= 10 {
		nb := lo - lo%step + step - 1
		if nb > hi {
			break
		}
		b = nb
	}
	return b
}
