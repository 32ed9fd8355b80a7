// Package escape implements literal-text escaping for regex fragments.
//
// The metacharacter set matches what an ECMA-style engine treats as special
// outside a character class. It differs from stdlib regexp.QuoteMeta (which
// also escapes '-'), so the table is kept here rather than delegated.
package escape

// Metacharacters that must be backslash-escaped in literal text.
const metacharacters = `.*+?^${}()|[]\`

// Literal returns s with every regex metacharacter backslash-escaped; the
// result matches exactly the literal text s. Identical inputs always return
// identical outputs, which is what makes the result cacheable.
//
// Example:
//
//	escape.Literal("192.168.1.1") // "192\.168\.1\.1"
func Literal(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if isMeta(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if isMeta(s[i]) {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

func isMeta(c byte) bool {
	for i := 0; i < len(metacharacters); i++ {
		if c == metacharacters[i] {
			return true
		}
	}
	return false
}

// Cache memoizes Literal results per distinct input string.
//
// A Cache grows monotonically and is never evicted; callers bound its size by
// bounding the set of distinct literals they escape. It is not synchronized:
// concurrent use requires an external lock or a cache per composition context.
type Cache struct {
	seen map[string]string
}

// NewCache returns an empty escape cache.
func NewCache() *Cache {
	return &Cache{seen: make(map[string]string)}
}

// Literal returns the escaped form of s, computing and memoizing it on first
// use.
func (c *Cache) Literal(s string) string {
	if esc, ok := c.seen[s]; ok {
		return esc
	}
	esc := Literal(s)
	c.seen[s] = esc
	return esc
}

// Len reports the number of distinct literals cached so far.
func (c *Cache) Len() int {
	return len(c.seen)
}
