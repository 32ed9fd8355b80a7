package interval

import (
	"strconv"
	"testing"

	"github.com/dlclark/regexp2"
)

func compileUnanchored(fragment string) (*regexp2.Regexp, error) {
	return regexp2.Compile(fragment, regexp2.None)
}

// TestCompileTokensForms tests exact fragment shapes per token mix.
func TestCompileTokensForms(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{
			name:   "no tokens",
			tokens: nil,
			want:   "",
		},
		{
			name:   "single numeric range",
			tokens: []string{"0-9"},
			want:   `(?<![\d-])(?:[0-9])(?!\d)`,
		},
		{
			name:   "bare number is literal",
			tokens: []string{"20"},
			want:   `(?<![\d-])(?:20)(?!\d)`,
		},
		{
			name:   "bare number with leading zeros normalized",
			tokens: []string{"007"},
			want:   `(?<![\d-])(?:7)(?!\d)`,
		},
		{
			name:   "numeric tokens join reversed",
			tokens: []string{"0-1", "10-11", "20"},
			want:   `(?<![\d-])(?:20|1[0-1]|[0-1])(?!\d)`,
		},
		{
			name:   "swapped numeric bounds normalized",
			tokens: []string{"9-5"},
			want:   `(?<![\d-])(?:[5-9])(?!\d)`,
		},
		{
			name:   "character range unguarded",
			tokens: []string{"a-z"},
			want:   "[a-z]",
		},
		{
			name:   "character material concatenated",
			tokens: []string{"a-z", "A-Z", "_"},
			want:   "[a-zA-Z_]",
		},
		{
			name:   "inverted character range passes through",
			tokens: []string{"z-a"},
			want:   "[z-a]",
		},
		{
			name:   "negative number degrades to class material",
			tokens: []string{"-5"},
			want:   "[-5]",
		},
		{
			name:   "mixed numeric then class",
			tokens: []string{"a-f", "0-9"},
			want:   `(?<![\d-])(?:[0-9])(?!\d)|[a-f]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompileTokens(tt.tokens...); got != tt.want {
				t.Errorf("CompileTokens(%q) = %q, want %q", tt.tokens, got, tt.want)
			}
		})
	}
}

// TestCompileTokensRoundTrip verifies disjoint sub-ranges match exactly their
// union, with no cross-contamination between them.
func TestCompileTokensRoundTrip(t *testing.T) {
	re := mustAnchored(t, CompileTokens("0-1", "10-11", "20"))

	want := map[int]bool{0: true, 1: true, 10: true, 11: true, 20: true}
	for v := 0; v <= 30; v++ {
		if got := matches(t, re, strconv.Itoa(v)); got != want[v] {
			t.Errorf("match(%d) = %v, want %v", v, got, want[v])
		}
	}
}

// TestGuardRejectsEmbeddedRuns verifies the adjacency guard blocks partial
// matches inside a longer digit run and after a hyphen.
func TestGuardRejectsEmbeddedRuns(t *testing.T) {
	re, err := compileUnanchored(CompileTokens("0-255"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	tests := []struct {
		name  string
		input string
		want  string // leftmost match, "" for none
	}{
		{
			name:  "embedded digit run",
			input: "1999",
			want:  "",
		},
		{
			name:  "hyphen prefix",
			input: "-42",
			want:  "",
		},
		{
			name:  "clean token in text",
			input: "a99b",
			want:  "99",
		},
		{
			name:  "longest alternative wins",
			input: "x199y",
			want:  "199",
		},
		{
			name:  "guarded against trailing digits",
			input: "256",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := re.FindStringMatch(tt.input)
			if err != nil {
				t.Fatalf("FindStringMatch(%q): %v", tt.input, err)
			}
			got := ""
			if m != nil {
				got = m.String()
			}
			if got != tt.want {
				t.Errorf("leftmost match in %q = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestCompileTokensMixed verifies a mixed numeric and character compilation
// matches both sub-languages and nothing else.
func TestCompileTokensMixed(t *testing.T) {
	re := mustAnchored(t, CompileTokens("0-10", "a-f"))

	accept := []string{"0", "5", "10", "a", "c", "f"}
	for _, s := range accept {
		if !matches(t, re, s) {
			t.Errorf("match(%q) = false, want true", s)
		}
	}
	reject := []string{"11", "00", "g", "A", "a5"}
	for _, s := range reject {
		if matches(t, re, s) {
			t.Errorf("match(%q) = true, want false", s)
		}
	}
}
