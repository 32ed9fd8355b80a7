package regexgen_test

import (
	"fmt"

	regexgen "github.com/coregx/regexgen"
)

// ExampleRange demonstrates compiling a numeric range token into a guarded
// fragment.
func ExampleRange() {
	fmt.Println(regexgen.Join(regexgen.Range("0-9")))
	// Output: (?:(?<![\d-])(?:[0-9])(?!\d))
}

// ExamplePattern_Save demonstrates saving a fragment and reusing it by name.
func ExamplePattern_Save() {
	c := regexgen.NewComposer()
	c.Join(regexgen.Raw(`\w`).OneOrMore().Save("word"))

	fmt.Println(c.Join("<word>", "-", "<word>"))
	// Output: (?:\w)+-(?:\w)+
}

// ExampleComposer_FullMatch demonstrates the anchored composition of a
// dotted-quad address matcher.
func ExampleComposer_FullMatch() {
	c := regexgen.NewComposer()
	octet := regexgen.Range("0-255")

	re := regexgen.MustCompile(c.FullMatch(octet, ".", octet, ".", octet, ".", octet))
	fmt.Println(re.MatchString("192.168.1.1"))
	fmt.Println(re.MatchString("256.0.0.1"))
	// Output:
	// true
	// false
}

// ExampleNotBehind demonstrates a negative lookbehind with an escaped literal
// body.
func ExampleNotBehind() {
	c := regexgen.NewComposer()
	fmt.Println(c.Join(regexgen.NotBehind("$"), regexgen.Raw(`\d`).OneOrMore()))
	// Output: (?<!\$)(?:\d)+
}

// ExampleComposer_Or demonstrates the alternation group combinator.
func ExampleComposer_Or() {
	c := regexgen.NewComposer()
	fmt.Println(c.Join(c.Or("yes", "no", "maybe")))
	// Output: (?:yes|no|maybe)
}
