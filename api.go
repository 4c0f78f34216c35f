package jsonvalue

import "github.com/cybergodev/jsonvalue/internal"

// FromEncoding parses text as one JSON value. It never fails: malformed
// input yields a Value of kind TypeInvalid that keeps the trimmed
// original text for diagnostics. An Invalid element inside an otherwise
// well-formed array or object is stored as-is; only a malformed top-level
// value reports as Invalid to the caller.
//
// The result starts out with the trimmed original text as its cached
// encoding, so ToEncoding returns that text verbatim until the value is
// mutated or re-encoded with Reencode set.
func FromEncoding(text string) *Value {
	return FromCodePoints(internal.Decode(text))
}

// FromCodePoints is FromEncoding for input already decoded into Unicode
// code points.
func FromCodePoints(cps []rune) *Value {
	return fromCodePoints(cps, 0)
}

// Valid reports whether text parses as a JSON value.
func Valid(text string) bool {
	return FromEncoding(text).IsValid()
}
