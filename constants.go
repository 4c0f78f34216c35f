package jsonvalue

const (
	// Encoding defaults
	DefaultIndentSpaces  = 4
	DefaultWrapThreshold = 60

	// Decoding limits
	DefaultMaxNestingDepth = 1000
)

// shortEscapes maps the code points that have a one-character escape form
// to their escape letter (RFC 7159 section 7).
var shortEscapes = map[rune]rune{
	0x22: '"',
	0x5C: '\\',
	0x08: 'b',
	0x0C: 'f',
	0x0A: 'n',
	0x0D: 'r',
	0x09: 't',
}

// shortUnescapes is the inverse of shortEscapes: escape letter to the code
// point it stands for.
var shortUnescapes = map[rune]rune{
	'"':  0x22,
	'\\': 0x5C,
	'b':  0x08,
	'f':  0x0C,
	'n':  0x0A,
	'r':  0x0D,
	't':  0x09,
}

// isWhitespace reports whether cp is insignificant whitespace per RFC 7159.
func isWhitespace(cp rune) bool {
	switch cp {
	case 0x20, 0x09, 0x0D, 0x0A:
		return true
	}
	return false
}
