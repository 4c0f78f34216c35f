// Package internal holds the collaborators of the value codec: the
// Unicode code-point codec and the canonical numeric formatter. The root
// package never touches raw UTF-8 bytes or number formatting itself;
// everything routes through here.
package internal

import "unicode/utf16"

// Decode converts UTF-8 text into its sequence of Unicode code points.
func Decode(s string) []rune {
	return []rune(s)
}

// Encode converts a sequence of Unicode code points into UTF-8 text.
func Encode(cps []rune) string {
	return string(cps)
}

// FourHexDigits renders the low 16 bits of cp as exactly four uppercase
// hexadecimal digits, the form used inside \uXXXX escapes.
func FourHexDigits(cp rune) string {
	const digits = "0123456789ABCDEF"
	var out [4]byte
	for i := 0; i < 4; i++ {
		out[i] = digits[(cp>>(4*(3-i)))&0x0F]
	}
	return string(out[:])
}

// HexDigitValue returns the numeric value of a hexadecimal digit,
// accepting both cases.
func HexDigitValue(cp rune) (rune, bool) {
	switch {
	case cp >= '0' && cp <= '9':
		return cp - '0', true
	case cp >= 'A' && cp <= 'F':
		return cp - 'A' + 10, true
	case cp >= 'a' && cp <= 'f':
		return cp - 'a' + 10, true
	default:
		return 0, false
	}
}

// SurrogatePair splits a supplementary-plane code point into its UTF-16
// surrogate halves.
func SurrogatePair(cp rune) (high, low rune) {
	return utf16.EncodeRune(cp)
}

// CombineSurrogates reassembles the code point encoded by a UTF-16
// surrogate pair.
func CombineSurrogates(high, low rune) rune {
	return utf16.DecodeRune(high, low)
}
