package jsonvalue

import (
	"math"
	"strings"

	"github.com/cybergodev/jsonvalue/internal"
)

// fromCodePoints parses one JSON value out of cps. The trimmed original
// text is stored as the result's cached encoding, which doubles as the
// diagnostic text when the parse fails. depth counts container nesting;
// past DefaultMaxNestingDepth the result degrades to Invalid so that
// adversarial input cannot exhaust the stack.
func fromCodePoints(cps []rune, depth int) *Value {
	v := &Value{}
	trimmed := trimWhitespace(cps)
	v.encoding = internal.Encode(trimmed)
	if len(trimmed) == 0 || depth > DefaultMaxNestingDepth {
		return v
	}
	first, last := trimmed[0], trimmed[len(trimmed)-1]
	switch {
	case first == '{' && last == '}':
		v.parseObject(trimmed[1:len(trimmed)-1], depth)
	case first == '[' && last == ']':
		v.parseArray(trimmed[1:len(trimmed)-1], depth)
	case len(trimmed) >= 2 && first == '"' && last == '"':
		if s, ok := unescapeString(trimmed[1 : len(trimmed)-1]); ok {
			v.kind = TypeString
			v.stringValue = s
		}
	case v.encoding == "null":
		v.kind = TypeNull
	case v.encoding == "true":
		v.kind = TypeBoolean
		v.boolValue = true
	case v.encoding == "false":
		v.kind = TypeBoolean
		v.boolValue = false
	default:
		if strings.ContainsAny(v.encoding, ".eE") {
			v.parseFloat(trimmed)
		} else {
			v.parseInt(trimmed)
		}
	}
	return v
}

// trimWhitespace strips leading and trailing insignificant whitespace.
func trimWhitespace(cps []rune) []rune {
	start := 0
	for start < len(cps) && isWhitespace(cps[start]) {
		start++
	}
	end := len(cps)
	for end > start && isWhitespace(cps[end-1]) {
		end--
	}
	return cps[start:end]
}

// scanValue extracts the next member encoding from cps starting at
// offset, ending at the first delimiter that is not nested inside any
// string, array, or object. It tracks nesting with a stack of expected
// closing delimiters; entering a string suspends recognition of
// everything except the closing quote. It returns the member's code
// points, the offset just past the consumed input, and whether the scan
// found well-balanced nesting. Reaching the end of input with the stack
// non-empty means an unterminated structure.
func scanValue(cps []rune, offset int, delimiter rune) ([]rune, int, bool) {
	if offset >= len(cps) {
		return nil, offset, false
	}
	var expected []rune
	insideString := false
	end := offset
	for end < len(cps) {
		cp := cps[end]
		end++
		if n := len(expected); n > 0 && cp == expected[n-1] {
			insideString = false
			expected = expected[:n-1]
			continue
		}
		if insideString {
			continue
		}
		switch cp {
		case '"':
			insideString = true
			expected = append(expected, '"')
		case '[':
			expected = append(expected, ']')
		case '{':
			expected = append(expected, '}')
		}
		if cp == delimiter && len(expected) == 0 {
			break
		}
	}
	if len(expected) > 0 {
		return nil, offset, false
	}
	segmentEnd := end
	if cps[end-1] == delimiter {
		segmentEnd--
	}
	return cps[offset:segmentEnd], end, true
}

// parseArray parses the body between the outer brackets, splitting on
// top-level commas. Elements that fail to parse are stored as Invalid
// values; only unbalanced nesting invalidates the whole array.
func (v *Value) parseArray(cps []rune, depth int) {
	elems := make([]*Value, 0)
	offset := 0
	for offset < len(cps) {
		segment, next, ok := scanValue(cps, offset, ',')
		if !ok {
			return
		}
		offset = next
		elems = append(elems, parseChild(segment, depth))
	}
	v.kind = TypeArray
	v.arrayValue = elems
}

// parseObject parses the body between the outer braces: each member is a
// key segment up to a top-level colon, which must decode as a String, and
// a value segment up to a top-level comma. A duplicate key keeps the last
// value.
func (v *Value) parseObject(cps []rune, depth int) {
	members := make(map[string]*Value)
	offset := 0
	for offset < len(cps) {
		keySegment, next, ok := scanValue(cps, offset, ':')
		if !ok {
			return
		}
		offset = next
		key := fromCodePoints(keySegment, depth+1)
		if key.kind != TypeString {
			return
		}
		valueSegment, next, ok := scanValue(cps, offset, ',')
		if !ok || len(valueSegment) == 0 {
			return
		}
		offset = next
		members[key.stringValue] = parseChild(valueSegment, depth)
	}
	v.kind = TypeObject
	v.objectValue = members
}

// parseChild parses a container member. Valid children drop the text kept
// in their cache, so later re-encoding of a mutated container does not
// resurrect the original spelling; Invalid children keep theirs as the
// diagnostic.
func parseChild(cps []rune, depth int) *Value {
	child := fromCodePoints(cps, depth+1)
	if child.kind != TypeInvalid {
		child.encoding = ""
	}
	return child
}

// parseInt runs the integer grammar: optional minus, then a lone zero or
// a nonzero digit followed by digits, nothing else. Each accumulated
// digit is round-trip checked so overflow of the machine integer width
// invalidates the parse. On any failure the value simply stays Invalid.
func (v *Value) parseInt(cps []rune) {
	const (
		stateSign = iota
		stateFirstDigit
		stateZero
		stateDigits
	)
	index := 0
	state := stateSign
	negative := false
	value := 0
	for index < len(cps) {
		cp := cps[index]
		switch state {
		case stateSign:
			if cp == '-' {
				negative = true
				index++
			}
			state = stateFirstDigit
		case stateFirstDigit:
			if cp == '0' {
				state = stateZero
			} else if cp >= '1' && cp <= '9' {
				state = stateDigits
				value = int(cp - '0')
			} else {
				return
			}
			index++
		case stateZero:
			// nothing may follow a leading zero
			return
		case stateDigits:
			if cp < '0' || cp > '9' {
				return
			}
			previous := value
			value = value*10 + int(cp-'0')
			if value/10 != previous {
				return
			}
			index++
		}
	}
	if state >= stateZero {
		v.kind = TypeInteger
		if negative {
			value = -value
		}
		v.intValue = value
	}
}

// parseFloat runs the float grammar
//
//	[-] (0 | 1-9 *DIGIT) ["." 1*DIGIT] [("e"/"E") ["+"/"-"] 1*DIGIT]
//
// accumulating fractional digits as digit/10^position. A bare dot, an
// exponent marker without digits, or magnitude/exponent overflow leaves
// the value Invalid.
func (v *Value) parseFloat(cps []rune) {
	const (
		stateSign = iota
		stateFirstDigit
		stateZero
		stateDigits
		stateFractionFirst
		stateFraction
		stateExponentSign
		stateExponentFirst
		stateExponent
	)
	index := 0
	state := stateSign
	negativeMagnitude := false
	negativeExponent := false
	magnitude := 0.0
	fraction := 0.0
	exponent := 0.0
	fractionDigits := 0
	for index < len(cps) {
		cp := cps[index]
		switch state {
		case stateSign:
			if cp == '-' {
				negativeMagnitude = true
				index++
			}
			state = stateFirstDigit
		case stateFirstDigit:
			if cp == '0' {
				state = stateZero
			} else if cp >= '1' && cp <= '9' {
				state = stateDigits
				magnitude = float64(cp - '0')
			} else {
				return
			}
			index++
		case stateZero:
			switch cp {
			case '.':
				state = stateFractionFirst
			case 'e', 'E':
				state = stateExponentSign
			default:
				return
			}
			index++
		case stateDigits:
			if cp >= '0' && cp <= '9' {
				previous := int64(magnitude)
				magnitude = magnitude*10 + float64(cp-'0')
				if int64(magnitude)/10 != previous {
					return
				}
			} else if cp == '.' {
				state = stateFractionFirst
			} else if cp == 'e' || cp == 'E' {
				state = stateExponentSign
			} else {
				return
			}
			index++
		case stateFractionFirst:
			if cp < '0' || cp > '9' {
				return
			}
			fractionDigits++
			fraction += float64(cp-'0') / math.Pow(10, float64(fractionDigits))
			state = stateFraction
			index++
		case stateFraction:
			if cp >= '0' && cp <= '9' {
				fractionDigits++
				fraction += float64(cp-'0') / math.Pow(10, float64(fractionDigits))
			} else if cp == 'e' || cp == 'E' {
				state = stateExponentSign
			} else {
				return
			}
			index++
		case stateExponentSign:
			if cp == '-' {
				negativeExponent = true
				index++
			} else if cp == '+' {
				index++
			}
			state = stateExponentFirst
		case stateExponentFirst:
			if cp < '0' || cp > '9' {
				return
			}
			exponent = float64(cp - '0')
			state = stateExponent
			index++
		case stateExponent:
			if cp < '0' || cp > '9' {
				return
			}
			previous := int64(exponent)
			exponent = exponent*10 + float64(cp-'0')
			if int64(exponent)/10 != previous {
				return
			}
			index++
		}
	}
	if state < stateZero || state == stateFractionFirst || state == stateExponentSign || state == stateExponentFirst {
		return
	}
	exponentSign := 1.0
	if negativeExponent {
		exponentSign = -1.0
	}
	value := (magnitude + fraction) * math.Pow(10, exponent*exponentSign)
	if negativeMagnitude {
		value = -value
	}
	v.kind = TypeFloat
	v.floatValue = value
}

// unescapeString runs the unescape state machine over the body of a
// quoted string. A high surrogate from \uXXXX is held pending its low
// half; an unpaired surrogate, a bad escape letter, a non-hex digit, or
// ending mid-escape all invalidate the string.
func unescapeString(cps []rune) (string, bool) {
	const (
		stateDefault = iota
		stateEscape
		stateHex // four consecutive states, one per hex digit
	)
	var out []rune
	state := stateDefault
	var fromHex rune
	var pendingHigh rune
	for _, cp := range cps {
		switch {
		case state == stateDefault:
			if cp == '\\' {
				state = stateEscape
			} else if pendingHigh != 0 {
				return "", false
			} else {
				out = append(out, cp)
			}
		case state == stateEscape:
			if cp == 'u' {
				state = stateHex
				fromHex = 0
				continue
			}
			if pendingHigh != 0 {
				return "", false
			}
			short, ok := shortUnescapes[cp]
			if !ok {
				return "", false
			}
			out = append(out, short)
			state = stateDefault
		default: // collecting hex digits
			digit, ok := internal.HexDigitValue(cp)
			if !ok {
				return "", false
			}
			fromHex = fromHex<<4 + digit
			state++
			if state == stateHex+4 {
				state = stateDefault
				switch {
				case fromHex >= 0xD800 && fromHex <= 0xDBFF:
					if pendingHigh != 0 {
						return "", false
					}
					pendingHigh = fromHex
				case fromHex >= 0xDC00 && fromHex <= 0xDFFF:
					if pendingHigh == 0 {
						return "", false
					}
					out = append(out, internal.CombineSurrogates(pendingHigh, fromHex))
					pendingHigh = 0
				default:
					if pendingHigh != 0 {
						return "", false
					}
					out = append(out, fromHex)
				}
			}
		}
	}
	if state != stateDefault || pendingHigh != 0 {
		return "", false
	}
	return internal.Encode(out), true
}
