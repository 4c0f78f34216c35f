package jsonvalue

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cybergodev/jsonvalue/internal"
)

// ToEncoding renders the value as JSON text. A nil opts means
// DefaultEncodeOptions. The result is cached on the value and reused
// until the value is mutated; pass opts with Reencode set when asking for
// a different rendering of unchanged content (see the package
// documentation on the encoding cache).
//
// Invalid values render as a diagnostic string embedding the original
// malformed text; the diagnostic itself is never cached.
func (v *Value) ToEncoding(opts *EncodeOptions) string {
	if v == nil {
		return "(Invalid JSON: )"
	}
	if v.kind == TypeInvalid {
		return fmt.Sprintf("(Invalid JSON: %s)", v.encoding)
	}
	o := opts.normalized()
	return v.encode(&o)
}

func (v *Value) encode(o *EncodeOptions) string {
	if o.Reencode {
		v.encoding = ""
	}
	if v.encoding != "" {
		return v.encoding
	}
	switch v.kind {
	case TypeNull:
		v.encoding = "null"
	case TypeBoolean:
		if v.boolValue {
			v.encoding = "true"
		} else {
			v.encoding = "false"
		}
	case TypeInteger:
		v.encoding = internal.FormatInt(v.intValue)
	case TypeFloat:
		v.encoding = internal.FormatFloat(v.floatValue)
	case TypeString:
		v.encoding = `"` + escapeString(v.stringValue, o) + `"`
	case TypeArray:
		v.encoding = v.encodeArray(o)
	case TypeObject:
		v.encoding = v.encodeObject(o)
	}
	return v.encoding
}

// encodeArray builds the inline and the wrapped rendering in one pass and
// keeps the wrapped one when pretty printing is on and the inline form,
// including leading indentation, would exceed the wrap threshold. Wrapped
// lines are CRLF-separated.
func (v *Value) encodeArray(o *EncodeOptions) string {
	nested := *o
	nested.IndentLevel++
	nestedIndent := strings.Repeat(" ", nested.IndentLevel*nested.IndentSpaces)
	var inline, wrapped strings.Builder
	inline.WriteByte('[')
	wrapped.WriteString("[\r\n")
	for i, elem := range v.arrayValue {
		if i > 0 {
			inline.WriteString(inlineSeparator(o))
			wrapped.WriteString(",\r\n")
		}
		encoded := elem.ToEncoding(&nested)
		inline.WriteString(encoded)
		wrapped.WriteString(nestedIndent)
		wrapped.WriteString(encoded)
	}
	inline.WriteByte(']')
	indent := strings.Repeat(" ", o.IndentLevel*o.IndentSpaces)
	wrapped.WriteString("\r\n")
	wrapped.WriteString(indent)
	wrapped.WriteByte(']')
	if o.Pretty && len(indent)+inline.Len() > o.WrapThreshold {
		return wrapped.String()
	}
	return inline.String()
}

// encodeObject mirrors encodeArray; members are rendered in sorted key
// order, which also fixes the iteration order of the value.
func (v *Value) encodeObject(o *EncodeOptions) string {
	nested := *o
	nested.IndentLevel++
	nestedIndent := strings.Repeat(" ", nested.IndentLevel*nested.IndentSpaces)
	keySeparator := ":"
	if o.Pretty {
		keySeparator = ": "
	}
	keys := make([]string, 0, len(v.objectValue))
	for key := range v.objectValue {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var inline, wrapped strings.Builder
	inline.WriteByte('{')
	wrapped.WriteString("{\r\n")
	for i, key := range keys {
		if i > 0 {
			inline.WriteString(inlineSeparator(o))
			wrapped.WriteString(",\r\n")
		}
		encoded := NewString(key).ToEncoding(&nested) + keySeparator + v.objectValue[key].ToEncoding(&nested)
		inline.WriteString(encoded)
		wrapped.WriteString(nestedIndent)
		wrapped.WriteString(encoded)
	}
	inline.WriteByte('}')
	indent := strings.Repeat(" ", o.IndentLevel*o.IndentSpaces)
	wrapped.WriteString("\r\n")
	wrapped.WriteString(indent)
	wrapped.WriteByte('}')
	if o.Pretty && len(indent)+inline.Len() > o.WrapThreshold {
		return wrapped.String()
	}
	return inline.String()
}

func inlineSeparator(o *EncodeOptions) string {
	if o.Pretty {
		return ", "
	}
	return ","
}

// escapeString produces the escaped body of a quoted JSON string. The
// quote, the backslash, and control characters are always escaped, using
// the short form where one exists; everything above 0x7F is escaped only
// when EscapeNonASCII is set, as \uXXXX or as a UTF-16 surrogate pair for
// supplementary-plane code points.
func escapeString(s string, o *EncodeOptions) string {
	var out strings.Builder
	for _, cp := range internal.Decode(s) {
		switch {
		case cp == 0x22 || cp == 0x5C || cp < 0x20:
			out.WriteByte('\\')
			if short, ok := shortEscapes[cp]; ok {
				out.WriteRune(short)
			} else {
				out.WriteByte('u')
				out.WriteString(internal.FourHexDigits(cp))
			}
		case o.EscapeNonASCII && cp > 0x7F:
			if cp > 0xFFFF {
				high, low := internal.SurrogatePair(cp)
				out.WriteString(`\u`)
				out.WriteString(internal.FourHexDigits(high))
				out.WriteString(`\u`)
				out.WriteString(internal.FourHexDigits(low))
			} else {
				out.WriteString(`\u`)
				out.WriteString(internal.FourHexDigits(cp))
			}
		default:
			out.WriteString(internal.Encode([]rune{cp}))
		}
	}
	return out.String()
}
