package jsonvalue

// EncodeOptions configures how a Value is rendered by [Value.ToEncoding].
type EncodeOptions struct {
	// EscapeNonASCII escapes every code point above 0x7F as \uXXXX
	// (a UTF-16 surrogate pair above U+FFFF) instead of emitting raw
	// UTF-8.
	EscapeNonASCII bool

	// Reencode discards any cached encoding, on this value and on every
	// value below it, before rendering. Required whenever the options
	// differ from the ones that produced the cached encoding.
	Reencode bool

	// Pretty enables multi-line layout for arrays and objects whose
	// inline form would exceed WrapThreshold.
	Pretty bool

	// IndentSpaces is the number of spaces per nesting level when a
	// container is wrapped. Values below 1 mean DefaultIndentSpaces.
	IndentSpaces int

	// WrapThreshold is the maximum inline length (indentation included)
	// before a pretty-printed container is wrapped onto multiple lines.
	// Values below 1 mean DefaultWrapThreshold.
	WrapThreshold int

	// IndentLevel is the nesting depth the value is assumed to sit at.
	// It is incremented internally when recursing into children.
	IndentLevel int
}

// DefaultEncodeOptions returns the options used when ToEncoding is given
// nil: compact output, raw UTF-8, four-space indentation at threshold 60.
func DefaultEncodeOptions() *EncodeOptions {
	return &EncodeOptions{
		IndentSpaces:  DefaultIndentSpaces,
		WrapThreshold: DefaultWrapThreshold,
	}
}

// normalized returns a copy with out-of-range fields replaced by defaults.
func (o *EncodeOptions) normalized() EncodeOptions {
	if o == nil {
		return *DefaultEncodeOptions()
	}
	out := *o
	if out.IndentSpaces < 1 {
		out.IndentSpaces = DefaultIndentSpaces
	}
	if out.WrapThreshold < 1 {
		out.WrapThreshold = DefaultWrapThreshold
	}
	if out.IndentLevel < 0 {
		out.IndentLevel = 0
	}
	return out
}
