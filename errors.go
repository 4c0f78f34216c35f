package jsonvalue

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding is reported by [Value.Err] for values of kind
// TypeInvalid. Parsing itself never returns an error; this sentinel exists
// for callers who want to branch with errors.Is.
var ErrInvalidEncoding = errors.New("invalid JSON encoding")

// EncodingError describes a malformed encoding together with the
// offending text.
type EncodingError struct {
	Text string // the trimmed original text that failed to parse
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid JSON encoding: %s", e.Text)
}

// Unwrap returns ErrInvalidEncoding for error wrapping support.
func (e *EncodingError) Unwrap() error {
	return ErrInvalidEncoding
}

// Err returns nil for every valid value and an *EncodingError carrying the
// original malformed text for an Invalid one.
func (v *Value) Err() error {
	if v == nil {
		return &EncodingError{}
	}
	if v.kind != TypeInvalid {
		return nil
	}
	return &EncodingError{Text: v.encoding}
}
