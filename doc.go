// Package jsonvalue provides an in-memory tagged representation of JSON
// values together with a text codec for them.
//
// A [Value] holds exactly one of the JSON kinds (null, boolean, integer,
// float, string, array, object) or the Invalid kind, which represents a
// failed parse and keeps the offending text for diagnostics.
//
// # Basic Usage
//
// Parsing and rendering:
//
//	v := jsonvalue.FromEncoding(`{"name":"Toto","handles":[3,7]}`)
//	name := v.Key("name").AsString()
//	text := v.ToEncoding(nil)
//
// Building values programmatically:
//
//	obj := jsonvalue.NewObject()
//	obj.Set("value", 31)
//	obj.Set("handles", jsonvalue.NewArray(3, 7))
//
// Pretty printing:
//
//	opts := jsonvalue.DefaultEncodeOptions()
//	opts.Pretty = true
//	opts.Reencode = true
//	text := obj.ToEncoding(opts)
//
// # Errors
//
// Parsing never returns an error: every malformed input collapses to a
// Value of kind [TypeInvalid]. Callers that prefer the error-channel idiom
// can use [Value.Err], which reports [ErrInvalidEncoding] for such values.
//
// # Encoding Cache
//
// Every Value caches its most recent encoding and reuses it until the
// value is mutated. The cache is keyed on content only, not on the options
// used to compute it: asking for a pretty encoding of a value that already
// cached a compact one returns the stale compact text unless
// [EncodeOptions].Reencode is set. A value produced by [FromEncoding]
// starts out with its original (trimmed) text as the cached encoding.
//
// # Concurrency
//
// A Value is not safe for concurrent mutation. Hand a [Value.Clone] to
// another goroutine, or provide external exclusion.
package jsonvalue
