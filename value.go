package jsonvalue

// Value is the in-memory representation of one JSON value. Exactly one
// kind is active at a time; all access goes through methods, so reading a
// payload that does not match the kind is impossible.
//
// A Value exclusively owns its array elements and object members: values
// passed to mutators are deep-copied on the way in, and Clone deep-copies
// the whole subtree, so no structure is ever shared between two distinct
// Values.
//
// The zero Value is Invalid.
type Value struct {
	kind Type

	boolValue   bool
	intValue    int
	floatValue  float64
	stringValue string
	arrayValue  []*Value
	objectValue map[string]*Value

	// encoding caches the most recent serialization. It is cleared on
	// every mutation and never takes part in equality. For Invalid
	// values it holds the original malformed text instead.
	encoding string
}

// NewNull returns a Value of kind Null.
func NewNull() *Value {
	return &Value{kind: TypeNull}
}

// NewBool returns a Value of kind Boolean.
func NewBool(b bool) *Value {
	return &Value{kind: TypeBoolean, boolValue: b}
}

// NewInt returns a Value of kind Integer.
func NewInt(i int) *Value {
	return &Value{kind: TypeInteger, intValue: i}
}

// NewFloat returns a Value of kind Float.
func NewFloat(f float64) *Value {
	return &Value{kind: TypeFloat, floatValue: f}
}

// NewString returns a Value of kind String.
func NewString(s string) *Value {
	return &Value{kind: TypeString, stringValue: s}
}

// NewArray returns a Value of kind Array holding the given elements, each
// converted through NewValue. With no arguments it returns an empty array
// shell ready for Add/Insert.
func NewArray(elems ...any) *Value {
	v := &Value{kind: TypeArray, arrayValue: make([]*Value, 0, len(elems))}
	for _, elem := range elems {
		v.arrayValue = append(v.arrayValue, NewValue(elem))
	}
	return v
}

// NewObject returns an empty Value of kind Object, ready for Set.
func NewObject() *Value {
	return &Value{kind: TypeObject, objectValue: make(map[string]*Value)}
}

// NewValue converts a native Go value into a Value:
//
//	nil                -> Null
//	bool               -> Boolean
//	int variants       -> Integer
//	float32/float64    -> Float
//	string             -> String
//	[]any              -> Array (elements converted recursively)
//	map[string]any     -> Object (members converted recursively)
//	*Value             -> deep copy of the value
//
// Anything else yields an Invalid value.
func NewValue(value any) *Value {
	switch t := value.(type) {
	case nil:
		return NewNull()
	case *Value:
		return t.Clone()
	case bool:
		return NewBool(t)
	case int:
		return NewInt(t)
	case int8:
		return NewInt(int(t))
	case int16:
		return NewInt(int(t))
	case int32:
		return NewInt(int(t))
	case int64:
		return NewInt(int(t))
	case uint:
		return NewInt(int(t))
	case uint8:
		return NewInt(int(t))
	case uint16:
		return NewInt(int(t))
	case uint32:
		return NewInt(int(t))
	case uint64:
		return NewInt(int(t))
	case float32:
		return NewFloat(float64(t))
	case float64:
		return NewFloat(t)
	case string:
		return NewString(t)
	case []any:
		return NewArray(t...)
	case map[string]any:
		v := NewObject()
		for key, member := range t {
			v.objectValue[key] = NewValue(member)
		}
		return v
	default:
		return &Value{}
	}
}

// Clone returns a deep copy of v. The copy owns its entire subtree and
// starts with an empty encoding cache.
func (v *Value) Clone() *Value {
	if v == nil {
		return &Value{}
	}
	out := &Value{kind: v.kind}
	switch v.kind {
	case TypeBoolean:
		out.boolValue = v.boolValue
	case TypeInteger:
		out.intValue = v.intValue
	case TypeFloat:
		out.floatValue = v.floatValue
	case TypeString:
		out.stringValue = v.stringValue
	case TypeArray:
		out.arrayValue = make([]*Value, len(v.arrayValue))
		for i, elem := range v.arrayValue {
			out.arrayValue[i] = elem.Clone()
		}
	case TypeObject:
		out.objectValue = make(map[string]*Value, len(v.objectValue))
		for key, member := range v.objectValue {
			out.objectValue[key] = member.Clone()
		}
	}
	return out
}

// Type returns the kind of the value. A nil receiver is Invalid.
func (v *Value) Type() Type {
	if v == nil {
		return TypeInvalid
	}
	return v.kind
}

// IsValid reports whether the value holds something other than Invalid.
func (v *Value) IsValid() bool {
	return v.Type() != TypeInvalid
}

// Size returns the element count of an Array, the member count of an
// Object, and 0 for every other kind.
func (v *Value) Size() int {
	switch v.Type() {
	case TypeArray:
		return len(v.arrayValue)
	case TypeObject:
		return len(v.objectValue)
	default:
		return 0
	}
}

// AsBool returns the boolean payload, or false for any other kind. Like
// the other As accessors it never fails; a caller must not infer the kind
// from a successful coercion.
func (v *Value) AsBool() bool {
	if v.Type() == TypeBoolean {
		return v.boolValue
	}
	return false
}

// AsInt returns the integer payload, the float payload truncated toward
// zero, or 0 for any other kind.
func (v *Value) AsInt() int {
	switch v.Type() {
	case TypeInteger:
		return v.intValue
	case TypeFloat:
		return int(v.floatValue)
	default:
		return 0
	}
}

// AsFloat returns the float payload, the integer payload widened, or 0.0
// for any other kind.
func (v *Value) AsFloat() float64 {
	switch v.Type() {
	case TypeFloat:
		return v.floatValue
	case TypeInteger:
		return float64(v.intValue)
	default:
		return 0.0
	}
}

// AsString returns the string payload, or "" for any other kind.
func (v *Value) AsString() string {
	if v.Type() == TypeString {
		return v.stringValue
	}
	return ""
}

// Element returns the array element at index. The second result is false
// when the value is not an Array or the index is out of range.
func (v *Value) Element(index int) (*Value, bool) {
	if v.Type() != TypeArray || index < 0 || index >= len(v.arrayValue) {
		return nil, false
	}
	return v.arrayValue[index], true
}

// Index returns the array element at index, or a fresh Null value when
// the receiver is not an Array or the index is out of range. The returned
// placeholder is unshared, so mutating through it never affects the tree.
// Children are views for reading; mutate the tree through its root so
// cached encodings stay consistent.
func (v *Value) Index(index int) *Value {
	if elem, ok := v.Element(index); ok {
		return elem
	}
	return NewNull()
}

// Lookup returns the object member under key. The second result is false
// when the value is not an Object or the key is absent.
func (v *Value) Lookup(key string) (*Value, bool) {
	if v.Type() != TypeObject {
		return nil, false
	}
	member, ok := v.objectValue[key]
	return member, ok
}

// Key returns the object member under key, or a fresh Null value when the
// receiver is not an Object or the key is absent. See Index for the
// placeholder semantics.
func (v *Value) Key(key string) *Value {
	if member, ok := v.Lookup(key); ok {
		return member
	}
	return NewNull()
}

// Has reports whether an Object value has a member under key. It is false
// for every non-Object kind.
func (v *Value) Has(key string) bool {
	if v.Type() != TypeObject {
		return false
	}
	_, ok := v.objectValue[key]
	return ok
}

// Equal reports structural equality. Two Invalid values are equal
// regardless of their diagnostic text, as are two Nulls. Arrays compare
// element-wise in order; objects compare by key set and per-key value.
// Cached encodings never participate.
func (v *Value) Equal(other *Value) bool {
	t := v.Type()
	if t != other.Type() {
		return false
	}
	switch t {
	case TypeInvalid, TypeNull:
		return true
	case TypeBoolean:
		return v.boolValue == other.boolValue
	case TypeInteger:
		return v.intValue == other.intValue
	case TypeFloat:
		return v.floatValue == other.floatValue
	case TypeString:
		return v.stringValue == other.stringValue
	case TypeArray:
		if len(v.arrayValue) != len(other.arrayValue) {
			return false
		}
		for i, elem := range v.arrayValue {
			if !elem.Equal(other.arrayValue[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		if len(v.objectValue) != len(other.objectValue) {
			return false
		}
		for key, member := range v.objectValue {
			otherMember, ok := other.objectValue[key]
			if !ok || !member.Equal(otherMember) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String returns the compact encoding of the value, making Values print
// naturally with the fmt package.
func (v *Value) String() string {
	return v.ToEncoding(nil)
}
