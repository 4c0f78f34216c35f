package jsonvalue

// Type identifies which variant a Value currently holds.
type Type int

const (
	// TypeInvalid marks a value produced from a malformed encoding, or a
	// zero Value. It is the default state.
	TypeInvalid Type = iota
	TypeNull
	TypeBoolean
	TypeInteger
	TypeFloat
	TypeString
	TypeArray
	TypeObject
)

// String returns the name of the type.
func (t Type) String() string {
	switch t {
	case TypeInvalid:
		return "Invalid"
	case TypeNull:
		return "Null"
	case TypeBoolean:
		return "Boolean"
	case TypeInteger:
		return "Integer"
	case TypeFloat:
		return "Float"
	case TypeString:
		return "String"
	case TypeArray:
		return "Array"
	case TypeObject:
		return "Object"
	default:
		return "???"
	}
}
