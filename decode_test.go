package jsonvalue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLiterals(t *testing.T) {
	tests := []struct {
		text string
		kind Type
	}{
		{"null", TypeNull},
		{"true", TypeBoolean},
		{"false", TypeBoolean},
		{"  null\r\n", TypeNull},
		{"nil", TypeInvalid},
		{"True", TypeInvalid},
		{"", TypeInvalid},
		{"   \t ", TypeInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.kind, FromEncoding(tt.text).Type())
		})
	}

	assert.True(t, FromEncoding("true").AsBool())
	assert.False(t, FromEncoding("false").AsBool())
}

func TestDecodeIntegers(t *testing.T) {
	tests := []struct {
		text string
		want int
		ok   bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"-242", -242, true},
		{"+17", 0, false},
		{"00", 0, false},
		{"0025", 0, false},
		{"-0025", 0, false},
		{"+", 0, false},
		{"-", 0, false},
		{"X", 0, false},
		{"le", 0, false},
		{"4 2", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			v := FromEncoding(tt.text)
			if !tt.ok {
				assert.Equal(t, TypeInvalid, v.Type())
				return
			}
			require.Equal(t, TypeInteger, v.Type())
			assert.Equal(t, tt.want, v.AsInt())
		})
	}
}

func TestDecodeIntegerOverflow(t *testing.T) {
	huge := strings.Repeat("9", 57)
	assert.Equal(t, TypeInvalid, FromEncoding(huge).Type())
	assert.Equal(t, TypeInvalid, FromEncoding("-"+huge).Type())
}

func TestDecodeFloats(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"3.14159", 3.14159},
		{"-17.03", -17.03},
		{"0.5", 0.5},
		{"-0.25", -0.25},
		{"5.3e-4", 5.3e-4},
		{"5.03e+14", 5.03e+14},
		{"2E3", 2000},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			v := FromEncoding(tt.text)
			require.Equal(t, TypeFloat, v.Type())
			assert.InEpsilon(t, tt.want, v.AsFloat(), 1e-9)
		})
	}

	// exact when no fraction digits are involved
	v := FromEncoding("5E+0")
	require.Equal(t, TypeFloat, v.Type())
	assert.Equal(t, 5.0, v.AsFloat())
}

func TestDecodeFloatRejects(t *testing.T) {
	tests := []string{
		".4",
		"1.",
		"1.e4",
		"1e",
		"1e+",
		"1e-",
		"--1.0",
		"1.0.0",
		"e4",
		strings.Repeat("9", 57) + ".0",
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			assert.Equal(t, TypeInvalid, FromEncoding(text).Type())
		})
	}
}

func TestDecodeStrings(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain", `"Hello, World!"`, "Hello, World!"},
		{"empty", `""`, ""},
		{"short escapes", `"a\"b\\c\bd\fe\nf\rg\th"`, "a\"b\\c\bd\fe\nf\rg\th"},
		{"hex escape", "\"A\\u00E9\"", "Aé"},
		{"raw UTF-8", `"κόσμε"`, "κόσμε"},
		{"escaped kosme", "\"\\u03BA\\u1F79\\u03C3\\u03BC\\u03B5\"", "κόσμε"},
		{"surrogate pair", "\"\\uD84C\\uDFB4\"", "\U000233B4"},
		{"poo", "\"\\uD83D\\uDCA9\"", "\U0001F4A9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromEncoding(tt.text)
			require.Equal(t, TypeString, v.Type())
			assert.Equal(t, tt.want, v.AsString())
		})
	}
}

func TestDecodeStringRejects(t *testing.T) {
	tests := []string{
		`"\u123X"`,
		`"\x"`,
		`"\uD800"`,
		`"\uD800A"`,
		`"\uDCA9\uD83D"`,
		`"unterminated`,
		`"trailing\"`,
		`"`,
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			assert.Equal(t, TypeInvalid, FromEncoding(text).Type())
		})
	}
}

func TestDecodeArrays(t *testing.T) {
	v := FromEncoding(`[1,"Hello",true]`)
	require.Equal(t, TypeArray, v.Type())
	require.Equal(t, 3, v.Size())
	assert.Equal(t, TypeInteger, v.Index(0).Type())
	assert.Equal(t, 1, v.Index(0).AsInt())
	assert.Equal(t, "Hello", v.Index(1).AsString())
	assert.True(t, v.Index(2).AsBool())

	t.Run("empty", func(t *testing.T) {
		v := FromEncoding("[]")
		require.Equal(t, TypeArray, v.Type())
		assert.Equal(t, 0, v.Size())
	})

	t.Run("nested", func(t *testing.T) {
		v := FromEncoding(`[1,[1,2],true]`)
		require.Equal(t, TypeArray, v.Type())
		require.Equal(t, 3, v.Size())
		inner := v.Index(1)
		require.Equal(t, TypeArray, inner.Type())
		assert.Equal(t, 2, inner.Index(1).AsInt())
	})

	t.Run("whitespace everywhere", func(t *testing.T) {
		v := FromEncoding(" [ 1 ,\r \t \"Hello\" \r\n ,\n true ] ")
		require.Equal(t, TypeArray, v.Type())
		require.Equal(t, 3, v.Size())
		assert.Equal(t, "Hello", v.Index(1).AsString())
	})

	t.Run("trailing comma tolerated", func(t *testing.T) {
		v := FromEncoding("[1,]")
		require.Equal(t, TypeArray, v.Type())
		assert.Equal(t, 1, v.Size())
	})
}

func TestDecodeObjects(t *testing.T) {
	v := FromEncoding(`{"nested":{"value": 31, "well": true}, "end": null}`)
	require.Equal(t, TypeObject, v.Type())
	require.Equal(t, 2, v.Size())
	assert.Equal(t, TypeNull, v.Key("end").Type())

	nested := v.Key("nested")
	require.Equal(t, TypeObject, nested.Type())
	assert.Equal(t, 31, nested.Key("value").AsInt())
	assert.True(t, nested.Key("well").AsBool())

	t.Run("empty", func(t *testing.T) {
		v := FromEncoding("{}")
		require.Equal(t, TypeObject, v.Type())
		assert.Equal(t, 0, v.Size())
	})

	t.Run("last duplicate key wins", func(t *testing.T) {
		v := FromEncoding(`{"a": 1, "a": 2}`)
		require.Equal(t, TypeObject, v.Type())
		assert.Equal(t, 1, v.Size())
		assert.Equal(t, 2, v.Key("a").AsInt())
	})

	t.Run("non-string key", func(t *testing.T) {
		assert.Equal(t, TypeInvalid, FromEncoding(`{31: true}`).Type())
	})

	t.Run("missing value", func(t *testing.T) {
		assert.Equal(t, TypeInvalid, FromEncoding(`{"a":}`).Type())
	})

	t.Run("missing colon", func(t *testing.T) {
		assert.Equal(t, TypeInvalid, FromEncoding(`{"a" 1}`).Type())
	})
}

func TestDecodeUnterminated(t *testing.T) {
	tests := []string{
		`[1, "Hello", true`,
		`{ "value": 1, "array": [42, 57, "flag": true }`,
		`[1,"Hello, true`,
		`{"a": 1`,
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			assert.Equal(t, TypeInvalid, FromEncoding(text).Type())
		})
	}
}

func TestDecodeKeepsInvalidChildren(t *testing.T) {
	v := FromEncoding("[1, oops, 3]")
	require.Equal(t, TypeArray, v.Type())
	require.Equal(t, 3, v.Size())
	assert.Equal(t, TypeInteger, v.Index(0).Type())
	assert.Equal(t, TypeInvalid, v.Index(1).Type())
	assert.Equal(t, TypeInteger, v.Index(2).Type())
}

func TestDecodeWhitespaceInsensitive(t *testing.T) {
	compact := FromEncoding(`{"value":31,"handles":[3,7],"name":"Toto"}`)
	spaced := FromEncoding("\t{ \"value\" : 31 ,\r\n  \"handles\" : [ 3 , 7 ] ,\n  \"name\" : \"Toto\" }  ")
	require.True(t, compact.IsValid())
	require.True(t, spaced.IsValid())
	assert.True(t, compact.Equal(spaced))
}

func TestDecodeDepthGuard(t *testing.T) {
	deep := FromEncoding(strings.Repeat("[", 100) + "1" + strings.Repeat("]", 100))
	for deep.Type() == TypeArray {
		deep = deep.Index(0)
	}
	assert.Equal(t, TypeInteger, deep.Type())

	// past the guard the innermost value degrades to Invalid while the
	// containers above it still parse
	tooDeep := FromEncoding(strings.Repeat("[", 1100) + "1" + strings.Repeat("]", 1100))
	require.Equal(t, TypeArray, tooDeep.Type())
	for tooDeep.Type() == TypeArray {
		tooDeep = tooDeep.Index(0)
	}
	assert.Equal(t, TypeInvalid, tooDeep.Type())
}

func TestDecodeRoundTrip(t *testing.T) {
	obj := NewObject()
	obj.Set("name", "Toto")
	obj.Set("value", 31)
	obj.Set("half", 0.5)
	obj.Set("live", true)
	obj.Set("nothing", nil)
	obj.Set("handles", []any{3, 7, "x"})

	parsed := FromEncoding(obj.ToEncoding(nil))
	require.True(t, parsed.IsValid())
	assert.True(t, obj.Equal(parsed))
}

func TestFromCodePoints(t *testing.T) {
	v := FromCodePoints([]rune(`[31, 7]`))
	require.Equal(t, TypeArray, v.Type())
	assert.Equal(t, 7, v.Index(1).AsInt())
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("[1, 2]"))
	assert.True(t, Valid("null"))
	assert.False(t, Valid("X"))
	assert.False(t, Valid("[1, 2"))
}
