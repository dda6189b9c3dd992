package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentifierType(t *testing.T) {
	typ := NewIdentifierType("id", "identifier")

	assert.True(t, typ.Pattern().Match("funstuff"))
	assert.True(t, typ.Pattern().Match("_private9"))
	assert.False(t, typ.Pattern().Match("9leading"))

	v, err := typ.ParseAny("funstuff")
	require.NoError(t, err)
	assert.Equal(t, "funstuff", v)
}

func TestNewIntegerType(t *testing.T) {
	typ := NewIntegerType("int", "integer")

	assert.True(t, typ.Pattern().Match("123"))
	assert.False(t, typ.Pattern().Match("12.3"))

	v, err := typ.ParseAny("123")
	require.NoError(t, err)
	assert.Equal(t, 123, v)
	assert.Equal(t, "123", typ.StringifyAny(v))
}

func TestNewFloatType(t *testing.T) {
	typ := NewFloatType("float", "float")

	assert.True(t, typ.Pattern().Match("123.456"))
	assert.True(t, typ.Pattern().Match(".456"))
	assert.False(t, typ.Pattern().Match("123"))

	v, err := typ.ParseAny("123.456")
	require.NoError(t, err)
	assert.Equal(t, 123.456, v)
}

func TestNewWhitespaceType(t *testing.T) {
	typ := NewWhitespaceType("ws", "whitespace")

	assert.True(t, typ.Pattern().Match("\n\r  \t"))
	assert.False(t, typ.Pattern().Match(""))
}

func TestNewQuotedStringType(t *testing.T) {
	typ := NewQuotedStringType("str", "string")

	assert.True(t, typ.Pattern().Match(`"hello"`))
	assert.True(t, typ.Pattern().Match(`"a\"b"`))

	v, err := typ.ParseAny(`"hello\nworld"`)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", v)
}

func TestNewLiteralType(t *testing.T) {
	typ := NewLiteralType("fun", "fun keyword", "fun")

	assert.True(t, typ.Pattern().Match("fun"))
	assert.False(t, typ.Pattern().Match("funny"))
}
