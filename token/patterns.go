package token

import "github.com/dekarrin/ictioscan/regex"

// This file ships RegEx patterns and ready-made Type constructors for the
// handful of token kinds that show up in nearly every scanner a caller
// builds (identifiers, integers, floats, whitespace, quoted strings). They
// complement the parse/stringify pairs in builtins.go so a caller can go
// straight from "I want an integer token type" to a usable Type without
// hand-assembling the RegEx first.

// IdentifierPattern matches a letter or underscore followed by zero or
// more letters, digits, or underscores.
func IdentifierPattern() regex.RegEx {
	lower := regex.MustCharRange('a', 'z')
	upper := regex.MustCharRange('A', 'Z')
	underscore := regex.MustChar('_')
	digit := regex.MustCharRange('0', '9')

	head := regex.Choice(lower, upper, underscore)
	tail := regex.ZeroOrMore(regex.Choice(lower, upper, underscore, digit))
	return regex.Concat(head, tail)
}

// IntegerPattern matches one or more decimal digits.
func IntegerPattern() regex.RegEx {
	return regex.Repeated(regex.MustCharRange('0', '9'))
}

// FloatPattern matches zero or more digits, a literal '.', then one or
// more digits - i.e. it requires a fractional part but not an integer
// part, so ".5" is a float and "5." is not.
func FloatPattern() regex.RegEx {
	digit := regex.MustCharRange('0', '9')
	return regex.Concat(regex.ZeroOrMore(digit), regex.Literal("."), regex.Repeated(digit))
}

// WhitespacePattern matches one or more space, tab, carriage-return, or
// newline characters.
func WhitespacePattern() regex.RegEx {
	return regex.Repeated(regex.Choice(
		regex.MustChar(' '),
		regex.MustChar('\t'),
		regex.MustChar('\r'),
		regex.MustChar('\n'),
	))
}

// QuotedStringPattern matches a Go-syntax double-quoted string: a '"',
// then zero or more non-quote/non-backslash characters or backslash
// escapes, then a closing '"'.
func QuotedStringPattern() regex.RegEx {
	quote := regex.MustChar('"')
	backslash := regex.MustChar('\\')
	escaped := regex.Concat(backslash, regex.CharSetAny())
	plain := regex.CharSetExcluding('"', '\\')
	body := regex.ZeroOrMore(regex.Choice(escaped, plain))
	return regex.Concat(quote, body, quote)
}

// NewIdentifierType returns a Type recognizing IdentifierPattern and
// returning the lexeme itself as its value.
func NewIdentifierType(id, human string) Type {
	return MustNewType(id, human, IdentifierPattern(), parseLexeme, stringifyLexeme)
}

// NewIntegerType returns a Type recognizing IntegerPattern and parsing to
// int via ParseInt/StringifyInt.
func NewIntegerType(id, human string) Type {
	return MustNewType(id, human, IntegerPattern(), ParseInt, StringifyInt)
}

// NewFloatType returns a Type recognizing FloatPattern and parsing to
// float64 via ParseFloat/StringifyFloat.
func NewFloatType(id, human string) Type {
	return MustNewType(id, human, FloatPattern(), ParseFloat, StringifyFloat)
}

// NewWhitespaceType returns a Type recognizing WhitespacePattern and
// returning the lexeme itself as its value.
func NewWhitespaceType(id, human string) Type {
	return MustNewType(id, human, WhitespacePattern(), parseLexeme, stringifyLexeme)
}

// NewQuotedStringType returns a Type recognizing QuotedStringPattern and
// parsing to string via ParseQuotedString/StringifyQuotedString.
func NewQuotedStringType(id, human string) Type {
	return MustNewType(id, human, QuotedStringPattern(), ParseQuotedString, StringifyQuotedString)
}

// NewLiteralType returns a Type recognizing exactly the literal text lit,
// returning the lexeme itself as its value. Useful for keywords and fixed
// operators (e.g. "fun", "==", "-->").
func NewLiteralType(id, human, lit string) Type {
	return MustNewType(id, human, regex.Literal(lit), parseLexeme, stringifyLexeme)
}

func parseLexeme(s string) (string, error) { return s, nil }
func stringifyLexeme(s string) string      { return s }
