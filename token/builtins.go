package token

import "strconv"

// This file ships a small library of common value parser/stringifier pairs:
// every Type needs one, and most scanners need the same handful, so
// hand-writing them per caller would just be boilerplate.

// ParseInt parses a lexeme as a base-10 signed integer.
func ParseInt(lexeme string) (int, error) {
	return strconv.Atoi(lexeme)
}

// StringifyInt renders an int back to its base-10 decimal form.
func StringifyInt(v int) string {
	return strconv.Itoa(v)
}

// ParseFloat parses a lexeme as a 64-bit floating point number.
func ParseFloat(lexeme string) (float64, error) {
	return strconv.ParseFloat(lexeme, 64)
}

// StringifyFloat renders a float64 using the shortest representation that
// round-trips.
func StringifyFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseBool parses any of the forms strconv.ParseBool accepts (1, t, T,
// TRUE, true, True, 0, f, F, FALSE, false, False).
func ParseBool(lexeme string) (bool, error) {
	return strconv.ParseBool(lexeme)
}

// StringifyBool renders a bool as "true" or "false".
func StringifyBool(v bool) string {
	return strconv.FormatBool(v)
}

// ParseQuotedString unescapes a Go-syntax double-quoted string lexeme
// (e.g. `"a\nb"`) to its literal value.
func ParseQuotedString(lexeme string) (string, error) {
	return strconv.Unquote(lexeme)
}

// StringifyQuotedString renders a string back into Go double-quoted syntax.
func StringifyQuotedString(v string) string {
	return strconv.Quote(v)
}
