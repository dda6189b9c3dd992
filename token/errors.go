package token

import "errors"

var (
	// ErrOptionalPattern is returned by NewType when given a pattern that
	// accepts the empty string.
	ErrOptionalPattern = errors.New("token type pattern must not accept the empty string")

	// ErrUnknownSymbol wraps a failure from a token type's parse function.
	ErrUnknownSymbol = errors.New("could not parse lexeme")
)
