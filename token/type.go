// Package token defines Type, the association of a RegEx pattern with a
// value parser/stringifier and a display name, and Token, the lexeme a
// scanner actually produces. Concrete token types are generic over their
// parsed value type, hidden behind the non-generic Type interface so
// heterogeneous token types collect into one ordinary slice for the
// scanner to consume.
package token

import (
	"fmt"

	"github.com/dekarrin/ictioscan/regex"
)

// Type is the non-generic face of a typed token type, so a scanner can hold
// a single []Type of token types with different value types.
type Type interface {
	// ID uniquely identifies this token type among all token types known to
	// a single scanner.
	ID() string

	// Human returns a display name suitable for error messages.
	Human() string

	// Pattern returns the RegEx this token type scans for.
	Pattern() regex.RegEx

	// ParseAny parses lexeme into this token type's value type, boxed as
	// any. Scanner-internal; callers that know V should prefer a Token's
	// typed Value accessor once one exists for their use case.
	ParseAny(lexeme string) (any, error)

	// StringifyAny renders a previously-parsed value (boxed as any) back to
	// its lexeme form. Panics if v is not assignable to this type's V.
	StringifyAny(v any) string

	// Equal reports whether o is a Type with the same ID.
	Equal(o any) bool
}

// typeImpl[V] is a concrete, strongly-typed token type: a RegEx pattern paired
// with a parser producing V from a matched lexeme and a stringifier doing
// the reverse.
type typeImpl[V any] struct {
	id        string
	human     string
	pattern   regex.RegEx
	parse     func(string) (V, error)
	stringify func(V) string
}

// NewType constructs a token type named id (human is used for display; if
// empty, id is used for both). It is a hard failure to build a token type
// whose pattern accepts the empty string, since a token that can match zero
// characters would let the scanner loop without consuming input.
func NewType[V any](id, human string, pattern regex.RegEx, parse func(string) (V, error), stringify func(V) string) (Type, error) {
	if pattern.IsOptional() {
		return nil, fmt.Errorf("%w: token type %q has a pattern that accepts the empty string", ErrOptionalPattern, id)
	}
	if human == "" {
		human = id
	}
	return &typeImpl[V]{
		id:        id,
		human:     human,
		pattern:   pattern.Determinized(),
		parse:     parse,
		stringify: stringify,
	}, nil
}

// MustNewType is like NewType but panics on error; for token types declared
// as package-level variables, where the pattern is known up front to be
// non-optional.
func MustNewType[V any](id, human string, pattern regex.RegEx, parse func(string) (V, error), stringify func(V) string) Type {
	t, err := NewType(id, human, pattern, parse, stringify)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *typeImpl[V]) ID() string           { return t.id }
func (t *typeImpl[V]) Human() string        { return t.human }
func (t *typeImpl[V]) Pattern() regex.RegEx { return t.pattern }

func (t *typeImpl[V]) ParseAny(lexeme string) (any, error) {
	v, err := t.parse(lexeme)
	if err != nil {
		return nil, fmt.Errorf("%w: token type %q: %w", ErrUnknownSymbol, t.id, err)
	}
	return v, nil
}

func (t *typeImpl[V]) StringifyAny(v any) string {
	typed, ok := v.(V)
	if !ok {
		panic(fmt.Sprintf("token: StringifyAny called on %q with value of wrong type %T", t.id, v))
	}
	return t.stringify(typed)
}

func (t *typeImpl[V]) Equal(o any) bool {
	other, ok := o.(Type)
	if !ok {
		return false
	}
	return other.ID() == t.id
}
