// Package scanner combines token types into a tagged DFA and runs the
// longest-match scanning loop over an input stream. All declared token
// types share one combined automaton built from the fa package, rather
// than each pattern being tried sequentially per token, so scanning costs
// one DFA transition per input character regardless of how many token
// types are declared.
package scanner

import (
	"github.com/dekarrin/ictioscan/charset"
	"github.com/dekarrin/ictioscan/fa"
	"github.com/dekarrin/ictioscan/regex"
	"github.com/dekarrin/ictioscan/token"
	"github.com/google/uuid"
)

// errorTypeID and eofTypeID are the implicit token types' IDs, not
// reachable by any caller-declared ID since they contain characters no
// caller would plausibly choose for a declared ID.
const (
	errorTypeID = "$error"
	eofTypeID   = "$eof"
)

// Scanner is a collection of token types in declared order, plus the two
// implicit types every scanner owns (error and EOF). Its combined DFA is
// built lazily on first use and cached for the Scanner's lifetime.
type Scanner struct {
	types         []token.Type
	declaredIndex map[token.Type]int
	errorType     token.Type
	eofType       token.Type
	id            uuid.UUID

	dfa *fa.Automaton[token.Type]
}

// New returns a Scanner over the given token types, in declared order.
// Declared order sets both match precedence (an earlier type wins a
// tie-break against a later one at the same accept state) and is otherwise
// unrelated to scanning speed or the shape of the combined DFA.
func New(types ...token.Type) *Scanner {
	s := &Scanner{
		types:         append([]token.Type(nil), types...),
		declaredIndex: make(map[token.Type]int, len(types)),
		errorType:     newErrorType(),
		eofType:       newEOFType(),
		id:            uuid.New(),
	}
	for i, t := range s.types {
		s.declaredIndex[t] = i
	}
	return s
}

// ID returns this Scanner's unique identity, assigned at construction and
// stable for its lifetime. Used to namespace its on-disk DFA cache file so
// that two Scanners (even ones built from the same token types) never
// collide over the same cache path.
func (s *Scanner) ID() uuid.UUID { return s.id }

// Types returns a defensive copy of the declared token types, in declared
// order (not including the implicit error/EOF types - see ErrorType and
// EOFType).
func (s *Scanner) Types() []token.Type {
	return append([]token.Type(nil), s.types...)
}

// ErrorType returns the scanner's implicit error token type, used to tag
// lexemes that match none of the declared token types.
func (s *Scanner) ErrorType() token.Type { return s.errorType }

// EOFType returns the scanner's implicit end-of-stream token type.
func (s *Scanner) EOFType() token.Type { return s.eofType }

// newErrorType builds the universal one-or-more-of-any-character token
// type used to tag error lexemes. It is never mixed into the combined DFA
// (see build.go); scanOne falls back to it directly, so its pattern exists
// only to give the error type a legitimate, non-optional RegEx and a
// sensible Human() name for diagnostics.
func newErrorType() token.Type {
	pattern := regex.Repeated(regex.CharSet(charset.All()))
	return token.MustNewType(errorTypeID, "ERROR", pattern, parseLexeme, stringifyLexeme)
}

// newEOFType builds the synthetic EOF marker type. Its pattern is never
// scanned for either; the EOF token is always emitted directly by the
// token stream with the fixed lexeme "EOF".
func newEOFType() token.Type {
	pattern := regex.Literal("EOF")
	return token.MustNewType(eofTypeID, "EOF", pattern, parseLexeme, stringifyLexeme)
}

func parseLexeme(s string) (string, error) { return s, nil }
func stringifyLexeme(s string) string      { return s }
