package scanner

import (
	"github.com/dekarrin/ictioscan/fa"
	"github.com/dekarrin/ictioscan/token"
)

// dfaAutomaton returns the scanner's combined tagged DFA, building and
// caching it on first call: retag each declared token type's automaton
// from its RegEx's bool accept marker to the token type itself, choice them
// together (preserving declared order, which is what makes the later
// tie-break deterministic), determinize, then collapse any accept state
// left with more than one competing tag down to the lowest-declared-index
// one.
func (s *Scanner) dfaAutomaton() *fa.Automaton[token.Type] {
	if s.dfa != nil {
		return s.dfa
	}

	tagged := make([]*fa.Automaton[token.Type], len(s.types))
	for i, t := range s.types {
		typ := t // capture for the closure below
		tagged[i] = fa.Retag(t.Pattern().Automaton(), func(bool) token.Type { return typ })
	}

	combined := fa.Choice(tagged...)
	det := fa.Determinize(combined)
	fa.ResolveTies(det, func(t token.Type) int { return s.declaredIndex[t] })

	s.dfa = det
	return det
}
