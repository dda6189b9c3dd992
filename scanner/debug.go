package scanner

import "github.com/dekarrin/ictioscan/token"

// DumpDFA builds (if necessary) and renders s's combined tagged DFA as a
// table of states and transitions, for --dump-dfa style debugging output.
func DumpDFA(s *Scanner) string {
	return s.dfaAutomaton().Render(func(t token.Type) string { return t.Human() })
}
