package fa

// Retag produces a copy of a with every state's recognizables mapped
// through f, changing the automaton's tag type from A to B. Used by the
// scanner to turn each token-type RegEx's bool-tagged automaton (accept
// marker true) into one tagged with the token type itself, ahead of
// combining all token types into a single DFA.
func Retag[A comparable, B comparable](a *Automaton[A], f func(A) B) *Automaton[B] {
	order := a.Reachable()
	indexMap := make(map[int]int, len(order))
	out := &Automaton[B]{}

	for _, orig := range order {
		var ns State[B]
		for _, tag := range a.states[orig].Recognizables {
			ns.addRecognizable(f(tag))
		}
		out.states = append(out.states, ns)
		indexMap[orig] = len(out.states) - 1
	}

	for _, orig := range order {
		newIdx := indexMap[orig]
		for _, t := range a.states[orig].Transitions {
			out.states[newIdx].on(t.Trigger, indexMap[t.Target], false)
		}
	}

	out.start = indexMap[a.start]
	return out
}

// ResolveTies collapses every reachable state's recognizables down to at
// most one tag, keeping whichever has the lowest rank(tag). States with
// zero or one recognizable are left untouched. This is the scanner's
// declared-index tie-break expressed generically: any automaton whose tags
// admit a total order by rank can use it.
func ResolveTies[T comparable](a *Automaton[T], rank func(T) int) {
	for _, idx := range a.Reachable() {
		st := a.states[idx]
		if len(st.Recognizables) <= 1 {
			continue
		}

		best := st.Recognizables[0]
		bestRank := rank(best)
		for _, tag := range st.Recognizables[1:] {
			if r := rank(tag); r < bestRank {
				best = tag
				bestRank = r
			}
		}

		a.states[idx] = State[T]{Recognizables: []T{best}, Transitions: st.Transitions}
	}
}
