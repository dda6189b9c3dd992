package fa

import "math/rand"

// Matcher walks a deterministic automaton one code point at a time, tracking
// the current state along with the recognizables of the current state and
// of the most recent accepting state entered since the last Reset. It
// assumes its automaton is deterministic: for every state, outgoing
// triggers are pairwise disjoint, so at most one transition can fire per
// input character and transition order never matters.
type Matcher[T comparable] struct {
	automaton      *Automaton[T]
	current        int
	recognized     []T
	lastRecognized []T
}

// NewMatcher returns a Matcher positioned at a's start state.
func NewMatcher[T comparable](a *Automaton[T]) *Matcher[T] {
	m := &Matcher[T]{automaton: a}
	m.Reset()
	return m
}

// Reset returns the matcher to the automaton's start state.
func (m *Matcher[T]) Reset() {
	m.current = m.automaton.start
	tags := m.automaton.states[m.current].recognizablesCopy()
	m.recognized = tags
	m.lastRecognized = tags
}

// Recognized returns a defensive copy of the current state's recognizables.
// Empty means the matcher is not presently on an accepting state.
func (m *Matcher[T]) Recognized() []T {
	out := make([]T, len(m.recognized))
	copy(out, m.recognized)
	return out
}

// LastRecognized returns a defensive copy of the recognizables of the most
// recent accepting state entered since the last Reset.
func (m *Matcher[T]) LastRecognized() []T {
	out := make([]T, len(m.lastRecognized))
	copy(out, m.lastRecognized)
	return out
}

// CurrentState returns the index of the matcher's current state, for
// callers (e.g. the scanner) that need to inspect it directly.
func (m *Matcher[T]) CurrentState() int {
	return m.current
}

// Match attempts to follow a transition out of the current state on c. It
// returns whether a transition fired; on success, Recognized (and, if
// non-empty, LastRecognized) are updated to the target state's tags.
func (m *Matcher[T]) Match(c rune) bool {
	st := m.automaton.states[m.current]
	for _, t := range st.Transitions {
		if t.Trigger.Contains(c) {
			m.current = t.Target
			tags := m.automaton.states[m.current].recognizablesCopy()
			m.recognized = tags
			if len(tags) > 0 {
				m.lastRecognized = tags
			}
			return true
		}
	}
	return false
}

// RandomMatch picks a uniformly random outgoing transition of the current
// state, follows it, and returns a random code point drawn from that
// transition's trigger. It panics if the current state has no outgoing
// transitions. Used by RegEx random-string generation; not intended to
// produce a statistically uniform sample of the recognized language.
func (m *Matcher[T]) RandomMatch(rng *rand.Rand) rune {
	st := m.automaton.states[m.current]
	if len(st.Transitions) == 0 {
		panic("fa: RandomMatch called on a state with no outgoing transitions")
	}
	t := st.Transitions[rng.Intn(len(st.Transitions))]
	c := t.Trigger.Random(rng)
	m.current = t.Target
	tags := m.automaton.states[m.current].recognizablesCopy()
	m.recognized = tags
	if len(tags) > 0 {
		m.lastRecognized = tags
	}
	return c
}
