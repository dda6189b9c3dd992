package fa

import "github.com/dekarrin/ictioscan/charset"

// Automaton is a finite automaton over tag type T. It owns every state
// reachable from Start; states are referenced by index into the arena.
type Automaton[T comparable] struct {
	states []State[T]
	start  int
}

// New returns an automaton with a single, non-accepting start state.
func New[T comparable]() *Automaton[T] {
	a := &Automaton[T]{}
	a.states = append(a.states, newState[T]())
	a.start = 0
	return a
}

// NewAccepting returns an automaton with a single start state that is
// already accepting, tagged with the given recognizables.
func NewAccepting[T comparable](tags ...T) *Automaton[T] {
	a := &Automaton[T]{}
	a.states = append(a.states, newState(tags...))
	a.start = 0
	return a
}

// Start returns the index of the automaton's start state.
func (a *Automaton[T]) Start() int {
	return a.start
}

// NumStates returns the number of states currently in the arena. Note that
// this may include unreachable states transiently during construction;
// Reachable() computes the traversal-ordered reachable set.
func (a *Automaton[T]) NumStates() int {
	return len(a.states)
}

// IsOptional returns whether the automaton's start state is accepting, i.e.
// whether it recognizes the empty string.
func (a *Automaton[T]) IsOptional() bool {
	return a.states[a.start].Accepting()
}

// State returns a defensive copy of the state at idx.
func (a *Automaton[T]) State(idx int) State[T] {
	s := a.states[idx]
	return State[T]{
		Recognizables: s.recognizablesCopy(),
		Transitions:   s.transitionsCopy(),
	}
}

// AddState appends a new state (optionally pre-tagged) and returns its
// index.
func (a *Automaton[T]) AddState(tags ...T) int {
	a.states = append(a.states, newState(tags...))
	return len(a.states) - 1
}

// AddTransition adds a transition from the state at `from` to the state at
// `to`, firing on trigger. If optimize is true and a transition to `to`
// already exists on that state, the two triggers are unioned into one
// transition instead of appending a second.
func (a *Automaton[T]) AddTransition(from int, trigger charset.CharSet, to int, optimize bool) {
	s := a.states[from]
	s.on(trigger, to, optimize)
	a.states[from] = s
}

// AddRecognizable tags the state at idx as accepting with the given value,
// if it is not already tagged with an equal value.
func (a *Automaton[T]) AddRecognizable(idx int, tag T) {
	s := a.states[idx]
	s.addRecognizable(tag)
	a.states[idx] = s
}

// Reachable performs an explicit work-list traversal from the start state
// and returns the reachable state indices in traversal (i.e. insertion)
// order. It never recurses, so it is safe on arbitrarily cyclic automata.
func (a *Automaton[T]) Reachable() []int {
	visited := make(map[int]bool)
	order := make([]int, 0, len(a.states))
	queue := []int{a.start}
	visited[a.start] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)

		for _, t := range a.states[cur].Transitions {
			if !visited[t.Target] {
				visited[t.Target] = true
				queue = append(queue, t.Target)
			}
		}
	}

	return order
}

// appendStates copies every state of src into dst, offsetting every
// transition target by the position at which src's states begin in dst.
// It returns that offset.
func appendStates[T comparable](dst *Automaton[T], src *Automaton[T]) int {
	offset := len(dst.states)
	for _, st := range src.states {
		remapped := State[T]{Recognizables: st.recognizablesCopy()}
		for _, t := range st.Transitions {
			remapped.Transitions = append(remapped.Transitions, Transition{
				Trigger: t.Trigger,
				Target:  t.Target + offset,
			})
		}
		dst.states = append(dst.states, remapped)
	}
	return offset
}

// StateCloner produces a replacement state for a state being cloned, given
// its original index and a copy of the original state. Any transitions on
// the returned state are discarded; Clone wires them itself. The default cloner (see Clone) simply copies recognizables
// verbatim; composition operations use bespoke cloners to splice in new
// start states or to strip recognizables from non-terminal operands.
type StateCloner[T comparable] func(orig int, origState State[T]) State[T]

// Clone returns a fresh automaton containing only the reachable states of a,
// each produced by applying cloner (or, if nil, a shape-preserving default)
// to the original state. Transitions are re-pointed via an index map so the
// clone shares no storage with the original.
func (a *Automaton[T]) Clone(cloner StateCloner[T]) *Automaton[T] {
	if cloner == nil {
		cloner = func(_ int, s State[T]) State[T] {
			return State[T]{Recognizables: s.recognizablesCopy()}
		}
	}

	order := a.Reachable()
	indexMap := make(map[int]int, len(order))
	out := &Automaton[T]{}

	for _, orig := range order {
		replacement := cloner(orig, a.State(orig))
		replacement.Transitions = nil // wired below using indexMap
		out.states = append(out.states, replacement)
		indexMap[orig] = len(out.states) - 1
	}

	for _, orig := range order {
		origState := a.states[orig]
		newIdx := indexMap[orig]
		for _, t := range origState.Transitions {
			mapped, ok := indexMap[t.Target]
			if !ok {
				// target unreachable from this traversal root; shouldn't
				// happen since Reachable() follows every transition.
				panic("fa: clone encountered transition to unreachable state")
			}
			out.states[newIdx].on(t.Trigger, mapped, false)
		}
	}

	out.start = indexMap[a.start]
	return out
}

// statesEqual reports whether two states (from possibly different
// automata) are structurally equal: same recognizables as a set, and same
// transitions as a multiset where two transitions are equal iff they share
// a target (compared via the supplied per-automaton identifiers) and have
// identical triggers.
func statesEqual[T comparable](aState State[T], aTargetID func(int) string, bState State[T], bTargetID func(int) string) bool {
	if !equalTagSets(aState.Recognizables, bState.Recognizables) {
		return false
	}
	if len(aState.Transitions) != len(bState.Transitions) {
		return false
	}

	matchedB := make([]bool, len(bState.Transitions))
	for _, ta := range aState.Transitions {
		found := false
		for j, tb := range bState.Transitions {
			if matchedB[j] {
				continue
			}
			if aTargetID(ta.Target) == bTargetID(tb.Target) && ta.Trigger.Equal(tb.Trigger) {
				matchedB[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
