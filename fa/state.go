// Package fa implements the finite-automaton engine: states carrying a
// generic tag type, transitions labelled by character sets, composition by
// choice/concatenation/repetition/optionality, subset-construction
// determinization with state deduplication, and a last-accept-tracking
// matcher.
//
// Automata are arena-based: every Automaton owns a slice of states and
// refers to them by index, so traversal and cloning use explicit work-list
// loops keyed on index rather than recursion over pointers, avoiding stack
// overflow on automata built from deeply nested composition.
package fa

import (
	"fmt"

	"github.com/dekarrin/ictioscan/charset"
)

// Transition is a labelled edge: it fires on any code point in Trigger and
// leads to the state at index Target within the owning Automaton.
type Transition struct {
	Trigger charset.CharSet
	Target  int
}

func (t Transition) String() string {
	return fmt.Sprintf("-%s-> %d", t.Trigger, t.Target)
}

// State holds a set of recognizables (tags) and its outbound transitions.
// An empty Recognizables set marks a transient (non-accepting) state; a
// non-empty one marks an accept/final state.
type State[T comparable] struct {
	Recognizables []T
	Transitions   []Transition
}

func newState[T comparable](tags ...T) State[T] {
	s := State[T]{}
	for _, t := range tags {
		s.addRecognizable(t)
	}
	return s
}

func (s *State[T]) addRecognizable(t T) {
	for _, existing := range s.Recognizables {
		if existing == t {
			return
		}
	}
	s.Recognizables = append(s.Recognizables, t)
}

// Accepting returns whether the state has at least one recognizable tag.
func (s State[T]) Accepting() bool {
	return len(s.Recognizables) > 0
}

// recognizablesCopy returns a defensive copy of the state's recognizables,
// for use by accessors that must not let callers mutate library internals.
func (s State[T]) recognizablesCopy() []T {
	out := make([]T, len(s.Recognizables))
	copy(out, s.Recognizables)
	return out
}

func (s State[T]) transitionsCopy() []Transition {
	out := make([]Transition, len(s.Transitions))
	copy(out, s.Transitions)
	return out
}

// on appends (or, if optimize is set and a transition to target already
// exists, merges into) a transition on trigger to target.
func (s *State[T]) on(trigger charset.CharSet, target int, optimize bool) {
	if optimize {
		for i := range s.Transitions {
			if s.Transitions[i].Target == target {
				s.Transitions[i].Trigger = charset.Union(s.Transitions[i].Trigger, trigger)
				return
			}
		}
	}
	s.Transitions = append(s.Transitions, Transition{Trigger: trigger, Target: target})
}

// equalTagSets reports whether two tag slices represent the same set,
// ignoring order and duplicates (there should never be duplicates by
// construction, but equality shouldn't assume that).
func equalTagSets[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for _, x := range a {
		found := false
		for _, y := range b {
			if x == y {
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
