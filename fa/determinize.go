package fa

import (
	"fmt"
	"sort"

	"github.com/dekarrin/ictioscan/charset"
)

// partitionTransitions partitions a (possibly overlapping) list of
// transitions into N-way disjoint regions of the alphabet: each returned
// Partition names, via Indices, which of the input transitions cover that
// region.
func partitionTransitions(transitions []Transition) []charset.Partition {
	triggers := make([]charset.CharSet, len(transitions))
	for i, t := range transitions {
		triggers[i] = t.Trigger
	}
	return charset.ComputeOverlaps(triggers)
}

// ReorganizeOverlaps rewrites a state's transitions so that triggers are
// pairwise disjoint (deterministic per state), duplicating a transition per
// target that was formerly part of an overlap. Determinize applies the same
// underlying overlap computation across whole closures rather than calling
// this directly.
func (a *Automaton[T]) ReorganizeOverlaps(stateIdx int) {
	st := a.states[stateIdx]
	parts := partitionTransitions(st.Transitions)

	var rewritten []Transition
	for _, p := range parts {
		for _, idx := range p.Indices {
			rewritten = append(rewritten, Transition{Trigger: p.Set, Target: st.Transitions[idx].Target})
		}
	}
	st.Transitions = rewritten
	a.states[stateIdx] = st
}

func dedupeInts(xs []int) []int {
	seen := make(map[int]bool, len(xs))
	out := make([]int, 0, len(xs))
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	sort.Ints(out)
	return out
}

func closureKey(members []int) string {
	return fmt.Sprint(dedupeInts(members))
}

// Determinize converts a to a deterministic, deduplicated automaton
// recognizing the same language: subset (powerset) construction followed by
// iterated structural-equality deduplication. Functional correctness depends
// only on determinism; full Myhill-Nerode minimality is not guaranteed, only
// that no two *reachable* states are structurally identical.
func Determinize[T comparable](a *Automaton[T]) *Automaton[T] {
	powerset := subsetConstruct(a)
	return dedupe(powerset)
}

// subsetConstruct performs the powerset construction. Because this engine's
// composition operators never introduce epsilon transitions, a "closure"
// here is simply the set of source-automaton state indices reachable as one
// combined NFA state; there is no epsilon closure step.
func subsetConstruct[T comparable](a *Automaton[T]) *Automaton[T] {
	out := &Automaton[T]{}

	type closure struct {
		members []int
	}

	closureIdx := map[string]int{} // closure key -> index into out.states
	var closures []closure
	var keys []string

	internClosure := func(members []int) int {
		key := closureKey(members)
		if idx, ok := closureIdx[key]; ok {
			return idx
		}
		deduped := dedupeInts(members)
		outIdx := out.AddState()
		var tags []T
		seen := map[T]bool{}
		for _, m := range deduped {
			for _, tag := range a.states[m].Recognizables {
				if !seen[tag] {
					seen[tag] = true
					tags = append(tags, tag)
				}
			}
		}
		for _, tag := range tags {
			out.AddRecognizable(outIdx, tag)
		}
		closureIdx[key] = outIdx
		closures = append(closures, closure{members: deduped})
		keys = append(keys, key)
		return outIdx
	}

	startIdx := internClosure([]int{a.start})
	out.start = startIdx

	queue := []int{0}
	processed := map[int]bool{}

	for len(queue) > 0 {
		ci := queue[0]
		queue = queue[1:]
		if processed[ci] {
			continue
		}
		processed[ci] = true

		members := closures[ci].members
		outStateIdx := closureIdx[keys[ci]]

		var combined []Transition
		for _, m := range members {
			combined = append(combined, a.states[m].Transitions...)
		}

		parts := partitionTransitions(combined)
		for _, p := range parts {
			var targets []int
			for _, idx := range p.Indices {
				targets = append(targets, combined[idx].Target)
			}
			targetClosureIdx := internClosure(targets)
			out.AddTransition(outStateIdx, p.Set, targetClosureIdx, false)

			if !processed[targetClosureIdx] {
				// internClosure appends to closures and out.states in
				// lockstep (one state per closure, in the same order), so a
				// closure's slot position equals its out-state index
				// directly.
				queue = append(queue, targetClosureIdx)
			}
		}
	}

	return out
}
