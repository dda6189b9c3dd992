package fa

import "fmt"

// dedupe iterates structural-equality deduplication passes until the
// reachable state count stops decreasing. Two states merge
// when they carry the same recognizables and the same transitions as a
// multiset, comparing targets by their current representative rather than
// raw index so that merges compound within and across passes.
func dedupe[T comparable](a *Automaton[T]) *Automaton[T] {
	current := a

	for {
		order := current.Reachable()
		n := len(order)

		posOf := make(map[int]int, n)
		for p, idx := range order {
			posOf[idx] = p
		}

		rep := make([]int, n)
		for i := range rep {
			rep[i] = i
		}

		targetID := func(origTarget int) string {
			p, ok := posOf[origTarget]
			if !ok {
				return fmt.Sprintf("x%d", origTarget)
			}
			return fmt.Sprintf("p%d", rep[p])
		}

		for i := 0; i < n; i++ {
			if rep[i] != i {
				continue
			}
			for j := 0; j < i; j++ {
				if rep[j] != j {
					continue
				}
				if statesEqual(current.states[order[i]], targetID, current.states[order[j]], targetID) {
					rep[i] = j
					break
				}
			}
		}

		changed := false
		for i := range rep {
			if rep[i] != i {
				changed = true
				break
			}
		}
		if !changed {
			// already canonical; repack to compact, reachable-only indices.
			return current.Clone(nil)
		}

		var keptPositions []int
		posToNewIdx := make(map[int]int)
		for i := 0; i < n; i++ {
			if rep[i] == i {
				posToNewIdx[i] = len(keptPositions)
				keptPositions = append(keptPositions, i)
			}
		}

		resolvedNewIdx := make([]int, n)
		for i := 0; i < n; i++ {
			resolvedNewIdx[i] = posToNewIdx[rep[i]]
		}

		out := &Automaton[T]{}
		for _, p := range keptPositions {
			out.states = append(out.states, State[T]{Recognizables: current.states[order[p]].recognizablesCopy()})
		}

		for newIdx, p := range keptPositions {
			origIdx := order[p]
			for _, t := range current.states[origIdx].Transitions {
				tp, ok := posOf[t.Target]
				if !ok {
					continue
				}
				out.states[newIdx].on(t.Trigger, resolvedNewIdx[tp], false)
			}
		}

		out.start = resolvedNewIdx[posOf[current.start]]
		current = out
	}
}
