package fa

// Optional returns an automaton recognizing the same language as a, plus
// the empty string. If a is already optional, it is returned unchanged
// (still a fresh clone, per the "all composition operations return a new
// automaton" rule).
func Optional[T comparable](a *Automaton[T]) *Automaton[T] {
	if a.IsOptional() {
		return a.Clone(nil)
	}

	clone := a.Clone(nil)

	// The union of every final state's recognizables, attached to a fresh
	// start state whose outbound transitions replicate the original
	// start's, makes the new start both accepting and behaviorally
	// identical to entering the body at its start.
	finalTags := map[T]bool{}
	var orderedTags []T
	for _, idx := range clone.Reachable() {
		st := clone.states[idx]
		if st.Accepting() {
			for _, tag := range st.Recognizables {
				if !finalTags[tag] {
					finalTags[tag] = true
					orderedTags = append(orderedTags, tag)
				}
			}
		}
	}

	newStart := clone.AddState(orderedTags...)
	for _, t := range clone.states[clone.start].transitionsCopy() {
		clone.AddTransition(newStart, t.Trigger, t.Target, false)
	}
	clone.start = newStart

	return clone
}

// Repeated returns an automaton recognizing one or more repetitions of a's
// language (a+). Every final state of a clone of a gets a copy of the
// start's outbound transitions, so that reaching acceptance allows looping
// back through the body again.
func Repeated[T comparable](a *Automaton[T]) *Automaton[T] {
	clone := a.Clone(nil)
	startTransitions := clone.states[clone.start].transitionsCopy()

	for _, idx := range clone.Reachable() {
		if clone.states[idx].Accepting() {
			for _, t := range startTransitions {
				clone.AddTransition(idx, t.Trigger, t.Target, false)
			}
		}
	}

	return clone
}

// Choice returns an automaton recognizing the union of the given automata's
// languages. The new start state's recognizables are the union of all
// input starts' recognizables (so the result is optional iff any input is),
// and every other state of every input is preserved.
func Choice[T comparable](inputs ...*Automaton[T]) *Automaton[T] {
	out := &Automaton[T]{}
	newStart := out.AddState()
	out.start = newStart

	for _, in := range inputs {
		clone := in.Clone(nil)
		offset := appendStates(out, clone)

		clonedStart := offset + clone.start
		for _, t := range out.states[clonedStart].transitionsCopy() {
			out.states[newStart].on(t.Trigger, t.Target, false)
		}
		for _, tag := range out.states[clonedStart].Recognizables {
			out.states[newStart].addRecognizable(tag)
		}
	}

	return out
}

// Concatenation returns an automaton recognizing the concatenation of the
// given automata's languages, in order, using a frontier-based construction:
// rather than chaining through epsilon edges, each operand's start
// transitions are copied directly into every state that could be "current"
// at the point that operand begins.
func Concatenation[T comparable](inputs ...*Automaton[T]) *Automaton[T] {
	if len(inputs) == 0 {
		return New[T]()
	}
	if len(inputs) == 1 {
		return inputs[0].Clone(nil)
	}

	lastRequired := -1
	for i, in := range inputs {
		if !in.IsOptional() {
			lastRequired = i
		}
	}

	out := &Automaton[T]{}
	out.start = out.AddState()
	frontier := []int{out.start}

	for i, operand := range inputs {
		keepTail := i >= lastRequired

		var newFinals []int

		cloner := func(orig int, st State[T]) State[T] {
			if keepTail {
				return State[T]{Recognizables: st.recognizablesCopy()}
			}
			return State[T]{}
		}

		clonedOperand := operand.Clone(cloner)
		offset := appendStates(out, clonedOperand)

		for localIdx, st := range clonedOperand.states {
			if st.Accepting() || (!keepTail && isOriginallyFinal(operand, clonedOperand, localIdx)) {
				newFinals = append(newFinals, offset+localIdx)
			}
		}

		clonedStart := offset + clonedOperand.start
		clonedStartState := out.states[clonedStart]

		// Splicing copies the operand's start transitions into every state
		// that could be "current" right before it. If the operand's own
		// start is itself final (i.e. the operand is optional) and this is
		// within the tail, each such frontier state becomes a valid overall
		// endpoint too, exactly as if it were one of the operand's replicated
		// final states - so its tags must be merged in, not just its
		// transitions. This is what lets the true start state (and any
		// other frontier member) become accepting when a run of leading
		// operands is skippable.
		for _, f := range frontier {
			for _, t := range clonedStartState.transitionsCopy() {
				out.states[f].on(t.Trigger, t.Target, false)
			}
			if keepTail {
				for _, tag := range clonedStartState.Recognizables {
					out.states[f].addRecognizable(tag)
				}
			}
		}

		// If this operand can be skipped entirely, whatever states could
		// begin it remain valid continuation points for the next operand:
		// they already received this operand's start transitions above (so
		// they can still enter it), and they must also keep receiving the
		// next operand's transitions directly, since nothing else points to
		// them from the automaton's true start. Without this, a prefix of
		// optional operands would strand the real start state with only a
		// stale snapshot of transitions and no path around a skipped one.
		if operand.IsOptional() {
			newFinals = append(newFinals, frontier...)
		}
		frontier = dedupeInts(newFinals)
	}

	return out
}

// isOriginallyFinal reports whether the state at localIdx in clonedOperand
// corresponds to a final (accepting) state of the un-cloned operand. Used
// when the cloner has stripped recognizables (because this operand isn't
// the tail of the concatenation) but the frontier still needs to know which
// states were final in the original, to know where the next operand's
// transitions must be spliced in.
func isOriginallyFinal[T comparable](operand, clonedOperand *Automaton[T], localIdx int) bool {
	order := operand.Reachable()
	if localIdx >= len(order) {
		return false
	}
	return operand.states[order[localIdx]].Accepting()
}
