package fa

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
)

// Render returns a word-wrapped, tabular debug dump of every reachable
// state: its index, whether it's the start state, its recognizables
// (stringified with tagString), and its outbound transitions.
func (a *Automaton[T]) Render(tagString func(T) string) string {
	data := [][]string{{"state", "recognizables", "transitions"}}

	order := a.Reachable()
	indexOf := make(map[int]int, len(order))
	for newIdx, origIdx := range order {
		indexOf[origIdx] = newIdx
	}

	for _, origIdx := range order {
		st := a.states[origIdx]

		label := fmt.Sprintf("%d", indexOf[origIdx])
		if origIdx == a.start {
			label += " (start)"
		}

		var tags []string
		for _, t := range st.Recognizables {
			tags = append(tags, tagString(t))
		}

		var transitions []string
		for _, t := range st.transitionsCopy() {
			transitions = append(transitions, fmt.Sprintf("%s -> %d", t.Trigger.String(), indexOf[t.Target]))
		}

		data = append(data, []string{label, strings.Join(tags, ", "), strings.Join(transitions, "; ")})
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 100, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
