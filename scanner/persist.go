package scanner

import (
	"fmt"

	"github.com/dekarrin/ictioscan/charset"
	"github.com/dekarrin/ictioscan/fa"
	"github.com/dekarrin/ictioscan/token"
	"github.com/dekarrin/rezi"
)

// dfaRange, dfaTransition, dfaState, and dfaSnapshot are plain-field mirrors
// of fa.Automaton[token.Type] that implement encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler in terms of rezi's primitive encoders, so the
// whole snapshot round-trips through rezi.EncBinary/DecBinary. The combined
// DFA can't be encoded directly: its states are tagged with token.Type, an
// interface wrapping closures (parse/stringify), and no encoding can capture
// a function value. Tags are instead recorded by ID and rehydrated from the
// caller's own token-type values at load time.
type dfaRange struct {
	Min uint16
	Max uint16
}

func (r dfaRange) MarshalBinary() ([]byte, error) {
	enc := rezi.EncInt(int(r.Min))
	enc = append(enc, rezi.EncInt(int(r.Max))...)
	return enc, nil
}

func (r *dfaRange) UnmarshalBinary(data []byte) error {
	min, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("min: %w", err)
	}
	data = data[n:]

	max, _, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("max: %w", err)
	}

	r.Min = uint16(min)
	r.Max = uint16(max)
	return nil
}

type dfaTransition struct {
	Ranges []dfaRange
	Target int
}

func (t dfaTransition) MarshalBinary() ([]byte, error) {
	enc := rezi.EncInt(t.Target)
	enc = append(enc, rezi.EncInt(len(t.Ranges))...)
	for _, r := range t.Ranges {
		enc = append(enc, rezi.EncBinary(r)...)
	}
	return enc, nil
}

func (t *dfaTransition) UnmarshalBinary(data []byte) error {
	target, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}
	data = data[n:]
	t.Target = target

	count, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("range count: %w", err)
	}
	data = data[n:]

	t.Ranges = nil
	for i := 0; i < count; i++ {
		var r dfaRange
		n, err = rezi.DecBinary(data, &r)
		if err != nil {
			return fmt.Errorf("range %d: %w", i, err)
		}
		data = data[n:]
		t.Ranges = append(t.Ranges, r)
	}
	return nil
}

type dfaState struct {
	TagIDs      []string
	Transitions []dfaTransition
}

func (s dfaState) MarshalBinary() ([]byte, error) {
	enc := rezi.EncInt(len(s.TagIDs))
	for _, id := range s.TagIDs {
		enc = append(enc, rezi.EncString(id)...)
	}
	enc = append(enc, rezi.EncInt(len(s.Transitions))...)
	for _, t := range s.Transitions {
		enc = append(enc, rezi.EncBinary(t)...)
	}
	return enc, nil
}

func (s *dfaState) UnmarshalBinary(data []byte) error {
	tagCount, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("tag count: %w", err)
	}
	data = data[n:]

	s.TagIDs = nil
	for i := 0; i < tagCount; i++ {
		id, n, err := rezi.DecString(data)
		if err != nil {
			return fmt.Errorf("tag %d: %w", i, err)
		}
		data = data[n:]
		s.TagIDs = append(s.TagIDs, id)
	}

	transCount, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("transition count: %w", err)
	}
	data = data[n:]

	s.Transitions = nil
	for i := 0; i < transCount; i++ {
		var t dfaTransition
		n, err = rezi.DecBinary(data, &t)
		if err != nil {
			return fmt.Errorf("transition %d: %w", i, err)
		}
		data = data[n:]
		s.Transitions = append(s.Transitions, t)
	}
	return nil
}

type dfaSnapshot struct {
	States []dfaState
	Start  int
}

func (s dfaSnapshot) MarshalBinary() ([]byte, error) {
	enc := rezi.EncInt(s.Start)
	enc = append(enc, rezi.EncInt(len(s.States))...)
	for _, st := range s.States {
		enc = append(enc, rezi.EncBinary(st)...)
	}
	return enc, nil
}

func (s *dfaSnapshot) UnmarshalBinary(data []byte) error {
	start, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	data = data[n:]
	s.Start = start

	count, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("state count: %w", err)
	}
	data = data[n:]

	s.States = nil
	for i := 0; i < count; i++ {
		var st dfaState
		n, err = rezi.DecBinary(data, &st)
		if err != nil {
			return fmt.Errorf("state %d: %w", i, err)
		}
		data = data[n:]
		s.States = append(s.States, st)
	}
	return nil
}

// SaveDFA returns the rezi-encoded combined DFA, building it first if it
// hasn't been built yet. Pair with LoadDFA to skip rebuilding the DFA from
// scratch on a later process's first scan.
func (s *Scanner) SaveDFA() []byte {
	det := s.dfaAutomaton()
	order := det.Reachable()

	indexMap := make(map[int]int, len(order))
	for newIdx, origIdx := range order {
		indexMap[origIdx] = newIdx
	}

	snap := dfaSnapshot{Start: indexMap[det.Start()]}

	for _, origIdx := range order {
		st := det.State(origIdx)
		ds := dfaState{TagIDs: make([]string, len(st.Recognizables))}
		for i, tag := range st.Recognizables {
			ds.TagIDs[i] = tag.ID()
		}
		for _, t := range st.Transitions {
			dt := dfaTransition{Target: indexMap[t.Target]}
			for _, r := range t.Trigger.Ranges() {
				dt.Ranges = append(dt.Ranges, dfaRange{Min: r.Min, Max: r.Max})
			}
			ds.Transitions = append(ds.Transitions, dt)
		}
		snap.States = append(snap.States, ds)
	}

	return rezi.EncBinary(snap)
}

// LoadDFA restores a DFA previously produced by SaveDFA and installs it as
// this Scanner's cached combined automaton, short-circuiting the next call
// to dfaAutomaton. byID must map every declared token type's ID (plus
// ErrorType/EOFType's, if either appears in the encoded DFA) to the
// corresponding token.Type value, since the encoded form only records tags
// by ID.
func (s *Scanner) LoadDFA(data []byte, byID map[string]token.Type) error {
	var snap dfaSnapshot
	n, err := rezi.DecBinary(data, &snap)
	if err != nil {
		return fmt.Errorf("scanner: decode DFA: %w", err)
	}
	if n != len(data) {
		return fmt.Errorf("scanner: decode DFA: consumed %d/%d bytes", n, len(data))
	}

	if len(snap.States) == 0 || snap.Start != 0 {
		return fmt.Errorf("scanner: decode DFA: malformed snapshot (start %d of %d states)", snap.Start, len(snap.States))
	}

	// State 0 is always the start: SaveDFA numbers states by BFS order from
	// det.Start(), and a BFS traversal always visits its root first.
	a := fa.New[token.Type]()
	for i := 1; i < len(snap.States); i++ {
		a.AddState()
	}

	for idx, ds := range snap.States {
		for _, id := range ds.TagIDs {
			typ, ok := byID[id]
			if !ok {
				return fmt.Errorf("scanner: decode DFA: state %d tagged with unknown token type ID %q", idx, id)
			}
			a.AddRecognizable(idx, typ)
		}
		for _, dt := range ds.Transitions {
			var ranges []charset.Range
			for _, r := range dt.Ranges {
				ranges = append(ranges, charset.Range{Min: r.Min, Max: r.Max})
			}
			a.AddTransition(idx, charset.Of(ranges...), dt.Target, false)
		}
	}

	s.dfa = a
	return nil
}
