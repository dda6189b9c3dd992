// Package regex is a combinator-based RegEx façade over the fa package: a
// RegEx is nothing more than an fa.Automaton[bool] whose only tag value is
// the single "accept" marker (true). Expressions are built by composing
// smaller RegExes with the package-level combinators (Char, Literal, Concat,
// Choice, Optional, Repeated, ZeroOrMore) rather than by parsing a pattern
// string - there is no pattern syntax anywhere in this package.
package regex

import (
	"math/rand"

	"github.com/dekarrin/ictioscan/charset"
	"github.com/dekarrin/ictioscan/fa"
)

// accept is the only recognizable value a RegEx automaton ever carries.
const accept = true

// RegEx is an immutable, composable character pattern. The zero value is not
// usable; construct one with Char, CharSet, Literal, or a combinator.
type RegEx struct {
	automaton *fa.Automaton[bool]
}

// fromAutomaton wraps a already-built automaton. Used internally by
// combinators that have already done the composition work.
func fromAutomaton(a *fa.Automaton[bool]) RegEx {
	return RegEx{automaton: a}
}

// Automaton returns a defensive clone of the RegEx's underlying automaton,
// for callers (principally the scanner package) that need to retag and
// recompose it into a larger DFA.
func (r RegEx) Automaton() *fa.Automaton[bool] {
	return r.automaton.Clone(nil)
}

// IsOptional reports whether r matches the empty string.
func (r RegEx) IsOptional() bool {
	return r.automaton.IsOptional()
}

// CharSet returns a RegEx matching exactly one code point drawn from cs.
func CharSet(cs charset.CharSet) RegEx {
	a := fa.New[bool]()
	acceptState := a.AddState(accept)
	a.AddTransition(a.Start(), cs, acceptState, false)
	return fromAutomaton(a)
}

// Char returns a RegEx matching exactly the single code point c.
func Char(c rune) (RegEx, error) {
	cs, err := charset.Char(int(c))
	if err != nil {
		return RegEx{}, err
	}
	return CharSet(cs), nil
}

// MustChar is like Char but panics on error; for use with constant code
// points known to be in range.
func MustChar(c rune) RegEx {
	re, err := Char(c)
	if err != nil {
		panic(err)
	}
	return re
}

// CharRange returns a RegEx matching any single code point in [lo, hi]
// (endpoints are reordered if given backwards, per charset.RangeOf).
func CharRange(lo, hi rune) (RegEx, error) {
	cs, err := charset.RangeOf(int(lo), int(hi))
	if err != nil {
		return RegEx{}, err
	}
	return CharSet(cs), nil
}

// MustCharRange is like CharRange but panics on error.
func MustCharRange(lo, hi rune) RegEx {
	re, err := CharRange(lo, hi)
	if err != nil {
		panic(err)
	}
	return re
}

// Literal returns a RegEx matching exactly the given string, one code point
// at a time, in order.
func Literal(s string) RegEx {
	if s == "" {
		return Epsilon()
	}
	parts := make([]RegEx, 0, len(s))
	for _, c := range s {
		parts = append(parts, MustChar(c))
	}
	return Concat(parts...)
}

// CharSetAny returns a RegEx matching any single code point in the
// alphabet.
func CharSetAny() RegEx {
	return CharSet(charset.All())
}

// CharSetExcluding returns a RegEx matching any single code point other
// than those given.
func CharSetExcluding(exclude ...rune) RegEx {
	var excluded charset.CharSet
	for _, c := range exclude {
		excluded = charset.Union(excluded, charset.MustChar(int(c)))
	}
	return CharSet(charset.Complement(excluded))
}

// Epsilon returns a RegEx matching only the empty string.
func Epsilon() RegEx {
	return fromAutomaton(fa.NewAccepting[bool](accept))
}

// Concat returns a RegEx matching each of res in sequence. Concat() with no
// arguments returns Epsilon.
func Concat(res ...RegEx) RegEx {
	if len(res) == 0 {
		return Epsilon()
	}
	automata := make([]*fa.Automaton[bool], len(res))
	for i, re := range res {
		automata[i] = re.automaton
	}
	return fromAutomaton(fa.Concatenation(automata...))
}

// Choice returns a RegEx matching any one of res (their union).
func Choice(res ...RegEx) RegEx {
	automata := make([]*fa.Automaton[bool], len(res))
	for i, re := range res {
		automata[i] = re.automaton
	}
	return fromAutomaton(fa.Choice(automata...))
}

// Optional returns a RegEx matching re or the empty string.
func Optional(re RegEx) RegEx {
	return fromAutomaton(fa.Optional(re.automaton))
}

// Repeated returns a RegEx matching one or more repetitions of re (re+).
func Repeated(re RegEx) RegEx {
	return fromAutomaton(fa.Repeated(re.automaton))
}

// ZeroOrMore returns a RegEx matching zero or more repetitions of re (re*).
func ZeroOrMore(re RegEx) RegEx {
	return Optional(Repeated(re))
}

// Determinized returns a RegEx equivalent to r but backed by a deterministic,
// deduplicated automaton. Combinators never require their operands to be
// deterministic, but repeatedly composing non-deterministic RegExes makes
// every subsequent Match/Find walk slower, so long-lived RegExes (token-type
// patterns in particular) are worth determinizing once after assembly.
func (r RegEx) Determinized() RegEx {
	return fromAutomaton(fa.Determinize(r.automaton))
}

// Match reports whether s, in its entirety, is recognized by r. The walk is
// a set-of-states simulation rather than a single fa.Matcher, so it stays
// correct even when r's underlying automaton is nondeterministic
// (composition alone never determinizes; see Determinized).
func (r RegEx) Match(s string) bool {
	current := []int{r.automaton.Start()}
	for _, c := range s {
		current = r.step(current, c)
		if len(current) == 0 {
			return false
		}
	}
	return r.anyAccepting(current)
}

// Find scans s left to right and returns the longest prefix of some suffix
// of s recognized by r, along with the rune offset at which that match
// starts. It reports false if no non-empty match exists anywhere in s
// (an all-optional r would otherwise trivially "match" at every position).
func (r RegEx) Find(s string) (match string, start int, found bool) {
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		current := []int{r.automaton.Start()}
		lastGood := -1
		for j := i; j < len(runes); j++ {
			current = r.step(current, runes[j])
			if len(current) == 0 {
				break
			}
			if r.anyAccepting(current) {
				lastGood = j
			}
		}
		if lastGood >= i {
			return string(runes[i : lastGood+1]), i, true
		}
	}
	return "", 0, false
}

// step advances a set-of-states walk by one code point: the result is every
// state reachable from any member of current on a transition whose trigger
// contains c, deduplicated.
func (r RegEx) step(current []int, c rune) []int {
	var next []int
	seen := map[int]bool{}
	for _, idx := range current {
		for _, t := range r.automaton.State(idx).Transitions {
			if t.Trigger.Contains(c) && !seen[t.Target] {
				seen[t.Target] = true
				next = append(next, t.Target)
			}
		}
	}
	return next
}

func (r RegEx) anyAccepting(states []int) bool {
	for _, idx := range states {
		if len(r.automaton.State(idx).Recognizables) > 0 {
			return true
		}
	}
	return false
}

// Random generates a string recognized by r by walking a random path through
// its automaton. Whenever the walk is on an accepting state it stops with
// probability one half; it always stops after maxSteps transitions, to
// guarantee termination on automata like ZeroOrMore that can run forever. It
// panics if the walk ends on a non-accepting state, which can only happen if
// maxSteps is too small for r.
func (r RegEx) Random(rng *rand.Rand, maxSteps int) string {
	m := fa.NewMatcher(r.automaton)
	var sb []rune
	for i := 0; i < maxSteps; i++ {
		if len(m.Recognized()) > 0 && rng.Intn(2) == 0 {
			return string(sb)
		}
		if len(r.automaton.State(m.CurrentState()).Transitions) == 0 {
			break
		}
		sb = append(sb, m.RandomMatch(rng))
	}
	if len(m.Recognized()) == 0 {
		panic("regex: Random exhausted maxSteps without reaching an accepting state")
	}
	return string(sb)
}
