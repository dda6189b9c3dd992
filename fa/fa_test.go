package fa

import (
	"math/rand"
	"testing"

	"github.com/dekarrin/ictioscan/charset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accepts runs s fully through a's matcher and reports whether it ends on
// an accepting state having consumed every character.
func accepts[T comparable](a *Automaton[T], s string) bool {
	m := NewMatcher(a)
	for _, r := range s {
		if !m.Match(r) {
			return false
		}
	}
	return len(m.Recognized()) > 0
}

func literal(s string) *Automaton[bool] {
	var parts []*Automaton[bool]
	for _, r := range s {
		a := New[bool]()
		accept := a.AddState(true)
		a.AddTransition(a.Start(), charset.MustChar(int(r)), accept, false)
		parts = append(parts, a)
	}
	return Concatenation(parts...)
}

func TestLiteral_MatchesExactlyItself(t *testing.T) {
	a := literal("fun")

	assert.True(t, accepts(a, "fun"))
	assert.False(t, accepts(a, "funny"[:3]+"x"))
	assert.False(t, accepts(a, "fu"))
}

func TestOptional_Idempotent(t *testing.T) {
	a := literal("x")
	once := Optional(a)
	twice := Optional(once)

	for _, s := range []string{"", "x"} {
		assert.Equal(t, accepts(once, s), accepts(twice, s), "input %q", s)
	}
	assert.True(t, accepts(once, ""))
	assert.True(t, accepts(once, "x"))
}

func TestRepeated_OneOrMoreAndStar(t *testing.T) {
	a := literal("ab")
	plus := Repeated(a)
	star := Optional(Repeated(a))

	assert.False(t, accepts(plus, ""))
	assert.True(t, accepts(plus, "ab"))
	assert.True(t, accepts(plus, "abab"))
	assert.True(t, accepts(plus, "ababab"))
	assert.False(t, accepts(plus, "aba"))

	assert.True(t, accepts(star, ""))
	assert.True(t, accepts(star, "ab"))
	assert.True(t, accepts(star, "abab"))
}

func TestChoice_RecognizesUnion(t *testing.T) {
	a := literal("cat")
	b := literal("dog")
	c := Choice(a, b)

	assert.True(t, accepts(c, "cat"))
	assert.True(t, accepts(c, "dog"))
	assert.False(t, accepts(c, "cow"))
}

func TestConcatenation_MixedOptionalOperands(t *testing.T) {
	// a.optional . b . c.optional recognizes b | a.b | b.c | a.b.c
	a := Optional(literal("a"))
	b := literal("b")
	c := Optional(literal("c"))

	concat := Concatenation(a, b, c)

	accept := map[string]bool{
		"b":   true,
		"ab":  true,
		"bc":  true,
		"abc": true,
		"":    false,
		"a":   false,
		"c":   false,
		"ac":  false,
		"ba":  false,
	}

	for s, want := range accept {
		assert.Equal(t, want, accepts(concat, s), "input %q", s)
	}
}

func TestConcatenation_AllOptionalIsOptional(t *testing.T) {
	a := Optional(literal("a"))
	b := Optional(literal("b"))
	concat := Concatenation(a, b)

	assert.True(t, concat.IsOptional())
	assert.True(t, accepts(concat, ""))
	assert.True(t, accepts(concat, "a"))
	assert.True(t, accepts(concat, "b"))
	assert.True(t, accepts(concat, "ab"))
}

func buildOverlapping() *Automaton[string] {
	// two branches from the same start sharing an overlapping trigger range,
	// tagged distinctly, to exercise determinization across overlaps.
	a := &Automaton[string]{}
	start := a.AddState()
	a.start = start

	left := a.AddState("left")
	right := a.AddState("right")

	// [a-n] -> left, [h-z] -> right (overlapping on h-n)
	a.AddTransition(start, charset.MustRangeOf('a', 'n'), left, false)
	a.AddTransition(start, charset.MustRangeOf('h', 'z'), right, false)

	return a
}

func TestReorganizeOverlaps_SplitsTriggersPerTarget(t *testing.T) {
	a := buildOverlapping()
	a.ReorganizeOverlaps(a.Start())

	st := a.State(a.Start())

	// distinct triggers must be disjoint; the former overlap survives only
	// as identical triggers duplicated across targets.
	for i := 0; i < len(st.Transitions); i++ {
		for j := i + 1; j < len(st.Transitions); j++ {
			ti, tj := st.Transitions[i], st.Transitions[j]
			if !ti.Trigger.Equal(tj.Trigger) {
				overlap := charset.Intersection(ti.Trigger, tj.Trigger)
				assert.True(t, overlap.Empty(), "non-identical triggers %s and %s overlap", ti.Trigger, tj.Trigger)
			}
		}
	}

	// 'm' sits in the h-n overlap, so it must now reach both targets via
	// duplicated transitions on the same partition trigger.
	targets := map[int]bool{}
	for _, tr := range st.Transitions {
		if tr.Trigger.Contains('m') {
			targets[tr.Target] = true
		}
	}
	assert.Len(t, targets, 2, "overlap region should fan out to both original targets")
}

func TestDetermize_IsDeterministic(t *testing.T) {
	nd := buildOverlapping()
	d := Determinize(nd)

	for _, idx := range d.Reachable() {
		st := d.State(idx)
		for i := 0; i < len(st.Transitions); i++ {
			for j := i + 1; j < len(st.Transitions); j++ {
				overlap := charset.Intersection(st.Transitions[i].Trigger, st.Transitions[j].Trigger)
				assert.True(t, overlap.Empty(), "state %d has overlapping transitions", idx)
			}
		}
	}
}

func TestDeterminize_PreservesLanguage(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	src := literal("function")
	choice := Choice(literal("fun"), src)
	det := Determinize(choice)

	alphabet := "abcdefghijklmnopqrstuvwxyzFUN"

	randStr := func(n int) string {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(buf)
	}

	for i := 0; i < 100; i++ {
		s := randStr(rng.Intn(10))
		require.Equal(t, accepts(choice, s), accepts(det, s), "input %q", s)
	}

	// and the reverse direction: strings sampled via the determinized
	// automaton's own matcher must agree with the source too.
	for i := 0; i < 100; i++ {
		m := NewMatcher(det)
		var sb []rune
		for j := 0; j < 5; j++ {
			if len(det.State(m.CurrentState()).Transitions) == 0 {
				break
			}
			sb = append(sb, m.RandomMatch(rng))
		}
		s := string(sb)
		require.Equal(t, accepts(choice, s), accepts(det, s), "generated input %q", s)
	}
}

func TestDedupe_ReducesStateCountWhenStatesAreEquivalent(t *testing.T) {
	// "ab|cb" after determinizing has two paths that both collapse into an
	// identical final state; dedupe should merge those if structurally
	// identical (no tags differentiate them here).
	a := Choice(literal("ab"), literal("cb"))
	det := Determinize(a)

	// every state should be reachable and no two distinct reachable states
	// should be structurally equal post-dedupe.
	order := det.Reachable()
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			si := det.State(order[i])
			sj := det.State(order[j])
			same := equalTagSets(si.Recognizables, sj.Recognizables) && len(si.Transitions) == len(sj.Transitions)
			if same && len(si.Transitions) == 0 {
				t.Fatalf("states %d and %d are structurally identical final states, should have been merged", order[i], order[j])
			}
		}
	}
}

func TestEncapsulation_AccessorsReturnDefensiveCopies(t *testing.T) {
	a := literal("x")
	st := a.State(a.Start())
	st.Transitions[0].Target = 999

	fresh := a.State(a.Start())
	assert.NotEqual(t, 999, fresh.Transitions[0].Target)
}
