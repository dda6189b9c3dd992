package regex

import (
	"math/rand"
	"testing"

	"github.com/dekarrin/ictioscan/charset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteral_Match(t *testing.T) {
	re := Literal("fun")

	assert.True(t, re.Match("fun"))
	assert.False(t, re.Match("funny"))
	assert.False(t, re.Match("fu"))
	assert.False(t, re.Match(""))
}

func TestEpsilon_OnlyMatchesEmpty(t *testing.T) {
	re := Epsilon()

	assert.True(t, re.Match(""))
	assert.False(t, re.Match("a"))
	assert.True(t, re.IsOptional())
}

func TestChoice_Union(t *testing.T) {
	re := Choice(Literal("cat"), Literal("dog"))

	assert.True(t, re.Match("cat"))
	assert.True(t, re.Match("dog"))
	assert.False(t, re.Match("cow"))
}

func TestOptional_AcceptsEmptyAndBody(t *testing.T) {
	re := Optional(Literal("x"))

	assert.True(t, re.Match(""))
	assert.True(t, re.Match("x"))
	assert.False(t, re.Match("xx"))
	assert.True(t, re.IsOptional())
}

func TestZeroOrMore_AcceptsAnyRepetitionCount(t *testing.T) {
	re := ZeroOrMore(Literal("ab"))

	assert.True(t, re.Match(""))
	assert.True(t, re.Match("ab"))
	assert.True(t, re.Match("ababab"))
	assert.False(t, re.Match("aba"))
}

func TestRepeated_RequiresAtLeastOne(t *testing.T) {
	re := Repeated(Literal("ab"))

	assert.False(t, re.Match(""))
	assert.True(t, re.Match("ab"))
	assert.True(t, re.Match("abab"))
}

func TestConcat_MixedOptionalOperands(t *testing.T) {
	re := Concat(Optional(Literal("a")), Literal("b"), Optional(Literal("c")))

	for s, want := range map[string]bool{
		"b": true, "ab": true, "bc": true, "abc": true,
		"": false, "a": false, "c": false,
	} {
		assert.Equal(t, want, re.Match(s), "input %q", s)
	}
}

func TestCharRange_MatchesInclusiveBounds(t *testing.T) {
	re := MustCharRange('a', 'f')

	for _, c := range "abcdef" {
		assert.True(t, re.Match(string(c)), "char %q", c)
	}
	assert.False(t, re.Match("g"))
}

func TestFind_LocatesLongestMatchAtEarliestPosition(t *testing.T) {
	re := Choice(Literal("fun"), Literal("function"))

	match, start, found := re.Find("a function call")
	require.True(t, found)
	assert.Equal(t, "function", match)
	assert.Equal(t, 2, start)
}

func TestFind_NoMatchAnywhere(t *testing.T) {
	re := Literal("xyz")

	_, _, found := re.Find("abcdef")
	assert.False(t, found)
}

func TestDeterminized_PreservesLanguage(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	re := Choice(Literal("fun"), Literal("function"))
	det := re.Determinized()

	alphabet := "abcdefghijklmnopqrstuvwxyz"
	for i := 0; i < 50; i++ {
		n := rng.Intn(10)
		buf := make([]byte, n)
		for j := range buf {
			buf[j] = alphabet[rng.Intn(len(alphabet))]
		}
		s := string(buf)
		assert.Equal(t, re.Match(s), det.Match(s), "input %q", s)
	}
}

func TestRandom_ProducesMatchingStrings(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	re := Concat(Literal("a"), ZeroOrMore(CharSet(charset.MustRangeOf('0', '9'))))

	for i := 0; i < 20; i++ {
		s := re.Random(rng, 20)
		assert.True(t, re.Match(s), "generated %q should match its own regex", s)
	}
}

func TestCaseInsensitive_MatchesAnyCasing(t *testing.T) {
	re := CaseInsensitive("Go")

	assert.True(t, re.Match("Go"))
	assert.True(t, re.Match("go"))
	assert.True(t, re.Match("GO"))
	assert.True(t, re.Match("gO"))
	assert.False(t, re.Match("Gone"))
}
