package charset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnion_Identity(t *testing.T) {
	a := MustRangeOf('a', 'z')

	assert.True(t, Union(a, Empty()).Equal(a))
	assert.True(t, Union(a, All()).Equal(All()))
}

func TestIntersection_IdentityAndZero(t *testing.T) {
	a := MustRangeOf('a', 'z')

	assert.True(t, Intersection(a, All()).Equal(a))
	assert.True(t, Intersection(a, Empty()).Equal(Empty()))
}

func TestComplement_Involution(t *testing.T) {
	a := Union(MustRangeOf('a', 'm'), MustRangeOf('p', 'z'))

	assert.True(t, Complement(Complement(a)).Equal(a))
	assert.True(t, Complement(Empty()).Equal(All()))
	assert.True(t, Complement(All()).Equal(Empty()))
}

func TestUnionComplement_CoverAndDisjoint(t *testing.T) {
	a := MustRangeOf('a', 'z')

	assert.True(t, Union(a, Complement(a)).Equal(All()))
	assert.True(t, Intersection(a, Complement(a)).Equal(Empty()))
}

func TestUnion_MergesAdjacentAndOverlapping(t *testing.T) {
	a := MustRangeOf('a', 'm')
	b := MustRangeOf('n', 'z') // adjacent, should coalesce
	u := Union(a, b)

	assert.Equal(t, []Range{{Min: 'a', Max: 'z'}}, u.Ranges())
}

func TestSize_InclusionExclusion(t *testing.T) {
	a := MustRangeOf('a', 'm')
	b := MustRangeOf('h', 'z')

	union := Union(a, b)
	inter := Intersection(a, b)

	assert.Equal(t, a.Size()+b.Size()-inter.Size(), union.Size())
}

func TestChar_RejectsOutOfRange(t *testing.T) {
	_, err := Char(-1)
	assert.ErrorIs(t, err, ErrInvalidCharCode)

	_, err = Char(MaxCodePoint + 1)
	assert.ErrorIs(t, err, ErrInvalidCharCode)
}

func TestRangeOf_NormalizesBackwardsInput(t *testing.T) {
	cs, err := RangeOf('z', 'a')
	assert.NoError(t, err)
	assert.Equal(t, []Range{{Min: 'a', Max: 'z'}}, cs.Ranges())
}

func TestRanges_IsDefensiveCopy(t *testing.T) {
	cs := MustRangeOf('a', 'z')
	got := cs.Ranges()
	got[0].Min = 0

	assert.Equal(t, uint16('a'), cs.Ranges()[0].Min, "mutating the returned slice must not affect the CharSet")
}

func TestComputeOverlaps_Properties(t *testing.T) {
	an := MustRangeOf('a', 'n') // a-n
	hz := MustRangeOf('h', 'z') // h-z
	sets := []CharSet{an, hz}

	parts := ComputeOverlaps(sets)

	// pairwise disjoint
	for i := 0; i < len(parts); i++ {
		for j := i + 1; j < len(parts); j++ {
			assert.True(t, Intersection(parts[i].Set, parts[j].Set).Empty())
		}
	}

	// union of partitions equals union of inputs
	var partSets []CharSet
	for _, p := range parts {
		partSets = append(partSets, p.Set)
	}
	assert.True(t, Union(partSets...).Equal(Union(sets...)))

	// for any i, union of partitions containing i equals s_i
	for i, s := range sets {
		var forI []CharSet
		for _, p := range parts {
			for _, idx := range p.Indices {
				if idx == i {
					forI = append(forI, p.Set)
					break
				}
			}
		}
		assert.True(t, Union(forI...).Equal(s), "partitions containing input %d must union to that input", i)
	}

	// membership sets are unique
	seen := map[string]bool{}
	for _, p := range parts {
		key := ""
		for _, idx := range p.Indices {
			key += string(rune('A' + idx))
		}
		assert.False(t, seen[key], "duplicate membership set %v", p.Indices)
		seen[key] = true
	}
}

func TestComputeOverlaps_MembershipPerRegion(t *testing.T) {
	// [a-n] and [h-z] split into three regions: a-g (first set only),
	// h-n (both), o-z (second set only).
	an := MustRangeOf('a', 'n')
	hz := MustRangeOf('h', 'z')

	parts := ComputeOverlaps([]CharSet{an, hz})

	wantMembership := map[rune][]int{
		'c': {0},
		'm': {0, 1},
		'q': {1},
	}
	for c, want := range wantMembership {
		found := false
		for _, p := range parts {
			if p.Set.Contains(c) {
				found = true
				assert.Equal(t, want, p.Indices, "membership for %q", c)
			}
		}
		assert.True(t, found, "no partition contains %q", c)
	}
}

func TestRandom_StaysWithinSet(t *testing.T) {
	cs := Union(MustRangeOf('a', 'f'), MustRangeOf('x', 'z'))
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		c := cs.Random(rng)
		assert.True(t, cs.Contains(c))
	}
}
