package regex

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// upper and lower do Unicode-aware upper/lower casing for CaseInsensitive. A
// package-level caser avoids re-allocating one per call; cases.Caser values
// are safe for concurrent use.
var (
	upper = cases.Upper(language.Und)
	lower = cases.Lower(language.Und)
)

// CaseInsensitive returns a RegEx matching lit regardless of the case of its
// letters, by building a Choice over the upper- and lower-case code point of
// each rune in lit (non-letters fold to a single-element choice, i.e. an
// exact match). Casing uses golang.org/x/text/cases so that folding is
// correct for code points outside ASCII, not just 'A'-'Z'/'a'-'z'.
func CaseInsensitive(lit string) RegEx {
	if lit == "" {
		return Epsilon()
	}

	up := []rune(upper.String(lit))
	low := []rune(lower.String(lit))
	orig := []rune(lit)

	n := len(orig)
	if len(up) != n || len(low) != n {
		// Casing changed the rune count (e.g. a ligature expanding under
		// upper-casing); falls back to an exact-literal match rather than
		// risk misaligning per-rune variants.
		return Literal(lit)
	}

	parts := make([]RegEx, n)
	for i := range orig {
		variants := map[rune]bool{orig[i]: true, up[i]: true, low[i]: true}
		var alts []RegEx
		for c := range variants {
			alts = append(alts, MustChar(c))
		}
		if len(alts) == 1 {
			parts[i] = alts[0]
		} else {
			parts[i] = Choice(alts...)
		}
	}

	return Concat(parts...)
}
