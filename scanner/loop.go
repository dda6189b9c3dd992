package scanner

import (
	"github.com/dekarrin/ictioscan/fa"
	"github.com/dekarrin/ictioscan/stream"
	"github.com/dekarrin/ictioscan/token"
)

// loopState is the four-state scanning-loop variable.
type loopState int

const (
	start loopState = iota
	good
	recognizing
	bad
)

// scanOne runs the longest-match loop once against in, which must have at
// least one more symbol available (the caller - tokenStream.fill - is
// responsible for emitting the EOF token itself once the stream is
// exhausted, rather than calling scanOne).
//
// Mark-stack bookkeeping: each iteration pushes exactly one look-ahead
// mark, balanced by either an immediate Unmark (the character extends the
// current run) or a Reset (it doesn't, and is left unread for next time).
// Separately, at most one "standing mark" is ever outstanding across
// iterations at once: it marks the stream position right after the most
// recent accept, so that if further speculative characters are consumed
// chasing an even longer match but never reach another accept, the stream
// can roll back to that last good position in one Reset. Every standing
// mark that gets pushed is eventually popped by exactly one Unmark or
// Reset below, so the loop never leaves the mark stack unbalanced on any
// exit path (EOF, mode-flip break, or falling out of the for loop).
func (s *Scanner) scanOne(in stream.InputStream) token.Token {
	startPos := in.Position()
	m := fa.NewMatcher(s.dfaAutomaton())

	state := start
	var lexeme []rune
	var consumed []rune
	haveStandingMark := false

	for in.HasMoreSymbols() {
		in.Mark()
		c := in.ReadNextSymbol()
		doesMatch := m.Match(c)
		doesRecognize := doesMatch && len(m.Recognized()) > 0

		if state == start {
			if doesMatch {
				state = good
			} else {
				state = bad
			}
		}

		sameMode := doesMatch != (state == bad)
		if !sameMode {
			in.Reset()
			break
		}

		in.Unmark()
		consumed = append(consumed, c)

		if state != bad && doesRecognize {
			state = recognizing
			lexeme = append(lexeme, consumed...)
			consumed = consumed[:0]

			if haveStandingMark {
				in.Unmark()
			}
			in.Mark()
			haveStandingMark = true
		}
	}

	if state != recognizing {
		lexeme = append(lexeme, consumed...)
		// A mode-flip break out of BAD may have walked the matcher through a
		// transition that reached an accept state (the character that ended
		// the error run happened to start a real token) without this scan
		// ever committing to RECOGNIZING. Reset so LastRecognized reports
		// empty and the error path below is taken: an uncommitted peek must
		// not leak its tag onto this lexeme.
		m.Reset()
	} else if len(consumed) > 0 {
		in.Reset()
		haveStandingMark = false
	}

	if haveStandingMark {
		in.Unmark()
	}

	typ := s.errorType
	if tags := m.LastRecognized(); len(tags) > 0 {
		typ = tags[0]
	}

	var fullLine string
	if lts, ok := in.(stream.LineTextSource); ok {
		fullLine = lts.LineText(startPos.Line)
	}

	lexemeStr := string(lexeme)
	return token.New(typ, lexemeStr, mustParse(typ, lexemeStr), startPos.Index, startPos.Line, startPos.Column, fullLine)
}

// mustParse calls typ's parser and falls back to the raw lexeme on error
// rather than propagating, since a lexical-level scan failure is recorded
// by the error token type itself, not by re-failing the value parse of
// whatever type tie-break chose.
func mustParse(typ token.Type, lexeme string) any {
	v, err := typ.ParseAny(lexeme)
	if err != nil {
		return lexeme
	}
	return v
}
