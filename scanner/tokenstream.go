package scanner

import (
	"github.com/dekarrin/ictioscan/stream"
	"github.com/dekarrin/ictioscan/token"
)

// Scan returns a token.Stream that lazily scans in, one token at a time (a
// Peeked token is buffered and returned again by the next Peek or Next),
// terminated by exactly one EOF token.
func (s *Scanner) Scan(in stream.InputStream) token.Stream {
	return &tokenStream{scanner: s, in: in}
}

type tokenStream struct {
	scanner *Scanner
	in      stream.InputStream

	peeked     *token.Token
	emittedEOF bool
}

func (ts *tokenStream) fill() token.Token {
	if ts.peeked != nil {
		return *ts.peeked
	}

	var tok token.Token
	if ts.in.HasMoreSymbols() {
		tok = ts.scanner.scanOne(ts.in)
	} else {
		pos := ts.in.Position()
		tok = token.New(ts.scanner.eofType, "EOF", "EOF", pos.Index, pos.Line, pos.Column, "")
	}
	ts.peeked = &tok
	return tok
}

// Next returns the next token and advances the stream by one.
func (ts *tokenStream) Next() token.Token {
	tok := ts.fill()
	ts.peeked = nil
	if tok.Type().Equal(ts.scanner.eofType) {
		ts.emittedEOF = true
	}
	return tok
}

// Peek returns the next token without advancing the stream.
func (ts *tokenStream) Peek() token.Token {
	return ts.fill()
}

// HasNext reports whether the stream has at least one more token,
// including an not-yet-emitted EOF sentinel.
func (ts *tokenStream) HasNext() bool {
	return !ts.emittedEOF
}
