package token

import "fmt"

// Token is a lexeme read from source text, tagged with the Type that
// recognized it and the value its parser produced, plus enough positional
// information for error reporting.
type Token struct {
	typ      Type
	lexeme   string
	value    any
	index    int
	line     int
	linePos  int
	fullLine string
}

// New constructs a Token. index is the 0-based offset into the source
// stream where the lexeme began; line and linePos are 1-indexed.
func New(typ Type, lexeme string, value any, index, line, linePos int, fullLine string) Token {
	return Token{
		typ:      typ,
		lexeme:   lexeme,
		value:    value,
		index:    index,
		line:     line,
		linePos:  linePos,
		fullLine: fullLine,
	}
}

// Type returns the TokenType that recognized this token.
func (t Token) Type() Type { return t.typ }

// Lexeme returns the exact source text that was scanned.
func (t Token) Lexeme() string { return t.lexeme }

// Value returns the value t.Type().ParseAny(t.Lexeme()) produced at scan
// time, boxed as any.
func (t Token) Value() any { return t.value }

// Index returns the 0-based code-point offset into the stream where the
// lexeme began.
func (t Token) Index() int { return t.index }

// Line returns the 1-indexed line number the lexeme starts on.
func (t Token) Line() int { return t.line }

// LinePos returns the 1-indexed column the lexeme starts at.
func (t Token) LinePos() int { return t.linePos }

// FullLine returns the complete text of the source line the lexeme starts
// on, for use in caret-pointing error messages.
func (t Token) FullLine() string { return t.fullLine }

func (t Token) String() string {
	return fmt.Sprintf("%s %q @%d:%d", t.typ.Human(), t.lexeme, t.line, t.linePos)
}

// Stream is a stream of Tokens read from source text.
type Stream interface {
	// Next returns the next token and advances the stream by one.
	Next() Token

	// Peek returns the next token without advancing the stream.
	Peek() Token

	// HasNext reports whether the stream has at least one more token
	// (including the terminal end-of-stream token, which HasNext reports
	// as present until it has actually been consumed).
	HasNext() bool
}
