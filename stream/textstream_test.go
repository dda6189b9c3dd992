package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextStream_ReadsInOrder(t *testing.T) {
	ts := NewTextStream("ab")

	assert.True(t, ts.HasMoreSymbols())
	assert.Equal(t, 'a', ts.ReadNextSymbol())
	assert.Equal(t, 'b', ts.ReadNextSymbol())
	assert.False(t, ts.HasMoreSymbols())
	assert.Equal(t, rune(0), ts.ReadNextSymbol())
}

func TestTextStream_PositionTracksLineAndColumn(t *testing.T) {
	ts := NewTextStream("ab\ncd")

	ts.ReadNextSymbol() // a
	assert.Equal(t, Position{Index: 1, Line: 1, Column: 2}, ts.Position())

	ts.ReadNextSymbol() // b
	ts.ReadNextSymbol() // \n
	assert.Equal(t, Position{Index: 3, Line: 2, Column: 1}, ts.Position())

	ts.ReadNextSymbol() // c
	assert.Equal(t, Position{Index: 4, Line: 2, Column: 2}, ts.Position())
}

func TestTextStream_MarkResetRestoresPosition(t *testing.T) {
	ts := NewTextStream("hello")

	ts.ReadNextSymbol()
	ts.ReadNextSymbol()
	ts.Mark()
	ts.ReadNextSymbol()
	ts.ReadNextSymbol()
	before := ts.Position()
	require.Equal(t, 4, before.Index)

	ts.Reset()
	assert.Equal(t, 2, ts.Position().Index)
	assert.Equal(t, 'l', ts.ReadNextSymbol())
}

func TestTextStream_UnmarkDiscardsWithoutMoving(t *testing.T) {
	ts := NewTextStream("hello")

	ts.ReadNextSymbol()
	ts.Mark()
	ts.ReadNextSymbol()
	ts.Unmark()

	assert.Equal(t, 2, ts.Position().Index)
}

func TestTextStream_NestedMarks(t *testing.T) {
	ts := NewTextStream("abcdef")

	ts.Mark() // at 0
	ts.ReadNextSymbol()
	ts.Mark() // at 1
	ts.ReadNextSymbol()
	ts.ReadNextSymbol()

	ts.Reset() // back to 1
	assert.Equal(t, 1, ts.Position().Index)

	ts.Reset() // back to 0
	assert.Equal(t, 0, ts.Position().Index)
}

func TestTextStream_ResetOnEmptyMarkStackPanics(t *testing.T) {
	ts := NewTextStream("x")
	assert.Panics(t, func() { ts.Reset() })
	assert.Panics(t, func() { ts.Unmark() })
}
