package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutRejectsOverlap(t *testing.T) {
	g := New()
	require.NoError(t, g.Put(1, 2, Text("a")))

	err := g.Put(1, 2, Text("b"))
	assert.ErrorIs(t, err, ErrOverlap)

	c, ok := g.At(1, 2)
	require.True(t, ok)
	assert.Equal(t, "a", c.Text)
	assert.Equal(t, 1, g.Len())
}

func TestPutRejectsNegative(t *testing.T) {
	g := New()
	assert.ErrorIs(t, g.Put(-1, 0, Blank()), ErrOutOfRange)
	assert.ErrorIs(t, g.Put(0, -3, Blank()), ErrOutOfRange)
	assert.Equal(t, 0, g.Len())
}

func TestBoundsAndOrder(t *testing.T) {
	g := New()
	require.NoError(t, g.Put(3, 0, Integer(7)))
	require.NoError(t, g.Put(0, 4, Header("h")))

	rows, cols := g.Bounds()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 5, cols)

	ps := g.Placements()
	require.Len(t, ps, 2)
	assert.Equal(t, Coord{3, 0}, Coord{ps[0].Row, ps[0].Col})
	assert.Equal(t, KindHeader, ps[1].Cell.Kind)
}

func TestCellString(t *testing.T) {
	tests := []struct {
		cell     Cell
		expected string
	}{
		{Header("Key"), "Key"},
		{Text("x"), "x"},
		{Number(1.5), "1.5"},
		{Integer(-4), "-4"},
		{Boolean(true), "true"},
		{Blank(), ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.cell.String())
	}
}
