// Package grid holds the sparse row/column placements produced by layout.
package grid

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrOverlap indicates two placements targeted the same cell.
	ErrOverlap = errors.New("cell already placed")
	// ErrOutOfRange indicates a negative coordinate.
	ErrOutOfRange = errors.New("cell coordinate out of range")
)

// Kind identifies the content of a cell.
type Kind uint8

const (
	KindBlank Kind = iota
	KindHeader
	KindText
	KindNumber
	KindInteger
	KindBoolean
)

// Cell is the typed content of one placement.
type Cell struct {
	Kind    Kind
	Text    string
	Number  float64
	Integer int64
	Bool    bool
}

// Header returns a header label cell.
func Header(label string) Cell { return Cell{Kind: KindHeader, Text: label} }

// Text returns a text cell.
func Text(s string) Cell { return Cell{Kind: KindText, Text: s} }

// Number returns a floating point cell.
func Number(f float64) Cell { return Cell{Kind: KindNumber, Number: f} }

// Integer returns an integer cell.
func Integer(i int64) Cell { return Cell{Kind: KindInteger, Integer: i} }

// Boolean returns a native boolean cell.
func Boolean(b bool) Cell { return Cell{Kind: KindBoolean, Bool: b} }

// Blank returns a cell with no value.
func Blank() Cell { return Cell{} }

// String renders the cell content for display and comparisons.
func (c Cell) String() string {
	switch c.Kind {
	case KindHeader, KindText:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindInteger:
		return strconv.FormatInt(c.Integer, 10)
	case KindBoolean:
		return strconv.FormatBool(c.Bool)
	}
	return ""
}

// Coord is a zero-based cell position.
type Coord struct {
	Row, Col int
}

// Placement is a cell at a position.
type Placement struct {
	Row, Col int
	Cell     Cell
}

// Grid is the set of placements for one sheet, kept in emission order.
type Grid struct {
	placements []Placement
	index      map[Coord]int
	rows, cols int
}

// New returns an empty grid.
func New() *Grid {
	return &Grid{index: make(map[Coord]int)}
}

// Put places c at (row, col). Placing twice into the same cell fails.
func (g *Grid) Put(row, col int, c Cell) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	at := Coord{Row: row, Col: col}
	if _, ok := g.index[at]; ok {
		return fmt.Errorf("%w: (%d, %d)", ErrOverlap, row, col)
	}
	g.index[at] = len(g.placements)
	g.placements = append(g.placements, Placement{Row: row, Col: col, Cell: c})
	g.rows = max(g.rows, row+1)
	g.cols = max(g.cols, col+1)
	return nil
}

// At returns the cell placed at (row, col).
func (g *Grid) At(row, col int) (Cell, bool) {
	i, ok := g.index[Coord{Row: row, Col: col}]
	if !ok {
		return Cell{}, false
	}
	return g.placements[i].Cell, true
}

// Placements returns a copy of all placements in emission order.
func (g *Grid) Placements() []Placement {
	out := make([]Placement, len(g.placements))
	copy(out, g.placements)
	return out
}

// Len returns the number of placements.
func (g *Grid) Len() int { return len(g.placements) }

// Bounds returns the number of rows and columns spanned by the placements.
func (g *Grid) Bounds() (rows, cols int) { return g.rows, g.cols }
