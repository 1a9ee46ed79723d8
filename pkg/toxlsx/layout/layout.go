package layout

import (
	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/grid"
	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/value"
)

// Header labels of the key/value table written for a record root.
const (
	KeyHeader   = "Key"
	ValueHeader = "Value"
)

// Engine lays out values. It holds no state between calls.
type Engine struct {
	cells formatter
}

// New returns an engine using opts, with unset fields defaulted.
func New(opts Options) *Engine {
	return &Engine{cells: formatter{opts: opts.withDefaults()}}
}

// Layout places root on a fresh grid with the given options.
func Layout(root value.Value, opts Options) (*grid.Grid, error) {
	return New(opts).Layout(root)
}

// Layout places root on a fresh grid.
//
// A scalar lands at (0, 0). A record becomes a Key/Value table. An opaque
// list runs down column 0. A table gets a header row from its first
// element's fields followed by one block per element.
//
// Tables expand inline one level deep. A table held inside a nested table's
// cell is written as fallback text in that cell.
func (e *Engine) Layout(root value.Value) (*grid.Grid, error) {
	g := grid.New()
	var err error
	switch Classify(root) {
	case ShapeRecord:
		err = e.layoutRecord(g, root)
	case ShapeTable:
		err = e.layoutTable(g, root.Items())
	case ShapeList:
		err = e.layoutList(g, root.Items())
	default:
		err = g.Put(0, 0, e.cells.cell(root))
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (e *Engine) layoutRecord(g *grid.Grid, rec value.Value) error {
	if err := g.Put(0, 0, grid.Header(KeyHeader)); err != nil {
		return err
	}
	if err := g.Put(0, 1, grid.Header(ValueHeader)); err != nil {
		return err
	}

	fields := rec.Fields()
	lines, extents := planFields(fields, 1)
	for i, f := range fields {
		line := lines[i]
		if err := g.Put(line, 0, grid.Text(f.Name)); err != nil {
			return err
		}
		if extents[i].Nested() {
			if err := e.nestedTable(g, f.Value.Items(), line, 1); err != nil {
				return err
			}
			continue
		}
		if err := g.Put(line, 1, e.cells.cell(f.Value)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) layoutList(g *grid.Grid, items []value.Value) error {
	for i, item := range items {
		if err := g.Put(i, 0, e.cells.cell(item)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) layoutTable(g *grid.Grid, rows []value.Value) error {
	plan := planColumns(rows[0])
	for i, name := range plan.names {
		if err := g.Put(0, plan.offsets[i], grid.Header(name)); err != nil {
			return err
		}
	}

	lines, _ := planRows(rows, plan, 1)
	for r, row := range rows {
		line := lines[r]
		if !row.IsRecord() {
			if err := g.Put(line, 0, e.cells.cell(row)); err != nil {
				return err
			}
			continue
		}
		for i, name := range plan.names {
			col := plan.offsets[i]
			v, ok := row.Get(name)
			if !ok {
				if err := g.Put(line, col, grid.Blank()); err != nil {
					return err
				}
				continue
			}
			if _, fits := plan.fits(i, v); fits {
				if err := e.nestedTable(g, v.Items(), line, col); err != nil {
					return err
				}
				continue
			}
			if err := g.Put(line, col, e.cells.cell(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

// nestedTable writes a header row at (top, left) from the first record's
// fields and one data row per element beneath it. Cells inside a nested
// table are never expanded further.
func (e *Engine) nestedTable(g *grid.Grid, rows []value.Value, top, left int) error {
	names := rows[0].Names()
	for i, name := range names {
		if err := g.Put(top, left+i, grid.Header(name)); err != nil {
			return err
		}
	}
	for r, row := range rows {
		line := top + 1 + r
		if !row.IsRecord() {
			if err := g.Put(line, left, e.cells.cell(row)); err != nil {
				return err
			}
			continue
		}
		for i, name := range names {
			c := grid.Blank()
			if v, ok := row.Get(name); ok {
				c = e.cells.cell(v)
			}
			if err := g.Put(line, left+i, c); err != nil {
				return err
			}
		}
	}
	return nil
}
