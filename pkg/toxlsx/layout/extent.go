package layout

import "github.com/ukaji3/toxlsx-go/pkg/toxlsx/value"

// Extent is the footprint of a nested table beyond its anchor cell.
// RowSpan is the element count of the table, zero when there is none.
// ColSpan is the field count of the table's first record, at least 1.
type Extent struct {
	RowSpan int
	ColSpan int
}

// Nested reports whether the extent describes a nested table.
func (e Extent) Nested() bool { return e.RowSpan > 0 }

// Measure returns the extent of v when placed as a field or column value.
func Measure(v value.Value) Extent {
	if Classify(v) != ShapeTable {
		return Extent{ColSpan: 1}
	}
	items := v.Items()
	return Extent{RowSpan: len(items), ColSpan: max(1, items[0].Len())}
}

// offsets accumulates vertical displacement in order. The line of entry i is
// base + i plus rowSpan+1 for every earlier entry that held a nested table.
type offsets struct {
	base  int
	extra int
	next  int
}

func (o *offsets) take(e Extent) int {
	line := o.base + o.next + o.extra
	o.next++
	if e.Nested() {
		o.extra += e.RowSpan + 1
	}
	return line
}

// planFields measures every field of a record and returns the starting line
// of each, counting from base.
func planFields(fields []value.Field, base int) (lines []int, extents []Extent) {
	lines = make([]int, len(fields))
	extents = make([]Extent, len(fields))
	o := offsets{base: base}
	for i, f := range fields {
		extents[i] = Measure(f.Value)
		lines[i] = o.take(extents[i])
	}
	return lines, extents
}

// columnPlan is the column layout shared by every row of a table. It is
// derived once from the first row.
type columnPlan struct {
	names   []string
	widths  []int
	offsets []int
	nested  []bool
	width   int
}

func planColumns(first value.Value) columnPlan {
	fields := first.Fields()
	p := columnPlan{
		names:   make([]string, len(fields)),
		widths:  make([]int, len(fields)),
		offsets: make([]int, len(fields)),
		nested:  make([]bool, len(fields)),
	}
	for i, f := range fields {
		e := Measure(f.Value)
		p.names[i] = f.Name
		p.nested[i] = e.Nested()
		p.widths[i] = e.ColSpan
		p.offsets[i] = p.width
		p.width += e.ColSpan
	}
	return p
}

// fits reports whether v can be laid out as a nested table in column i. A
// table only fits a column that was reserved for one, and only when it is no
// wider than the reservation.
func (p columnPlan) fits(i int, v value.Value) (Extent, bool) {
	e := Measure(v)
	if !e.Nested() || !p.nested[i] || e.ColSpan > p.widths[i] {
		return e, false
	}
	return e, true
}

// rowExtent returns the tallest fitting nested table of row.
func (p columnPlan) rowExtent(row value.Value) Extent {
	out := Extent{ColSpan: 1}
	if !row.IsRecord() {
		return out
	}
	for i, name := range p.names {
		v, ok := row.Get(name)
		if !ok {
			continue
		}
		if e, ok := p.fits(i, v); ok && e.RowSpan > out.RowSpan {
			out.RowSpan = e.RowSpan
		}
	}
	return out
}

// planRows returns the starting line of every row of a table, counting from
// base.
func planRows(rows []value.Value, p columnPlan, base int) (lines []int, extents []Extent) {
	lines = make([]int, len(rows))
	extents = make([]Extent, len(rows))
	o := offsets{base: base}
	for i, row := range rows {
		extents[i] = p.rowExtent(row)
		lines[i] = o.take(extents[i])
	}
	return lines, extents
}
