// Package layout places a nested value onto a two-dimensional grid.
//
// Layout runs in two passes. The measure pass computes, for every field of a
// record and every column of a table, the footprint of any nested table it
// holds. The emit pass then writes cells using only those precomputed
// extents, so siblings are offset around nested tables without overlap.
package layout

import "github.com/ukaji3/toxlsx-go/pkg/toxlsx/value"

// Shape is the structural classification of a value.
type Shape uint8

const (
	// ShapeScalar has no children.
	ShapeScalar Shape = iota
	// ShapeRecord is an ordered set of named fields.
	ShapeRecord
	// ShapeTable is a non-empty list whose first element is a record.
	ShapeTable
	// ShapeList is any other list.
	ShapeList
)

func (s Shape) String() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeRecord:
		return "record"
	case ShapeTable:
		return "table"
	case ShapeList:
		return "list"
	}
	return "unknown"
}

// Classify reports the shape of v. Rules apply in order: a non-empty list
// whose first element is a record is a table, any other list an opaque list,
// a record a record, and everything else a scalar.
func Classify(v value.Value) Shape {
	if v.IsList() {
		if items := v.Items(); len(items) > 0 && items[0].IsRecord() {
			return ShapeTable
		}
		return ShapeList
	}
	if v.IsRecord() {
		return ShapeRecord
	}
	return ShapeScalar
}

// Info carries the facts layout derives from a classified value.
type Info struct {
	Shape Shape
	// Fields holds the record's field names, or for a table the field names
	// of its first element.
	Fields []string
	// Sub holds the shape of each entry of Fields, taken from the record, or
	// from the first element of a table.
	Sub []Shape
	// Count is the number of fields of a record or elements of a list.
	Count int
}

// Describe classifies v and collects its layout facts.
func Describe(v value.Value) Info {
	info := Info{Shape: Classify(v), Count: v.Len()}

	var rec value.Value
	switch info.Shape {
	case ShapeRecord:
		rec = v
	case ShapeTable:
		rec = v.Items()[0]
	default:
		return info
	}
	info.Fields = rec.Names()
	info.Sub = make([]Shape, len(rec.Fields()))
	for i, f := range rec.Fields() {
		info.Sub[i] = Classify(f.Value)
	}
	return info
}
