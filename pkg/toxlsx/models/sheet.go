package models

// UsedRange is the bounding box of the non-empty cells of a sheet.
type UsedRange struct {
	// Ref is the range in A1 notation, e.g. "A1:D10".
	Ref string `json:"ref" yaml:"ref"`
	// Cells is the number of non-empty cells inside the range.
	Cells int `json:"cells" yaml:"cells"`
	// Density is Cells divided by the area of the range.
	Density float64 `json:"density" yaml:"density"`
}

// SheetData represents the read-back content of a single sheet.
type SheetData struct {
	// Header holds the values of the first row, in column order.
	Header []string `json:"header,omitempty" yaml:"header,omitempty"`
	// Rows contains non-empty rows with cell values.
	Rows []CellRow `json:"rows,omitempty" yaml:"rows,omitempty"`
	// Used is the used range, nil for an empty sheet.
	Used *UsedRange `json:"used_range,omitempty" yaml:"used_range,omitempty"`
	// PrintAreas contains the defined print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty" yaml:"print_areas,omitempty"`
}
