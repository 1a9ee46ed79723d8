// Package models defines the read-back view of a written workbook.
package models

// CellRow represents a single non-empty row of cells.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r" yaml:"r"`
	// C maps column index (1-based, as a string) to cell value.
	C map[string]interface{} `json:"c" yaml:"c"`
}
