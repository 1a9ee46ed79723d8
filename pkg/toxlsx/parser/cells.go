// Package parser reads written workbooks back into models for verification.
package parser

import (
	"strconv"

	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells extracts the formatted cell values of a sheet.
// It returns a slice of CellRow containing non-empty rows.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		cellMap := make(map[string]interface{})
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellMap[strconv.Itoa(colIdx+1)] = parseValue(cellValue)
		}
		if len(cellMap) > 0 {
			result = append(result, models.CellRow{R: rowIdx + 1, C: cellMap})
		}
	}

	return result, nil
}

// HeaderRow returns the formatted values of the first row of a sheet,
// trailing empty cells trimmed.
func HeaderRow(f *excelize.File, sheetName string) ([]string, error) {
	rows, err := f.Rows(sheetName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Error()
	}
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	end := len(cols)
	for end > 0 && cols[end-1] == "" {
		end--
	}
	return cols[:end], nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
