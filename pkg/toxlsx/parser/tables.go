package parser

import (
	"fmt"

	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/models"
	"github.com/xuri/excelize/v2"
)

// UsedRange returns the bounding box of the non-empty cells of a sheet, or
// nil when the sheet has none.
func UsedRange(f *excelize.File, sheetName string) (*models.UsedRange, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, nil
	}

	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return nil, err
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return nil, err
	}

	total := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmpty := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)
	return &models.UsedRange{
		Ref:     fmt.Sprintf("%s:%s", startCell, endCell),
		Cells:   nonEmpty,
		Density: float64(nonEmpty) / float64(total),
	}, nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
