package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet writes cells into one worksheet. Rows and columns are zero-based.
// Every setter accepts an optional style; nil leaves the cell unstyled.
type Sheet struct {
	wb   *Workbook
	name string
}

// Name returns the sheet name.
func (s *Sheet) Name() string { return s.name }

// CellName converts zero-based coordinates to an A1 reference.
func CellName(row, col int) (string, error) {
	return excelize.CoordinatesToCellName(col+1, row+1)
}

// SetCellText writes a string.
func (s *Sheet) SetCellText(row, col int, text string, style *Style) error {
	return s.set(row, col, style, func(cell string) error {
		return s.wb.f.SetCellStr(s.name, cell, text)
	})
}

// SetCellNumber writes a floating point number.
func (s *Sheet) SetCellNumber(row, col int, n float64, style *Style) error {
	return s.set(row, col, style, func(cell string) error {
		return s.wb.f.SetCellFloat(s.name, cell, n, -1, 64)
	})
}

// SetCellInteger writes an integer shown without decimals.
func (s *Sheet) SetCellInteger(row, col int, n int64, style *Style) error {
	if err := s.set(row, col, style, func(cell string) error {
		return s.wb.f.SetCellValue(s.name, cell, n)
	}); err != nil {
		return err
	}
	if style != nil {
		return nil
	}
	id, err := s.wb.integerStyle()
	if err != nil {
		return err
	}
	cell, _ := CellName(row, col)
	return s.wb.f.SetCellStyle(s.name, cell, cell, id)
}

// SetCellBoolean writes a boolean.
func (s *Sheet) SetCellBoolean(row, col int, b bool, style *Style) error {
	return s.set(row, col, style, func(cell string) error {
		return s.wb.f.SetCellBool(s.name, cell, b)
	})
}

// SetCellBlank writes a cell with no value.
func (s *Sheet) SetCellBlank(row, col int, style *Style) error {
	return s.set(row, col, style, func(cell string) error {
		return s.wb.f.SetCellValue(s.name, cell, nil)
	})
}

// SetPrintArea defines the print area of the sheet as the given number of
// rows and columns from A1.
func (s *Sheet) SetPrintArea(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	start, err := excelize.CoordinatesToCellName(1, 1, true)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(cols, rows, true)
	if err != nil {
		return err
	}
	// Quotes inside a quoted sheet name are doubled.
	quoted := strings.ReplaceAll(s.name, "'", "''")
	return s.wb.f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: fmt.Sprintf("'%s'!%s:%s", quoted, start, end),
		Scope:    s.name,
	})
}

func (s *Sheet) set(row, col int, style *Style, write func(cell string) error) error {
	if s.wb.closed {
		return ErrClosed
	}
	cell, err := CellName(row, col)
	if err != nil {
		return err
	}
	if err := write(cell); err != nil {
		return err
	}
	if style == nil {
		return nil
	}
	id, err := s.wb.style(*style)
	if err != nil {
		return err
	}
	return s.wb.f.SetCellStyle(s.name, cell, cell, id)
}
