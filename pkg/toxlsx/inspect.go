package toxlsx

import (
	"fmt"
	"path/filepath"

	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/models"
	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/parser"
	"github.com/xuri/excelize/v2"
)

// Inspect reads a workbook back into its cell-level view.
func Inspect(path string) (*models.WorkbookData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	sheets := make(map[string]models.SheetData, len(sheetList))
	printAreas := parser.ExtractPrintAreas(f)

	for _, sheetName := range sheetList {
		rows, err := parser.ExtractCells(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: cells: %w", sheetName, err)
		}
		header, err := parser.HeaderRow(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: header: %w", sheetName, err)
		}
		used, err := parser.UsedRange(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: used range: %w", sheetName, err)
		}

		sheets[sheetName] = models.SheetData{
			Header:     header,
			Rows:       rows,
			Used:       used,
			PrintAreas: printAreas[sheetName],
		}
	}

	return &models.WorkbookData{
		BookName:   filepath.Base(path),
		SheetOrder: sheetList,
		Sheets:     sheets,
	}, nil
}
