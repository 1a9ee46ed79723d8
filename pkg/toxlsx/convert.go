package toxlsx

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/grid"
	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/layout"
	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/value"
	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/xlsx"
)

// Result describes a written workbook.
type Result struct {
	// Path is the absolute path of the saved file.
	Path string
	// Sheet is the worksheet name.
	Sheet string
	// Cells is the number of cells written.
	Cells int
	// Rows and Cols are the extent of the written cells.
	Rows, Cols int
}

// ResolvePath resolves path against cwd. Absolute paths are returned cleaned.
func ResolvePath(cwd, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%w: no output path given", ErrUnsupportedPath)
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	if cwd == "" {
		return "", fmt.Errorf("%w: relative path %q without a working directory", ErrUnsupportedPath, path)
	}
	if !filepath.IsAbs(cwd) {
		abs, err := filepath.Abs(cwd)
		if err != nil {
			return "", fmt.Errorf("%w: resolve working directory %q: %v", ErrUnsupportedPath, cwd, err)
		}
		cwd = abs
	}
	return filepath.Join(cwd, path), nil
}

// Render lays out v and writes it into a new workbook. The caller owns the
// returned workbook and must Close it.
func Render(v value.Value, opts Options) (*xlsx.Workbook, *grid.Grid, error) {
	log := opts.logger()

	g, err := layout.Layout(v, opts.layout())
	if err != nil {
		return nil, nil, fmt.Errorf("layout: %w", err)
	}
	rows, cols := g.Bounds()
	log.Debug("layout complete", "cells", g.Len(), "rows", rows, "cols", cols)

	wb := xlsx.New()
	sheet, err := wb.NewSheet(opts.Sheet())
	if err != nil {
		wb.Close()
		return nil, nil, NewWriteError(opts.Sheet(), 0, 0, err)
	}
	if err := writeGrid(sheet, g, opts.Header()); err != nil {
		wb.Close()
		return nil, nil, err
	}
	if opts.ShouldSetPrintArea() {
		if err := sheet.SetPrintArea(rows, cols); err != nil {
			wb.Close()
			return nil, nil, NewWriteError(sheet.Name(), rows-1, cols-1, err)
		}
	}
	return wb, g, nil
}

// WriteFile converts v and saves it at path, resolved against cwd.
func WriteFile(v value.Value, cwd, path string, opts Options) (*Result, error) {
	full, err := ResolvePath(cwd, path)
	if err != nil {
		return nil, err
	}

	wb, g, err := Render(v, opts)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	if err := wb.Save(full); err != nil {
		return nil, &SaveError{Path: full, Err: err}
	}

	rows, cols := g.Bounds()
	opts.logger().Info("workbook saved", "path", full, "sheet", opts.Sheet(), "cells", g.Len())
	return &Result{Path: full, Sheet: opts.Sheet(), Cells: g.Len(), Rows: rows, Cols: cols}, nil
}

// Encode converts v and writes the workbook bytes to w.
func Encode(w io.Writer, v value.Value, opts Options) error {
	wb, _, err := Render(v, opts)
	if err != nil {
		return err
	}
	defer wb.Close()

	if _, err := wb.WriteTo(w); err != nil {
		return &SaveError{Path: "<stream>", Err: err}
	}
	return nil
}

// writeGrid writes every placement in emission order, aborting on the
// first failure.
func writeGrid(sheet *xlsx.Sheet, g *grid.Grid, header xlsx.Style) error {
	for _, p := range g.Placements() {
		var err error
		switch c := p.Cell; c.Kind {
		case grid.KindHeader:
			err = sheet.SetCellText(p.Row, p.Col, c.Text, &header)
		case grid.KindText:
			err = sheet.SetCellText(p.Row, p.Col, c.Text, nil)
		case grid.KindNumber:
			err = sheet.SetCellNumber(p.Row, p.Col, c.Number, nil)
		case grid.KindInteger:
			err = sheet.SetCellInteger(p.Row, p.Col, c.Integer, nil)
		case grid.KindBoolean:
			err = sheet.SetCellBoolean(p.Row, p.Col, c.Bool, nil)
		default:
			err = sheet.SetCellBlank(p.Row, p.Col, nil)
		}
		if err != nil {
			return NewWriteError(sheet.Name(), p.Row, p.Col, err)
		}
	}
	return nil
}
