// Package xlsx writes typed cells to an xlsx workbook using excelize.
package xlsx

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ErrClosed indicates use of a workbook after Close.
var ErrClosed = errors.New("workbook closed")

const defaultSheet = "Sheet1"

// integerFormat displays integral numbers without decimals.
const integerFormat = "0"

// Style describes the single header style supported: bold text, a solid
// background fill, and a font color. Colors are "RRGGBB" hex strings.
type Style struct {
	Bold       bool   `yaml:"bold"`
	Background string `yaml:"background"`
	FontColor  string `yaml:"font_color"`
}

// DefaultHeaderStyle is bold black text on a light blue fill.
func DefaultHeaderStyle() Style {
	return Style{Bold: true, Background: "D9E1F2", FontColor: "000000"}
}

// Workbook is a single xlsx file under construction.
type Workbook struct {
	f      *excelize.File
	styles map[Style]int
	intFmt *int
	fresh  bool // the default sheet excelize creates is still unused
	closed bool
	sheets []*Sheet
}

// New returns an empty workbook. Call Close when done.
func New() *Workbook {
	return &Workbook{
		f:      excelize.NewFile(),
		styles: make(map[Style]int),
		fresh:  true,
	}
}

// NewSheet adds a worksheet named name. The first sheet created takes over
// the default sheet of a new file.
func (w *Workbook) NewSheet(name string) (*Sheet, error) {
	if w.closed {
		return nil, ErrClosed
	}
	if name == "" {
		name = defaultSheet
	}

	if w.fresh {
		if name != defaultSheet {
			if err := w.f.SetSheetName(defaultSheet, name); err != nil {
				return nil, fmt.Errorf("rename sheet to %q: %w", name, err)
			}
		}
		w.fresh = false
	} else {
		if _, err := w.f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", name, err)
		}
	}

	idx, err := w.f.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("look up sheet %q: %w", name, err)
	}
	if len(w.sheets) == 0 {
		w.f.SetActiveSheet(idx)
	}

	s := &Sheet{wb: w, name: name}
	w.sheets = append(w.sheets, s)
	return s, nil
}

// SheetNames returns the names of the sheets in the file.
func (w *Workbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Save writes the workbook to path.
func (w *Workbook) Save(path string) error {
	if w.closed {
		return ErrClosed
	}
	return w.f.SaveAs(path)
}

// WriteTo writes the workbook to out.
func (w *Workbook) WriteTo(out io.Writer) (int64, error) {
	if w.closed {
		return 0, ErrClosed
	}
	return w.f.WriteTo(out)
}

// Close releases the workbook. It is safe to call more than once.
func (w *Workbook) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.f.Close()
}

// style returns the excelize style id for s, registering it on first use.
func (w *Workbook) style(s Style) (int, error) {
	if id, ok := w.styles[s]; ok {
		return id, nil
	}
	def := &excelize.Style{
		Font: &excelize.Font{Bold: s.Bold, Color: s.FontColor},
	}
	if s.Background != "" {
		def.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{s.Background}}
	}
	id, err := w.f.NewStyle(def)
	if err != nil {
		return 0, fmt.Errorf("register style: %w", err)
	}
	w.styles[s] = id
	return id, nil
}

func (w *Workbook) integerStyle() (int, error) {
	if w.intFmt != nil {
		return *w.intFmt, nil
	}
	format := integerFormat
	id, err := w.f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return 0, fmt.Errorf("register integer format: %w", err)
	}
	w.intFmt = &id
	return id, nil
}
