// Package toxlsx converts nested values into xlsx spreadsheets.
package toxlsx

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/toxlsx-go/internal/logging"
	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/layout"
	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/value"
	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/xlsx"
)

// DefaultSheetName is used when no sheet name is given.
const DefaultSheetName = "Sheet1"

// Options configures conversion behavior.
type Options struct {
	// SheetName names the worksheet (default "Sheet1").
	SheetName string `yaml:"sheet_name"`
	// Bools selects boolean rendering: text, number, or native.
	Bools layout.BoolMode `yaml:"bools"`
	// DateLayout is the Go time layout used for dates (default RFC 3339).
	DateLayout string `yaml:"date_layout"`
	// MaxDepth bounds nesting in input decoding and fallback text.
	MaxDepth int `yaml:"max_depth"`
	// HeaderStyle styles header cells. If nil, DefaultHeaderStyle is used.
	HeaderStyle *xlsx.Style `yaml:"header_style"`
	// PrintArea specifies whether to define a print area over the written
	// cells. If nil, defaults to false.
	PrintArea *bool `yaml:"print_area"`
	// Logger receives debug and info records. If nil, nothing is logged.
	Logger *slog.Logger `yaml:"-"`
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		SheetName:  DefaultSheetName,
		Bools:      layout.BoolText,
		DateLayout: layout.DefaultOptions().DateLayout,
		MaxDepth:   value.DefaultMaxDepth,
	}
}

// LoadOptions reads a YAML options file over DefaultOptions.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}
	if _, err := layout.ParseBoolMode(string(opts.Bools)); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}
	return opts, nil
}

// ShouldSetPrintArea returns whether to define a print area.
func (o Options) ShouldSetPrintArea() bool {
	return o.PrintArea != nil && *o.PrintArea
}

// Header returns the style applied to header cells.
func (o Options) Header() xlsx.Style {
	if o.HeaderStyle != nil {
		return *o.HeaderStyle
	}
	return xlsx.DefaultHeaderStyle()
}

// Sheet returns the sheet name, defaulted.
func (o Options) Sheet() string {
	if o.SheetName == "" {
		return DefaultSheetName
	}
	return o.SheetName
}

// DecodeOptions returns the input decoding options implied by o.
func (o Options) DecodeOptions() value.DecodeOptions {
	return value.DecodeOptions{MaxDepth: o.MaxDepth}
}

func (o Options) layout() layout.Options {
	return layout.Options{
		Bools:      o.Bools,
		DateLayout: o.DateLayout,
		MaxDepth:   o.MaxDepth,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.NewNop()
}
