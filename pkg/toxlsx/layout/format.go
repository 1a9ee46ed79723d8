package layout

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/grid"
	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/value"
)

// ErrInvalidBoolMode indicates an unknown boolean rendering mode.
var ErrInvalidBoolMode = errors.New("invalid bool mode")

// BoolMode selects how booleans are written.
type BoolMode string

const (
	// BoolText writes the literals "true" and "false".
	BoolText BoolMode = "text"
	// BoolNumber writes 1 and 0.
	BoolNumber BoolMode = "number"
	// BoolNative writes spreadsheet boolean cells.
	BoolNative BoolMode = "native"
)

// ParseBoolMode parses a mode name. The empty string selects BoolText.
func ParseBoolMode(s string) (BoolMode, error) {
	switch BoolMode(s) {
	case "", BoolText:
		return BoolText, nil
	case BoolNumber:
		return BoolNumber, nil
	case BoolNative:
		return BoolNative, nil
	}
	return "", fmt.Errorf("%w: %q (must be text, number, or native)", ErrInvalidBoolMode, s)
}

// Options configures scalar rendering.
type Options struct {
	// Bools selects boolean rendering.
	Bools BoolMode
	// DateLayout is the time layout used for dates.
	DateLayout string
	// MaxDepth bounds how deep fallback text renders nested values.
	MaxDepth int
}

// DefaultOptions returns text booleans, RFC 3339 dates and the default depth.
func DefaultOptions() Options {
	return Options{
		Bools:      BoolText,
		DateLayout: time.RFC3339,
		MaxDepth:   value.DefaultMaxDepth,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Bools == "" {
		o.Bools = d.Bools
	}
	if o.DateLayout == "" {
		o.DateLayout = d.DateLayout
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = d.MaxDepth
	}
	return o
}

const (
	kib = 1 << 10
	mib = 1 << 20
	gib = 1 << 30
)

// FormatByteSize renders n with binary units and one decimal place.
// Sizes below 1024 print as a bare integer, e.g. "512 B", "1.5 KB".
func FormatByteSize(n value.ByteSize) string {
	f := float64(n)
	switch a := math.Abs(f); {
	case a < kib:
		return strconv.FormatInt(int64(n), 10) + " B"
	case a < mib:
		return fmt.Sprintf("%.1f KB", f/kib)
	case a < gib:
		return fmt.Sprintf("%.1f MB", f/mib)
	default:
		return fmt.Sprintf("%.1f GB", f/gib)
	}
}

// FormatDuration renders d with decimal units and one decimal place.
// Durations below one microsecond print as bare nanoseconds, e.g. "500 ns".
func FormatDuration(d time.Duration) string {
	f := float64(d)
	switch a := math.Abs(f); {
	case a < 1e3:
		return strconv.FormatInt(int64(d), 10) + " ns"
	case a < 1e6:
		return fmt.Sprintf("%.1f µs", f/1e3)
	case a < 1e9:
		return fmt.Sprintf("%.1f ms", f/1e6)
	default:
		return fmt.Sprintf("%.1f s", f/1e9)
	}
}

type formatter struct {
	opts Options
}

// cell converts a value to the cell written for it. Records and lists that
// reach here are rendered as fallback text.
func (f formatter) cell(v value.Value) grid.Cell {
	switch v.Kind() {
	case value.KindAbsent:
		return grid.Blank()
	case value.KindString:
		return grid.Text(v.Str())
	case value.KindInt:
		return grid.Integer(v.Int())
	case value.KindFloat:
		if math.IsNaN(v.Float()) || math.IsInf(v.Float(), 0) {
			return grid.Text(strconv.FormatFloat(v.Float(), 'g', -1, 64))
		}
		return grid.Number(v.Float())
	case value.KindBool:
		switch f.opts.Bools {
		case BoolNumber:
			if v.Bool() {
				return grid.Integer(1)
			}
			return grid.Integer(0)
		case BoolNative:
			return grid.Boolean(v.Bool())
		}
		return grid.Text(strconv.FormatBool(v.Bool()))
	case value.KindDate:
		return grid.Text(v.Time().Format(f.opts.DateLayout))
	case value.KindDuration:
		return grid.Text(FormatDuration(v.Duration()))
	case value.KindByteSize:
		return grid.Text(FormatByteSize(v.ByteSize()))
	}
	return grid.Text(f.debug(v))
}

// debug renders any value as text, bounded by MaxDepth.
func (f formatter) debug(v value.Value) string {
	var b strings.Builder
	f.writeDebug(&b, v, 0)
	return b.String()
}

func (f formatter) writeDebug(b *strings.Builder, v value.Value, depth int) {
	if depth >= f.opts.MaxDepth {
		b.WriteString("…")
		return
	}
	switch v.Kind() {
	case value.KindRecord:
		b.WriteByte('{')
		for i, fl := range v.Fields() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(fl.Name)
			b.WriteString(": ")
			f.writeDebug(b, fl.Value, depth+1)
		}
		b.WriteByte('}')
	case value.KindList:
		b.WriteByte('[')
		for i, item := range v.Items() {
			if i > 0 {
				b.WriteString(", ")
			}
			f.writeDebug(b, item, depth+1)
		}
		b.WriteByte(']')
	case value.KindAbsent:
		b.WriteString("null")
	case value.KindOther:
		fmt.Fprintf(b, "%v", v.Any())
	case value.KindBool:
		b.WriteString(strconv.FormatBool(v.Bool()))
	default:
		b.WriteString(f.cell(v).String())
	}
}
