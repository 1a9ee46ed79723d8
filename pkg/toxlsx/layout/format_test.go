package layout

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/grid"
	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/value"
)

func TestFormatByteSize(t *testing.T) {
	tests := []struct {
		input    value.ByteSize
		expected string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{5 * 1024 * 1024 * 1024 / 2, "2.5 GB"},
		{-2048, "-2.0 KB"},
	}

	for _, tt := range tests {
		if got := FormatByteSize(tt.input); got != tt.expected {
			t.Errorf("FormatByteSize(%d) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		input    time.Duration
		expected string
	}{
		{0, "0 ns"},
		{500, "500 ns"},
		{2500, "2.5 µs"},
		{2500000, "2.5 ms"},
		{2500000000, "2.5 s"},
		{90 * time.Second, "90.0 s"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.input); got != tt.expected {
			t.Errorf("FormatDuration(%d) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestNonFiniteFloatRendersAsText(t *testing.T) {
	f := formatter{opts: DefaultOptions()}
	if c := f.cell(value.Float(math.Inf(1))); c != grid.Text("+Inf") {
		t.Errorf("cell(+Inf) = %#v", c)
	}
	if c := f.cell(value.Float(math.NaN())); c != grid.Text("NaN") {
		t.Errorf("cell(NaN) = %#v", c)
	}
}

func TestParseBoolMode(t *testing.T) {
	for _, s := range []string{"", "text", "number", "native"} {
		if _, err := ParseBoolMode(s); err != nil {
			t.Errorf("ParseBoolMode(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseBoolMode("yes"); !errors.Is(err, ErrInvalidBoolMode) {
		t.Errorf("ParseBoolMode(yes) = %v, expected ErrInvalidBoolMode", err)
	}
}
