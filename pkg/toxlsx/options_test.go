package toxlsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/layout"
	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/xlsx"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "toxlsx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, "Sheet1", opts.Sheet())
	assert.Equal(t, layout.BoolText, opts.Bools)
	assert.False(t, opts.ShouldSetPrintArea())
	assert.Equal(t, xlsx.DefaultHeaderStyle(), opts.Header())
}

func TestLoadOptions(t *testing.T) {
	path := writeConfig(t, `
sheet_name: Inventory
bools: native
date_layout: "2006-01-02"
print_area: true
header_style:
  bold: false
  background: FFFF00
`)

	opts, err := LoadOptions(path)
	require.NoError(t, err)

	assert.Equal(t, "Inventory", opts.Sheet())
	assert.Equal(t, layout.BoolNative, opts.Bools)
	assert.Equal(t, "2006-01-02", opts.DateLayout)
	assert.True(t, opts.ShouldSetPrintArea())
	assert.Equal(t, xlsx.Style{Background: "FFFF00"}, opts.Header())
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultOptions().MaxDepth, opts.MaxDepth)
}

func TestLoadOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "sheet: x\n"},
		{"bad bool mode", "bools: maybe\n"},
		{"malformed", "sheet_name: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadOptions(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEmptySheetNameFallsBack(t *testing.T) {
	opts := Options{}
	assert.Equal(t, DefaultSheetName, opts.Sheet())
}
