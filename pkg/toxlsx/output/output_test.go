package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/models"
)

func fixture() *models.WorkbookData {
	return &models.WorkbookData{
		BookName:   "out.xlsx",
		SheetOrder: []string{"Sheet1"},
		Sheets: map[string]models.SheetData{
			"Sheet1": {
				Header: []string{"name"},
				Rows:   []models.CellRow{{R: 1, C: map[string]interface{}{"1": "name"}}},
			},
		},
	}
}

func TestToJSON(t *testing.T) {
	compact, err := ToJSON(fixture(), false)
	require.NoError(t, err)
	assert.Contains(t, string(compact), `"book_name":"out.xlsx"`)
	assert.NotContains(t, string(compact), "\n")

	pretty, err := ToJSON(fixture(), true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"book_name\": \"out.xlsx\"")
}

func TestSheetToJSON(t *testing.T) {
	sheet := fixture().Sheets["Sheet1"]
	data, err := SheetToJSON(&sheet, false)
	require.NoError(t, err)
	assert.Equal(t, `{"header":["name"],"rows":[{"r":1,"c":{"1":"name"}}]}`, string(data))
}

func TestToYAML(t *testing.T) {
	data, err := ToYAML(fixture())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "book_name: out.xlsx\n"))
	assert.Contains(t, string(data), "header:")
	assert.Contains(t, string(data), "- name")
}
