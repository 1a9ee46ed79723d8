// Package output serializes read-back workbook data.
package output

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/models"
)

// ToJSON serializes the workbook view, indented when pretty is set.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(wb, "", "  ")
	}
	return json.Marshal(wb)
}

// SheetToJSON serializes a single sheet.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(sheet, "", "  ")
	}
	return json.Marshal(sheet)
}

// ToYAML serializes the workbook view as YAML.
func ToYAML(wb *models.WorkbookData) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(wb); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
