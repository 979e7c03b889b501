// Package output serializes inspection results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/adreport-go/pkg/adreport/models"
)

// ToJSON serializes a workbook to JSON.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SummaryToJSON serializes a build summary to JSON.
func SummaryToJSON(s *models.Summary, pretty bool) ([]byte, error) {
	return marshal(s, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
