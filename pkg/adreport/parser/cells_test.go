package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Métrica")
	f.SetCellValue(sheetName, "B1", "Valor")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 22.5)
	f.SetCellValue(sheetName, "A3", "CTR Promedio")
	f.SetCellValue(sheetName, "B3", 0.025)
	f.SetCellValue(sheetName, "C3", "0.08")
	f.SetCellValue(sheetName, "D3", true)
	f.SetCellValue(sheetName, "A5", "https://admob.google.com/")
	f.SetCellHyperLink(sheetName, "A5", "https://admob.google.com/", "External")

	// A percent pattern must not leak into the extracted value.
	pattern := "0.0%"
	styleID, err := f.NewStyle(&excelize.Style{CustomNumFmt: &pattern})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	f.SetCellStyle(sheetName, "B3", "B3", styleID)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ExtractCells(f2, sheetName)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	// Row 4 is empty and skipped.
	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}
	if rows[0].R != 1 {
		t.Errorf("Expected row 1, got %d", rows[0].R)
	}
	if rows[0].C["1"] != "Métrica" {
		t.Errorf("Expected 'Métrica', got %v", rows[0].C["1"])
	}
	if rows[1].C["1"] != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", rows[1].C["1"], rows[1].C["1"])
	}
	if rows[1].C["2"] != 22.5 {
		t.Errorf("Expected 22.5, got %v", rows[1].C["2"])
	}
	if rows[2].C["2"] != 0.025 {
		t.Errorf("Expected raw 0.025, got %v (type: %T)", rows[2].C["2"], rows[2].C["2"])
	}
	if rows[2].C["3"] != "0.08" {
		t.Errorf("Expected text '0.08' to stay a string, got %v (type: %T)", rows[2].C["3"], rows[2].C["3"])
	}
	if rows[2].C["4"] != true {
		t.Errorf("Expected bool true, got %v (type: %T)", rows[2].C["4"], rows[2].C["4"])
	}
	if rows[3].R != 5 {
		t.Errorf("Expected row 5, got %d", rows[3].R)
	}
	if rows[3].Links["1"] != "https://admob.google.com/" {
		t.Errorf("Expected hyperlink on A5, got %v", rows[3].Links)
	}
	if rows[0].Links != nil {
		t.Errorf("Expected no links on row 1, got %v", rows[0].Links)
	}
}

func TestTypedValue(t *testing.T) {
	tests := []struct {
		typ      excelize.CellType
		raw      string
		expected interface{}
	}{
		{excelize.CellTypeUnset, "123", int64(123)},
		{excelize.CellTypeUnset, "-100", int64(-100)},
		{excelize.CellTypeNumber, "123.45", 123.45},
		{excelize.CellTypeUnset, "0.025", 0.025},
		{excelize.CellTypeSharedString, "0.08", "0.08"},
		{excelize.CellTypeInlineString, "225", "225"},
		{excelize.CellTypeSharedString, "$0.50 - $10.00", "$0.50 - $10.00"},
		{excelize.CellTypeFormula, "12", "12"},
		{excelize.CellTypeBool, "1", true},
		{excelize.CellTypeBool, "0", false},
		{excelize.CellTypeNumber, "NaN-ish", "NaN-ish"},
	}

	for _, tt := range tests {
		result := typedValue(tt.typ, tt.raw)
		if result != tt.expected {
			t.Errorf("typedValue(%d, %q) = %v (type: %T), expected %v (type: %T)",
				tt.typ, tt.raw, result, result, tt.expected, tt.expected)
		}
	}
}
