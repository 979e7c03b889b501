package parser

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ukaji3/adreport-go/pkg/adreport/models"
	"github.com/xuri/excelize/v2"
)

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref       string
		wantSheet string
		wantAreas []models.PrintArea
	}{
		{
			ref:       "'Resumen Ejecutivo'!$A$1:$D$16",
			wantSheet: "Resumen Ejecutivo",
			wantAreas: []models.PrintArea{{R1: 1, C1: 1, R2: 16, C2: 4}},
		},
		{
			ref:       "Sheet1!$A$1:$B$2,Sheet1!$D$4:$E$5",
			wantSheet: "Sheet1",
			wantAreas: []models.PrintArea{{R1: 1, C1: 1, R2: 2, C2: 2}, {R1: 4, C1: 4, R2: 5, C2: 5}},
		},
		{
			ref:       "'Logic''s Apps'!$A$1:$C$3",
			wantSheet: "Logic's Apps",
			wantAreas: []models.PrintArea{{R1: 1, C1: 1, R2: 3, C2: 3}},
		},
		{ref: "$A$1:$B$2", wantSheet: "", wantAreas: nil},
		{ref: "Sheet1!A1", wantSheet: "Sheet1", wantAreas: nil},
	}

	for _, tt := range tests {
		sheet, areas := parsePrintAreaReference(tt.ref)
		if sheet != tt.wantSheet {
			t.Errorf("parsePrintAreaReference(%q) sheet = %q, expected %q", tt.ref, sheet, tt.wantSheet)
		}
		if !reflect.DeepEqual(areas, tt.wantAreas) {
			t.Errorf("parsePrintAreaReference(%q) areas = %v, expected %v", tt.ref, areas, tt.wantAreas)
		}
	}
}

func TestExtractPrintAreas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Tipos de Anuncios"); err != nil {
		t.Fatalf("SetSheetName failed: %v", err)
	}
	f.SetCellValue("Tipos de Anuncios", "F9", "CPM bajo")
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     PrintAreaName,
		RefersTo: "'Tipos de Anuncios'!$A$1:$F$9",
		Scope:    "Tipos de Anuncios",
	}); err != nil {
		t.Fatalf("SetDefinedName failed: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "print.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	areas, err := ExtractPrintAreas(f2)
	if err != nil {
		t.Fatalf("ExtractPrintAreas failed: %v", err)
	}
	want := []models.PrintArea{{R1: 1, C1: 1, R2: 9, C2: 6}}
	if got := areas["Tipos de Anuncios"]; !reflect.DeepEqual(got, want) {
		t.Errorf("print areas = %v, expected %v", got, want)
	}
}
