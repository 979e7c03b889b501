package adreport

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/adreport-go/pkg/adreport/models"
	"github.com/ukaji3/adreport-go/pkg/adreport/parser"
	"github.com/xuri/excelize/v2"
)

// Inspect reads a workbook back: raw cell values, hyperlinks, charts and
// print areas of every sheet, in workbook order.
func Inspect(path string) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	wb := &models.WorkbookData{
		BookName:   filepath.Base(path),
		SheetNames: f.GetSheetList(),
		Sheets:     make(map[string]models.SheetData),
	}

	for _, sheetName := range wb.SheetNames {
		rows, err := parser.ExtractCells(f, sheetName)
		if err != nil {
			return nil, inspectError(sheetName, "cells", err)
		}
		wb.Sheets[sheetName] = models.SheetData{Rows: rows}
	}

	charts, err := parser.ExtractCharts(path)
	if err != nil {
		return nil, inspectError("", "chart", err)
	}
	for sheetName, cs := range charts {
		if sheet, ok := wb.Sheets[sheetName]; ok {
			sheet.Charts = cs
			wb.Sheets[sheetName] = sheet
		}
	}

	printAreas, err := parser.ExtractPrintAreas(f)
	if err != nil {
		return nil, inspectError("", "print_area", err)
	}
	for sheetName, areas := range printAreas {
		if sheet, ok := wb.Sheets[sheetName]; ok {
			sheet.PrintAreas = areas
			wb.Sheets[sheetName] = sheet
		}
	}

	return wb, nil
}
