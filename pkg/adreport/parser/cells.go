package parser

import (
	"strconv"

	"github.com/ukaji3/adreport-go/pkg/adreport/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells returns the non-empty rows of a sheet with their stored values
// and hyperlink targets.
//
// Values are read raw, so a cell displayed as "2.5%" yields 0.025. Only cells
// stored as numbers come back as int64 or float64; text such as "0.08" stays a
// string.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for i, row := range rows {
		r := i + 1
		cells := make(map[string]interface{})
		var links map[string]string

		for j, raw := range row {
			if raw == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, r)
			if err != nil {
				return nil, err
			}
			typ, err := f.GetCellType(sheetName, cell)
			if err != nil {
				return nil, err
			}
			key := strconv.Itoa(j + 1)
			cells[key] = typedValue(typ, raw)

			if ok, target, err := f.GetCellHyperLink(sheetName, cell); err == nil && ok && target != "" {
				if links == nil {
					links = make(map[string]string)
				}
				links[key] = target
			}
		}

		if len(cells) > 0 {
			result = append(result, models.CellRow{R: r, C: cells, Links: links})
		}
	}

	return result, nil
}

// typedValue converts a raw value according to how the cell stores it.
// Cells without a type attribute hold numbers.
func typedValue(typ excelize.CellType, raw string) interface{} {
	switch typ {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		return parseNumber(raw)
	case excelize.CellTypeBool:
		return raw == "1"
	default:
		return raw
	}
}

// parseNumber returns int64 for integral values, float64 for decimals, or s
// unchanged when it is not a number.
func parseNumber(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
