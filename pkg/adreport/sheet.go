package adreport

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ukaji3/adreport-go/pkg/adreport/layout"
	"github.com/ukaji3/adreport-go/pkg/adreport/parser"
	"github.com/ukaji3/adreport-go/pkg/adreport/styles"
	"github.com/xuri/excelize/v2"
)

// datePlaceholder in banner text is replaced with the run date.
const datePlaceholder = "{date}"

// sheetWriter renders one layout sheet into its worksheet.
type sheetWriter struct {
	f      *excelize.File
	styles *styles.Registry
	sheet  layout.Sheet
	date   string
	logger zerolog.Logger
}

func (w *sheetWriter) render() error {
	name := w.sheet.Name

	if err := w.setWidths(); err != nil {
		return buildError(name, "widths", err)
	}

	placements := w.sheet.Place()
	for i, b := range w.sheet.Blocks {
		p := placements[i]
		switch b.Kind {
		case layout.KindBanner:
			if err := w.writeBanner(b, p); err != nil {
				return buildError(name, "banner", err)
			}
		case layout.KindTable:
			if err := w.writeTable(b, p); err != nil {
				return buildError(name, "table", fmt.Errorf("table %q: %w", b.ID, err))
			}
		}
	}

	lastRow, lastCol := w.sheet.Extent()
	if err := w.addCharts(placements, lastRow); err != nil {
		return buildError(name, "chart", err)
	}
	if err := w.setPrintArea(lastRow, lastCol); err != nil {
		return buildError(name, "print_area", err)
	}

	w.logger.Debug().Int("rows", lastRow).Int("cols", lastCol).Int("charts", len(w.sheet.Charts)).Msg("sheet rendered")
	return nil
}

func (w *sheetWriter) setWidths() error {
	for _, width := range w.sheet.Widths {
		start, end, ok := strings.Cut(width.Cols, ":")
		if !ok {
			end = start
		}
		if err := w.f.SetColWidth(w.sheet.Name, start, end, width.Width); err != nil {
			return err
		}
	}
	return nil
}

func (w *sheetWriter) writeBanner(b layout.Block, p layout.Placement) error {
	role, err := styles.ParseRole(b.Style)
	if err != nil {
		return err
	}
	id, err := w.styles.ID(styles.Preset{Role: role})
	if err != nil {
		return err
	}
	text := strings.ReplaceAll(b.Text, datePlaceholder, w.date)
	return w.writeCell(1, p.Top, b.Span, text, id)
}

func (w *sheetWriter) writeTable(b layout.Block, p layout.Placement) error {
	if p.HeaderRow > 0 {
		role, err := styles.ParseRole(b.HeaderStyle)
		if err != nil {
			return err
		}
		id, err := w.styles.ID(styles.Preset{Role: role})
		if err != nil {
			return err
		}
		for i, h := range b.Header {
			if err := w.writeCell(b.ColumnOffset(i), p.HeaderRow, b.Columns[i].SheetSpan(), h, id); err != nil {
				return err
			}
		}
	}

	for r, row := range b.Rows {
		rowNum := p.FirstDataRow + r
		for i, value := range row.Cells {
			col := b.Columns[i]
			preset, err := cellPreset(col, row, value)
			if err != nil {
				return fmt.Errorf("row %d: %w", rowNum, err)
			}
			id, err := w.styles.ID(preset)
			if err != nil {
				return err
			}
			if err := w.writeCell(b.ColumnOffset(i), rowNum, col.SheetSpan(), value, id); err != nil {
				return err
			}
		}
	}
	return nil
}

// cellPreset selects the preset of one table cell. The row style wins over a
// classifier, which wins over the column style. The row format wins over the
// column format.
func cellPreset(col layout.Column, row layout.Row, value any) (styles.Preset, error) {
	roleName := col.Style
	var role styles.Role
	var err error
	switch {
	case row.Style != "":
		roleName = row.Style
	case col.Classify != "":
		if label, ok := value.(string); ok {
			role, err = styles.Classify(col.Classify, label)
			if err != nil {
				return styles.Preset{}, err
			}
		}
	}
	if role == "" {
		if role, err = styles.ParseRole(roleName); err != nil {
			return styles.Preset{}, err
		}
	}

	format := col.Format
	if row.Format != "" {
		format = row.Format
	}
	f, err := styles.ParseFormat(format)
	if err != nil {
		return styles.Preset{}, err
	}
	return styles.For(role, f, value), nil
}

// writeCell writes value at (col, row), merging span columns when span > 1.
func (w *sheetWriter) writeCell(col, row, span int, value any, styleID int) error {
	name := w.sheet.Name
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	end := cell
	if span > 1 {
		if end, err = excelize.CoordinatesToCellName(col+span-1, row); err != nil {
			return err
		}
		if err := w.f.MergeCell(name, cell, end); err != nil {
			return err
		}
	}
	if err := w.f.SetCellValue(name, cell, value); err != nil {
		return err
	}
	if err := w.f.SetCellStyle(name, cell, end, styleID); err != nil {
		return err
	}
	if s, ok := value.(string); ok && isURL(s) {
		if err := w.f.SetCellHyperLink(name, cell, s, "External"); err != nil {
			return err
		}
	}
	return nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}

func (w *sheetWriter) setPrintArea(lastRow, lastCol int) error {
	if lastRow == 0 || lastCol == 0 {
		return nil
	}
	ref, err := absRange(w.sheet.Name, 1, 1, lastCol, lastRow)
	if err != nil {
		return err
	}
	return w.f.SetDefinedName(&excelize.DefinedName{
		Name:     parser.PrintAreaName,
		RefersTo: ref,
		Scope:    w.sheet.Name,
	})
}
