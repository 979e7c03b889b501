package adreport

import (
	"fmt"
	"strings"

	"github.com/ukaji3/adreport-go/pkg/adreport/layout"
	"github.com/xuri/excelize/v2"
)

// chartGap is the number of rows left between the last written row and a chart.
const chartGap = 2

// rowHeightPx is the default row height used to stack several charts.
const rowHeightPx = 20

var chartTypes = map[layout.ChartType]excelize.ChartType{
	layout.ChartLine:   excelize.Line,
	layout.ChartColumn: excelize.Col,
}

var dashTypes = map[string]excelize.ChartDashType{
	layout.DashSolid:    excelize.ChartDashSolid,
	layout.DashDash:     excelize.ChartDashDash,
	layout.DashDot:      excelize.ChartDashDot,
	layout.DashLongDash: excelize.ChartDashLgDash,
}

// addCharts anchors the sheet's charts below lastRow, one under the other.
func (w *sheetWriter) addCharts(placements []layout.Placement, lastRow int) error {
	anchorRow := lastRow + chartGap
	for i, c := range w.sheet.Charts {
		chart, err := w.chartFor(c, placements)
		if err != nil {
			return fmt.Errorf("chart %d: %w", i, err)
		}
		anchor, err := excelize.CoordinatesToCellName(1, anchorRow)
		if err != nil {
			return err
		}
		if err := w.f.AddChart(w.sheet.Name, anchor, chart); err != nil {
			return fmt.Errorf("chart %d: %w", i, err)
		}
		w.logger.Debug().Str("anchor", anchor).Str("type", string(c.Type)).Int("series", len(chart.Series)).Msg("chart added")
		anchorRow += int(c.Height)/rowHeightPx + chartGap
	}
	return nil
}

// chartFor binds a layout chart to the cells its source table was written to.
func (w *sheetWriter) chartFor(c layout.Chart, placements []layout.Placement) (*excelize.Chart, error) {
	chartType, ok := chartTypes[c.Type]
	if !ok {
		return nil, fmt.Errorf("unknown chart type %q", c.Type)
	}
	table, idx, ok := w.sheet.FindTable(c.Source)
	if !ok {
		return nil, fmt.Errorf("no table %q", c.Source)
	}
	p := placements[idx]
	first := p.FirstDataRow
	last := first + c.ChartRows(table) - 1

	catCol := table.ColumnOffset(c.Categories)
	categories, err := absRange(w.sheet.Name, catCol, first, catCol, last)
	if err != nil {
		return nil, err
	}

	chart := &excelize.Chart{
		Type:      chartType,
		Title:     richText(c.Title),
		Legend:    excelize.ChartLegend{Position: c.Legend},
		Dimension: excelize.ChartDimension{Width: c.Width, Height: c.Height},
		XAxis: excelize.ChartAxis{
			Title: richText(c.XAxis),
			Font:  excelize.Font{Size: 10},
		},
		YAxis: excelize.ChartAxis{
			Title: richText(c.YAxis),
			Font:  excelize.Font{Size: 10},
		},
	}

	for _, s := range c.Series {
		col := table.ColumnOffset(s.Column)
		name, err := absCell(w.sheet.Name, col, p.HeaderRow)
		if err != nil {
			return nil, err
		}
		values, err := absRange(w.sheet.Name, col, first, col, last)
		if err != nil {
			return nil, err
		}
		series := excelize.ChartSeries{
			Name:       name,
			Categories: categories,
			Values:     values,
		}
		if s.Color != "" {
			series.Fill = excelize.Fill{Type: "pattern", Color: []string{s.Color}, Pattern: 1}
		}
		series.Line = excelize.ChartLine{Width: s.LineWidth, Dash: dashTypes[s.Dash]}
		if s.Marker != "" {
			series.Marker = excelize.ChartMarker{Symbol: s.Marker, Size: s.MarkerSize}
			if s.MarkerFill != "" {
				series.Marker.Fill = excelize.Fill{Type: "pattern", Color: []string{s.MarkerFill}, Pattern: 1}
			}
		}
		chart.Series = append(chart.Series, series)
	}
	return chart, nil
}

func richText(s string) []excelize.RichTextRun {
	if s == "" {
		return nil
	}
	return []excelize.RichTextRun{{Text: s}}
}

// quoteSheet returns the sheet name as it appears in a formula reference.
func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func absCell(sheet string, col, row int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row, true)
	if err != nil {
		return "", err
	}
	return quoteSheet(sheet) + "!" + cell, nil
}

func absRange(sheet string, col1, row1, col2, row2 int) (string, error) {
	from, err := excelize.CoordinatesToCellName(col1, row1, true)
	if err != nil {
		return "", err
	}
	to, err := excelize.CoordinatesToCellName(col2, row2, true)
	if err != nil {
		return "", err
	}
	return quoteSheet(sheet) + "!" + from + ":" + to, nil
}
