// Package layout describes the declarative content of the report workbook.
//
// A layout is an ordered list of sheets. Each sheet stacks blocks (merged
// banners and tables) from the top, and may attach charts whose series are
// bound to columns of one of its tables.
package layout

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// BlockKind identifies how a block is rendered.
type BlockKind string

const (
	// KindBanner is a single merged row carrying one text value.
	KindBanner BlockKind = "banner"
	// KindTable is an optional header row followed by data rows.
	KindTable BlockKind = "table"
)

// ChartType is the chart family of a sheet chart.
type ChartType string

const (
	ChartLine   ChartType = "line"
	ChartColumn ChartType = "column"
)

// Report is the whole workbook layout.
type Report struct {
	// Sheets in workbook order.
	Sheets []Sheet `yaml:"sheets"`
}

// Sheet is one worksheet of the report.
type Sheet struct {
	// Name is the worksheet tab name.
	Name string `yaml:"name"`
	// Label is the title printed in the console summary. Defaults to Name.
	Label string `yaml:"label"`
	// Widths are applied before any cell is written.
	Widths []Width `yaml:"widths"`
	// Blocks are stacked top-down starting at row 1.
	Blocks []Block `yaml:"blocks"`
	// Charts are anchored below the last written row.
	Charts []Chart `yaml:"charts"`
}

// DisplayLabel returns the summary title of the sheet.
func (s Sheet) DisplayLabel() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Name
}

// Width sets the width of a column or an inclusive column range ("A" or "B:G").
type Width struct {
	Cols  string  `yaml:"cols"`
	Width float64 `yaml:"width"`
}

// Block is a banner or a table.
type Block struct {
	Kind BlockKind `yaml:"kind"`
	// ID names a table so charts can bind to it.
	ID string `yaml:"id"`
	// Space is the number of blank rows left above the block.
	Space int `yaml:"space"`

	// Text, Style and Span describe a banner.
	Text  string `yaml:"text"`
	Style string `yaml:"style"`
	Span  int    `yaml:"span"`

	// Header is the optional header row of a table.
	Header []string `yaml:"header"`
	// HeaderStyle defaults to "header".
	HeaderStyle string   `yaml:"header_style"`
	Columns     []Column `yaml:"columns"`
	Rows        []Row    `yaml:"rows"`
}

// Width returns the number of sheet columns the block covers.
func (b Block) Width() int {
	if b.Kind == KindBanner {
		return b.Span
	}
	n := 0
	for _, c := range b.Columns {
		n += c.SheetSpan()
	}
	return n
}

// Height returns the number of sheet rows the block covers.
func (b Block) Height() int {
	if b.Kind == KindBanner {
		return 1
	}
	n := len(b.Rows)
	if len(b.Header) > 0 {
		n++
	}
	return n
}

// Column describes how the cells of one table column are styled.
type Column struct {
	// Style is a role name; defaults to "data".
	Style string `yaml:"style"`
	// Format is the number format applied to numeric values.
	Format string `yaml:"format"`
	// Classify names a vocabulary whose role overrides Style per cell.
	Classify string `yaml:"classify"`
	// Span merges the column across this many sheet columns.
	Span int `yaml:"span"`
}

// SheetSpan returns the number of sheet columns the column covers.
func (c Column) SheetSpan() int {
	if c.Span > 1 {
		return c.Span
	}
	return 1
}

// Row is one data row. In YAML it is either a plain sequence of cells or a
// mapping with format, style and cells keys.
type Row struct {
	// Format overrides the column format for numeric cells of this row.
	Format string `yaml:"format"`
	// Style overrides the column role for every cell of this row.
	Style string `yaml:"style"`
	Cells []any  `yaml:"cells"`
}

// UnmarshalYAML accepts both the short and the long row form.
func (r *Row) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		return node.Decode(&r.Cells)
	case yaml.MappingNode:
		type plain Row
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*r = Row(p)
		return nil
	default:
		return fmt.Errorf("line %d: row must be a sequence or a mapping", node.Line)
	}
}

// Chart is a chart bound to one table of its sheet.
type Chart struct {
	Type   ChartType `yaml:"type"`
	Title  string    `yaml:"title"`
	XAxis  string    `yaml:"x_axis"`
	YAxis  string    `yaml:"y_axis"`
	Legend string    `yaml:"legend"`
	Width  uint      `yaml:"width"`
	Height uint      `yaml:"height"`
	// Source is the ID of the table the series read from.
	Source string `yaml:"source"`
	// Categories is the table column holding the category labels.
	Categories int `yaml:"categories"`
	// Rows limits the series to the first data rows of the table. Zero means all.
	Rows   int      `yaml:"rows"`
	Series []Series `yaml:"series"`
}

// Line dash styles of a series.
const (
	DashSolid    = "solid"
	DashDash     = "dash"
	DashDot      = "dot"
	DashLongDash = "long_dash"
)

// Series is one value series of a chart.
type Series struct {
	// Column is the table column holding the values.
	Column    int     `yaml:"column"`
	Color     string  `yaml:"color"`
	LineWidth float64 `yaml:"line_width"`
	// Dash is one of the Dash constants; empty draws the default solid line.
	Dash       string `yaml:"dash"`
	Marker     string `yaml:"marker"`
	MarkerSize int    `yaml:"marker_size"`
	MarkerFill string `yaml:"marker_fill"`
}

// FindTable returns the table block with the given ID and its index.
func (s Sheet) FindTable(id string) (Block, int, bool) {
	for i, b := range s.Blocks {
		if b.Kind == KindTable && b.ID == id {
			return b, i, true
		}
	}
	return Block{}, -1, false
}
