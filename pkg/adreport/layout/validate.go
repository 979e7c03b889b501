package layout

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/adreport-go/pkg/adreport/styles"
	"go.uber.org/multierr"
)

// ErrInvalid is wrapped by every validation problem.
var ErrInvalid = errors.New("invalid layout")

// maxSheetNameLen is the worksheet name limit of the xlsx format.
const maxSheetNameLen = 31

// ValidationError locates one problem in a layout.
type ValidationError struct {
	// Path is a dotted location such as sheets[3].blocks[1].rows[2].
	Path string
	Msg  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// Validate checks the layout and returns every problem found, combined.
func Validate(r *Report) error {
	if r == nil {
		return &ValidationError{Path: "report", Msg: "layout is nil"}
	}
	if len(r.Sheets) == 0 {
		return &ValidationError{Path: "sheets", Msg: "layout must have at least one sheet"}
	}

	var err error
	seen := make(map[string]int, len(r.Sheets))
	for i, s := range r.Sheets {
		path := fmt.Sprintf("sheets[%d]", i)
		// Worksheet names are case-insensitive.
		key := strings.ToLower(s.Name)
		if prev, ok := seen[key]; ok {
			err = multierr.Append(err, invalid(path+".name", "duplicate sheet name %q (also sheets[%d])", s.Name, prev))
		} else {
			seen[key] = i
		}
		err = multierr.Append(err, validateSheet(path, s))
	}
	return err
}

func validateSheet(path string, s Sheet) error {
	var err error

	switch {
	case s.Name == "":
		err = multierr.Append(err, invalid(path+".name", "name is required"))
	case utf8.RuneCountInString(s.Name) > maxSheetNameLen:
		err = multierr.Append(err, invalid(path+".name", "%q exceeds %d characters", s.Name, maxSheetNameLen))
	case strings.ContainsAny(s.Name, `[]:*?/\`):
		err = multierr.Append(err, invalid(path+".name", "%q contains a forbidden character", s.Name))
	}

	for i, w := range s.Widths {
		if w.Cols == "" || w.Width <= 0 {
			err = multierr.Append(err, invalid(fmt.Sprintf("%s.widths[%d]", path, i), "cols and a positive width are required"))
		}
	}

	ids := make(map[string]bool)
	for i, b := range s.Blocks {
		bpath := fmt.Sprintf("%s.blocks[%d]", path, i)
		if b.Space < 0 {
			err = multierr.Append(err, invalid(bpath+".space", "must not be negative"))
		}
		switch b.Kind {
		case KindBanner:
			err = multierr.Append(err, validateBanner(bpath, b))
		case KindTable:
			if b.ID != "" {
				if ids[b.ID] {
					err = multierr.Append(err, invalid(bpath+".id", "duplicate table id %q", b.ID))
				}
				ids[b.ID] = true
			}
			err = multierr.Append(err, validateTable(bpath, b))
		default:
			err = multierr.Append(err, invalid(bpath+".kind", "unknown block kind %q", b.Kind))
		}
	}

	for i, c := range s.Charts {
		err = multierr.Append(err, validateChart(fmt.Sprintf("%s.charts[%d]", path, i), s, c))
	}
	return err
}

func validateBanner(path string, b Block) error {
	var err error
	if b.Span < 1 {
		err = multierr.Append(err, invalid(path+".span", "banner must span at least one column"))
	}
	if _, e := styles.ParseRole(b.Style); e != nil {
		err = multierr.Append(err, invalid(path+".style", "%v", e))
	}
	return err
}

func validateTable(path string, b Block) error {
	var err error
	if len(b.Columns) == 0 {
		return invalid(path+".columns", "table must declare its columns")
	}
	if len(b.Header) > 0 && len(b.Header) != len(b.Columns) {
		err = multierr.Append(err, invalid(path+".header", "has %d cells, want %d", len(b.Header), len(b.Columns)))
	}
	if _, e := styles.ParseRole(b.HeaderStyle); e != nil {
		err = multierr.Append(err, invalid(path+".header_style", "%v", e))
	}
	for i, c := range b.Columns {
		cpath := fmt.Sprintf("%s.columns[%d]", path, i)
		if _, e := styles.ParseRole(c.Style); e != nil {
			err = multierr.Append(err, invalid(cpath+".style", "%v", e))
		}
		if _, e := styles.ParseFormat(c.Format); e != nil {
			err = multierr.Append(err, invalid(cpath+".format", "%v", e))
		}
		if c.Classify != "" && !styles.HasVocabulary(c.Classify) {
			err = multierr.Append(err, invalid(cpath+".classify", "unknown vocabulary %q", c.Classify))
		}
	}
	for i, row := range b.Rows {
		rpath := fmt.Sprintf("%s.rows[%d]", path, i)
		if len(row.Cells) != len(b.Columns) {
			err = multierr.Append(err, invalid(rpath, "has %d cells, want %d", len(row.Cells), len(b.Columns)))
		}
		if _, e := styles.ParseFormat(row.Format); e != nil {
			err = multierr.Append(err, invalid(rpath+".format", "%v", e))
		}
		if row.Style != "" {
			if _, e := styles.ParseRole(row.Style); e != nil {
				err = multierr.Append(err, invalid(rpath+".style", "%v", e))
			}
		}
	}
	return err
}

func validateChart(path string, s Sheet, c Chart) error {
	var err error
	if c.Type != ChartLine && c.Type != ChartColumn {
		err = multierr.Append(err, invalid(path+".type", "unknown chart type %q", c.Type))
	}
	if len(c.Series) == 0 {
		err = multierr.Append(err, invalid(path+".series", "chart needs at least one series"))
	}
	table, _, ok := s.FindTable(c.Source)
	if !ok {
		return multierr.Append(err, invalid(path+".source", "no table %q on sheet %q", c.Source, s.Name))
	}
	if len(table.Rows) == 0 {
		err = multierr.Append(err, invalid(path+".source", "table %q has no rows", c.Source))
	}
	if c.Rows < 0 || c.Rows > len(table.Rows) {
		err = multierr.Append(err, invalid(path+".rows", "%d outside table %q (%d rows)", c.Rows, c.Source, len(table.Rows)))
	}
	if c.Categories < 0 || c.Categories >= len(table.Columns) {
		err = multierr.Append(err, invalid(path+".categories", "column %d outside table %q", c.Categories, c.Source))
	}
	for i, ser := range c.Series {
		if ser.Column < 0 || ser.Column >= len(table.Columns) {
			err = multierr.Append(err, invalid(fmt.Sprintf("%s.series[%d].column", path, i), "column %d outside table %q", ser.Column, c.Source))
			continue
		}
		switch ser.Dash {
		case "", DashSolid, DashDash, DashDot, DashLongDash:
		default:
			err = multierr.Append(err, invalid(fmt.Sprintf("%s.series[%d].dash", path, i), "unknown dash style %q", ser.Dash))
		}
		if len(table.Header) == 0 {
			err = multierr.Append(err, invalid(fmt.Sprintf("%s.series[%d]", path, i), "table %q needs a header to name the series", c.Source))
		}
	}
	return err
}

func invalid(path, format string, args ...any) error {
	return &ValidationError{Path: path, Msg: fmt.Sprintf(format, args...)}
}
