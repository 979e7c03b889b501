// Package styles defines the cell style presets of the report and interns
// them into a workbook's style table.
package styles

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Role is the visual role of a cell.
type Role string

const (
	RoleTitle       Role = "title"
	RoleSubheader   Role = "subheader"
	RoleHeader      Role = "header"
	RoleData        Role = "data"
	RoleFavorable   Role = "favorable"
	RoleNeutral     Role = "neutral"
	RoleUnfavorable Role = "unfavorable"
)

// Format is the numeric display format of a cell.
type Format string

const (
	FormatNone     Format = ""
	FormatCurrency Format = "currency"
	FormatPercent  Format = "percent"
	FormatInteger  Format = "integer"
)

var roles = map[Role]bool{
	RoleTitle:       true,
	RoleSubheader:   true,
	RoleHeader:      true,
	RoleData:        true,
	RoleFavorable:   true,
	RoleNeutral:     true,
	RoleUnfavorable: true,
}

var numFmts = map[Format]string{
	FormatCurrency: "$#,##0.00",
	FormatPercent:  "0.0%",
	FormatInteger:  "#,##0",
}

// ParseRole validates a role name.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !roles[r] {
		return "", fmt.Errorf("unknown style role %q", s)
	}
	return r, nil
}

// ParseFormat validates a format name. The empty string is FormatNone.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if f == FormatNone {
		return f, nil
	}
	if _, ok := numFmts[f]; !ok {
		return "", fmt.Errorf("unknown number format %q", s)
	}
	return f, nil
}

// NumFmt returns the display pattern of f, or "" for FormatNone.
func (f Format) NumFmt() string {
	return numFmts[f]
}

// Preset is an immutable style selector. Equal presets share one style ID.
type Preset struct {
	Role   Role
	Format Format
}

// For returns the preset of a cell holding value. Number formats only apply to
// numeric values so text cells never carry a currency or percent pattern.
func For(role Role, format Format, value any) Preset {
	if !IsNumeric(value) {
		format = FormatNone
	}
	return Preset{Role: role, Format: format}
}

// IsNumeric reports whether v is stored as a number.
func IsNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}

var thin = []excelize.Border{
	{Type: "left", Color: "#000000", Style: 1},
	{Type: "top", Color: "#000000", Style: 1},
	{Type: "right", Color: "#000000", Style: 1},
	{Type: "bottom", Color: "#000000", Style: 1},
}

var medium = []excelize.Border{
	{Type: "left", Color: "#000000", Style: 2},
	{Type: "top", Color: "#000000", Style: 2},
	{Type: "right", Color: "#000000", Style: 2},
	{Type: "bottom", Color: "#000000", Style: 2},
}

func fill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

// Style returns the excelize definition of p.
func (p Preset) Style() *excelize.Style {
	var s *excelize.Style
	switch p.Role {
	case RoleTitle:
		s = &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 16, Color: "#1A237E"},
			Fill:      fill("#E3F2FD"),
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    medium,
		}
	case RoleHeader:
		s = &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
			Fill:      fill("#1976D2"),
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
			Border:    thin,
		}
	case RoleSubheader:
		s = &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 10, Color: "#FFFFFF"},
			Fill:      fill("#42A5F5"),
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
			Border:    thin,
		}
	case RoleFavorable:
		s = &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 10, Color: "#1B5E20"},
			Fill:      fill("#C8E6C9"),
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thin,
		}
	case RoleNeutral:
		s = &excelize.Style{
			Font:      &excelize.Font{Size: 10, Color: "#F57F17"},
			Fill:      fill("#FFF9C4"),
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thin,
		}
	case RoleUnfavorable:
		s = &excelize.Style{
			Font:      &excelize.Font{Size: 10, Color: "#B71C1C"},
			Fill:      fill("#FFCDD2"),
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thin,
		}
	default:
		s = &excelize.Style{
			Font:      &excelize.Font{Size: 10},
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
			Border:    thin,
		}
		switch p.Format {
		case FormatCurrency, FormatInteger:
			s.Alignment.Horizontal = "right"
		case FormatPercent:
			s.Alignment.Horizontal = "center"
		}
	}

	if pattern := p.Format.NumFmt(); pattern != "" {
		s.CustomNumFmt = &pattern
	}
	return s
}
