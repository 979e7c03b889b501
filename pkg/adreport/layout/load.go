package layout

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed report.yaml
var defaultReport []byte

// Default returns the embedded ad-monetization report layout.
func Default() (*Report, error) {
	return Parse(defaultReport)
}

// LoadFromString parses a layout held in a string.
func LoadFromString(content string) (*Report, error) {
	return Parse([]byte(content))
}

// Parse decodes, defaults and validates a YAML layout.
func Parse(data []byte) (*Report, error) {
	var report Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parsing YAML layout: %w", err)
	}

	report.ApplyDefaults()

	if err := Validate(&report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ApplyDefaults fills in the roles, kinds and chart settings a layout may
// leave empty. Parse calls it; layouts built in code should call it before
// Validate.
func (r *Report) ApplyDefaults() {
	for i := range r.Sheets {
		s := &r.Sheets[i]
		for j := range s.Blocks {
			b := &s.Blocks[j]
			if b.Kind == "" {
				if len(b.Columns) > 0 {
					b.Kind = KindTable
				} else {
					b.Kind = KindBanner
				}
			}
			if b.Kind == KindTable && b.HeaderStyle == "" {
				b.HeaderStyle = "header"
			}
			if b.Kind == KindBanner && b.Style == "" {
				b.Style = "title"
			}
			for k := range b.Columns {
				if b.Columns[k].Style == "" {
					b.Columns[k].Style = "data"
				}
			}
		}
		for j := range s.Charts {
			c := &s.Charts[j]
			if c.Legend == "" {
				c.Legend = "bottom"
			}
			if c.Width == 0 {
				c.Width = 720
			}
			if c.Height == 0 {
				c.Height = 400
			}
		}
	}
}
