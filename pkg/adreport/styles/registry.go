package styles

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// Registry interns presets into the style table of one workbook.
// It is not safe for concurrent use.
type Registry struct {
	f      *excelize.File
	ids    map[Preset]int
	order  []Preset
	logger zerolog.Logger
}

// NewRegistry returns an empty registry bound to f.
func NewRegistry(f *excelize.File, logger zerolog.Logger) *Registry {
	return &Registry{
		f:      f,
		ids:    make(map[Preset]int),
		logger: logger,
	}
}

// ID returns the style ID of p, creating the style on first use.
func (r *Registry) ID(p Preset) (int, error) {
	if id, ok := r.ids[p]; ok {
		return id, nil
	}
	id, err := r.f.NewStyle(p.Style())
	if err != nil {
		return 0, fmt.Errorf("creating style %s/%s: %w", p.Role, p.Format, err)
	}
	r.ids[p] = id
	r.order = append(r.order, p)
	r.logger.Debug().Str("role", string(p.Role)).Str("format", string(p.Format)).Int("id", id).Msg("style interned")
	return id, nil
}

// Lookup returns the style ID of p if it has been interned.
func (r *Registry) Lookup(p Preset) (int, bool) {
	id, ok := r.ids[p]
	return id, ok
}

// Len returns the number of distinct presets interned so far.
func (r *Registry) Len() int {
	return len(r.ids)
}

// Presets returns the interned presets in creation order.
func (r *Registry) Presets() []Preset {
	out := make([]Preset, len(r.order))
	copy(out, r.order)
	return out
}
