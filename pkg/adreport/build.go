package adreport

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/ukaji3/adreport-go/pkg/adreport/layout"
	"github.com/ukaji3/adreport-go/pkg/adreport/models"
	"github.com/ukaji3/adreport-go/pkg/adreport/styles"
	"github.com/xuri/excelize/v2"
)

// Builder renders a report layout into a workbook.
type Builder struct {
	opts   Options
	report *layout.Report
	logger zerolog.Logger
}

// NewBuilder defaults and validates the layout of opts and returns a builder
// for it. A layout passed in opts is modified in place.
func NewBuilder(opts Options) (*Builder, error) {
	report := opts.Layout
	if report == nil {
		var err error
		if report, err = layout.Default(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
		}
	} else {
		report.ApplyDefaults()
		if err := layout.Validate(report); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
		}
	}

	return &Builder{
		opts:   opts,
		report: report,
		logger: opts.Logger,
	}, nil
}

// Document is a rendered workbook that has not been saved yet.
type Document struct {
	// File is the in-memory workbook.
	File *excelize.File
	// Styles holds the interned presets of File.
	Styles *styles.Registry
	// Sheets describes the rendered sheets in workbook order.
	Sheets []models.SheetSummary
}

// Close releases the workbook.
func (d *Document) Close() error {
	return d.File.Close()
}

// Render writes every sheet of the layout into a new in-memory workbook.
func (b *Builder) Render() (*Document, error) {
	f := excelize.NewFile()
	doc := &Document{
		File:   f,
		Styles: styles.NewRegistry(f, b.logger),
	}
	date := b.opts.runDate()

	for i, s := range b.report.Sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.Name); err != nil {
				f.Close()
				return nil, buildError(s.Name, "sheet", err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			f.Close()
			return nil, buildError(s.Name, "sheet", err)
		}
		// NewSheet hands back an existing sheet whose name differs only in case.
		if f.SheetCount != i+1 {
			f.Close()
			return nil, buildError(s.Name, "sheet", fmt.Errorf("sheet name %q is already in use", s.Name))
		}

		w := &sheetWriter{
			f:      f,
			styles: doc.Styles,
			sheet:  s,
			date:   date,
			logger: b.logger.With().Str("sheet", s.Name).Logger(),
		}
		if err := w.render(); err != nil {
			f.Close()
			return nil, err
		}

		doc.Sheets = append(doc.Sheets, models.SheetSummary{
			Name:   s.Name,
			Label:  s.DisplayLabel(),
			Charts: len(s.Charts),
		})
	}
	f.SetActiveSheet(0)

	return doc, nil
}

// Build renders the report and writes it to the configured output path.
func (b *Builder) Build() (*models.Summary, error) {
	doc, err := b.Render()
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	path := b.opts.outputPath()
	b.logger.Debug().Str("path", path).Int("sheets", len(doc.Sheets)).Msg("saving workbook")
	if err := saveAtomic(doc.File, path); err != nil {
		return nil, buildError("", "save", err)
	}

	summary := &models.Summary{
		Path:   path,
		Sheets: doc.Sheets,
		Styles: doc.Styles.Len(),
	}
	b.logger.Info().Str("path", path).Int("sheets", len(summary.Sheets)).Int("styles", summary.Styles).Msg("report written")
	return summary, nil
}

// Build writes the report described by opts.
func Build(opts Options) (*models.Summary, error) {
	b, err := NewBuilder(opts)
	if err != nil {
		return nil, err
	}
	return b.Build()
}
