// Package adreport builds the ad-monetization reference workbook and reads
// generated workbooks back for inspection.
package adreport

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/ukaji3/adreport-go/pkg/adreport/layout"
)

// DefaultOutputPath is where the report is written when no path is given.
const DefaultOutputPath = "Analisis_Monetizacion_Anuncios_Logic.xlsx"

// DateLayout is the display layout of the run date.
const DateLayout = "02/01/2006"

// Options configures a report build.
type Options struct {
	// OutputPath is the workbook destination. Defaults to DefaultOutputPath.
	OutputPath string
	// Layout overrides the embedded report layout.
	Layout *layout.Report
	// Now returns the run date stamped on the summary sheet.
	// If nil, time.Now is used.
	Now func() time.Time
	// Logger receives build progress. The zero value discards everything.
	Logger zerolog.Logger
}

// DefaultOptions returns options that write the embedded report to DefaultOutputPath.
func DefaultOptions() Options {
	return Options{
		OutputPath: DefaultOutputPath,
		Logger:     zerolog.Nop(),
	}
}

func (o Options) outputPath() string {
	if o.OutputPath != "" {
		return o.OutputPath
	}
	return DefaultOutputPath
}

func (o Options) runDate() string {
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	return now().Format(DateLayout)
}
