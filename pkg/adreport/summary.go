package adreport

import (
	"fmt"
	"io"

	"github.com/ukaji3/adreport-go/pkg/adreport/models"
)

// WriteSummary prints the human-readable outcome of a build.
func WriteSummary(w io.Writer, s *models.Summary) error {
	if _, err := fmt.Fprintf(w, "✅ Archivo Excel creado exitosamente: '%s'\n", s.Path); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "📊 Incluye %d hojas con análisis completo:\n", len(s.Sheets)); err != nil {
		return err
	}
	for i, sheet := range s.Sheets {
		label := sheet.Label
		if sheet.Charts > 0 {
			label += " (con gráfico)"
		}
		if _, err := fmt.Fprintf(w, "   %d. %s\n", i+1, label); err != nil {
			return err
		}
	}
	return nil
}
