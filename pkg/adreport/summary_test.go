package adreport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/adreport-go/pkg/adreport/models"
)

func TestWriteSummary(t *testing.T) {
	s := &models.Summary{
		Path: "Analisis_Monetizacion_Anuncios_Logic.xlsx",
		Sheets: []models.SheetSummary{
			{Name: "Resumen Ejecutivo", Label: "Resumen Ejecutivo"},
			{Name: "Proyecciones de Ingresos", Label: "Proyecciones de Ingresos", Charts: 1},
			{Name: "Estrategia Implementación", Label: "Estrategia de Implementación"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, s))

	want := "✅ Archivo Excel creado exitosamente: 'Analisis_Monetizacion_Anuncios_Logic.xlsx'\n" +
		"📊 Incluye 3 hojas con análisis completo:\n" +
		"   1. Resumen Ejecutivo\n" +
		"   2. Proyecciones de Ingresos (con gráfico)\n" +
		"   3. Estrategia de Implementación\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteSummaryFullReport(t *testing.T) {
	summary, err := Build(testOptions(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, summary))

	out := buf.String()
	assert.Contains(t, out, "📊 Incluye 9 hojas con análisis completo:")
	assert.Contains(t, out, "   4. Proyecciones de Ingresos (con gráfico)\n")
	assert.Contains(t, out, "   8. Análisis de Competencia\n")
	assert.Contains(t, out, "   9. Métricas y Benchmarks (con gráfico)\n")
}
