package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/adreport-go/pkg/adreport/models"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestBuildCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	stdout, stderr, err := run(t, "-o", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "✅ Archivo Excel creado exitosamente: '"+path+"'")
	assert.Contains(t, stdout, "📊 Incluye 9 hojas con análisis completo:")
	assert.Contains(t, stderr, "report written")
	assert.NotContains(t, stderr, "style interned")

	stdout, _, err = run(t, "-o", path, "--json")
	require.NoError(t, err)
	var summary models.Summary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.Equal(t, path, summary.Path)
	assert.Len(t, summary.Sheets, 9)
	assert.Equal(t, "Análisis de Competencia", summary.Sheets[7].Label)

	_, stderr, err = run(t, "-o", path, "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "style interned")

	stdout, _, err = run(t, "inspect", path)
	require.NoError(t, err)
	var wb models.WorkbookData
	require.NoError(t, json.Unmarshal([]byte(stdout), &wb))
	assert.Equal(t, "report.xlsx", wb.BookName)
	assert.Len(t, wb.SheetNames, 9)
	assert.Len(t, wb.Sheets["Proyecciones de Ingresos"].Charts, 1)
}

func TestRejectsArguments(t *testing.T) {
	_, _, err := run(t, "extra")
	assert.Error(t, err)

	_, _, err = run(t, "inspect")
	assert.Error(t, err)

	_, _, err = run(t, "inspect", filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.ErrorContains(t, err, "file not found")
}
