package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWorkbook_RoundTrip(t *testing.T) {
	w, err := New("Asistencia")
	require.NoError(t, err)

	require.NoError(t, w.Title("Reporte de Asistencia - 2025-05"))
	require.NoError(t, w.Field("Trabajador", "Ana Pérez"))
	w.Skip(1)
	require.NoError(t, w.Table([]Column{
		{Header: "Fecha", Width: 14},
		{Header: "Horas", Width: 10},
	}, [][]any{
		{"2025-05-05", 8.5},
		{"2025-05-06", nil},
	}))

	out, err := w.Bytes()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Asistencia"}, f.GetSheetList())

	title, err := f.GetCellValue("Asistencia", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Reporte de Asistencia - 2025-05", title)

	name, err := f.GetCellValue("Asistencia", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Ana Pérez", name)

	header, err := f.GetCellValue("Asistencia", "B5")
	require.NoError(t, err)
	assert.Equal(t, "Horas", header)

	hours, err := f.GetCellValue("Asistencia", "B6")
	require.NoError(t, err)
	assert.Equal(t, "8.5", hours)

	empty, err := f.GetCellValue("Asistencia", "B7")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
