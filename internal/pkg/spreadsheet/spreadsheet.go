package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Column struct {
	Header string
	Width  float64
}

// Workbook writes one sheet top to bottom: title, labelled values, tables.
type Workbook struct {
	f           *excelize.File
	sheet       string
	row         int
	headerStyle int
	titleStyle  int
	labelStyle  int
}

func New(sheet string) (*Workbook, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to delete default sheet: %w", err)
		}
		index, err = f.GetSheetIndex(sheet)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to locate sheet: %w", err)
		}
	}
	f.SetActiveSheet(index)

	w := &Workbook{f: f, sheet: sheet, row: 1}

	w.headerStyle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F2F2F2"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	w.titleStyle, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create title style: %w", err)
	}

	w.labelStyle, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create label style: %w", err)
	}

	return w, nil
}

func (w *Workbook) cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func (w *Workbook) Title(text string) error {
	c := w.cell(1, w.row)
	if err := w.f.SetCellValue(w.sheet, c, text); err != nil {
		return fmt.Errorf("failed to set title: %w", err)
	}
	if err := w.f.SetCellStyle(w.sheet, c, c, w.titleStyle); err != nil {
		return fmt.Errorf("failed to set title style: %w", err)
	}
	w.row += 2
	return nil
}

// Field writes label in column A and value in column B.
func (w *Workbook) Field(label string, value any) error {
	labelCell, valueCell := w.cell(1, w.row), w.cell(2, w.row)
	if err := w.f.SetCellValue(w.sheet, labelCell, label); err != nil {
		return fmt.Errorf("failed to set label %s: %w", labelCell, err)
	}
	if err := w.f.SetCellStyle(w.sheet, labelCell, labelCell, w.labelStyle); err != nil {
		return fmt.Errorf("failed to set label style: %w", err)
	}
	if err := w.f.SetCellValue(w.sheet, valueCell, value); err != nil {
		return fmt.Errorf("failed to set value %s: %w", valueCell, err)
	}
	w.row++
	return nil
}

// Skip leaves n empty rows.
func (w *Workbook) Skip(n int) {
	w.row += n
}

// Table writes a header row and the data rows. Values keep their Go type so
// numbers stay numeric in the sheet.
func (w *Workbook) Table(columns []Column, rows [][]any) error {
	for i, c := range columns {
		cell := w.cell(i+1, w.row)
		if err := w.f.SetCellValue(w.sheet, cell, c.Header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := w.f.SetCellStyle(w.sheet, cell, cell, w.headerStyle); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
		if c.Width > 0 {
			col, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return fmt.Errorf("failed to convert column number: %w", err)
			}
			if err := w.f.SetColWidth(w.sheet, col, col, c.Width); err != nil {
				return fmt.Errorf("failed to set column width: %w", err)
			}
		}
	}
	w.row++

	for _, row := range rows {
		for i, v := range row {
			if v == nil {
				continue
			}
			cell := w.cell(i+1, w.row)
			if err := w.f.SetCellValue(w.sheet, cell, v); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
		w.row++
	}
	return nil
}

// Bytes serialises the workbook and releases it.
func (w *Workbook) Bytes() ([]byte, error) {
	defer w.f.Close()

	var buf bytes.Buffer
	if _, err := w.f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
