package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	ContentType = "application/pdf"

	fontFamily = "Arial"
	lineHeight = 7.0
	margin     = 15.0
)

// Column describes a table column. Width is in millimetres; zero widths share
// whatever is left of the printable area.
type Column struct {
	Header string
	Width  float64
	Align  string
}

// Document is a simple report: title, key/value lines, tables and page breaks.
// Text is UTF-8 and translated to the core font code page.
type Document struct {
	f  *gofpdf.Fpdf
	tr func(string) string
}

// New starts a portrait A4 document with title on its first page.
func New(title string) *Document {
	return newDocument("P", title)
}

// NewLandscape is New for wide tables.
func NewLandscape(title string) *Document {
	return newDocument("L", title)
}

func newDocument(orientation, title string) *Document {
	f := gofpdf.New(orientation, "mm", "A4", "")
	f.SetMargins(margin, margin, margin)
	f.SetAutoPageBreak(true, margin)
	f.SetTitle(title, true)
	f.SetCreator("faena-backend", true)

	d := &Document{f: f, tr: f.UnicodeTranslatorFromDescriptor("")}
	d.f.SetFooterFunc(func() {
		d.f.SetY(-margin + 3)
		d.f.SetFont(fontFamily, "I", 8)
		d.f.CellFormat(0, 5, d.tr(fmt.Sprintf("Página %d", d.f.PageNo())), "", 0, "C", false, 0, "")
	})
	d.Page(title)
	return d
}

// Page starts a new page headed by title.
func (d *Document) Page(title string) {
	d.f.AddPage()
	d.f.SetFont(fontFamily, "B", 16)
	d.f.CellFormat(0, 10, d.tr(title), "", 1, "C", false, 0, "")
	d.f.Ln(4)
}

func (d *Document) Heading(text string) {
	d.f.Ln(2)
	d.f.SetFont(fontFamily, "B", 12)
	d.f.CellFormat(0, lineHeight+1, d.tr(text), "", 1, "L", false, 0, "")
}

// Field prints a bold label followed by its value on one line.
func (d *Document) Field(label, value string) {
	d.f.SetFont(fontFamily, "B", 10)
	labelText := d.tr(label + ": ")
	d.f.CellFormat(d.f.GetStringWidth(labelText)+1, lineHeight, labelText, "", 0, "L", false, 0, "")
	d.f.SetFont(fontFamily, "", 10)
	d.f.CellFormat(0, lineHeight, d.tr(value), "", 1, "L", false, 0, "")
}

func (d *Document) Paragraph(text string) {
	d.f.SetFont(fontFamily, "", 10)
	d.f.MultiCell(0, lineHeight-1, d.tr(text), "", "L", false)
}

// Table prints a bordered table. The header row is repeated after page breaks.
func (d *Document) Table(columns []Column, rows [][]string) {
	widths := d.columnWidths(columns)

	header := func() {
		d.f.SetFont(fontFamily, "B", 9)
		d.f.SetFillColor(242, 242, 242)
		for i, c := range columns {
			d.f.CellFormat(widths[i], lineHeight, d.fit(c.Header, widths[i]), "1", 0, "C", true, 0, "")
		}
		d.f.Ln(-1)
		d.f.SetFont(fontFamily, "", 9)
	}

	header()
	_, pageHeight := d.f.GetPageSize()
	for _, row := range rows {
		if d.f.GetY()+lineHeight > pageHeight-margin {
			d.f.AddPage()
			header()
		}
		for i := range columns {
			var value string
			if i < len(row) {
				value = row[i]
			}
			align := columns[i].Align
			if align == "" {
				align = "L"
			}
			d.f.CellFormat(widths[i], lineHeight, d.fit(value, widths[i]), "1", 0, align, false, 0, "")
		}
		d.f.Ln(-1)
	}
}

// Footnote prints a small italic line with the generation time.
func (d *Document) Footnote(at time.Time) {
	d.f.Ln(6)
	d.f.SetFont(fontFamily, "I", 8)
	d.f.CellFormat(0, 5, d.tr("Generado el "+at.Format("02-01-2006 15:04")), "", 1, "L", false, 0, "")
}

// Bytes renders the document. The Document must not be used afterwards.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.f.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *Document) columnWidths(columns []Column) []float64 {
	pageWidth, _ := d.f.GetPageSize()
	available := pageWidth - 2*margin

	widths := make([]float64, len(columns))
	var fixed float64
	var flexible int
	for i, c := range columns {
		widths[i] = c.Width
		if c.Width > 0 {
			fixed += c.Width
		} else {
			flexible++
		}
	}
	if flexible > 0 {
		share := (available - fixed) / float64(flexible)
		if share < 10 {
			share = 10
		}
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
	}
	return widths
}

// fit translates s and trims it to the cell width.
func (d *Document) fit(s string, width float64) string {
	text := d.tr(s)
	limit := width - 2
	if d.f.GetStringWidth(text) <= limit {
		return text
	}
	for len(text) > 0 && d.f.GetStringWidth(text+"...") > limit {
		text = text[:len(text)-1]
	}
	return text + "..."
}
