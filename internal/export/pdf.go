package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

const ContentTypePDF = "application/pdf"

// WritePDF writes t as a landscape A4 report: title, row count and a bordered table.
func WritePDF(w io.Writer, t Table, generated time.Time) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(t.Title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generated.Format("2006-01-02 15:04")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total rows: %d", len(t.Rows)))
	pdf.Ln(10)

	if len(t.Columns) > 0 {
		pageW, _ := pdf.GetPageSize()
		left, _, right, _ := pdf.GetMargins()
		colW := (pageW - left - right) / float64(len(t.Columns))

		header := func() {
			pdf.SetFont("Helvetica", "B", 9)
			pdf.SetFillColor(230, 230, 230)
			for _, c := range t.Columns {
				pdf.CellFormat(colW, 7, fit(pdf, tr(c), colW), "1", 0, "L", true, 0, "")
			}
			pdf.Ln(-1)
			pdf.SetFont("Helvetica", "", 9)
		}
		header()

		_, pageH := pdf.GetPageSize()
		for _, row := range t.Rows {
			if pdf.GetY()+6 > pageH-12 {
				pdf.AddPage()
				header()
			}
			for _, v := range row {
				pdf.CellFormat(colW, 6, fit(pdf, tr(v), colW), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// fit shortens s with an ellipsis until it fits in width (minus cell padding).
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	limit := width - 2
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > limit {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
