package infra

// export.go — report export blobs. /reports/export renders whatever report the
// caller asked for into downloadable bytes: CSV when requested, a simple
// tabular PDF for everything else. The dispatcher hands the bytes back as an
// opaque blob; no file is written here.

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// RenderReportPDF renders a titled table as A4 portrait PDF bytes.
func RenderReportPDF(title string, headers []string, rows [][]string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 6, "Generated "+time.Now().Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	colW := contentW
	if len(headers) > 0 {
		colW = contentW / float64(len(headers))
	}

	// ── Table header ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range headers {
		pdf.CellFormat(colW, 7, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		for _, cell := range row {
			// Truncate long cells
			if len(cell) > 48 {
				cell = cell[:47] + "…"
			}
			pdf.CellFormat(colW, 6, cell, "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderReportCSV renders headers plus rows as CSV bytes.
func RenderReportCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if len(headers) > 0 {
		if err := w.Write(headers); err != nil {
			return nil, fmt.Errorf("export: write csv header: %w", err)
		}
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("export: write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
