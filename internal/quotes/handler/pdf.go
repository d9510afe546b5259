package handler

import (
	"bytes"
	"fmt"

	"saas_cpq_api/internal/quotes/transport"
	"saas_cpq_api/platform/apperr"

	"github.com/jung-kurt/gofpdf"
)

// renderQuotePDF produces a simple one-page document for a quote: header,
// line item table and the stored total. Uses the built-in core fonts so no
// font files need to ship with the binary.
func renderQuotePDF(quote transport.QuoteResponse, items []transport.LineItemResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Quote #%d", quote.ID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Quote #%d - %s", quote.ID, quote.JobName))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Customer %d / %s / created %s",
		quote.CustomerID, quote.Currency, quote.CreatedAt.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(30, 7, "Type")
	pdf.Cell(25, 7, "UOM")
	pdf.Cell(70, 7, "Description")
	pdf.Cell(20, 7, "Qty")
	pdf.Cell(25, 7, "Sell")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range items {
		pdf.Cell(30, 6, it.Type)
		pdf.Cell(25, 6, it.UOM)
		pdf.Cell(70, 6, truncate(it.Description, 45))
		pdf.Cell(20, 6, fmt.Sprintf("%g", it.Qty))
		pdf.Cell(25, 6, fmt.Sprintf("%.2f", it.Sell))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Tax rate: %.2f%%   Discount: %.2f   Total: %.2f %s",
		quote.TaxRate*100, quote.Discount, quote.Total, quote.Currency))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to render quote PDF", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
