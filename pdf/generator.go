// Package pdf renders a quote as a printable PDF document.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"quickquote.io/quickquote/models"
	"quickquote.io/quickquote/models/enum"
)

type Generator struct{}

func NewGenerator() *Generator { return &Generator{} }

// Generate renders the quote with the issuing business header, the
// itemized lines and the totals block. Core Helvetica fonts only, so no
// font assets ship with the binary.
func (g *Generator) Generate(q *models.Quote, business *models.Business) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Quote %s", q.QuoteNumber), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, business.Name)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Quote %s, issued %s", q.QuoteNumber, q.CreatedAt.Format("January 2, 2006")))
	pdf.Ln(6)
	if q.ValidUntil != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Valid until %s", q.ValidUntil.Format("January 2, 2006")))
		pdf.Ln(6)
	}

	if q.Customer != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Prepared for: %s %s", q.Customer.Name, q.Customer.Phone))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(100, 7, "Service")
	pdf.Cell(20, 7, "Qty")
	pdf.Cell(35, 7, "Unit Price")
	pdf.Cell(35, 7, "Amount")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range q.Items {
		pdf.Cell(100, 6, trim(item.ServiceName, 55))
		pdf.Cell(20, 6, fmt.Sprintf("%d", item.Quantity))
		pdf.Cell(35, 6, fmt.Sprintf("$%.2f", item.UnitPrice))
		pdf.Cell(35, 6, fmt.Sprintf("$%.2f", item.TotalPrice))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Subtotal: $%.2f", q.Subtotal))
	pdf.Ln(6)
	if q.DiscountType != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Discount: %s", discountLabel(*q.DiscountType, q.DiscountValue)))
		pdf.Ln(6)
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: $%.2f", q.Total))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 9)
	if q.Notes != nil && *q.Notes != "" {
		pdf.MultiCell(0, 5, fmt.Sprintf("Notes: %s", *q.Notes), "", "L", false)
		pdf.Ln(2)
	}
	if q.Terms != nil && *q.Terms != "" {
		pdf.MultiCell(0, 5, fmt.Sprintf("Terms: %s", *q.Terms), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func discountLabel(t enum.DiscountType, value float64) string {
	if t == enum.DiscountTypePercentage {
		return fmt.Sprintf("%.0f%%", value)
	}
	return fmt.Sprintf("$%.2f", value)
}

// trim shortens s to max runes. The core fonts are cp1252, so the
// truncation marker stays plain ASCII.
func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
