// Package pdfgen renders invoices as PDF documents.
package pdfgen

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// InvoiceItem is one printed line. Amounts are preformatted by the caller.
type InvoiceItem struct {
	Description string
	Quantity    string
	UnitPrice   string
	GSTPercent  string
	Total       string
}

// InvoiceData is everything printed on an invoice.
type InvoiceData struct {
	Title         string
	InvoiceNumber string
	Date          string
	DueDate       string
	ClientName    string
	ClientEmail   string
	ClientAddress string
	Items         []InvoiceItem
	Subtotal      string
	TaxTotal      string
	GrandTotal    string
	Notes         string
}

const (
	left       = 10.0
	rightEdge  = 200.0
	billToX    = 120.0
	pageBottom = 270.0
)

// InvoicePDF lays out the invoice on A4: header and bill-to block, a line
// table with per-line totals including GST, then the totals block.
func InvoicePDF(d InvoiceData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 10)
	pdf.AddPage()

	title := d.Title
	if title == "" {
		title = "Invoice Hub"
	}
	y := 10.0
	pdf.SetFont("Arial", "B", 16)
	pdf.Text(left, y, tr(title))
	y += 8
	pdf.SetFont("Arial", "", 11)
	pdf.Text(left, y, tr("Invoice #: "+d.InvoiceNumber))
	y += 6
	pdf.Text(left, y, tr("Date: "+d.Date))
	y += 6
	pdf.Text(left, y, tr("Due: "+d.DueDate))

	by := 12.0
	pdf.Text(billToX, by, "Bill To:")
	by += 6
	pdf.Text(billToX, by, tr(d.ClientName))
	by += 6
	if d.ClientEmail != "" {
		pdf.Text(billToX, by, tr(d.ClientEmail))
		by += 6
	}
	for _, l := range splitLines(d.ClientAddress) {
		pdf.Text(billToX, by, tr(l))
		by += 5
	}
	if by > y {
		y = by
	}

	y += 4
	pdf.Line(left, y, rightEdge, y)
	y += 6
	pdf.SetFont("Arial", "B", 10)
	pdf.Text(left, y, "Item")
	pdf.Text(90, y, "Qty")
	pdf.Text(110, y, "Unit")
	pdf.Text(140, y, "GST%")
	pdf.Text(170, y, "Total")
	y += 4
	pdf.Line(left, y, rightEdge, y)
	y += 6

	pdf.SetFont("Arial", "", 10)
	for _, it := range d.Items {
		pdf.Text(left, y, tr(truncate(it.Description, 40)))
		rightText(pdf, 95, y, it.Quantity)
		rightText(pdf, 125, y, it.UnitPrice)
		rightText(pdf, 150, y, it.GSTPercent)
		rightText(pdf, 190, y, it.Total)
		y += 6
		if y > pageBottom {
			pdf.AddPage()
			y = 10
		}
	}

	y += 4
	pdf.Line(left, y, rightEdge, y)
	y += 6
	pdf.Text(140, y, "Subtotal:")
	rightText(pdf, 190, y, d.Subtotal)
	y += 6
	pdf.Text(140, y, "GST:")
	rightText(pdf, 190, y, d.TaxTotal)
	y += 6
	pdf.SetFont("Arial", "B", 11)
	pdf.Text(140, y, "Grand Total:")
	rightText(pdf, 190, y, d.GrandTotal)

	if d.Notes != "" {
		y += 12
		pdf.SetFont("Arial", "", 9)
		pdf.SetXY(left, y)
		pdf.MultiCell(rightEdge-left, 5, tr("Notes: "+d.Notes), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// rightText draws s so that it ends at x on baseline y.
func rightText(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}

func splitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
