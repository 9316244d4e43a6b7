package pdfgen

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(lines int) InvoiceData {
	d := InvoiceData{
		InvoiceNumber: "INV-00007",
		Date:          "2025-12-19",
		DueDate:       "2025-12-25",
		ClientName:    "Acme Corporation",
		ClientEmail:   "billing@acme.example",
		ClientAddress: "12 Industrial Estate\nPune",
		Subtotal:      "1000.00",
		TaxTotal:      "180.00",
		GrandTotal:    "1180.00",
		Notes:         "Payable within 7 days.",
	}
	for i := 0; i < lines; i++ {
		d.Items = append(d.Items, InvoiceItem{
			Description: fmt.Sprintf("Design work %d", i),
			Quantity:    "2", UnitPrice: "500", GSTPercent: "18", Total: "1180.00",
		})
	}
	return d
}

func TestInvoicePDF(t *testing.T) {
	data, err := InvoicePDF(sample(1))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "not a PDF header")
	assert.True(t, bytes.Contains(data, []byte("%%EOF")))
}

func TestInvoicePDFPaginates(t *testing.T) {
	short, err := InvoicePDF(sample(1))
	require.NoError(t, err)
	long, err := InvoicePDF(sample(80))
	require.NoError(t, err)
	assert.Greater(t, len(long), len(short))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines("  "))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\r\nb"))
}
