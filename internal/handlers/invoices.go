package handlers

import (
	"net/http"
	"strconv"

	"github.com/diewo77/invoice-hub/httpx"
	"github.com/diewo77/invoice-hub/internal/metrics"
	"github.com/diewo77/invoice-hub/internal/middleware"
	"github.com/diewo77/invoice-hub/internal/models"
	"github.com/diewo77/invoice-hub/internal/services"
	"github.com/diewo77/invoice-hub/pdfgen"
	"github.com/diewo77/invoice-hub/validation"
	"github.com/sirupsen/logrus"
)

type InvoiceHandler struct {
	svc *services.InvoiceService
	log logrus.FieldLogger
}

func NewInvoiceHandler(svc *services.InvoiceService, log logrus.FieldLogger) *InvoiceHandler {
	return &InvoiceHandler{svc: svc, log: log}
}

type invoiceSummary struct {
	ID            uint    `json:"id"`
	InvoiceNumber string  `json:"invoice_number"`
	InvoiceDate   string  `json:"invoice_date"`
	DueDate       string  `json:"due_date"`
	Status        string  `json:"status"`
	Subtotal      float64 `json:"subtotal"`
	TaxTotal      float64 `json:"tax_total"`
	GrandTotal    float64 `json:"grand_total"`
	ClientName    string  `json:"client_name"`
}

type invoiceLine struct {
	ID         uint    `json:"id"`
	ItemID     *uint   `json:"item_id"`
	ItemName   string  `json:"item_name"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	GSTPercent float64 `json:"gst_percent"`
}

type invoiceDetail struct {
	invoiceSummary
	ClientID       uint          `json:"client_id"`
	BillingAddress string        `json:"billing_address"`
	Notes          *string       `json:"notes"`
	ClientEmail    *string       `json:"client_email"`
	ClientAddress  *string       `json:"client_address"`
	Items          []invoiceLine `json:"items"`
}

func newInvoiceSummary(inv models.Invoice) invoiceSummary {
	s := invoiceSummary{
		ID:            inv.ID,
		InvoiceNumber: inv.Number(),
		InvoiceDate:   models.FormatDate(inv.InvoiceDate),
		DueDate:       models.FormatDate(inv.DueDate),
		Status:        inv.Status,
		Subtotal:      num(inv.Subtotal),
		TaxTotal:      num(inv.TaxTotal),
		GrandTotal:    num(inv.GrandTotal),
	}
	if inv.Client != nil {
		s.ClientName = inv.Client.Name
	}
	return s
}

func newInvoiceDetail(inv models.Invoice) invoiceDetail {
	d := invoiceDetail{
		invoiceSummary: newInvoiceSummary(inv),
		ClientID:       inv.ClientID,
		BillingAddress: inv.BillingAddress,
		Notes:          inv.Notes,
		Items:          make([]invoiceLine, 0, len(inv.Items)),
	}
	if inv.Client != nil {
		d.ClientEmail = inv.Client.Email
		d.ClientAddress = inv.Client.Address
	}
	for _, li := range inv.Items {
		d.Items = append(d.Items, invoiceLine{
			ID:         li.ID,
			ItemID:     li.ItemID,
			ItemName:   li.ItemName,
			Quantity:   num(li.Quantity),
			UnitPrice:  num(li.UnitPrice),
			GSTPercent: num(li.GSTPercent),
		})
	}
	return d
}

// List: GET /api/invoices
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.svc.List(r.Context())
	if err != nil {
		fail(w, r, h.log, err)
		return
	}
	out := make([]invoiceSummary, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, newInvoiceSummary(inv))
	}
	httpx.Success(w, http.StatusOK, "", httpx.Envelope{"invoices": out})
}

// Create: POST /api/invoices
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(w, r)
	if err != nil {
		fail(w, r, h.log, err)
		return
	}
	in, err := validation.InvoicePayload(body)
	if err != nil {
		fail(w, r, h.log, err)
		return
	}
	inv, err := h.svc.Create(r.Context(), in)
	if err != nil {
		fail(w, r, h.log, err)
		return
	}
	metrics.RecordInvoiceCreated(num(inv.GrandTotal))
	middleware.Entry(h.log, r).WithFields(logrus.Fields{
		"invoice_id":     inv.ID,
		"invoice_number": inv.Number(),
		"lines":          len(inv.Items),
	}).Info("invoice created")
	httpx.Success(w, http.StatusCreated, middleware.T(r, "invoice.created"), httpx.Envelope{
		"invoice_id":     inv.ID,
		"invoice_number": inv.Number(),
		"subtotal":       num(inv.Subtotal),
		"tax_total":      num(inv.TaxTotal),
		"grand_total":    num(inv.GrandTotal),
	})
}

// Get: GET /api/invoices/{id}
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.load(w, r)
	if !ok {
		return
	}
	httpx.Success(w, http.StatusOK, "", httpx.Envelope{"invoice": newInvoiceDetail(*inv)})
}

// Delete: DELETE /api/invoices/{id}. Deleting a missing invoice succeeds.
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Fail(w, http.StatusNotFound, middleware.T(r, "invoice.not_found"), nil)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		fail(w, r, h.log, err)
		return
	}
	metrics.RecordInvoiceDeleted()
	middleware.Entry(h.log, r).WithField("invoice_id", id).Info("invoice deleted")
	httpx.Success(w, http.StatusOK, middleware.T(r, "invoice.deleted"), nil)
}

// PDF: GET /api/invoices/{id}/pdf
func (h *InvoiceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.load(w, r)
	if !ok {
		return
	}
	data := pdfgen.InvoiceData{
		InvoiceNumber: inv.Number(),
		Date:          models.FormatDate(inv.InvoiceDate),
		DueDate:       models.FormatDate(inv.DueDate),
		Subtotal:      inv.Subtotal.StringFixed(2),
		TaxTotal:      inv.TaxTotal.StringFixed(2),
		GrandTotal:    inv.GrandTotal.StringFixed(2),
	}
	if inv.Notes != nil {
		data.Notes = *inv.Notes
	}
	if inv.Client != nil {
		data.ClientName = inv.Client.Name
		if inv.Client.Email != nil {
			data.ClientEmail = *inv.Client.Email
		}
		if inv.Client.Address != nil {
			data.ClientAddress = *inv.Client.Address
		}
	}
	if inv.BillingAddress != "" {
		data.ClientAddress = inv.BillingAddress
	}
	for _, li := range inv.Items {
		data.Items = append(data.Items, pdfgen.InvoiceItem{
			Description: li.ItemName,
			Quantity:    li.Quantity.String(),
			UnitPrice:   li.UnitPrice.String(),
			GSTPercent:  li.GSTPercent.String(),
			Total:       li.Total().StringFixed(2),
		})
	}

	out, err := pdfgen.InvoicePDF(data)
	if err != nil {
		middleware.Entry(h.log, r).WithError(err).WithField("invoice_id", inv.ID).Error("pdf generation failed")
		httpx.Fail(w, http.StatusInternalServerError, middleware.T(r, "server_error"), nil)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+inv.Number()+`.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// Stats: GET /api/stats
func (h *InvoiceHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		fail(w, r, h.log, err)
		return
	}
	httpx.Success(w, http.StatusOK, "", httpx.Envelope{"stats": map[string]any{
		"total_invoices": st.TotalInvoices,
		"total_revenue":  num(st.TotalRevenue),
		"pending_amount": num(st.PendingAmount),
	}})
}

func (h *InvoiceHandler) load(w http.ResponseWriter, r *http.Request) (*models.Invoice, bool) {
	id, ok := pathID(r)
	if !ok {
		httpx.Fail(w, http.StatusNotFound, middleware.T(r, "invoice.not_found"), nil)
		return nil, false
	}
	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		fail(w, r, h.log, err)
		return nil, false
	}
	return inv, true
}
