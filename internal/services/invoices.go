package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/diewo77/invoice-hub/internal/models"
	"github.com/diewo77/invoice-hub/validation"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceService struct {
	db *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{db: db}
}

// Create computes the invoice from its validated header and raw lines, then
// persists it in a single transaction: client check, invoice insert, number
// assignment, line inserts. Nothing is written when the lines or the client
// are invalid.
func (s *InvoiceService) Create(ctx context.Context, in validation.Invoice) (*models.Invoice, error) {
	comp, err := ComputeInvoice(in.ClientID, in.Lines)
	if err != nil {
		return nil, err
	}

	inv := models.Invoice{
		ClientID:       comp.ClientID,
		InvoiceDate:    models.Date(in.InvoiceDate),
		DueDate:        models.Date(in.DueDate),
		Status:         in.Status,
		BillingAddress: in.BillingAddress,
		Notes:          in.Notes,
		Subtotal:       comp.Subtotal,
		TaxTotal:       comp.TaxTotal,
		GrandTotal:     comp.GrandTotal,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Client{}).Where("id = ?", comp.ClientID).Count(&n).Error; err != nil {
			return fmt.Errorf("check client: %w", err)
		}
		if n == 0 {
			return ErrClientNotFound
		}

		if err := tx.Create(&inv).Error; err != nil {
			return fmt.Errorf("insert invoice: %w", err)
		}
		number := models.InvoiceNumber(inv.ID)
		if err := tx.Model(&inv).Update("invoice_number", number).Error; err != nil {
			return fmt.Errorf("assign invoice number: %w", err)
		}
		inv.InvoiceNumber = &number

		items := make([]models.InvoiceItem, len(comp.Lines))
		for i, l := range comp.Lines {
			items[i] = models.InvoiceItem{
				InvoiceID:  inv.ID,
				ItemID:     l.ItemID,
				ItemName:   l.Name,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				GSTPercent: l.GSTPercent,
			}
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("insert invoice items: %w", err)
		}
		inv.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// List returns all invoices, newest first, with their client preloaded.
func (s *InvoiceService) List(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.db.WithContext(ctx).
		Preload("Client").
		Order("id DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

// Get loads one invoice with its client and line items.
func (s *InvoiceService) Get(ctx context.Context, id uint) (*models.Invoice, error) {
	var inv models.Invoice
	err := s.db.WithContext(ctx).
		Preload("Client").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&inv, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get invoice %d: %w", id, err)
	}
	return &inv, nil
}

// Delete removes an invoice and its line items. Deleting a missing invoice is
// not an error.
func (s *InvoiceService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&models.InvoiceItem{}).Error; err != nil {
			return fmt.Errorf("delete invoice items: %w", err)
		}
		if err := tx.Delete(&models.Invoice{}, id).Error; err != nil {
			return fmt.Errorf("delete invoice: %w", err)
		}
		return nil
	})
}

// Stats summarizes all invoices for the dashboard.
type Stats struct {
	TotalInvoices int64
	TotalRevenue  decimal.Decimal
	PendingAmount decimal.Decimal
}

// Stats computes invoice count, revenue (sum of grand totals) and the amount
// still pending. Sums are done in decimal rather than in SQL.
func (s *InvoiceService) Stats(ctx context.Context) (Stats, error) {
	db := s.db.WithContext(ctx)
	var st Stats
	if err := db.Model(&models.Invoice{}).Count(&st.TotalInvoices).Error; err != nil {
		return Stats{}, fmt.Errorf("count invoices: %w", err)
	}

	var all, pending []decimal.Decimal
	if err := db.Model(&models.Invoice{}).Pluck("grand_total", &all).Error; err != nil {
		return Stats{}, fmt.Errorf("sum revenue: %w", err)
	}
	if err := db.Model(&models.Invoice{}).Where("status = ?", models.StatusPending).Pluck("grand_total", &pending).Error; err != nil {
		return Stats{}, fmt.Errorf("sum pending: %w", err)
	}
	st.TotalRevenue = decimal.Sum(decimal.Zero, all...)
	st.PendingAmount = decimal.Sum(decimal.Zero, pending...)
	return st, nil
}
