package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Well-known statuses. Status is free text; these are the values the front
// end offers.
const (
	StatusDraft   = "Draft"
	StatusPending = "Pending"
	StatusPaid    = "Paid"
)

// Invoice is a billing document. Totals are derived from its items when it is
// created and stored as computed.
type Invoice struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`

	// InvoiceNumber is NULL until the row id is known, then INV-NNNNN.
	InvoiceNumber *string `gorm:"size:32;uniqueIndex" json:"invoice_number"`

	ClientID uint    `gorm:"index;not null" json:"client_id"`
	Client   *Client `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT" json:"-"`

	InvoiceDate datatypes.Date `gorm:"not null" json:"invoice_date"`
	DueDate     datatypes.Date `gorm:"not null" json:"due_date"`

	Status         string  `gorm:"size:50;not null" json:"status"`
	BillingAddress string  `gorm:"type:text;not null" json:"billing_address"`
	Notes          *string `gorm:"type:text" json:"notes"`

	Subtotal   decimal.Decimal `gorm:"type:numeric;not null" json:"subtotal"`
	TaxTotal   decimal.Decimal `gorm:"type:numeric;not null" json:"tax_total"`
	GrandTotal decimal.Decimal `gorm:"type:numeric;not null" json:"grand_total"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// Number returns the invoice number, or "" before it has been assigned.
func (i *Invoice) Number() string {
	if i.InvoiceNumber == nil {
		return ""
	}
	return *i.InvoiceNumber
}

// InvoiceItem is a line of an invoice.
type InvoiceItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	InvoiceID uint `gorm:"index;not null" json:"invoice_id"`

	// ItemID optionally points at the catalog item the line was picked from.
	// It is informational only and carries no foreign key.
	ItemID   *uint  `gorm:"index" json:"item_id"`
	ItemName string `gorm:"size:255;not null" json:"item_name"`

	Quantity   decimal.Decimal `gorm:"type:numeric;not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric;not null" json:"unit_price"`
	GSTPercent decimal.Decimal `gorm:"type:numeric;not null" json:"gst_percent"`
}

// Amount is quantity × unit price, before tax.
func (li *InvoiceItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// Tax is the GST due on the line.
func (li *InvoiceItem) Tax() decimal.Decimal {
	return li.Amount().Mul(li.GSTPercent).Shift(-2)
}

// Total is the line amount including GST.
func (li *InvoiceItem) Total() decimal.Decimal {
	return li.Amount().Add(li.Tax())
}

// Date converts a calendar date to the column type.
func Date(t time.Time) datatypes.Date {
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// FormatDate renders a date column as YYYY-MM-DD.
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format("2006-01-02")
}
