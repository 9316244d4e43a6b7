package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Item is a catalog entry. Invoices copy its price at creation time and never
// read it again.
type Item struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time       `json:"-"`
	Name       string          `gorm:"size:255;not null" json:"name"`
	NameKey    string          `gorm:"size:255;not null;uniqueIndex" json:"-"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric;not null" json:"unit_price"`
	GSTPercent decimal.Decimal `gorm:"type:numeric;not null" json:"gst_percent"`
}

func (i *Item) BeforeSave(tx *gorm.DB) error {
	i.NameKey = NameKey(i.Name)
	return nil
}

// PriceWithGST returns the unit price including GST.
func (i *Item) PriceWithGST() decimal.Decimal {
	return i.UnitPrice.Add(i.UnitPrice.Mul(i.GSTPercent).Shift(-2))
}
