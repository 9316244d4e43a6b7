package db

import (
	"errors"

	"github.com/diewo77/invoice-hub/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

var demoClients = []models.Client{
	{Name: "Acme Corporation", Email: strPtr("billing@acme.example"), Address: strPtr("12 Industrial Estate, Pune")},
	{Name: "Globex Traders", Email: strPtr("accounts@globex.example"), Address: strPtr("88 Harbour Road, Mumbai")},
}

var demoItems = []models.Item{
	{Name: "Web Design", UnitPrice: decimal.NewFromInt(500), GSTPercent: decimal.NewFromInt(18)},
	{Name: "Hosting (1 year)", UnitPrice: decimal.NewFromInt(120), GSTPercent: decimal.NewFromInt(18)},
	{Name: "Consulting Hour", UnitPrice: decimal.NewFromInt(75), GSTPercent: decimal.NewFromInt(12)},
	{Name: "Printed Brochure", UnitPrice: decimal.RequireFromString("2.50"), GSTPercent: decimal.NewFromInt(5)},
}

// Seed inserts demo clients and catalog items that are not there yet.
func Seed(conn *gorm.DB) error {
	return conn.Transaction(func(tx *gorm.DB) error {
		for _, c := range demoClients {
			var existing models.Client
			err := tx.Where("name_key = ?", models.NameKey(c.Name)).First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := tx.Create(&c).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}
		}
		for _, it := range demoItems {
			var existing models.Item
			err := tx.Where("name_key = ?", models.NameKey(it.Name)).First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := tx.Create(&it).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}
		}
		return nil
	})
}
