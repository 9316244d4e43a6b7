package models

import (
	"time"

	"gorm.io/gorm"
)

// Client is a customer that invoices are addressed to.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	// NameKey backs the case-insensitive uniqueness of Name.
	NameKey string  `gorm:"size:255;not null;uniqueIndex" json:"-"`
	Email   *string `gorm:"size:255" json:"email"`
	Address *string `gorm:"type:text" json:"address"`
}

func (c *Client) BeforeSave(tx *gorm.DB) error {
	c.NameKey = NameKey(c.Name)
	return nil
}
