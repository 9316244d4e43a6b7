package models

import (
	"fmt"
	"strings"
)

// All lists every model in migration order.
func All() []any {
	return []any{&Client{}, &Item{}, &Invoice{}, &InvoiceItem{}}
}

// NameKey normalizes a name for case-insensitive uniqueness.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// InvoiceNumber derives the public invoice number from its id.
// Format: INV-NNNNN (e.g., INV-00007); ids past five digits are not truncated.
func InvoiceNumber(id uint) string {
	return fmt.Sprintf("INV-%05d", id)
}
