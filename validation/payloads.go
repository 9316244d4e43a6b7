package validation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Message keys returned in Error.Code. Handlers translate them through i18n.
const (
	MsgClientNameTooShort = "client.name_too_short"
	MsgClientInvalidID    = "client.invalid_id"
	MsgItemInvalidNumber  = "item.invalid_number"
	MsgItemNameTooShort   = "item.name_too_short"
	MsgItemNegativePrice  = "item.negative_price"
	MsgGSTOutOfRange      = "gst.out_of_range"
	MsgItemsRequired      = "invoice.items_required"
	MsgInvalidDates       = "invoice.invalid_dates"
	MsgLineNameRequired   = "line.name_required"
	MsgLineInvalidNumber  = "line.invalid_number"
	MsgLineOutOfRange     = "line.out_of_range"
	MsgLineInvalidItemRef = "line.invalid_item_ref"
)

var (
	hundred = decimal.NewFromInt(100)
	zero    = decimal.Zero
)

// Client is a validated client payload.
type Client struct {
	Name    string
	Email   *string
	Address *string
}

// ClientPayload validates a decoded POST /api/clients body.
func ClientPayload(body map[string]any) (Client, error) {
	c := Client{
		Name:    Text(body["name"]),
		Email:   OptionalText(body["email"]),
		Address: OptionalText(body["address"]),
	}
	v := Violations{}
	MinLength("name", c.Name, 2, v)
	if !v.Empty() {
		return Client{}, Fail(MsgClientNameTooShort, v)
	}
	return c, nil
}

// Item is a validated catalog item payload.
type Item struct {
	Name       string
	UnitPrice  decimal.Decimal
	GSTPercent decimal.Decimal
}

// ItemPayload validates a decoded POST /api/items body. Numbers are parsed
// before any other rule so an unreadable price is never reported as a range
// failure.
func ItemPayload(body map[string]any) (Item, error) {
	v := Violations{}
	price, okPrice := Decimal("unit_price", body["unit_price"], v)
	gst, okGST := Decimal("gst_percent", body["gst_percent"], v)
	if !okPrice || !okGST {
		return Item{}, Fail(MsgItemInvalidNumber, v)
	}

	it := Item{Name: Text(body["name"]), UnitPrice: price, GSTPercent: gst}
	MinLength("name", it.Name, 2, v)
	if !v.Empty() {
		return Item{}, Fail(MsgItemNameTooShort, v)
	}
	NonNegative("unit_price", price, v)
	if !v.Empty() {
		return Item{}, Fail(MsgItemNegativePrice, v)
	}
	Between("gst_percent", gst, zero, hundred, v)
	if !v.Empty() {
		return Item{}, Fail(MsgGSTOutOfRange, v)
	}
	return it, nil
}

// Line is one validated invoice line.
type Line struct {
	ItemID     *uint
	Name       string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	GSTPercent decimal.Decimal
}

// LinePayload validates the raw line at position index of an invoice body.
func LinePayload(index int, raw any) (Line, error) {
	obj, _ := raw.(map[string]any)
	field := func(name string) string { return fmt.Sprintf("items[%d].%s", index, name) }
	v := Violations{}

	l := Line{Name: Text(obj["name"])}
	MinLength(field("name"), l.Name, 1, v)
	if !v.Empty() {
		return Line{}, Fail(MsgLineNameRequired, v)
	}

	var okQ, okP, okG bool
	l.Quantity, okQ = Decimal(field("quantity"), obj["quantity"], v)
	l.UnitPrice, okP = Decimal(field("unit_price"), obj["unit_price"], v)
	l.GSTPercent, okG = Decimal(field("gst_percent"), obj["gst_percent"], v)
	if !okQ || !okP || !okG {
		return Line{}, Fail(MsgLineInvalidNumber, v)
	}

	Positive(field("quantity"), l.Quantity, v)
	NonNegative(field("unit_price"), l.UnitPrice, v)
	if !v.Empty() {
		return Line{}, Fail(MsgLineOutOfRange, v)
	}
	Between(field("gst_percent"), l.GSTPercent, zero, hundred, v)
	if !v.Empty() {
		return Line{}, Fail(MsgGSTOutOfRange, v)
	}

	if ref, present := obj["item_id"]; present && ref != nil && ref != "" {
		id, ok := Integer(field("item_id"), ref, v)
		if !ok || id <= 0 {
			v.Add(field("item_id"), CodeInvalidInteger)
			return Line{}, Fail(MsgLineInvalidItemRef, v)
		}
		u := uint(id)
		l.ItemID = &u
	}
	return l, nil
}

// Invoice is a validated invoice header. Lines stay raw: they are validated one
// by one while totals are computed.
type Invoice struct {
	ClientID       uint
	InvoiceDate    time.Time
	DueDate        time.Time
	Status         string
	BillingAddress string
	Notes          *string
	Lines          []any
}

// DefaultStatus is applied when the payload carries no status.
const DefaultStatus = "Draft"

// InvoicePayload validates the header of a decoded POST /api/invoices body.
func InvoicePayload(body map[string]any) (Invoice, error) {
	v := Violations{}
	id, ok := Integer("client_id", body["client_id"], v)
	if !ok || id <= 0 {
		v.Add("client_id", CodeInvalidInteger)
		return Invoice{}, Fail(MsgClientInvalidID, v)
	}

	lines, _ := body["items"].([]any)
	if len(lines) == 0 {
		v.Add("items", CodeRequired)
		return Invoice{}, Fail(MsgItemsRequired, v)
	}

	invDate, ok1 := Date("invoice_date", body["invoice_date"], v)
	dueDate, ok2 := Date("due_date", body["due_date"], v)
	if !ok1 || !ok2 {
		return Invoice{}, Fail(MsgInvalidDates, v)
	}

	status := Text(body["status"])
	if status == "" {
		status = DefaultStatus
	}
	return Invoice{
		ClientID:       uint(id),
		InvoiceDate:    invDate,
		DueDate:        dueDate,
		Status:         status,
		BillingAddress: Text(body["billing_address"]),
		Notes:          OptionalText(body["notes"]),
		Lines:          lines,
	}, nil
}
