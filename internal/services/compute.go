package services

import (
	"math"

	"github.com/diewo77/invoice-hub/validation"
	"github.com/shopspring/decimal"
)

// Line is a normalized invoice line with its computed amounts.
type Line struct {
	ItemID     *uint
	Name       string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	GSTPercent decimal.Decimal
	Amount     decimal.Decimal
	Tax        decimal.Decimal
}

// Computation is the outcome of ComputeInvoice.
type Computation struct {
	ClientID   uint
	Lines      []Line
	Subtotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeInvoice validates raw lines in order and totals them. The first
// invalid line rejects the whole invoice. Amounts are exact and unrounded.
func ComputeInvoice(clientID uint, rawLines []any) (Computation, error) {
	if len(rawLines) == 0 {
		v := validation.Violations{}
		v.Add("items", validation.CodeRequired)
		return Computation{}, validation.Fail(validation.MsgItemsRequired, v)
	}

	c := Computation{
		ClientID: clientID,
		Lines:    make([]Line, 0, len(rawLines)),
		Subtotal: decimal.Zero,
		TaxTotal: decimal.Zero,
	}
	for i, raw := range rawLines {
		in, err := validation.LinePayload(i, raw)
		if err != nil {
			return Computation{}, err
		}
		amount := in.Quantity.Mul(in.UnitPrice)
		tax := amount.Mul(in.GSTPercent).Shift(-2)
		c.Subtotal = c.Subtotal.Add(amount)
		c.TaxTotal = c.TaxTotal.Add(tax)
		c.Lines = append(c.Lines, Line{
			ItemID:     in.ItemID,
			Name:       in.Name,
			Quantity:   in.Quantity,
			UnitPrice:  in.UnitPrice,
			GSTPercent: in.GSTPercent,
			Amount:     amount,
			Tax:        tax,
		})
	}
	c.GrandTotal = c.Subtotal.Add(c.TaxTotal)
	if math.IsInf(c.GrandTotal.InexactFloat64(), 0) {
		v := validation.Violations{}
		v.Add("items", validation.CodeOutOfRange)
		return Computation{}, validation.Fail(validation.MsgLineInvalidNumber, v)
	}
	return c, nil
}
