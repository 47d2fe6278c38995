package order

import "github.com/shopspring/decimal"

// LineItem is one priced, quantified entry of an order.
type LineItem struct {
	Price    decimal.Decimal
	Quantity int64
}

type Order struct {
	CustomerID string
	Items      []LineItem
}

// Calculation holds monetary amounts rounded to two places.
type Calculation struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

type Validation struct {
	Valid   bool
	Message string
}

// Total is the unrounded price times quantity.
func (i LineItem) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}
