package order

import (
	"github.com/shopspring/decimal"

	"github.com/andreasstove999/ecommerce-system/ordertool/internal/config"
)

const places = 2

// Calculator applies a pricing policy to line items.
//
// Amounts are rounded half away from zero to two places. Subtotal and
// discount are rounded before they feed the next step, so the net amount is
// exact and total == net + tax always holds.
type Calculator struct {
	pricing config.Pricing
}

func NewCalculator(p config.Pricing) *Calculator {
	return &Calculator{pricing: p}
}

// Subtotal sums price * quantity over items and rounds the result.
func (c *Calculator) Subtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Total())
	}
	return sum.Round(places)
}

// Discount is zero unless subtotal is strictly above the threshold.
func (c *Calculator) Discount(subtotal decimal.Decimal) decimal.Decimal {
	if !subtotal.GreaterThan(c.pricing.DiscountThreshold) {
		return decimal.Zero
	}
	return subtotal.Mul(c.pricing.DiscountRate).Round(places)
}

func (c *Calculator) Calculate(items []LineItem) Calculation {
	subtotal := c.Subtotal(items)
	discount := c.Discount(subtotal)
	net := subtotal.Sub(discount)
	tax := net.Mul(c.pricing.TaxRate).Round(places)

	return Calculation{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    net.Add(tax),
	}
}
