package cli

import (
	"github.com/shopspring/decimal"

	"github.com/andreasstove999/ecommerce-system/ordertool/internal/order"
)

// Amount encodes as a JSON number with exactly two decimals.
type Amount decimal.Decimal

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).StringFixed(2)), nil
}

type CalculateResponse struct {
	Success  bool   `json:"success"`
	Subtotal Amount `json:"subtotal"`
	Discount Amount `json:"discount"`
	Tax      Amount `json:"tax"`
	Total    Amount `json:"total"`
}

type ValidateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func toCalculateResponse(c order.Calculation) CalculateResponse {
	return CalculateResponse{
		Success:  true,
		Subtotal: Amount(c.Subtotal),
		Discount: Amount(c.Discount),
		Tax:      Amount(c.Tax),
		Total:    Amount(c.Total),
	}
}
