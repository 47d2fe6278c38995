package config

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
)

type Config struct {
	Pricing  Pricing
	LogLevel slog.Level
}

// Pricing holds the bulk discount and tax policy applied by the calculator.
type Pricing struct {
	TaxRate decimal.Decimal

	// Discount applies only when the subtotal is strictly greater than the threshold.
	DiscountThreshold decimal.Decimal
	DiscountRate      decimal.Decimal
}

func Default() Config {
	return Config{
		Pricing:  DefaultPricing(),
		LogLevel: slog.LevelWarn,
	}
}

func DefaultPricing() Pricing {
	return Pricing{
		TaxRate:           decimal.RequireFromString("0.08"),
		DiscountThreshold: decimal.RequireFromString("100.00"),
		DiscountRate:      decimal.RequireFromString("0.10"),
	}
}

func (p Pricing) Validate() error {
	one := decimal.NewFromInt(1)

	if p.TaxRate.IsNegative() || p.TaxRate.GreaterThan(one) {
		return fmt.Errorf("tax rate must be between 0 and 1, got %s", p.TaxRate)
	}
	if p.DiscountRate.IsNegative() || p.DiscountRate.GreaterThan(one) {
		return fmt.Errorf("discount rate must be between 0 and 1, got %s", p.DiscountRate)
	}
	if p.DiscountThreshold.IsNegative() {
		return fmt.Errorf("discount threshold must be non-negative, got %s", p.DiscountThreshold)
	}
	return nil
}
