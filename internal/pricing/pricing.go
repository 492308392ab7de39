// Package pricing turns cart contents and an optional discount into order totals.
package pricing

import (
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/shopspring/decimal"
)

// Rules holds the store-wide pricing constants.
type Rules struct {
	// FreeShippingOver is the subtotal that has to be exceeded for free shipping.
	FreeShippingOver decimal.Decimal
	FlatShipping     decimal.Decimal
	TaxRate          decimal.Decimal
}

func DefaultRules() Rules {
	return Rules{
		FreeShippingOver: decimal.NewFromInt(899),
		FlatShipping:     decimal.NewFromInt(99),
		TaxRate:          decimal.RequireFromString("0.06"),
	}
}

type Engine struct {
	rules Rules
}

func New(rules Rules) *Engine {
	return &Engine{rules: rules}
}

func (e *Engine) Rules() Rules {
	return e.rules
}

// Compute prices the items with the given discount fraction (0 when no promo is active).
// All amounts are whole currency units; rounding is half away from zero.
func (e *Engine) Compute(items []domain.CartItem, discount decimal.Decimal) domain.OrderTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		subtotal = subtotal.Add(LineTotal(item))
	}
	subtotal = round(subtotal)

	if !subtotal.IsPositive() {
		return zeroTotals()
	}

	shipping := e.rules.FlatShipping
	if subtotal.GreaterThan(e.rules.FreeShippingOver) {
		shipping = decimal.Zero
	}
	shipping = round(shipping)

	tax := round(subtotal.Mul(e.rules.TaxRate))
	off := round(subtotal.Mul(clampFraction(discount)))

	return domain.OrderTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Discount: off,
		Total:    subtotal.Add(shipping).Add(tax).Sub(off),
	}
}

// LineTotal is unit price times quantity, unrounded.
func LineTotal(item domain.CartItem) decimal.Decimal {
	return item.Price.Mul(item.Quantity).Amount
}

// round uses decimal.Round, which rounds half away from zero.
func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

func clampFraction(f decimal.Decimal) decimal.Decimal {
	if f.IsNegative() {
		return decimal.Zero
	}
	one := decimal.NewFromInt(1)
	if f.GreaterThan(one) {
		return one
	}
	return f
}

func zeroTotals() domain.OrderTotals {
	return domain.OrderTotals{
		Subtotal: decimal.Zero,
		Shipping: decimal.Zero,
		Tax:      decimal.Zero,
		Discount: decimal.Zero,
		Total:    decimal.Zero,
	}
}
