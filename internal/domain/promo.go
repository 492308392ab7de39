package domain

import "github.com/shopspring/decimal"

// PromoCode is a normalized (upper-case) code with the share of the subtotal it takes off.
type PromoCode struct {
	Code        string
	Fraction    decimal.Decimal
	Description string
}
