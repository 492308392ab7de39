package checkout

import (
	"strings"

	"github.com/nikolayk812/checkout-demo/internal/domain"
)

// Review is the read-only summary shown on the last step.
type Review struct {
	Email    string
	Phone    string
	Billing  string
	Shipping string // empty when shipping to the billing address
	Payment  string
	Card     string // masked card number, card payments only
}

func BuildReview(info domain.CustomerInfo, p domain.Payment) Review {
	r := Review{
		Email:   info.Email,
		Phone:   info.Phone,
		Billing: info.Billing.OneLine(),
		Payment: PaymentSummary(p),
	}
	if p.Method == domain.PaymentMethodCard && p.Card != nil {
		r.Card = MaskCard(p.Card.Number)
	}
	if info.SeparateShipping() {
		r.Shipping = info.Shipping.OneLine()
	}
	return r
}

// PaymentSummary describes the payment without exposing a full card number.
func PaymentSummary(p domain.Payment) string {
	switch p.Method {
	case domain.PaymentMethodCard:
		if p.Card == nil {
			return "Card"
		}
		return "Card ending in " + lastFour(StripCardNumber(p.Card.Number))
	case domain.PaymentMethodUPI:
		return "UPI - " + p.UPIID
	case domain.PaymentMethodNetBanking:
		return "Net Banking - " + p.Bank
	case domain.PaymentMethodCOD:
		return "Cash on Delivery"
	default:
		return ""
	}
}

// MaskCard replaces every digit but the last four with '*'.
func MaskCard(number string) string {
	n := StripCardNumber(number)
	if len(n) <= 4 {
		return n
	}
	return strings.Repeat("*", len(n)-4) + lastFour(n)
}

func lastFour(n string) string {
	if len(n) <= 4 {
		return n
	}
	return n[len(n)-4:]
}
