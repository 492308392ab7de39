// Package promo holds the fixed set of promo codes and the single-active-code rules.
package promo

import (
	"slices"
	"strings"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/shopspring/decimal"
)

type Registry struct {
	codes map[string]domain.PromoCode
	order []string
}

// NewRegistry builds a registry from the given codes; codes are normalized on the way in.
func NewRegistry(codes ...domain.PromoCode) *Registry {
	r := &Registry{codes: make(map[string]domain.PromoCode, len(codes))}
	for _, c := range codes {
		c.Code = Normalize(c.Code)
		if _, ok := r.codes[c.Code]; !ok {
			r.order = append(r.order, c.Code)
		}
		r.codes[c.Code] = c
	}
	return r
}

// Default is the storefront's code list.
func Default() *Registry {
	tenPercent := decimal.RequireFromString("0.1")
	return NewRegistry(
		domain.PromoCode{Code: "WELCOME10", Fraction: tenPercent, Description: "Welcome discount - 10% off"},
		domain.PromoCode{Code: "PARAM10", Fraction: tenPercent, Description: "PARAM10 special - 10% off"},
	)
}

func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (r *Registry) Lookup(code string) (domain.PromoCode, error) {
	normalized := Normalize(code)
	if normalized == "" {
		return domain.PromoCode{}, &Error{Kind: KindEmptyCode}
	}

	promo, ok := r.codes[normalized]
	if !ok {
		return domain.PromoCode{}, &Error{Kind: KindUnknownCode, Code: normalized}
	}

	return promo, nil
}

// Codes lists the registered codes in the order they were registered.
func (r *Registry) Codes() []string {
	return slices.Clone(r.order)
}

// Apply validates raw against the currently active code and the registry.
// On success it returns the code that becomes active; active is never modified.
func Apply(reg *Registry, active *domain.PromoCode, raw string) (domain.PromoCode, error) {
	normalized := Normalize(raw)
	if normalized == "" {
		return domain.PromoCode{}, &Error{Kind: KindEmptyCode}
	}

	if active != nil {
		if active.Code == normalized {
			return domain.PromoCode{}, &Error{Kind: KindAlreadyApplied, Code: normalized}
		}
		return domain.PromoCode{}, &Error{Kind: KindConflictingCode, Code: active.Code}
	}

	return reg.Lookup(normalized)
}

// Remove checks that a code is active and returns it.
func Remove(active *domain.PromoCode) (domain.PromoCode, error) {
	if active == nil {
		return domain.PromoCode{}, &Error{Kind: KindNoActiveCode}
	}
	return *active, nil
}
