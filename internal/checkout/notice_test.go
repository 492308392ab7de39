package checkout_test

import (
	"errors"
	"testing"

	"github.com/nikolayk812/checkout-demo/internal/checkout"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/promo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNoticeFor(t *testing.T) {
	reg := promo.Default()

	tests := []struct {
		name string
		err  error
		want checkout.Notice
	}{
		{
			name: "validation error: ok",
			err:  &checkout.ValidationError{Field: "phone", Message: "Please fill in Phone Number"},
			want: checkout.Notice{Level: checkout.LevelError, Message: "Please fill in Phone Number"},
		},
		{
			name: "conflicting promo is a warning: ok",
			err:  &promo.Error{Kind: promo.KindConflictingCode},
			want: checkout.Notice{Level: checkout.LevelWarning, Message: "A promo code is already applied. Remove it first to apply a new one."},
		},
		{
			name: "unknown promo suggests codes: ok",
			err:  &promo.Error{Kind: promo.KindUnknownCode, Code: "X"},
			want: checkout.Notice{Level: checkout.LevelError, Message: "Invalid promo code. Try WELCOME10 or PARAM10"},
		},
		{
			name: "nothing to remove is info: ok",
			err:  promo.ErrNoActiveCode,
			want: checkout.Notice{Level: checkout.LevelInfo, Message: "No promo code is currently applied"},
		},
		{
			name: "empty cart: ok",
			err:  checkout.ErrEmptyCart,
			want: checkout.Notice{Level: checkout.LevelWarning, Message: "Your cart is empty. Add some items before checkout."},
		},
		{
			name: "unmapped error falls back to generic text: ok",
			err:  errors.New("pq: connection refused"),
			want: checkout.Notice{Level: checkout.LevelError, Message: "Something went wrong. Please try again."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkout.NoticeFor(tt.err, reg))
		})
	}
}

func TestPromoNotices(t *testing.T) {
	p := domain.PromoCode{Code: "WELCOME10", Fraction: decimal.RequireFromString("0.1")}

	assert.Equal(t, "Promo code WELCOME10 applied! You saved 10% on your order!", checkout.PromoAppliedNotice(p).Message)
	assert.Equal(t, "Promo code WELCOME10 removed successfully", checkout.PromoRemovedNotice(p).Message)
}
