package pricing_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		items    []domain.CartItem
		discount decimal.Decimal
		want     domain.OrderTotals
	}{
		{
			name:  "single item above free shipping: ok",
			items: []domain.CartItem{item(2499, 1)},
			want:  totals(2499, 0, 150, 0, 2649),
		},
		{
			name:  "single item below free shipping: ok",
			items: []domain.CartItem{item(699, 1)},
			want:  totals(699, 99, 42, 0, 840),
		},
		{
			name:     "ten percent promo: ok",
			items:    []domain.CartItem{item(500, 2)},
			discount: decimal.RequireFromString("0.1"),
			want:     totals(1000, 0, 60, 100, 960),
		},
		{
			name:  "subtotal of exactly 899 pays shipping, free only strictly above threshold: ok",
			items: []domain.CartItem{item(899, 1)},
			want:  totals(899, 99, 54, 0, 1052),
		},
		{
			name:  "subtotal one above threshold ships free: ok",
			items: []domain.CartItem{item(450, 2)},
			want:  totals(900, 0, 54, 0, 954),
		},
		{
			name:  "tax half unit rounds away from zero: ok",
			items: []domain.CartItem{item(25, 1)},
			want:  totals(25, 99, 2, 0, 126),
		},
		{
			name:  "fractional prices round subtotal: ok",
			items: []domain.CartItem{itemAmount("10.25", 2)},
			want:  totals(21, 99, 1, 0, 121),
		},
		{
			name:     "discount above one is clamped: ok",
			items:    []domain.CartItem{item(1000, 1)},
			discount: decimal.NewFromInt(3),
			want:     totals(1000, 0, 60, 1000, 60),
		},
		{
			name:     "negative discount is ignored: ok",
			items:    []domain.CartItem{item(1000, 1)},
			discount: decimal.NewFromInt(-1),
			want:     totals(1000, 0, 60, 0, 1060),
		},
		{
			name:  "zero quantity lines are skipped: ok",
			items: []domain.CartItem{item(1000, 0), item(100, 1)},
			want:  totals(100, 99, 6, 0, 205),
		},
		{
			name: "empty cart: ok",
			want: totals(0, 0, 0, 0, 0),
		},
	}

	engine := pricing.New(pricing.DefaultRules())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Compute(tt.items, tt.discount)
			assertTotals(t, tt.want, got)
		})
	}
}

func TestCompute_Properties(t *testing.T) {
	engine := pricing.New(pricing.DefaultRules())
	taxRate := decimal.RequireFromString("0.06")

	for range 200 {
		items := randomItems()

		discount := decimal.Zero
		if gofakeit.Bool() {
			discount = decimal.RequireFromString("0.1")
		}

		first := engine.Compute(items, discount)
		second := engine.Compute(items, discount)
		assertTotals(t, first, second)

		assert.True(t, first.Tax.Equal(first.Subtotal.Mul(taxRate).Round(0)), "tax of %s", first.Subtotal)

		if first.Subtotal.GreaterThan(decimal.NewFromInt(899)) {
			assert.True(t, first.Shipping.IsZero())
		} else if first.Subtotal.IsPositive() {
			assert.True(t, first.Shipping.Equal(decimal.NewFromInt(99)))
		}

		assert.False(t, first.Total.IsNegative())

		withoutPromo := engine.Compute(items, decimal.Zero)
		assert.True(t, withoutPromo.Subtotal.Equal(first.Subtotal))
		assert.True(t, withoutPromo.Shipping.Equal(first.Shipping))
		assert.True(t, withoutPromo.Tax.Equal(first.Tax))
		assert.True(t, withoutPromo.Discount.IsZero())
	}
}

func TestLineTotal(t *testing.T) {
	got := pricing.LineTotal(itemAmount("19.99", 3))
	assert.Equal(t, "59.97", got.String())
}

func item(price int64, qty int) domain.CartItem {
	return domain.CartItem{
		ProductID: gofakeit.Int64(),
		Name:      gofakeit.ProductName(),
		Price:     domain.NewMoney(price, currency.INR),
		Quantity:  qty,
	}
}

func itemAmount(price string, qty int) domain.CartItem {
	i := item(0, qty)
	i.Price.Amount = decimal.RequireFromString(price)
	return i
}

func randomItems() []domain.CartItem {
	n := gofakeit.IntRange(1, 5)
	items := make([]domain.CartItem, 0, n)
	for range n {
		items = append(items, item(int64(gofakeit.IntRange(1, 3000)), gofakeit.IntRange(1, 4)))
	}
	return items
}

func totals(subtotal, shipping, tax, discount, total int64) domain.OrderTotals {
	return domain.OrderTotals{
		Subtotal: decimal.NewFromInt(subtotal),
		Shipping: decimal.NewFromInt(shipping),
		Tax:      decimal.NewFromInt(tax),
		Discount: decimal.NewFromInt(discount),
		Total:    decimal.NewFromInt(total),
	}
}

func assertTotals(t *testing.T, expected, actual domain.OrderTotals) {
	t.Helper()

	decimalComparer := cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})

	diff := cmp.Diff(expected, actual, decimalComparer)
	assert.Empty(t, diff)
}
