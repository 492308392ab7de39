package checkout_test

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"golang.org/x/text/currency"
)

var now = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

func validAddress() domain.Address {
	return domain.Address{
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Line1:     gofakeit.Street(),
		City:      gofakeit.City(),
		State:     gofakeit.State(),
		Postal:    gofakeit.Zip(),
	}
}

func validCustomer() domain.CustomerInfo {
	return domain.CustomerInfo{
		Email:   gofakeit.Email(),
		Phone:   "98765 43210",
		Billing: validAddress(),
	}
}

func validCard() domain.Payment {
	return domain.Payment{
		Method: domain.PaymentMethodCard,
		Card: &domain.CardDetails{
			Number: "4111 1111 1111 1234",
			Expiry: "12/30",
			CVV:    "123",
			Name:   gofakeit.Name(),
		},
	}
}

func cartOf(prices ...int64) domain.Cart {
	cart := domain.Cart{OwnerID: gofakeit.UUID()}
	for _, p := range prices {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID: gofakeit.Int64(),
			Name:      gofakeit.ProductName(),
			Price:     domain.NewMoney(p, currency.INR),
			Quantity:  1,
		})
	}
	return cart
}
