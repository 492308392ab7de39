package history_test

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
	"github.com/sirupsen/logrus"
)

var errBackend = errors.New("backend unavailable")

type fakeOrders struct {
	orders   []domain.Order
	items    map[string][]domain.OrderItem
	listErr  error
	itemsErr map[string]error

	gotFilter port.OrderFilter
	listCalls int
}

func (f *fakeOrders) CreateOrder(context.Context, domain.Order) (domain.Order, error) {
	return domain.Order{}, fmt.Errorf("not used")
}

func (f *fakeOrders) AddOrderItems(context.Context, string, []domain.OrderItem) error {
	return fmt.Errorf("not used")
}

func (f *fakeOrders) ListOrders(_ context.Context, filter port.OrderFilter) ([]domain.Order, error) {
	f.listCalls++
	f.gotFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]domain.Order, len(f.orders))
	copy(result, f.orders)
	return result, nil
}

func (f *fakeOrders) GetOrderItems(_ context.Context, orderID string) ([]domain.OrderItem, error) {
	if err := f.itemsErr[orderID]; err != nil {
		return nil, err
	}
	return f.items[orderID], nil
}

type fakeAuth struct {
	user *domain.User
	err  error
}

func (f *fakeAuth) CurrentUser(context.Context) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeAuth) SignIn(context.Context, string, string) (domain.User, error) {
	return domain.User{}, fmt.Errorf("not used")
}

func (f *fakeAuth) SignUp(context.Context, string, string, string) (domain.User, error) {
	return domain.User{}, fmt.Errorf("not used")
}

func (f *fakeAuth) SignOut(context.Context) error {
	return nil
}

func (f *fakeAuth) ResetPassword(context.Context, string) error {
	return nil
}

func (f *fakeAuth) OAuthURL(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("not used")
}

type fakeLocal struct {
	guestID      string
	lastEmail    string
	confirmation *domain.Confirmation
	err          error
}

func (f *fakeLocal) GuestSessionID(context.Context) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.guestID == "" {
		return "", port.ErrNotFound
	}
	return f.guestID, nil
}

func (f *fakeLocal) SetGuestSessionID(_ context.Context, id string) error {
	f.guestID = id
	return nil
}

func (f *fakeLocal) LastOrderEmail(context.Context) (string, error) {
	if f.lastEmail == "" {
		return "", port.ErrNotFound
	}
	return f.lastEmail, nil
}

func (f *fakeLocal) SetLastOrderEmail(_ context.Context, email string) error {
	f.lastEmail = email
	return nil
}

func (f *fakeLocal) Confirmation(context.Context) (domain.Confirmation, error) {
	if f.confirmation == nil {
		return domain.Confirmation{}, port.ErrNotFound
	}
	return *f.confirmation, nil
}

func (f *fakeLocal) SaveConfirmation(_ context.Context, c domain.Confirmation) error {
	f.confirmation = &c
	return nil
}

type fakeFeed struct {
	numbers chan string
	err     error
}

func (f *fakeFeed) Subscribe(context.Context) (<-chan string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.numbers, nil
}

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
