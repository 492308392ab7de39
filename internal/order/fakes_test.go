package order_test

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
	"github.com/sirupsen/logrus"
)

var errBackend = errors.New("backend unavailable")

type fakeOrders struct {
	createErr error
	itemsErr  error

	created []domain.Order
	items   map[string][]domain.OrderItem
}

func (f *fakeOrders) CreateOrder(_ context.Context, o domain.Order) (domain.Order, error) {
	if f.createErr != nil {
		return domain.Order{}, f.createErr
	}
	o.ID = uuid.NewString()
	f.created = append(f.created, o)
	return o, nil
}

func (f *fakeOrders) AddOrderItems(_ context.Context, orderID string, items []domain.OrderItem) error {
	if f.itemsErr != nil {
		return f.itemsErr
	}
	if f.items == nil {
		f.items = map[string][]domain.OrderItem{}
	}
	f.items[orderID] = append(f.items[orderID], items...)
	return nil
}

func (f *fakeOrders) ListOrders(context.Context, port.OrderFilter) ([]domain.Order, error) {
	return nil, fmt.Errorf("not used")
}

func (f *fakeOrders) GetOrderItems(context.Context, string) ([]domain.OrderItem, error) {
	return nil, fmt.Errorf("not used")
}

type fakeProfiles struct {
	upsertErr error
	listErr   error

	profiles  map[string]domain.Profile
	addresses []domain.SavedAddress
}

func (f *fakeProfiles) GetProfile(_ context.Context, userID string) (domain.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return domain.Profile{}, port.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfiles) UpsertProfile(_ context.Context, p domain.Profile) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	if f.profiles == nil {
		f.profiles = map[string]domain.Profile{}
	}
	f.profiles[p.UserID] = p
	return nil
}

func (f *fakeProfiles) ListAddresses(_ context.Context, userID string) ([]domain.SavedAddress, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var result []domain.SavedAddress
	for _, a := range f.addresses {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeProfiles) AddAddress(_ context.Context, a domain.SavedAddress) (domain.SavedAddress, error) {
	a.ID = uuid.NewString()
	f.addresses = append(f.addresses, a)
	return a, nil
}

type fakeCarts struct {
	stored   map[string][]domain.CartItem
	getErr   error
	clearErr error
	cleared  []string
}

func (f *fakeCarts) GetCart(_ context.Context, ownerID string) (domain.Cart, error) {
	if f.getErr != nil {
		return domain.Cart{}, f.getErr
	}
	return domain.Cart{OwnerID: ownerID, Items: f.stored[ownerID]}, nil
}

func (f *fakeCarts) AddItem(context.Context, string, domain.CartItem) error {
	return nil
}

func (f *fakeCarts) UpdateQuantity(context.Context, string, int64, int) (bool, error) {
	return false, nil
}

func (f *fakeCarts) DeleteItem(context.Context, string, int64) (bool, error) {
	return false, nil
}

func (f *fakeCarts) ClearCart(_ context.Context, ownerID string) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.cleared = append(f.cleared, ownerID)
	return nil
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
	saveErr      error
}

func (f *fakeLocal) GuestSessionID(context.Context) (string, error) {
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
	if f.saveErr != nil {
		return f.saveErr
	}
	f.confirmation = &c
	return nil
}

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
