package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/checkout-demo/internal/checkout"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
	"github.com/nikolayk812/checkout-demo/internal/pricing"
	"github.com/nikolayk812/checkout-demo/internal/promo"
	"github.com/sirupsen/logrus"
)

// ErrMissingCustomer is returned when an order is submitted without customer info.
var ErrMissingCustomer = errors.New("customer info is missing")

const defaultCountry = "India"

type Request struct {
	Cart     domain.Cart
	Customer *domain.CustomerInfo
	Payment  domain.Payment
	Totals   domain.OrderTotals
}

type Submitter struct {
	orders   port.OrderRepository
	profiles port.ProfileRepository
	carts    port.CartRepository
	auth     port.Authenticator
	local    port.LocalStore
	numbers  *NumberGenerator
	log      logrus.FieldLogger
	now      func() time.Time
}

type Deps struct {
	Orders   port.OrderRepository
	Profiles port.ProfileRepository
	Carts    port.CartRepository
	Auth     port.Authenticator
	Local    port.LocalStore
}

type Option func(*Submitter)

func WithNumberGenerator(g *NumberGenerator) Option {
	return func(s *Submitter) {
		s.numbers = g
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Submitter) {
		s.now = now
	}
}

func NewSubmitter(deps Deps, log logrus.FieldLogger, opts ...Option) (*Submitter, error) {
	if deps.Orders == nil || deps.Profiles == nil || deps.Carts == nil || deps.Auth == nil || deps.Local == nil {
		return nil, fmt.Errorf("dependencies are incomplete")
	}

	s := &Submitter{
		orders:   deps.Orders,
		profiles: deps.Profiles,
		carts:    deps.Carts,
		auth:     deps.Auth,
		local:    deps.Local,
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.numbers == nil {
		s.numbers = NewNumberGenerator(s.now, nil)
	}

	return s, nil
}

// Submit places the order. Only an empty cart or missing customer info fails it; backend
// failures are logged and reflected in the returned order's Sync state. Every call makes
// a new order number.
func (s *Submitter) Submit(ctx context.Context, req Request) (domain.Order, error) {
	if req.Cart.IsEmpty() {
		return domain.Order{}, checkout.ErrEmptyCart
	}
	if req.Customer == nil {
		return domain.Order{}, ErrMissingCustomer
	}

	now := s.now().UTC()
	number := s.numbers.Next()
	log := s.log.WithField("order_number", number)

	method := req.Payment.Method
	if method == domain.PaymentMethodNone {
		method = domain.PaymentMethodCOD
	}

	order := domain.Order{
		Number:        number,
		Status:        domain.OrderStatusConfirmed,
		PaymentStatus: domain.PaymentStatusPaid,
		PaymentMethod: method,
		Customer:      *req.Customer,
		Items:         orderItems(req.Cart.Items, now),
		Totals:        req.Totals,
		CreatedAt:     now,
		Sync:          domain.SyncLocal,
	}

	user, sessionID := s.identity(ctx, log)
	if user != nil {
		order.UserID = user.ID
	} else {
		order.SessionID = sessionID
	}

	s.persist(ctx, log, &order)

	if user != nil {
		s.saveCustomer(ctx, log, *user, *req.Customer)
	}

	s.finish(ctx, log, req, order)

	return order, nil
}

// OpenSession starts checkout over the shopper's stored cart. The cart belongs to the
// signed-in user, or to the device's guest session.
func (s *Submitter) OpenSession(ctx context.Context, engine *pricing.Engine, registry *promo.Registry, opts ...checkout.Option) (*checkout.Session, error) {
	user, sessionID := s.identity(ctx, s.log)
	owner := sessionID
	if user != nil {
		owner = user.ID
	}

	cart, err := s.carts.GetCart(ctx, owner)
	if err != nil {
		return nil, &port.CollaboratorError{Op: "carts.GetCart", Err: err}
	}
	cart.OwnerID = owner

	return checkout.NewSession(cart, engine, registry, opts...), nil
}

// SubmitSession places the order a session has reviewed. The session is reset whether or
// not the remote saves succeed.
func (s *Submitter) SubmitSession(ctx context.Context, session *checkout.Session) (domain.Order, error) {
	draft, err := session.Complete()
	if err != nil {
		return domain.Order{}, err
	}

	return s.Submit(ctx, Request{
		Cart:     draft.Cart,
		Customer: &draft.Customer,
		Payment:  draft.Payment,
		Totals:   draft.Totals,
	})
}

// identity returns the signed-in user, or nil and the device's guest session id.
func (s *Submitter) identity(ctx context.Context, log logrus.FieldLogger) (*domain.User, string) {
	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		log.WithError(err).Warn("current user lookup failed, continuing as guest")
		user = nil
	}
	if user != nil {
		return user, ""
	}
	return nil, s.guestSessionID(ctx, log)
}

func (s *Submitter) persist(ctx context.Context, log logrus.FieldLogger, order *domain.Order) {
	saved, err := s.orders.CreateOrder(ctx, *order)
	if err != nil {
		log.WithError(&port.CollaboratorError{Op: "orders.CreateOrder", Err: err}).Error("order not saved, keeping local copy")
		return
	}

	order.ID = saved.ID
	order.CreatedAt = saved.CreatedAt
	order.Sync = domain.SyncPartial

	if err := s.orders.AddOrderItems(ctx, order.ID, order.Items); err != nil {
		log.WithError(&port.CollaboratorError{Op: "orders.AddOrderItems", Err: err}).
			WithField("order_id", order.ID).
			Warn("order saved without items, needs manual repair")
		return
	}

	order.Sync = domain.SyncSaved
}

func (s *Submitter) saveCustomer(ctx context.Context, log logrus.FieldLogger, user domain.User, info domain.CustomerInfo) {
	email := info.Email
	if email == "" {
		email = user.Email
	}

	err := s.profiles.UpsertProfile(ctx, domain.Profile{
		UserID:    user.ID,
		FullName:  info.Billing.FullName(),
		Email:     email,
		Phone:     info.Phone,
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("profile not saved")
	}

	s.saveAddress(ctx, log, user.ID, info.Billing, domain.AddressKindBilling)

	if info.SeparateShipping() {
		s.saveAddress(ctx, log, user.ID, *info.Shipping, domain.AddressKindShipping)
	}
}

// saveAddress adds the address unless one with the same first line, city and postal code
// exists. The user's first address becomes the default.
func (s *Submitter) saveAddress(ctx context.Context, log logrus.FieldLogger, userID string, addr domain.Address, kind domain.AddressKind) {
	log = log.WithField("user_id", userID)

	existing, err := s.profiles.ListAddresses(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("addresses not listed, address not saved")
		return
	}

	for _, e := range existing {
		if similarAddress(e, addr) {
			return
		}
	}

	_, err = s.profiles.AddAddress(ctx, domain.SavedAddress{
		UserID:    userID,
		Kind:      kind,
		FullName:  addr.FullName(),
		Line1:     addr.Line1,
		Line2:     addr.Line2,
		City:      addr.City,
		State:     addr.State,
		Postal:    addr.Postal,
		Country:   defaultCountry,
		IsDefault: len(existing) == 0,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		log.WithError(err).Warn("address not saved")
	}
}

func (s *Submitter) finish(ctx context.Context, log logrus.FieldLogger, req Request, order domain.Order) {
	err := s.local.SaveConfirmation(ctx, domain.Confirmation{
		OrderNumber: order.Number,
		Order:       order,
		Items:       req.Cart.Items,
		Totals:      order.Totals,
		Customer:    order.Customer,
	})
	if err != nil {
		log.WithError(err).Error("confirmation not stored locally")
	}

	if order.Customer.Email != "" {
		if err := s.local.SetLastOrderEmail(ctx, order.Customer.Email); err != nil {
			log.WithError(err).Warn("last order email not stored")
		}
	}

	if req.Cart.OwnerID != "" {
		if err := s.carts.ClearCart(ctx, req.Cart.OwnerID); err != nil {
			log.WithError(err).WithField("owner_id", req.Cart.OwnerID).Warn("cart not cleared")
		}
	}
}

func (s *Submitter) guestSessionID(ctx context.Context, log logrus.FieldLogger) string {
	id, err := s.local.GuestSessionID(ctx)
	if err == nil && id != "" {
		return id
	}
	if err != nil && !errors.Is(err, port.ErrNotFound) {
		log.WithError(err).Warn("guest session lookup failed, starting a new one")
	}

	id = NewGuestSessionID()
	if err := s.local.SetGuestSessionID(ctx, id); err != nil {
		log.WithError(err).Warn("guest session id not stored")
	}
	return id
}

func NewGuestSessionID() string {
	return "guest_" + uuid.NewString()
}

func orderItems(items []domain.CartItem, now time.Time) []domain.OrderItem {
	result := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		result = append(result, domain.OrderItem{
			ProductName: item.Name,
			Image:       item.Image,
			Quantity:    item.Quantity,
			UnitPrice:   item.Price.Amount,
			TotalPrice:  pricing.LineTotal(item),
			CreatedAt:   now,
		})
	}
	return result
}

func similarAddress(saved domain.SavedAddress, addr domain.Address) bool {
	return saved.Line1 == addr.Line1 && saved.City == addr.City && saved.Postal == addr.Postal
}
