package checkout

import (
	"errors"
	"slices"
	"time"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/pricing"
	"github.com/nikolayk812/checkout-demo/internal/promo"
	"github.com/shopspring/decimal"
)

var ErrEmptyCart = errors.New("cart is empty")

// Session is one shopper's pass through checkout. It is not safe for concurrent use;
// all calls are expected from the single UI event loop.
type Session struct {
	state    State
	cart     domain.Cart
	promo    *domain.PromoCode
	engine   *pricing.Engine
	registry *promo.Registry
	now      func() time.Time
}

// Draft is a finished checkout, ready to be placed as an order.
type Draft struct {
	Cart     domain.Cart
	Customer domain.CustomerInfo
	Payment  domain.Payment
	Totals   domain.OrderTotals
}

type Option func(*Session)

// WithClock overrides time.Now, used for card expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

func NewSession(cart domain.Cart, engine *pricing.Engine, registry *promo.Registry, opts ...Option) *Session {
	s := &Session{
		state:    NewState(),
		cart:     cart,
		engine:   engine,
		registry: registry,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a deep copy; changing it does not affect the session.
func (s *Session) State() State {
	return s.state.clone()
}

func (s *Session) Step() Step {
	return s.state.Step
}

func (s *Session) Cart() domain.Cart {
	return s.cart
}

// ActivePromo returns a copy of the applied code, or nil.
func (s *Session) ActivePromo() *domain.PromoCode {
	if s.promo == nil {
		return nil
	}
	p := *s.promo
	return &p
}

// Totals is always computed from the current cart and promo code.
func (s *Session) Totals() domain.OrderTotals {
	discount := decimal.Zero
	if s.promo != nil {
		discount = s.promo.Fraction
	}
	return s.engine.Compute(s.cart.Items, discount)
}

// SetCart replaces the cart contents and returns the new totals.
func (s *Session) SetCart(cart domain.Cart) domain.OrderTotals {
	s.cart = cart
	return s.Totals()
}

// ApplyPromo activates a code. On error nothing changes.
func (s *Session) ApplyPromo(raw string) (domain.OrderTotals, error) {
	p, err := promo.Apply(s.registry, s.promo, raw)
	if err != nil {
		return s.Totals(), err
	}
	s.promo = &p
	return s.Totals(), nil
}

func (s *Session) RemovePromo() (domain.OrderTotals, error) {
	if _, err := promo.Remove(s.promo); err != nil {
		return s.Totals(), err
	}
	s.promo = nil
	return s.Totals(), nil
}

// Dispatch runs ev through Transition and keeps the resulting state.
func (s *Session) Dispatch(ev Event) ([]Effect, error) {
	if _, ok := ev.(PlaceOrder); ok && s.cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	next, effects, err := Transition(s.state, ev, s.now())
	if err != nil {
		return nil, err
	}
	s.state = next
	return effects, nil
}

// Complete hands over the reviewed checkout and resets the session to an empty cart at the
// first step, so one pass through checkout places at most one order.
func (s *Session) Complete() (Draft, error) {
	if s.cart.IsEmpty() {
		return Draft{}, ErrEmptyCart
	}
	if s.state.Step != StepReview || s.state.Customer == nil || s.state.Payment == nil {
		return Draft{}, &StepError{Step: s.state.Step, Event: "place order"}
	}

	state := s.state.clone()
	draft := Draft{
		Cart:     domain.Cart{OwnerID: s.cart.OwnerID, Items: slices.Clone(s.cart.Items)},
		Customer: *state.Customer,
		Payment:  *state.Payment,
		Totals:   s.Totals(),
	}

	s.state = NewState()
	s.cart = domain.Cart{OwnerID: s.cart.OwnerID}
	s.promo = nil

	return draft, nil
}
