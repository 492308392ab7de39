// Package checkout implements the three-step checkout flow: customer info, payment, review.
//
// The flow is a pure transition function over State so it can be driven by any UI;
// Session adds the cart, promo code and totals around it.
package checkout

import (
	"fmt"
	"time"

	"github.com/nikolayk812/checkout-demo/internal/domain"
)

type Step int

const (
	StepCustomerInfo Step = iota + 1
	StepPayment
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepCustomerInfo:
		return "customer-info"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

type State struct {
	Step     Step
	Customer *domain.CustomerInfo
	Payment  *domain.Payment
	// Review is set only while Step is StepReview.
	Review *Review
}

func NewState() State {
	return State{Step: StepCustomerInfo}
}

// clone copies everything the pointers reach, so the copy shares no memory with s.
func (s State) clone() State {
	out := s
	if s.Customer != nil {
		info := *s.Customer
		if info.Shipping != nil {
			shipping := *info.Shipping
			info.Shipping = &shipping
		}
		out.Customer = &info
	}
	if s.Payment != nil {
		payment := *s.Payment
		if payment.Card != nil {
			card := *payment.Card
			payment.Card = &card
		}
		out.Payment = &payment
	}
	if s.Review != nil {
		review := *s.Review
		out.Review = &review
	}
	return out
}

type Event interface {
	event()
}

// SubmitCustomerInfo completes the first step. With SameShipping the shipping address
// in Info is ignored and goods ship to the billing address.
type SubmitCustomerInfo struct {
	Info         domain.CustomerInfo
	SameShipping bool
}

type SubmitPayment struct {
	Payment domain.Payment
}

type Back struct{}

type PlaceOrder struct{}

func (SubmitCustomerInfo) event() {}
func (SubmitPayment) event()      {}
func (Back) event()               {}
func (PlaceOrder) event()         {}

type EffectKind int

const (
	EffectShowStep EffectKind = iota + 1
	EffectShowReview
	EffectSubmitOrder
)

type Effect struct {
	Kind EffectKind
	Step Step
}

// StepError rejects an event that does not belong to the current step.
type StepError struct {
	Step  Step
	Event string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s is not allowed at step %s", e.Event, e.Step)
}

// Transition applies ev to s. On error s is returned unchanged and no effects are produced.
func Transition(s State, ev Event, now time.Time) (State, []Effect, error) {
	switch ev := ev.(type) {
	case SubmitCustomerInfo:
		if s.Step != StepCustomerInfo {
			return s, nil, &StepError{Step: s.Step, Event: "customer info"}
		}
		if err := ValidateCustomerInfo(ev.Info, ev.SameShipping); err != nil {
			return s, nil, err
		}

		info := ev.Info
		if ev.SameShipping {
			info.Shipping = nil
		} else {
			shipping := *ev.Info.Shipping
			info.Shipping = &shipping
		}

		next := s
		next.Customer = &info
		next.Step = StepPayment
		return next, []Effect{{Kind: EffectShowStep, Step: StepPayment}}, nil

	case SubmitPayment:
		if s.Step != StepPayment || s.Customer == nil {
			return s, nil, &StepError{Step: s.Step, Event: "payment"}
		}
		if err := ValidatePayment(ev.Payment, now); err != nil {
			return s, nil, err
		}

		payment := normalizePayment(ev.Payment)

		next := s
		next.Payment = &payment
		next.Step = StepReview
		review := BuildReview(*next.Customer, payment)
		next.Review = &review
		return next, []Effect{
			{Kind: EffectShowStep, Step: StepReview},
			{Kind: EffectShowReview, Step: StepReview},
		}, nil

	case Back:
		if s.Step == StepCustomerInfo {
			return s, nil, nil
		}
		next := s
		next.Step--
		next.Review = nil
		return next, []Effect{{Kind: EffectShowStep, Step: next.Step}}, nil

	case PlaceOrder:
		if s.Step != StepReview {
			return s, nil, &StepError{Step: s.Step, Event: "place order"}
		}
		return s, []Effect{{Kind: EffectSubmitOrder, Step: StepReview}}, nil

	default:
		return s, nil, fmt.Errorf("unknown checkout event %T", ev)
	}
}

func normalizePayment(p domain.Payment) domain.Payment {
	out := domain.Payment{Method: p.Method}
	switch p.Method {
	case domain.PaymentMethodCard:
		card := *p.Card
		card.Number = StripCardNumber(card.Number)
		out.Card = &card
	case domain.PaymentMethodUPI:
		out.UPIID = p.UPIID
	case domain.PaymentMethodNetBanking:
		out.Bank = p.Bank
	}
	return out
}
