package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
	"github.com/nikolayk812/checkout-demo/internal/pricing"
	"github.com/sirupsen/logrus"
)

// Loader lists the shopper's past orders, newest first.
type Loader struct {
	orders port.OrderRepository
	auth   port.Authenticator
	local  port.LocalStore
	log    logrus.FieldLogger
}

func NewLoader(orders port.OrderRepository, auth port.Authenticator, local port.LocalStore, log logrus.FieldLogger) *Loader {
	return &Loader{
		orders: orders,
		auth:   auth,
		local:  local,
		log:    log,
	}
}

// Load queries by signed-in user, else by guest session, else by the last order email.
// When the backend has nothing, the locally kept confirmation is returned instead.
func (l *Loader) Load(ctx context.Context) ([]domain.Order, error) {
	filter, err := l.filter(ctx)
	if err != nil {
		return nil, fmt.Errorf("l.filter: %w", err)
	}

	var orders []domain.Order
	if filter != (port.OrderFilter{}) {
		orders, err = l.orders.ListOrders(ctx, filter)
		if err != nil {
			return nil, &port.CollaboratorError{Op: "orders.ListOrders", Err: err}
		}
	}

	for i := range orders {
		orders[i].Sync = domain.SyncSaved

		items, err := l.orders.GetOrderItems(ctx, orders[i].ID)
		if err != nil {
			l.log.WithError(err).WithField("order_number", orders[i].Number).Warn("order items not loaded")
			continue
		}
		orders[i].Items = items
	}

	if len(orders) > 0 {
		return orders, nil
	}

	fallback, ok := l.fallback(ctx)
	if !ok {
		return nil, nil
	}
	return []domain.Order{fallback}, nil
}

func (l *Loader) filter(ctx context.Context) (port.OrderFilter, error) {
	user, err := l.auth.CurrentUser(ctx)
	if err != nil {
		l.log.WithError(err).Warn("current user lookup failed")
	}
	if user != nil && user.ID != "" {
		return port.OrderFilter{UserID: user.ID}, nil
	}

	sessionID, err := l.local.GuestSessionID(ctx)
	switch {
	case err == nil && sessionID != "":
		return port.OrderFilter{SessionID: sessionID}, nil
	case err != nil && !errors.Is(err, port.ErrNotFound):
		return port.OrderFilter{}, fmt.Errorf("local.GuestSessionID: %w", err)
	}

	email, err := l.local.LastOrderEmail(ctx)
	switch {
	case err == nil:
		return port.OrderFilter{CustomerEmail: email}, nil
	case errors.Is(err, port.ErrNotFound):
		return port.OrderFilter{}, nil
	default:
		return port.OrderFilter{}, fmt.Errorf("local.LastOrderEmail: %w", err)
	}
}

func (l *Loader) fallback(ctx context.Context) (domain.Order, bool) {
	c, err := l.local.Confirmation(ctx)
	if err != nil {
		if !errors.Is(err, port.ErrNotFound) {
			l.log.WithError(err).Warn("local confirmation not readable")
		}
		return domain.Order{}, false
	}

	o := c.Order
	if o.Number == "" {
		o.Number = c.OrderNumber
	}
	if o.Status == "" {
		o.Status = domain.OrderStatusConfirmed
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = domain.PaymentStatusPaid
	}
	if o.PaymentMethod == domain.PaymentMethodNone {
		o.PaymentMethod = domain.PaymentMethodCOD
	}
	if o.Customer.Email == "" {
		o.Customer = c.Customer
	}
	if o.Totals.Total.IsZero() {
		o.Totals = c.Totals
	}
	if len(o.Items) == 0 {
		for _, item := range c.Items {
			o.Items = append(o.Items, domain.OrderItem{
				ProductName: item.Name,
				Image:       item.Image,
				Quantity:    item.Quantity,
				UnitPrice:   item.Price.Amount,
				TotalPrice:  pricing.LineTotal(item),
				CreatedAt:   item.CreatedAt,
			})
		}
	}
	o.Sync = domain.SyncLocal

	return o, true
}
