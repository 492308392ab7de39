package port

import (
	"context"

	"github.com/nikolayk812/checkout-demo/internal/domain"
)

// OrderFilter selects whose orders to list; exactly one field is expected to be set.
type OrderFilter struct {
	UserID        string
	SessionID     string
	CustomerEmail string
}

type OrderRepository interface {
	// CreateOrder stores the order row (without items) and returns it as stored.
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	AddOrderItems(ctx context.Context, orderID string, items []domain.OrderItem) error
	// ListOrders returns orders newest first, without items.
	ListOrders(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
	GetOrderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error)
}

// OrderFeed delivers the numbers of newly inserted orders until ctx is done.
type OrderFeed interface {
	Subscribe(ctx context.Context) (<-chan string, error)
}
