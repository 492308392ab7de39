package port

import (
	"context"

	"github.com/nikolayk812/checkout-demo/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	// AddItem inserts the line or increases its quantity when the product is already in the cart.
	AddItem(ctx context.Context, ownerID string, item domain.CartItem) error
	// UpdateQuantity changes a line by delta; a line reaching zero is removed.
	UpdateQuantity(ctx context.Context, ownerID string, productID int64, delta int) (bool, error)
	DeleteItem(ctx context.Context, ownerID string, productID int64) (bool, error)
	ClearCart(ctx context.Context, ownerID string) error
}
