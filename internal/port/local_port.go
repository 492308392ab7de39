package port

import (
	"context"

	"github.com/nikolayk812/checkout-demo/internal/domain"
)

// LocalStore is the shopper's device storage. Missing keys return ErrNotFound.
type LocalStore interface {
	GuestSessionID(ctx context.Context) (string, error)
	SetGuestSessionID(ctx context.Context, id string) error
	LastOrderEmail(ctx context.Context) (string, error)
	SetLastOrderEmail(ctx context.Context, email string) error
	Confirmation(ctx context.Context) (domain.Confirmation, error)
	SaveConfirmation(ctx context.Context, c domain.Confirmation) error
}
