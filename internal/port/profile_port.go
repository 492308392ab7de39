package port

import (
	"context"

	"github.com/nikolayk812/checkout-demo/internal/domain"
)

type ProfileRepository interface {
	// GetProfile returns ErrNotFound when the user has no profile row yet.
	GetProfile(ctx context.Context, userID string) (domain.Profile, error)
	UpsertProfile(ctx context.Context, profile domain.Profile) error
	// ListAddresses returns the user's addresses newest first.
	ListAddresses(ctx context.Context, userID string) ([]domain.SavedAddress, error)
	AddAddress(ctx context.Context, address domain.SavedAddress) (domain.SavedAddress, error)
}
