package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/checkout-demo/internal/db"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
)

type profileRepository struct {
	q *db.Queries
}

func NewProfile(pool *pgxpool.Pool) port.ProfileRepository {
	return &profileRepository{q: db.New(pool)}
}

func NewProfileWithTx(tx pgx.Tx) port.ProfileRepository {
	return &profileRepository{q: db.New(tx)}
}

func (r *profileRepository) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	if userID == "" {
		return domain.Profile{}, fmt.Errorf("userID is empty")
	}

	row, err := r.q.GetProfile(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, port.ErrNotFound
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("q.GetProfile: %w", err)
	}

	return domain.Profile{
		UserID:    row.ID,
		FullName:  row.FullName,
		Email:     row.Email,
		Phone:     row.Phone,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r *profileRepository) UpsertProfile(ctx context.Context, profile domain.Profile) error {
	if profile.UserID == "" {
		return fmt.Errorf("userID is empty")
	}

	updatedAt := profile.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	err := r.q.UpsertProfile(ctx, db.UpsertProfileParams{
		ID:        profile.UserID,
		FullName:  profile.FullName,
		Email:     profile.Email,
		Phone:     profile.Phone,
		UpdatedAt: updatedAt,
	})
	if err != nil {
		return fmt.Errorf("q.UpsertProfile: %w", err)
	}

	return nil
}

func (r *profileRepository) ListAddresses(ctx context.Context, userID string) ([]domain.SavedAddress, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID is empty")
	}

	rows, err := r.q.ListAddresses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("q.ListAddresses: %w", err)
	}

	addresses := make([]domain.SavedAddress, 0, len(rows))
	for _, row := range rows {
		addresses = append(addresses, mapAddressRowToDomain(row))
	}

	return addresses, nil
}

func (r *profileRepository) AddAddress(ctx context.Context, address domain.SavedAddress) (domain.SavedAddress, error) {
	if address.UserID == "" {
		return domain.SavedAddress{}, fmt.Errorf("userID is empty")
	}

	createdAt := address.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	row, err := r.q.AddAddress(ctx, db.AddAddressParams{
		ID:           uuid.New(),
		UserID:       address.UserID,
		Type:         string(address.Kind),
		FullName:     address.FullName,
		AddressLine1: address.Line1,
		AddressLine2: nullable(address.Line2),
		City:         address.City,
		State:        address.State,
		PostalCode:   address.Postal,
		Country:      address.Country,
		IsDefault:    address.IsDefault,
		CreatedAt:    createdAt,
	})
	if err != nil {
		return domain.SavedAddress{}, fmt.Errorf("q.AddAddress: %w", err)
	}

	return mapAddressRowToDomain(row), nil
}

func mapAddressRowToDomain(row db.Address) domain.SavedAddress {
	return domain.SavedAddress{
		ID:        row.ID.String(),
		UserID:    row.UserID,
		Kind:      domain.AddressKind(row.Type),
		FullName:  row.FullName,
		Line1:     row.AddressLine1,
		Line2:     deref(row.AddressLine2),
		City:      row.City,
		State:     row.State,
		Postal:    row.PostalCode,
		Country:   row.Country,
		IsDefault: row.IsDefault,
		CreatedAt: row.CreatedAt,
	}
}
