package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
	"github.com/redis/go-redis/v9"
)

const (
	keyGuestSession = "guest_session_id"
	keyLastEmail    = "last_order_email"
	keyConfirmation = "order_confirmation"
)

// Store keeps a device's checkout leftovers in Redis under storefront:<device>:<key>.
// Keys never expire.
type Store struct {
	client *redis.Client
	device string
}

func New(client *redis.Client, deviceID string) (*Store, error) {
	if deviceID == "" {
		return nil, fmt.Errorf("deviceID is empty")
	}

	return &Store{
		client: client,
		device: deviceID,
	}, nil
}

var _ port.LocalStore = (*Store)(nil)

func (s *Store) GuestSessionID(ctx context.Context) (string, error) {
	return s.getString(ctx, keyGuestSession)
}

func (s *Store) SetGuestSessionID(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id is empty")
	}
	return s.setString(ctx, keyGuestSession, id)
}

func (s *Store) LastOrderEmail(ctx context.Context) (string, error) {
	return s.getString(ctx, keyLastEmail)
}

func (s *Store) SetLastOrderEmail(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("email is empty")
	}
	return s.setString(ctx, keyLastEmail, email)
}

func (s *Store) Confirmation(ctx context.Context) (domain.Confirmation, error) {
	data, err := s.client.Get(ctx, s.key(keyConfirmation)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Confirmation{}, port.ErrNotFound
	}
	if err != nil {
		return domain.Confirmation{}, fmt.Errorf("redis get failed: %w", err)
	}

	var rec confirmationRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Confirmation{}, fmt.Errorf("unmarshal confirmation failed: %w", err)
	}

	c, err := rec.toDomain()
	if err != nil {
		return domain.Confirmation{}, fmt.Errorf("rec.toDomain: %w", err)
	}

	return c, nil
}

func (s *Store) SaveConfirmation(ctx context.Context, c domain.Confirmation) error {
	if c.OrderNumber == "" {
		return fmt.Errorf("order number is empty")
	}

	data, err := json.Marshal(confirmationFromDomain(c))
	if err != nil {
		return fmt.Errorf("marshal confirmation failed: %w", err)
	}

	if err := s.client.Set(ctx, s.key(keyConfirmation), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (s *Store) getString(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", port.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return v, nil
}

func (s *Store) setString(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *Store) key(name string) string {
	return fmt.Sprintf("storefront:%s:%s", s.device, name)
}
