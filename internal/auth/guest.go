package auth

import (
	"context"
	"errors"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
)

var ErrProviderUnavailable = errors.New("auth provider is not configured")

// Guest is the Authenticator used when no hosted auth provider is configured: nobody is
// ever signed in, so every order is a guest order.
type Guest struct{}

var _ port.Authenticator = Guest{}

func (Guest) CurrentUser(context.Context) (*domain.User, error) {
	return nil, nil
}

func (Guest) SignIn(context.Context, string, string) (domain.User, error) {
	return domain.User{}, ErrProviderUnavailable
}

func (Guest) SignUp(context.Context, string, string, string) (domain.User, error) {
	return domain.User{}, ErrProviderUnavailable
}

func (Guest) SignOut(context.Context) error {
	return nil
}

func (Guest) ResetPassword(context.Context, string) error {
	return ErrProviderUnavailable
}

func (Guest) OAuthURL(context.Context, string, string) (string, error) {
	return "", ErrProviderUnavailable
}
