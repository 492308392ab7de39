package port

import (
	"context"

	"github.com/nikolayk812/checkout-demo/internal/domain"
)

// Authenticator is the hosted auth service.
type Authenticator interface {
	// CurrentUser returns nil without error when nobody is signed in.
	CurrentUser(ctx context.Context) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (domain.User, error)
	SignUp(ctx context.Context, email, password, fullName string) (domain.User, error)
	SignOut(ctx context.Context) error
	ResetPassword(ctx context.Context, email string) error
	// OAuthURL is where the browser goes to sign in with provider.
	OAuthURL(ctx context.Context, provider, redirectTo string) (string, error)
}
