package auth

import (
	"errors"
	"strings"

	"github.com/nikolayk812/checkout-demo/internal/checkout"
)

const MinPasswordLength = 8

var (
	ErrNameRequired     = errors.New("Please enter your full name")
	ErrInvalidEmail     = errors.New("Please enter a valid email address")
	ErrPasswordTooShort = errors.New("Password must be at least 8 characters long")
	ErrPasswordMismatch = errors.New("Passwords do not match")
	ErrTermsNotAccepted = errors.New("Please agree to the terms and conditions")
)

type SignUpForm struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	AgreeTerms      bool
}

func ValidEmail(email string) bool {
	return checkout.ValidEmail(email)
}

// ValidateSignUp returns the first problem with the form. The errors read as
// notifications for the shopper.
func ValidateSignUp(f SignUpForm) error {
	switch {
	case strings.TrimSpace(f.FullName) == "":
		return ErrNameRequired
	case !ValidEmail(f.Email):
		return ErrInvalidEmail
	case len(f.Password) < MinPasswordLength:
		return ErrPasswordTooShort
	case f.Password != f.ConfirmPassword:
		return ErrPasswordMismatch
	case !f.AgreeTerms:
		return ErrTermsNotAccepted
	}
	return nil
}
