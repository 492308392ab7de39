package auth

import (
	"strings"
)

const genericMessage = "An error occurred. Please try again."

var messages = []struct {
	needles []string
	text    string
}{
	{[]string{"Invalid login credentials", "invalid_credentials"}, "Invalid email or password. Please check your credentials and try again."},
	{[]string{"Email not confirmed", "email_not_confirmed"}, "Please verify your email address before signing in. Check your inbox for the verification link."},
	{[]string{"User already registered", "user_already_exists"}, "An account with this email already exists. Try signing in instead."},
	{[]string{"Password should be at least 6 characters", "password_too_short"}, "Password must be at least 6 characters long."},
	{[]string{"Signup requires a valid password", "weak_password"}, "Please enter a stronger password (at least 6 characters)."},
	{[]string{"Unable to validate email address", "invalid_email"}, "Please enter a valid email address."},
	{[]string{"Too many requests", "rate_limit"}, "Too many attempts. Please wait a moment before trying again."},
}

// Message turns an auth provider error into a short text for the shopper. Provider text
// is never shown as is.
func Message(err error) string {
	if err == nil {
		return ""
	}

	raw := err.Error()
	for _, m := range messages {
		for _, needle := range m.needles {
			if strings.Contains(raw, needle) {
				return m.text
			}
		}
	}

	return genericMessage
}

// OAuthMessage is Message for a failed social sign-in.
func OAuthMessage(err error) string {
	if err == nil {
		return ""
	}

	raw := err.Error()
	switch {
	case strings.Contains(raw, "OAuth"):
		return "Google sign-in failed. Google authentication is not properly configured."
	case strings.Contains(strings.ToLower(raw), "network"):
		return "Google sign-in failed. Please check your internet connection."
	default:
		return "Google sign-in failed. Please try again later."
	}
}
