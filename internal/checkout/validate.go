package checkout

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nikolayk812/checkout-demo/internal/domain"
)

// ValidationError is the first invalid field of a step. Message is shown to the user as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[6-9]\d{9}$`)
	upiRe   = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z]{3,}$`)
	expRe   = regexp.MustCompile(`^(\d{1,2})\s*/\s*(\d{2})$`)
)

type requiredField struct {
	id    string
	label string
	value string
}

func addressFields(prefix string, a domain.Address) []requiredField {
	return []requiredField{
		{id: prefix + "-first-name", label: "First Name", value: a.FirstName},
		{id: prefix + "-last-name", label: "Last Name", value: a.LastName},
		{id: prefix + "-address", label: "Address", value: a.Line1},
		{id: prefix + "-city", label: "City", value: a.City},
		{id: prefix + "-state", label: "State", value: a.State},
		{id: prefix + "-postal", label: "Postal Code", value: a.Postal},
	}
}

// ValidateCustomerInfo checks the first checkout step. Required fields are checked first,
// then email and phone formats, then the separate shipping address if one was requested.
func ValidateCustomerInfo(info domain.CustomerInfo, sameShipping bool) error {
	required := append([]requiredField{
		{id: "email", label: "Email Address", value: info.Email},
		{id: "phone", label: "Phone Number", value: info.Phone},
	}, addressFields("billing", info.Billing)...)

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return invalid(f.id, "Please fill in "+f.label)
		}
	}

	if !ValidEmail(info.Email) {
		return invalid("email", "Please enter a valid email address")
	}

	if !ValidPhone(info.Phone) {
		return invalid("phone", "Please enter a valid phone number")
	}

	if sameShipping {
		return nil
	}

	var shipping domain.Address
	if info.Shipping != nil {
		shipping = *info.Shipping
	}
	for _, f := range addressFields("shipping", shipping) {
		if strings.TrimSpace(f.value) == "" {
			return invalid(f.id, "Please fill in shipping "+f.label)
		}
	}

	return nil
}

// ValidatePayment checks the second checkout step; now decides whether a card has expired.
func ValidatePayment(p domain.Payment, now time.Time) error {
	switch p.Method {
	case domain.PaymentMethodCard:
		var card domain.CardDetails
		if p.Card != nil {
			card = *p.Card
		}
		if !ValidCardNumber(card.Number) {
			return invalid("card-number", "Please enter a valid card number")
		}
		if !ValidExpiry(card.Expiry, now) {
			return invalid("card-expiry", "Please enter a valid expiry date")
		}
		if !ValidCVV(card.CVV) {
			return invalid("card-cvv", "Please enter a valid CVV")
		}
		if strings.TrimSpace(card.Name) == "" {
			return invalid("card-name", "Please enter the name on card")
		}
	case domain.PaymentMethodUPI:
		if strings.TrimSpace(p.UPIID) == "" {
			return invalid("upi-id", "Please enter a UPI ID")
		}
		if !ValidUPI(p.UPIID) {
			return invalid("upi-id", "Please enter a valid UPI ID (e.g., user@paytm)")
		}
	case domain.PaymentMethodNetBanking:
		if strings.TrimSpace(p.Bank) == "" {
			return invalid("bank-select", "Please select a bank")
		}
	case domain.PaymentMethodCOD:
	case domain.PaymentMethodNone:
		return invalid("payment-method", "Please select a payment method")
	default:
		return invalid("payment-method", fmt.Sprintf("Unsupported payment method %q", p.Method))
	}

	return nil
}

func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidPhone accepts a 10-digit mobile number starting with 6-9; separators are ignored.
func ValidPhone(phone string) bool {
	return phoneRe.MatchString(digitsOnly(phone))
}

func ValidUPI(id string) bool {
	return upiRe.MatchString(id)
}

// ValidCardNumber accepts 13 to 19 digits once spaces and dashes are stripped.
func ValidCardNumber(number string) bool {
	n := StripCardNumber(number)
	if len(n) < 13 || len(n) > 19 {
		return false
	}
	return digitsOnly(n) == n
}

// ValidExpiry accepts MM/YY that is not earlier than the month of now.
func ValidExpiry(expiry string, now time.Time) bool {
	m := expRe.FindStringSubmatch(strings.TrimSpace(expiry))
	if m == nil {
		return false
	}

	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return false
	}

	currentYear := now.Year() % 100
	currentMonth := int(now.Month())

	return year > currentYear || (year == currentYear && month >= currentMonth)
}

func ValidCVV(cvv string) bool {
	return len(cvv) >= 3 && len(cvv) <= 4 && digitsOnly(cvv) == cvv
}

// StripCardNumber removes the separators people type into card numbers.
func StripCardNumber(number string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(number)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
