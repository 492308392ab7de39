package checkout

import (
	"strings"

	"github.com/nikolayk812/checkout-demo/internal/domain"
)

// Prefill builds the first step's form for a signed-in shopper from their profile and
// saved addresses. The default address wins, otherwise the first one (newest first).
func Prefill(user domain.User, profile *domain.Profile, addresses []domain.SavedAddress) domain.CustomerInfo {
	info := domain.CustomerInfo{Email: user.Email}

	fullName := user.FullName
	if profile != nil {
		info.Phone = profile.Phone
		if profile.FullName != "" {
			fullName = profile.FullName
		}
	}
	info.Billing.FirstName, info.Billing.LastName = SplitName(fullName)

	if addr, ok := DefaultAddress(addresses); ok {
		info.Billing = AddressFromSaved(addr)
	}

	return info
}

func DefaultAddress(addresses []domain.SavedAddress) (domain.SavedAddress, bool) {
	if len(addresses) == 0 {
		return domain.SavedAddress{}, false
	}
	for _, a := range addresses {
		if a.IsDefault {
			return a, true
		}
	}
	return addresses[0], true
}

func AddressFromSaved(a domain.SavedAddress) domain.Address {
	first, last := SplitName(a.FullName)
	return domain.Address{
		FirstName: first,
		LastName:  last,
		Line1:     a.Line1,
		Line2:     a.Line2,
		City:      a.City,
		State:     a.State,
		Postal:    a.Postal,
	}
}

// SplitName puts the first word in first and the rest in last.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
