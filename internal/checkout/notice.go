package checkout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/promo"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is a short message for the notification area.
type Notice struct {
	Level   Level
	Message string
}

const genericFailure = "Something went wrong. Please try again."

// NoticeFor maps an error from the session to what the shopper sees.
func NoticeFor(err error, reg *promo.Registry) Notice {
	var (
		validationErr *ValidationError
		promoErr      *promo.Error
	)

	switch {
	case err == nil:
		return Notice{}
	case errors.As(err, &validationErr):
		return Notice{Level: LevelError, Message: validationErr.Message}
	case errors.As(err, &promoErr):
		switch promoErr.Kind {
		case promo.KindAlreadyApplied, promo.KindConflictingCode:
			return Notice{Level: LevelWarning, Message: promoErr.Error()}
		case promo.KindNoActiveCode:
			return Notice{Level: LevelInfo, Message: promoErr.Error()}
		case promo.KindUnknownCode:
			return Notice{Level: LevelError, Message: "Invalid promo code. Try " + strings.Join(reg.Codes(), " or ")}
		default:
			return Notice{Level: LevelError, Message: promoErr.Error()}
		}
	case errors.Is(err, ErrEmptyCart):
		return Notice{Level: LevelWarning, Message: "Your cart is empty. Add some items before checkout."}
	default:
		return Notice{Level: LevelError, Message: genericFailure}
	}
}

func PromoAppliedNotice(p domain.PromoCode) Notice {
	return Notice{
		Level:   LevelSuccess,
		Message: fmt.Sprintf("Promo code %s applied! You saved %s%% on your order!", p.Code, p.Fraction.Shift(2).String()),
	}
}

func PromoRemovedNotice(p domain.PromoCode) Notice {
	return Notice{Level: LevelInfo, Message: fmt.Sprintf("Promo code %s removed successfully", p.Code)}
}
