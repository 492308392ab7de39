package promo

import "fmt"

type ErrorKind int

const (
	KindEmptyCode ErrorKind = iota
	KindAlreadyApplied
	KindConflictingCode
	KindUnknownCode
	KindNoActiveCode
)

func (k ErrorKind) String() string {
	switch k {
	case KindEmptyCode:
		return "EMPTY_CODE"
	case KindAlreadyApplied:
		return "ALREADY_APPLIED"
	case KindConflictingCode:
		return "CONFLICTING_CODE"
	case KindUnknownCode:
		return "UNKNOWN_CODE"
	case KindNoActiveCode:
		return "NO_ACTIVE_CODE"
	default:
		return "UNKNOWN"
	}
}

// Error is a rejected promo operation. Code is the normalized code involved, if any.
type Error struct {
	Kind ErrorKind
	Code string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyCode:
		return "Please enter a promo code"
	case KindAlreadyApplied:
		return "This promo code is already applied"
	case KindConflictingCode:
		return "A promo code is already applied. Remove it first to apply a new one."
	case KindUnknownCode:
		return "Invalid promo code"
	case KindNoActiveCode:
		return "No promo code is currently applied"
	default:
		return fmt.Sprintf("promo error %d", e.Kind)
	}
}

// Is matches errors of the same kind, so errors.Is(err, &promo.Error{Kind: promo.KindUnknownCode}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrEmptyCode       = &Error{Kind: KindEmptyCode}
	ErrAlreadyApplied  = &Error{Kind: KindAlreadyApplied}
	ErrConflictingCode = &Error{Kind: KindConflictingCode}
	ErrUnknownCode     = &Error{Kind: KindUnknownCode}
	ErrNoActiveCode    = &Error{Kind: KindNoActiveCode}
)
