package auth

type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthFair   Strength = "fair"
	StrengthGood   Strength = "good"
	StrengthStrong Strength = "strong"
)

func (s Strength) Text() string {
	switch s {
	case StrengthFair:
		return "Fair password"
	case StrengthGood:
		return "Good password"
	case StrengthStrong:
		return "Strong password"
	default:
		return "Weak password"
	}
}

// PasswordStrength scores one point each for length >= 8, a lowercase letter, an
// uppercase letter, a digit and any other character.
func PasswordStrength(password string) Strength {
	var lower, upper, digit, other bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}

	score := 0
	for _, ok := range []bool{len(password) >= 8, lower, upper, digit, other} {
		if ok {
			score++
		}
	}

	switch {
	case score <= 1:
		return StrengthWeak
	case score == 2:
		return StrengthFair
	case score == 3:
		return StrengthGood
	default:
		return StrengthStrong
	}
}
