package domain

type PaymentMethod string

const (
	PaymentMethodNone       PaymentMethod = ""
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetBanking PaymentMethod = "netbanking"
	PaymentMethodCOD        PaymentMethod = "cod"
)

type CardDetails struct {
	Number string
	Expiry string
	CVV    string
	Name   string
}

type Payment struct {
	Method PaymentMethod
	Card   *CardDetails
	UPIID  string
	Bank   string
}
