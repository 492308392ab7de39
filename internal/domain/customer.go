package domain

import (
	"strings"
	"time"
)

type Address struct {
	FirstName string
	LastName  string
	Line1     string
	Line2     string
	City      string
	State     string
	Postal    string
}

func (a Address) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// OneLine renders the address the way the review step and order history show it.
func (a Address) OneLine() string {
	return a.FullName() + ", " + a.Line1 + ", " + a.City + ", " + a.State + " " + a.Postal
}

type CustomerInfo struct {
	Email   string
	Phone   string
	Billing Address
	// Shipping is nil when goods ship to the billing address.
	Shipping *Address
}

// ShipTo is the address goods are sent to.
func (c CustomerInfo) ShipTo() Address {
	if c.Shipping != nil {
		return *c.Shipping
	}
	return c.Billing
}

// SeparateShipping reports whether the shipping address differs from billing.
func (c CustomerInfo) SeparateShipping() bool {
	return c.Shipping != nil && *c.Shipping != c.Billing
}

type User struct {
	ID       string
	Email    string
	FullName string
}

type Profile struct {
	UserID    string
	FullName  string
	Email     string
	Phone     string
	UpdatedAt time.Time
}

type AddressKind string

const (
	AddressKindBilling  AddressKind = "billing"
	AddressKindShipping AddressKind = "shipping"
)

type SavedAddress struct {
	ID        string
	UserID    string
	Kind      AddressKind
	FullName  string
	Line1     string
	Line2     string
	City      string
	State     string
	Postal    string
	Country   string
	IsDefault bool
	CreatedAt time.Time
}
