package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
)

type PaymentStatus string

const (
	PaymentStatusPaid PaymentStatus = "paid"
)

// SyncState tells how much of an order reached the backend.
type SyncState string

const (
	SyncSaved SyncState = "saved"
	// SyncPartial means the order row was stored but its item rows were not.
	SyncPartial SyncState = "partial"
	SyncLocal   SyncState = "local"
)

type OrderTotals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

type OrderItem struct {
	ProductName string
	Image       string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	CreatedAt   time.Time
}

type Order struct {
	ID            string
	Number        string
	Status        OrderStatus
	PaymentStatus PaymentStatus
	PaymentMethod PaymentMethod
	UserID        string
	SessionID     string
	Customer      CustomerInfo
	Items         []OrderItem
	Totals        OrderTotals
	CreatedAt     time.Time

	Sync SyncState
}

// Confirmation is the snapshot of the last placed order kept on the device.
type Confirmation struct {
	OrderNumber string
	Order       Order
	Items       []CartItem
	Totals      OrderTotals
	Customer    CustomerInfo
}
