package localstore

import (
	"fmt"
	"time"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type confirmationRecord struct {
	OrderNumber string         `json:"orderNumber"`
	Order       orderRecord    `json:"order"`
	Items       []itemRecord   `json:"items"`
	Totals      totalsRecord   `json:"totals"`
	Customer    customerRecord `json:"customerInfo"`
}

type orderRecord struct {
	ID            string            `json:"id"`
	Number        string            `json:"orderNumber"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"paymentStatus"`
	PaymentMethod string            `json:"paymentMethod"`
	UserID        string            `json:"userId,omitempty"`
	SessionID     string            `json:"sessionId,omitempty"`
	Items         []orderItemRecord `json:"items,omitempty"`
	Totals        totalsRecord      `json:"totals"`
	CreatedAt     time.Time         `json:"createdAt"`
	Sync          string            `json:"sync"`
}

type orderItemRecord struct {
	ProductName string          `json:"productName"`
	Image       string          `json:"productImage"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type itemRecord struct {
	ProductID int64           `json:"id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	Quantity  int             `json:"quantity"`
	CreatedAt time.Time       `json:"createdAt"`
}

type totalsRecord struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

type customerRecord struct {
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Billing  addressRecord  `json:"billing"`
	Shipping *addressRecord `json:"shipping,omitempty"`
}

type addressRecord struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Line1     string `json:"address"`
	Line2     string `json:"address2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postal    string `json:"postal"`
}

func confirmationFromDomain(c domain.Confirmation) confirmationRecord {
	items := make([]itemRecord, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, itemRecord{
			ProductID: it.ProductID,
			Name:      it.Name,
			Image:     it.Image,
			Price:     it.Price.Amount,
			Currency:  it.Price.Currency.String(),
			Quantity:  it.Quantity,
			CreatedAt: it.CreatedAt,
		})
	}

	orderItems := make([]orderItemRecord, 0, len(c.Order.Items))
	for _, it := range c.Order.Items {
		orderItems = append(orderItems, orderItemRecord(it))
	}

	return confirmationRecord{
		OrderNumber: c.OrderNumber,
		Order: orderRecord{
			ID:            c.Order.ID,
			Number:        c.Order.Number,
			Status:        string(c.Order.Status),
			PaymentStatus: string(c.Order.PaymentStatus),
			PaymentMethod: string(c.Order.PaymentMethod),
			UserID:        c.Order.UserID,
			SessionID:     c.Order.SessionID,
			Items:         orderItems,
			Totals:        totalsRecord(c.Order.Totals),
			CreatedAt:     c.Order.CreatedAt,
			Sync:          string(c.Order.Sync),
		},
		Items:    items,
		Totals:   totalsRecord(c.Totals),
		Customer: customerFromDomain(c.Customer),
	}
}

func (r confirmationRecord) toDomain() (domain.Confirmation, error) {
	var items []domain.CartItem
	for _, it := range r.Items {
		unit, err := currency.ParseISO(it.Currency)
		if err != nil {
			return domain.Confirmation{}, fmt.Errorf("currency[%s] is not valid: %w", it.Currency, err)
		}
		items = append(items, domain.CartItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Image:     it.Image,
			Price:     domain.Money{Amount: it.Price, Currency: unit},
			Quantity:  it.Quantity,
			CreatedAt: it.CreatedAt,
		})
	}

	var orderItems []domain.OrderItem
	for _, it := range r.Order.Items {
		orderItems = append(orderItems, domain.OrderItem(it))
	}

	customer := r.Customer.toDomain()

	return domain.Confirmation{
		OrderNumber: r.OrderNumber,
		Order: domain.Order{
			ID:            r.Order.ID,
			Number:        r.Order.Number,
			Status:        domain.OrderStatus(r.Order.Status),
			PaymentStatus: domain.PaymentStatus(r.Order.PaymentStatus),
			PaymentMethod: domain.PaymentMethod(r.Order.PaymentMethod),
			UserID:        r.Order.UserID,
			SessionID:     r.Order.SessionID,
			Customer:      customer,
			Items:         orderItems,
			Totals:        domain.OrderTotals(r.Order.Totals),
			CreatedAt:     r.Order.CreatedAt,
			Sync:          domain.SyncState(r.Order.Sync),
		},
		Items:    items,
		Totals:   domain.OrderTotals(r.Totals),
		Customer: customer,
	}, nil
}

func customerFromDomain(c domain.CustomerInfo) customerRecord {
	rec := customerRecord{
		Email:   c.Email,
		Phone:   c.Phone,
		Billing: addressRecord(c.Billing),
	}
	if c.Shipping != nil {
		shipping := addressRecord(*c.Shipping)
		rec.Shipping = &shipping
	}
	return rec
}

func (r customerRecord) toDomain() domain.CustomerInfo {
	c := domain.CustomerInfo{
		Email:   r.Email,
		Phone:   r.Phone,
		Billing: domain.Address(r.Billing),
	}
	if r.Shipping != nil {
		shipping := domain.Address(*r.Shipping)
		c.Shipping = &shipping
	}
	return c
}
