package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/checkout-demo/internal/db"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
)

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q: db.New(tx),
	}
}

// addressJSON is the stored shape of billing_address and shipping_address.
type addressJSON struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postal    string `json:"postal"`
}

func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if order.Number == "" {
		return domain.Order{}, fmt.Errorf("order number is empty")
	}

	id := uuid.New()
	if order.ID != "" {
		parsed, err := uuid.Parse(order.ID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("uuid.Parse[%s]: %w", order.ID, err)
		}
		id = parsed
	}

	createdAt := order.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	billing, err := json.Marshal(mapAddressToJSON(order.Customer.Billing))
	if err != nil {
		return domain.Order{}, fmt.Errorf("json.Marshal billing: %w", err)
	}

	shipping, err := json.Marshal(mapAddressToJSON(order.Customer.ShipTo()))
	if err != nil {
		return domain.Order{}, fmt.Errorf("json.Marshal shipping: %w", err)
	}

	row, err := r.q.CreateOrder(ctx, db.CreateOrderParams{
		ID:              id,
		OrderNumber:     order.Number,
		UserID:          nullable(order.UserID),
		SessionID:       nullable(order.SessionID),
		Status:          string(order.Status),
		Subtotal:        order.Totals.Subtotal,
		TaxAmount:       order.Totals.Tax,
		ShippingAmount:  order.Totals.Shipping,
		DiscountAmount:  order.Totals.Discount,
		TotalAmount:     order.Totals.Total,
		BillingAddress:  billing,
		ShippingAddress: shipping,
		PaymentMethod:   string(order.PaymentMethod),
		PaymentStatus:   string(order.PaymentStatus),
		CustomerEmail:   order.Customer.Email,
		CustomerPhone:   order.Customer.Phone,
		CreatedAt:       createdAt,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.CreateOrder: %w", err)
	}

	return mapOrderToDomain(row)
}

func (r *orderRepository) AddOrderItems(ctx context.Context, orderID string, items []domain.OrderItem) error {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return fmt.Errorf("uuid.Parse[%s]: %w", orderID, err)
	}

	if len(items) == 0 {
		return nil
	}

	return withTxExec(ctx, r.pool, r.q, func(q *db.Queries) error {
		for _, item := range items {
			createdAt := item.CreatedAt
			if createdAt.IsZero() {
				createdAt = time.Now().UTC()
			}

			err := q.AddOrderItem(ctx, db.AddOrderItemParams{
				ID:           uuid.New(),
				OrderID:      id,
				ProductName:  item.ProductName,
				ProductImage: item.Image,
				Quantity:     int32(item.Quantity),
				UnitPrice:    item.UnitPrice,
				TotalPrice:   item.TotalPrice,
				CreatedAt:    createdAt,
			})
			if err != nil {
				return fmt.Errorf("q.AddOrderItem: %w", err)
			}
		}
		return nil
	})
}

func (r *orderRepository) ListOrders(ctx context.Context, filter port.OrderFilter) ([]domain.Order, error) {
	var (
		rows []db.Order
		err  error
	)

	switch {
	case filter.UserID != "":
		rows, err = r.q.ListOrdersByUser(ctx, &filter.UserID)
	case filter.SessionID != "":
		rows, err = r.q.ListOrdersBySession(ctx, &filter.SessionID)
	case filter.CustomerEmail != "":
		rows, err = r.q.ListOrdersByEmail(ctx, filter.CustomerEmail)
	default:
		return nil, fmt.Errorf("filter is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("q.ListOrders: %w", err)
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		order, err := mapOrderToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapOrderToDomain: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (r *orderRepository) GetOrderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("uuid.Parse[%s]: %w", orderID, err)
	}

	rows, err := r.q.GetOrderItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("q.GetOrderItems: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.OrderItem{
			ProductName: row.ProductName,
			Image:       row.ProductImage,
			Quantity:    int(row.Quantity),
			UnitPrice:   row.UnitPrice,
			TotalPrice:  row.TotalPrice,
			CreatedAt:   row.CreatedAt,
		})
	}

	return items, nil
}

func mapOrderToDomain(row db.Order) (domain.Order, error) {
	var billing, shipping addressJSON

	if err := json.Unmarshal(row.BillingAddress, &billing); err != nil {
		return domain.Order{}, fmt.Errorf("json.Unmarshal billing: %w", err)
	}
	if err := json.Unmarshal(row.ShippingAddress, &shipping); err != nil {
		return domain.Order{}, fmt.Errorf("json.Unmarshal shipping: %w", err)
	}

	customer := domain.CustomerInfo{
		Email:   row.CustomerEmail,
		Phone:   row.CustomerPhone,
		Billing: mapAddressToDomain(billing),
	}
	if shipping != billing {
		s := mapAddressToDomain(shipping)
		customer.Shipping = &s
	}

	return domain.Order{
		ID:            row.ID.String(),
		Number:        row.OrderNumber,
		Status:        domain.OrderStatus(row.Status),
		PaymentStatus: domain.PaymentStatus(row.PaymentStatus),
		PaymentMethod: domain.PaymentMethod(row.PaymentMethod),
		UserID:        deref(row.UserID),
		SessionID:     deref(row.SessionID),
		Customer:      customer,
		Totals: domain.OrderTotals{
			Subtotal: row.Subtotal,
			Shipping: row.ShippingAmount,
			Tax:      row.TaxAmount,
			Discount: row.DiscountAmount,
			Total:    row.TotalAmount,
		},
		CreatedAt: row.CreatedAt,
	}, nil
}

func mapAddressToJSON(a domain.Address) addressJSON {
	return addressJSON{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Address:   a.Line1,
		Address2:  a.Line2,
		City:      a.City,
		State:     a.State,
		Postal:    a.Postal,
	}
}

func mapAddressToDomain(a addressJSON) domain.Address {
	return domain.Address{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Line1:     a.Address,
		Line2:     a.Address2,
		City:      a.City,
		State:     a.State,
		Postal:    a.Postal,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
