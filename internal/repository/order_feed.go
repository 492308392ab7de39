package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/checkout-demo/internal/port"
	"github.com/sirupsen/logrus"
)

// OrdersChannel is the NOTIFY channel fed by the orders insert trigger.
const OrdersChannel = "orders_inserted"

type orderFeed struct {
	pool *pgxpool.Pool
	log  logrus.FieldLogger
}

func NewOrderFeed(pool *pgxpool.Pool, log logrus.FieldLogger) port.OrderFeed {
	return &orderFeed{pool: pool, log: log}
}

// Subscribe holds one pooled connection in LISTEN mode until ctx is done. The channel
// is closed when the subscription ends.
func (f *orderFeed) Subscribe(ctx context.Context) (<-chan string, error) {
	conn, err := f.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("pool.Acquire: %w", err)
	}

	if _, err := conn.Exec(ctx, "LISTEN "+OrdersChannel); err != nil {
		conn.Release()
		return nil, fmt.Errorf("conn.Exec LISTEN: %w", err)
	}

	numbers := make(chan string)

	go func() {
		defer close(numbers)
		defer func() {
			// a connection still listening must not go back to the pool
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = conn.Conn().Close(closeCtx)
			conn.Release()
		}()

		for {
			n, err := conn.Conn().WaitForNotification(ctx)
			if err != nil {
				if ctx.Err() == nil {
					f.log.WithError(err).Warn("order feed stopped")
				}
				return
			}

			select {
			case numbers <- n.Payload:
			case <-ctx.Done():
				return
			}
		}
	}()

	return numbers, nil
}
