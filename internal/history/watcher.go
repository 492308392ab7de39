package history

import (
	"context"
	"fmt"

	"github.com/nikolayk812/checkout-demo/internal/port"
	"github.com/sirupsen/logrus"
)

// Watcher calls refresh whenever a new order lands in the backend.
type Watcher struct {
	feed port.OrderFeed
	log  logrus.FieldLogger
}

func NewWatcher(feed port.OrderFeed, log logrus.FieldLogger) *Watcher {
	return &Watcher{feed: feed, log: log}
}

// Run blocks until ctx is done or the feed ends.
func (w *Watcher) Run(ctx context.Context, refresh func(ctx context.Context)) error {
	numbers, err := w.feed.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("feed.Subscribe: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case number, ok := <-numbers:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("order feed closed")
			}
			w.log.WithField("order_number", number).Debug("order inserted")
			refresh(ctx)
		}
	}
}
