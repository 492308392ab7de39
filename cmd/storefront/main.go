package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikolayk812/checkout-demo/internal/auth"
	"github.com/nikolayk812/checkout-demo/internal/backend"
	"github.com/nikolayk812/checkout-demo/internal/config"
	"github.com/nikolayk812/checkout-demo/internal/history"
	"github.com/nikolayk812/checkout-demo/internal/localstore"
	"github.com/nikolayk812/checkout-demo/internal/migrations"
	"github.com/nikolayk812/checkout-demo/internal/order"
	"github.com/nikolayk812/checkout-demo/internal/pricing"
	"github.com/nikolayk812/checkout-demo/internal/promo"
	"github.com/nikolayk812/checkout-demo/internal/repository"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339Nano,
	}
	log.Out = os.Stdout

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config")
	}
	log.Level = cfg.LogLevel

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ready := backend.NewReady(cfg.ReadyTimeout)
	go func() {
		h, err := backend.Connect(ctx, backend.Options{
			DatabaseURL: cfg.DatabaseURL,
			RedisAddr:   cfg.RedisAddr,
			RedisDB:     cfg.RedisDB,
		})
		if err != nil {
			ready.Fail(err)
			return
		}
		ready.Resolve(h)
	}()

	h, err := ready.Wait(ctx)
	if err != nil {
		log.WithError(err).Fatal("backend not ready")
	}
	defer h.Close()

	if cfg.RunMigrations {
		if err := migrations.Up(cfg.DatabaseURL, log); err != nil {
			log.WithError(err).Fatal("migrations")
		}
	}

	local, err := localstore.New(h.Redis, cfg.DeviceID)
	if err != nil {
		log.WithError(err).Fatal("local store")
	}

	orders := repository.NewOrder(h.Pool)
	authn := auth.Guest{}

	submitter, err := order.NewSubmitter(order.Deps{
		Orders:   orders,
		Profiles: repository.NewProfile(h.Pool),
		Carts:    repository.NewCart(h.Pool),
		Auth:     authn,
		Local:    local,
	}, log)
	if err != nil {
		log.WithError(err).Fatal("order submitter")
	}

	session, err := submitter.OpenSession(ctx, pricing.New(cfg.Rules()), promo.Default())
	if err != nil {
		log.WithError(err).Fatal("checkout session")
	}
	totals := session.Totals()
	log.WithFields(logrus.Fields{
		"owner_id": session.Cart().OwnerID,
		"items":    session.Cart().Count(),
		"subtotal": totals.Subtotal.String(),
		"total":    totals.Total.String(),
	}).Info("checkout session opened")

	loader := history.NewLoader(orders, authn, local, log)
	refresh := func(ctx context.Context) {
		list, err := loader.Load(ctx)
		if err != nil {
			log.WithError(err).Warn("order history not loaded")
			return
		}
		log.WithField("orders", len(list)).Info("order history refreshed")
	}

	refresh(ctx)

	watcher := history.NewWatcher(repository.NewOrderFeed(h.Pool, log), log)
	log.WithField("device_id", cfg.DeviceID).Info("storefront started")

	if err := watcher.Run(ctx, refresh); err != nil {
		log.WithError(err).Error("order watcher stopped")
	}

	log.Info("shutdown complete")
}
