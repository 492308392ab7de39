package backend

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Handle struct {
	Pool  *pgxpool.Pool
	Redis *redis.Client
}

type Options struct {
	DatabaseURL string
	RedisAddr   string
	RedisDB     int
}

// Connect opens and pings both stores.
func Connect(ctx context.Context, opts Options) (*Handle, error) {
	pool, err := pgxpool.New(ctx, opts.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: opts.RedisAddr,
		DB:   opts.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		pool.Close()
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Handle{Pool: pool, Redis: client}, nil
}

func (h *Handle) Close() {
	if h.Pool != nil {
		h.Pool.Close()
	}
	if h.Redis != nil {
		_ = h.Redis.Close()
	}
}
