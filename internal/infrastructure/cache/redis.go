package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

// OpenRedis connects and pings before returning.
func OpenRedis(addr string, db int, log *zap.Logger) (*redis.Client, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := redis.NewClient(&redis.Options{
		Addr:         addr,
		DB:           db,
		DialTimeout:  pingTimeout,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		_ = r.Close()
		return nil, err
	}
	log.Info("redis: connected", zap.String("addr", addr), zap.Int("db", db))
	return r, nil
}

// Ping adapts a client to the health check signature.
func Ping(r *redis.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error { return r.Ping(ctx).Err() }
}
