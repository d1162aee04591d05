// Package redis builds the client used by the session store.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
