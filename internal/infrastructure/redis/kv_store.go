// Package redis provides a Redis-backed alternative for the stock ledger's
// key/value collections (STOCK_STORE=redis). Each key holds one whole JSON
// array as a plain string value.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	appstock "github.com/VeerDubey/milk-management-91-sub004/internal/application/stock"
	"github.com/VeerDubey/milk-management-91-sub004/pkg/config"
)

var _ appstock.KVStore = (*KVStore)(nil)

// KVStore adapts a Redis client to the ledger's KVStore port.
type KVStore struct {
	client *redis.Client
}

// NewKVStore connects to Redis and verifies connectivity with a ping.
func NewKVStore(ctx context.Context, cfg config.RedisConfig) (*KVStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &KVStore{client: client}, nil
}

// Get returns the raw JSON stored under key, or (nil, nil) when the key has
// never been written.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("kv get %s: %w", key, err)
	}
	return value, nil
}

// Set stores the raw JSON under key without expiry; the ledger owns the
// retention of what is inside.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *KVStore) Close() error {
	return s.client.Close()
}
