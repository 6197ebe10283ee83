package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	appstock "github.com/VeerDubey/milk-management-91-sub004/internal/application/stock"
)

var _ appstock.KVStore = (*KVStore)(nil)

// KVStore backs the stock ledger's key/value collections with a single
// stock_kv table (key TEXT PRIMARY KEY, value JSONB). Each key holds one
// whole JSON array, matching the ledger's read-modify-write access pattern.
type KVStore struct {
	q Querier
}

// NewKVStore builds the adapter. Pass pool or tx (Querier).
func NewKVStore(q Querier) *KVStore {
	return &KVStore{q: q}
}

// Get returns the raw JSON stored under key, or (nil, nil) when the key has
// never been written.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.q.QueryRow(ctx, `SELECT value FROM stock_kv WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("kv get %s: %w", key, err)
	}
	return value, nil
}

// Set upserts the raw JSON under key.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO stock_kv (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}
