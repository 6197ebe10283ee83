package stock

import "context"

// Ledger collection keys in the key-value store.
const (
	MovementsKey = "stock_movements"
	AlertsKey    = "stock_alerts"
)

// KVStore is the durable key-value store the ledger keeps its collections in:
// each key holds one JSON array, written wholesale on every mutation.
// Get returns (nil, nil) when the key does not exist.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
