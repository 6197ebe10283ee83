// Package stock implements the stock ledger use case: an append-only
// movement log per product, with derived balances, FIFO consumption costs
// and low/negative-stock alerts.
package stock

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/VeerDubey/milk-management-91-sub004/internal/domain"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
	domstock "github.com/VeerDubey/milk-management-91-sub004/internal/domain/stock"
)

const (
	// Alerts older than this are hidden from the active view but kept stored.
	alertActiveWindow = 7 * 24 * time.Hour
	// ClearOldAlerts physically removes alerts older than this.
	alertRetention = 30 * 24 * time.Hour
)

// LedgerUseCase owns the movement log and the derived alert set. Both live
// as whole JSON collections under two keys of a KVStore, so every mutation
// is a read-modify-write of the full collection; a single mutex serializes
// writers (per-product locking would still race on the shared arrays).
type LedgerUseCase struct {
	mu       sync.Mutex
	kv       KVStore
	products repository.ProductRepository

	// Threshold for products without their own min_stock.
	defaultThreshold decimal.Decimal
}

// NewLedgerUseCase builds the use case. lowStockThreshold is the configured
// default low-stock threshold.
func NewLedgerUseCase(kv KVStore, products repository.ProductRepository, lowStockThreshold decimal.Decimal) *LedgerUseCase {
	return &LedgerUseCase{
		kv:               kv,
		products:         products,
		defaultThreshold: lowStockThreshold,
	}
}

// RecordMovementInput input to record one stock movement.
// Date defaults to now when zero. Quantity and Rate must be non-negative;
// a downward correction is an "out" or a negative-delta Adjust, never a
// negative quantity.
type RecordMovementInput struct {
	ProductID    string
	MovementType string // in, out, adjustment
	Quantity     decimal.Decimal
	Date         time.Time
	Rate         decimal.Decimal
	BatchNumber  string
	ExpiryDate   *time.Time
	Reason       string
}

// RecordMovement appends a movement to the log, recomputes the product's
// alerts and persists both collections. Returns the new movement's ID.
func (uc *LedgerUseCase) RecordMovement(ctx context.Context, in RecordMovementInput) (string, error) {
	switch in.MovementType {
	case entity.MovementTypeIn, entity.MovementTypeOut, entity.MovementTypeAdjustment:
	default:
		return "", domain.ErrInvalidInput
	}
	if in.ProductID == "" || in.Quantity.IsNegative() || in.Rate.IsNegative() {
		return "", domain.ErrInvalidInput
	}

	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", domain.ErrNotFound
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	movement := entity.StockMovement{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		MovementType: in.MovementType,
		Quantity:     in.Quantity,
		Date:         date,
		Rate:         in.Rate,
		BatchNumber:  in.BatchNumber,
		ExpiryDate:   in.ExpiryDate,
		Reason:       in.Reason,
		CreatedAt:    now,
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	movements, err := uc.loadMovements(ctx)
	if err != nil {
		return "", err
	}
	movements = append(movements, movement)
	if err := uc.save(ctx, MovementsKey, movements); err != nil {
		return "", err
	}
	// The alert write can still fail after the movement is durable; there is
	// no rollback. The next recompute for the product repairs the alert set.
	if err := uc.recomputeAlerts(ctx, product, movements, now); err != nil {
		return "", err
	}
	return movement.ID, nil
}

// Adjust records a manual correction as an "adjustment" movement with
// quantity |delta| and rate 0.
//
// Note the balance fold subtracts adjustments regardless of the sign of
// delta, so an upward correction still lowers the reported balance. This
// reproduces the system being ported; see the domain/stock tests.
func (uc *LedgerUseCase) Adjust(ctx context.Context, productID string, delta decimal.Decimal, reason string) (string, error) {
	return uc.RecordMovement(ctx, RecordMovementInput{
		ProductID:    productID,
		MovementType: entity.MovementTypeAdjustment,
		Quantity:     delta.Abs(),
		Rate:         decimal.Zero,
		Reason:       reason,
	})
}

// CurrentStock folds the movement log for the product. Unknown products
// fold to zero; reads stay lenient.
func (uc *LedgerUseCase) CurrentStock(ctx context.Context, productID string) (decimal.Decimal, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	movements, err := uc.loadMovements(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return domstock.CurrentStock(movements, productID), nil
}

// FIFOCost returns the cost of consuming quantity units, draining inbound
// batches oldest-first. Shortfall is silently ignored.
func (uc *LedgerUseCase) FIFOCost(ctx context.Context, productID string, quantity decimal.Decimal) (decimal.Decimal, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	movements, err := uc.loadMovements(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return domstock.FIFOCost(movements, productID, quantity), nil
}

// ProductMovements returns the product's movements newest-first.
// limit <= 0 means no cap.
func (uc *LedgerUseCase) ProductMovements(ctx context.Context, productID string, limit int) ([]entity.StockMovement, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	movements, err := uc.loadMovements(ctx)
	if err != nil {
		return nil, err
	}
	var out []entity.StockMovement
	for i := len(movements) - 1; i >= 0; i-- {
		if movements[i].ProductID != productID {
			continue
		}
		out = append(out, movements[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// ActiveAlerts returns alerts created within the last 7 days, wall clock at
// call time. Older alerts stay stored until ClearOldAlerts.
func (uc *LedgerUseCase) ActiveAlerts(ctx context.Context) ([]entity.StockAlert, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	alerts, err := uc.loadAlerts(ctx)
	if err != nil {
		return nil, err
	}
	cutoff := time.Now().Add(-alertActiveWindow)
	out := make([]entity.StockAlert, 0, len(alerts))
	for _, a := range alerts {
		if a.CreatedAt.After(cutoff) {
			out = append(out, a)
		}
	}
	return out, nil
}

// ClearOldAlerts physically removes alerts older than 30 days. Explicit
// maintenance call, never automatic. Returns how many were removed.
func (uc *LedgerUseCase) ClearOldAlerts(ctx context.Context) (int, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	alerts, err := uc.loadAlerts(ctx)
	if err != nil {
		return 0, err
	}
	cutoff := time.Now().Add(-alertRetention)
	kept := make([]entity.StockAlert, 0, len(alerts))
	for _, a := range alerts {
		if a.CreatedAt.After(cutoff) {
			kept = append(kept, a)
		}
	}
	removed := len(alerts) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := uc.save(ctx, AlertsKey, kept); err != nil {
		return 0, err
	}
	return removed, nil
}

// recomputeAlerts replaces the product's alert set from the current balance:
// stock ≤ threshold raises low_stock, stock < 0 additionally raises
// negative_stock. Caller holds the mutex.
func (uc *LedgerUseCase) recomputeAlerts(ctx context.Context, product *entity.Product, movements []entity.StockMovement, now time.Time) error {
	alerts, err := uc.loadAlerts(ctx)
	if err != nil {
		return err
	}
	kept := make([]entity.StockAlert, 0, len(alerts))
	for _, a := range alerts {
		if a.ProductID != product.ID {
			kept = append(kept, a)
		}
	}

	current := domstock.CurrentStock(movements, product.ID)
	threshold := uc.defaultThreshold
	if product.MinStock.GreaterThan(decimal.Zero) {
		threshold = product.MinStock
	}

	if current.LessThanOrEqual(threshold) {
		kept = append(kept, entity.StockAlert{
			ID:           uuid.New().String(),
			ProductID:    product.ID,
			ProductName:  product.Name,
			AlertType:    entity.AlertTypeLowStock,
			CurrentStock: current,
			Threshold:    threshold,
			Message:      fmt.Sprintf("Low stock for %s: %s %s left (threshold %s)", product.Name, current, product.Unit, threshold),
			CreatedAt:    now,
		})
	}
	if current.IsNegative() {
		kept = append(kept, entity.StockAlert{
			ID:           uuid.New().String(),
			ProductID:    product.ID,
			ProductName:  product.Name,
			AlertType:    entity.AlertTypeNegativeStock,
			CurrentStock: current,
			Threshold:    threshold,
			Message:      fmt.Sprintf("Negative stock for %s: %s %s. Recorded sales exceed recorded receipts.", product.Name, current, product.Unit),
			CreatedAt:    now,
		})
	}
	return uc.save(ctx, AlertsKey, kept)
}

func (uc *LedgerUseCase) loadMovements(ctx context.Context) ([]entity.StockMovement, error) {
	var movements []entity.StockMovement
	if err := uc.load(ctx, MovementsKey, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

func (uc *LedgerUseCase) loadAlerts(ctx context.Context) ([]entity.StockAlert, error) {
	var alerts []entity.StockAlert
	if err := uc.load(ctx, AlertsKey, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// load decodes one collection. A missing key is an empty collection; a key
// that exists but doesn't decode is surfaced as ErrCorruptState rather than
// silently treated as empty, because the next write would wipe the log.
func (uc *LedgerUseCase) load(ctx context.Context, key string, dest any) error {
	raw, err := uc.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode %s: %w: %v", key, domain.ErrCorruptState, err)
	}
	return nil
}

func (uc *LedgerUseCase) save(ctx context.Context, key string, collection any) error {
	raw, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := uc.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
