package stock_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VeerDubey/milk-management-91-sub004/internal/domain"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
	appstock "github.com/VeerDubey/milk-management-91-sub004/internal/application/stock"
)

// memKV is an in-memory KVStore for tests.
type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV { return &memKV{data: map[string][]byte{}} }

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

// stubProductRepo serves a fixed set of products.
type stubProductRepo struct {
	products map[string]*entity.Product
}

func (s *stubProductRepo) Create(*entity.Product) error          { return nil }
func (s *stubProductRepo) Update(*entity.Product) error          { return nil }
func (s *stubProductRepo) Delete(string) error                   { return nil }
func (s *stubProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (s *stubProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }

func (s *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	return s.products[id], nil
}

func testProduct() *entity.Product {
	return &entity.Product{
		ID:    "milk-1l",
		SKU:   "MILK-1L",
		Name:  "Full Cream Milk 1L",
		Unit:  "liter",
		Price: decimal.NewFromInt(52),
	}
}

func newLedger(kv *memKV, threshold int64) *appstock.LedgerUseCase {
	repo := &stubProductRepo{products: map[string]*entity.Product{"milk-1l": testProduct()}}
	return appstock.NewLedgerUseCase(kv, repo, decimal.NewFromInt(threshold))
}

func record(t *testing.T, uc *appstock.LedgerUseCase, movType string, qty, rate int64, day int) string {
	t.Helper()
	id, err := uc.RecordMovement(context.Background(), appstock.RecordMovementInput{
		ProductID:    "milk-1l",
		MovementType: movType,
		Quantity:     decimal.NewFromInt(qty),
		Rate:         decimal.NewFromInt(rate),
		Date:         time.Date(2025, 3, day, 6, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return id
}

func storedAlerts(t *testing.T, kv *memKV) []entity.StockAlert {
	t.Helper()
	raw := kv.data[appstock.AlertsKey]
	if len(raw) == 0 {
		return nil
	}
	var alerts []entity.StockAlert
	require.NoError(t, json.Unmarshal(raw, &alerts))
	return alerts
}

func TestRecordMovement_ValidatesInput(t *testing.T) {
	uc := newLedger(newMemKV(), 10)
	ctx := context.Background()

	_, err := uc.RecordMovement(ctx, appstock.RecordMovementInput{
		ProductID: "milk-1l", MovementType: "transfer", Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unknown movement type")

	_, err = uc.RecordMovement(ctx, appstock.RecordMovementInput{
		ProductID: "milk-1l", MovementType: entity.MovementTypeIn, Quantity: decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "negative quantity")

	_, err = uc.RecordMovement(ctx, appstock.RecordMovementInput{
		ProductID: "ghee-1kg", MovementType: entity.MovementTypeIn, Quantity: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "unknown product")
}

// Scenario: in 50 @ 20 with threshold 10 -> stock 50, no alerts; out 45 ->
// stock 5, one low_stock alert carrying current stock and threshold.
func TestRecordMovement_LowStockAlert(t *testing.T) {
	kv := newMemKV()
	uc := newLedger(kv, 10)

	record(t, uc, entity.MovementTypeIn, 50, 20, 1)
	assert.Empty(t, storedAlerts(t, kv))

	record(t, uc, entity.MovementTypeOut, 45, 0, 2)

	stockNow, err := uc.CurrentStock(context.Background(), "milk-1l")
	require.NoError(t, err)
	assert.True(t, stockNow.Equal(decimal.NewFromInt(5)))

	alerts := storedAlerts(t, kv)
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.AlertTypeLowStock, alerts[0].AlertType)
	assert.True(t, alerts[0].CurrentStock.Equal(decimal.NewFromInt(5)))
	assert.True(t, alerts[0].Threshold.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "Full Cream Milk 1L", alerts[0].ProductName)
}

// Going below zero keeps the low_stock alert and adds negative_stock; the
// two coexist for the same product.
func TestRecordMovement_NegativeStockAlertCoexists(t *testing.T) {
	kv := newMemKV()
	uc := newLedger(kv, 10)

	record(t, uc, entity.MovementTypeIn, 50, 20, 1)
	record(t, uc, entity.MovementTypeOut, 45, 0, 2)
	record(t, uc, entity.MovementTypeOut, 10, 0, 3)

	stockNow, err := uc.CurrentStock(context.Background(), "milk-1l")
	require.NoError(t, err)
	assert.True(t, stockNow.Equal(decimal.NewFromInt(-5)))

	alerts := storedAlerts(t, kv)
	require.Len(t, alerts, 2)
	types := []string{alerts[0].AlertType, alerts[1].AlertType}
	assert.Contains(t, types, entity.AlertTypeLowStock)
	assert.Contains(t, types, entity.AlertTypeNegativeStock)
}

// The recompute is destructive-replace per product: however many movements
// are recorded, the product never holds more than one alert of each type,
// and zero when stock stays above threshold.
func TestRecordMovement_AlertRecomputeIsIdempotent(t *testing.T) {
	kv := newMemKV()
	uc := newLedger(kv, 10)

	record(t, uc, entity.MovementTypeIn, 100, 20, 1)
	record(t, uc, entity.MovementTypeIn, 100, 21, 2)
	assert.Empty(t, storedAlerts(t, kv))

	for day := 3; day < 8; day++ {
		record(t, uc, entity.MovementTypeOut, 39, 0, day)
	}
	// 200 - 5*39 = 5, below threshold after several recomputes
	alerts := storedAlerts(t, kv)
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.AlertTypeLowStock, alerts[0].AlertType)
}

func TestAdjust_RecordsAbsoluteQuantityAtZeroRate(t *testing.T) {
	kv := newMemKV()
	uc := newLedger(kv, 1)
	ctx := context.Background()

	record(t, uc, entity.MovementTypeIn, 50, 20, 1)
	_, err := uc.Adjust(ctx, "milk-1l", decimal.NewFromInt(-3), "spoiled packets")
	require.NoError(t, err)

	movs, err := uc.ProductMovements(ctx, "milk-1l", 1)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeAdjustment, movs[0].MovementType)
	assert.True(t, movs[0].Quantity.Equal(decimal.NewFromInt(3)), "magnitude is stored, not the sign")
	assert.True(t, movs[0].Rate.IsZero())
	assert.Equal(t, "spoiled packets", movs[0].Reason)

	stockNow, err := uc.CurrentStock(ctx, "milk-1l")
	require.NoError(t, err)
	assert.True(t, stockNow.Equal(decimal.NewFromInt(47)))
}

func TestProductMovements_NewestFirstWithCap(t *testing.T) {
	uc := newLedger(newMemKV(), 1)
	ctx := context.Background()

	record(t, uc, entity.MovementTypeIn, 10, 20, 1)
	record(t, uc, entity.MovementTypeIn, 20, 20, 2)
	record(t, uc, entity.MovementTypeIn, 30, 20, 3)

	movs, err := uc.ProductMovements(ctx, "milk-1l", 2)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assert.True(t, movs[0].Quantity.Equal(decimal.NewFromInt(30)))
	assert.True(t, movs[1].Quantity.Equal(decimal.NewFromInt(20)))

	all, err := uc.ProductMovements(ctx, "milk-1l", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestFIFOCost_ThroughLedger(t *testing.T) {
	uc := newLedger(newMemKV(), 1)
	ctx := context.Background()

	record(t, uc, entity.MovementTypeIn, 10, 5, 1)
	record(t, uc, entity.MovementTypeIn, 5, 8, 2)

	cost, err := uc.FIFOCost(ctx, "milk-1l", decimal.NewFromInt(12))
	require.NoError(t, err)
	assert.True(t, cost.Equal(decimal.NewFromInt(66)), "10*5 + 2*8")
}

// An alert created 8 days ago drops out of the active view but stays stored;
// only an explicit ClearOldAlerts removes entries past 30 days.
func TestAlertExpiry_ActiveViewVersusRetention(t *testing.T) {
	kv := newMemKV()
	uc := newLedger(kv, 10)
	ctx := context.Background()

	seed := []entity.StockAlert{
		{ID: "a-old", ProductID: "curd-500g", AlertType: entity.AlertTypeLowStock, CreatedAt: time.Now().Add(-8 * 24 * time.Hour)},
		{ID: "a-ancient", ProductID: "ghee-1kg", AlertType: entity.AlertTypeLowStock, CreatedAt: time.Now().Add(-31 * 24 * time.Hour)},
		{ID: "a-fresh", ProductID: "paneer-200g", AlertType: entity.AlertTypeLowStock, CreatedAt: time.Now().Add(-time.Hour)},
	}
	raw, err := json.Marshal(seed)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, appstock.AlertsKey, raw))

	active, err := uc.ActiveAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "a-fresh", active[0].ID)

	assert.Len(t, storedAlerts(t, kv), 3, "inactive alerts are not deleted by the view")

	removed, err := uc.ClearOldAlerts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed, "only the 31-day-old alert crosses the retention cutoff")

	left := storedAlerts(t, kv)
	require.Len(t, left, 2)
	for _, a := range left {
		assert.NotEqual(t, "a-ancient", a.ID)
	}
}

func TestLoad_CorruptCollectionIsSurfaced(t *testing.T) {
	kv := newMemKV()
	uc := newLedger(kv, 10)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, appstock.MovementsKey, []byte("{not json")))

	_, err := uc.CurrentStock(ctx, "milk-1l")
	assert.ErrorIs(t, err, domain.ErrCorruptState)

	// The corrupt log is never overwritten by a subsequent write path.
	_, err = uc.RecordMovement(ctx, appstock.RecordMovementInput{
		ProductID: "milk-1l", MovementType: entity.MovementTypeIn, Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrCorruptState)
	assert.Equal(t, []byte("{not json"), kv.data[appstock.MovementsKey])
}
