package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/stock"
)

func mov(productID, movType string, qty, rate float64, day int) entity.StockMovement {
	return entity.StockMovement{
		ProductID:    productID,
		MovementType: movType,
		Quantity:     decimal.NewFromFloat(qty),
		Rate:         decimal.NewFromFloat(rate),
		Date:         time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestCurrentStock_BalanceFold(t *testing.T) {
	movs := []entity.StockMovement{
		mov("milk-1l", entity.MovementTypeIn, 50, 20, 1),
		mov("milk-1l", entity.MovementTypeOut, 30, 0, 2),
		mov("milk-1l", entity.MovementTypeIn, 25, 22, 3),
		mov("milk-1l", entity.MovementTypeOut, 10, 0, 4),
		mov("curd-500g", entity.MovementTypeIn, 99, 15, 1), // other product, ignored
	}

	got := stock.CurrentStock(movs, "milk-1l")
	assert.True(t, got.Equal(decimal.NewFromInt(35)), "50-30+25-10 = 35, got %s", got)
}

func TestCurrentStock_UnknownProductIsZero(t *testing.T) {
	movs := []entity.StockMovement{mov("milk-1l", entity.MovementTypeIn, 10, 20, 1)}
	assert.True(t, stock.CurrentStock(movs, "ghee-1kg").IsZero())
}

// Adjustments always subtract in the fold even though they are recorded with
// a positive magnitude, so an upward correction lowers the reported balance.
// This pins the ported behavior (under scrutiny as a likely latent defect);
// a deliberate fix must update this test and the fold together.
func TestCurrentStock_AdjustmentAlwaysSubtracts(t *testing.T) {
	movs := []entity.StockMovement{
		mov("milk-1l", entity.MovementTypeIn, 50, 20, 1),
		mov("milk-1l", entity.MovementTypeAdjustment, 5, 0, 2),
	}

	got := stock.CurrentStock(movs, "milk-1l")
	assert.True(t, got.Equal(decimal.NewFromInt(45)), "adjustment of |5| must subtract: got %s", got)
}

func TestFIFOCost_DrainsOldestBatchFirst(t *testing.T) {
	movs := []entity.StockMovement{
		// Recorded out of order on purpose: sorting is by date, not position.
		mov("milk-1l", entity.MovementTypeIn, 5, 8, 2),
		mov("milk-1l", entity.MovementTypeIn, 10, 5, 1),
	}

	got := stock.FIFOCost(movs, "milk-1l", decimal.NewFromInt(12))
	assert.True(t, got.Equal(decimal.NewFromInt(66)), "10*5 + 2*8 = 66, got %s", got)
}

func TestFIFOCost_ShortfallIsSilentlyIgnored(t *testing.T) {
	movs := []entity.StockMovement{
		mov("milk-1l", entity.MovementTypeIn, 10, 5, 1),
	}

	// Requesting more than available returns the cost of what is available;
	// no error, no sentinel value.
	got15 := stock.FIFOCost(movs, "milk-1l", decimal.NewFromInt(15))
	got10 := stock.FIFOCost(movs, "milk-1l", decimal.NewFromInt(10))
	assert.True(t, got15.Equal(got10), "cost of 15 (%s) must equal cost of 10 (%s)", got15, got10)
	assert.True(t, got15.Equal(decimal.NewFromInt(50)))
}

func TestFIFOCost_IgnoresOutAndAdjustmentMovements(t *testing.T) {
	movs := []entity.StockMovement{
		mov("milk-1l", entity.MovementTypeIn, 10, 5, 1),
		mov("milk-1l", entity.MovementTypeOut, 10, 0, 2),
		mov("milk-1l", entity.MovementTypeAdjustment, 3, 0, 3),
	}

	// Only inbound batches feed the FIFO cost; prior consumption is not
	// tracked against them.
	got := stock.FIFOCost(movs, "milk-1l", decimal.NewFromInt(10))
	assert.True(t, got.Equal(decimal.NewFromInt(50)))
}

func TestFIFOCost_ZeroQuantity(t *testing.T) {
	movs := []entity.StockMovement{mov("milk-1l", entity.MovementTypeIn, 10, 5, 1)}
	assert.True(t, stock.FIFOCost(movs, "milk-1l", decimal.Zero).IsZero())
}
