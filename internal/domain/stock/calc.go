// Package stock holds the pure stock-ledger arithmetic (domain services):
// the balance fold and the FIFO consumption cost. No I/O, no persistence.
package stock

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
)

// CurrentStock folds the full movement log for one product:
// +quantity for "in", −quantity for "out" and "adjustment".
//
// Adjustments are recorded with a positive magnitude and always subtract
// here, so a correction meant to raise stock lowers the reported balance.
// That matches the behavior of the system being ported; tests pin it as a
// property under scrutiny. Keep both in sync if this ever changes.
func CurrentStock(movements []entity.StockMovement, productID string) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if m.ProductID != productID {
			continue
		}
		switch m.MovementType {
		case entity.MovementTypeIn:
			total = total.Add(m.Quantity)
		case entity.MovementTypeOut, entity.MovementTypeAdjustment:
			total = total.Sub(m.Quantity)
		}
	}
	return total
}

// FIFOCost computes the cost of consuming quantity units of a product by
// draining inbound batches oldest-date-first: each batch contributes
// min(batchQty, remaining) * batchRate.
//
// Prior consumption is not tracked against batches; every call sees the full
// inbound history. If the batches run out before quantity is satisfied, the
// shortfall is silently ignored and the cost covers only the available units.
func FIFOCost(movements []entity.StockMovement, productID string, quantity decimal.Decimal) decimal.Decimal {
	var batches []entity.StockMovement
	for _, m := range movements {
		if m.ProductID == productID && m.MovementType == entity.MovementTypeIn {
			batches = append(batches, m)
		}
	}
	sort.SliceStable(batches, func(i, j int) bool {
		return batches[i].Date.Before(batches[j].Date)
	})

	cost := decimal.Zero
	remaining := quantity
	for _, b := range batches {
		if !remaining.GreaterThan(decimal.Zero) {
			break
		}
		consume := decimal.Min(b.Quantity, remaining)
		cost = cost.Add(consume.Mul(b.Rate))
		remaining = remaining.Sub(consume)
	}
	return cost
}
