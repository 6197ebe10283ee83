package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordMovementRequest body for POST /api/stock/movements.
type RecordMovementRequest struct {
	ProductID    string          `json:"product_id"`
	MovementType string          `json:"movement_type"` // in, out, adjustment
	Quantity     decimal.Decimal `json:"quantity"`
	Date         time.Time       `json:"date"`
	Rate         decimal.Decimal `json:"rate"`
	BatchNumber  string          `json:"batch_number"`
	ExpiryDate   *time.Time      `json:"expiry_date"`
	Reason       string          `json:"reason"`
}

// AdjustStockRequest body for POST /api/stock/adjustments.
// Quantity may be negative; the ledger records its magnitude.
type AdjustStockRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason"`
}

// StockLevelResponse current balance of one product.
type StockLevelResponse struct {
	ProductID    string          `json:"product_id"`
	CurrentStock decimal.Decimal `json:"current_stock"`
}

// FIFOCostResponse FIFO consumption cost for a requested quantity.
type FIFOCostResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Cost      decimal.Decimal `json:"cost"`
}
