package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock movement types (conceptual value object).
const (
	MovementTypeIn         = "in"         // purchase / receipt
	MovementTypeOut        = "out"        // sale / delivery
	MovementTypeAdjustment = "adjustment" // manual correction
)

// StockMovement is an immutable stock ledger fact. Movements are never
// edited or deleted; corrections are recorded as new movements.
// BatchNumber and ExpiryDate are informational only and never enforced.
type StockMovement struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	MovementType string          `json:"movement_type"` // in, out, adjustment
	Quantity     decimal.Decimal `json:"quantity"`      // always non-negative
	Date         time.Time       `json:"date"`
	Rate         decimal.Decimal `json:"rate"` // unit cost
	BatchNumber  string          `json:"batch_number,omitempty"`
	ExpiryDate   *time.Time      `json:"expiry_date,omitempty"`
	Reason       string          `json:"reason,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
