package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock alert types. AlertTypeExpiryWarning exists in the persisted schema
// but is never produced: expiry tracking is a data field only.
const (
	AlertTypeLowStock      = "low_stock"
	AlertTypeExpiryWarning = "expiry_warning"
	AlertTypeNegativeStock = "negative_stock"
)

// StockAlert is a derived, transient fact recomputed from the movement log.
// The recompute replaces a product's whole alert set, so at most one alert
// of each type exists per product at any time.
type StockAlert struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	AlertType    string          `json:"alert_type"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	Threshold    decimal.Decimal `json:"threshold,omitempty"`
	Message      string          `json:"message"`
	CreatedAt    time.Time       `json:"created_at"`
}
