package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrackSheet is one day's delivery run for a route: a grid of customer ×
// product quantities with resolved rates, used by the delivery person.
type TrackSheet struct {
	ID            string
	Date          time.Time
	Route         string // area name
	Entries       []TrackEntry
	TotalQuantity decimal.Decimal
	TotalAmount   decimal.Decimal
	CreatedAt     time.Time
}

// TrackEntry is one customer/product cell of a track sheet.
type TrackEntry struct {
	ID         string
	SheetID    string
	CustomerID string
	ProductID  string
	Quantity   decimal.Decimal
	Rate       decimal.Decimal
	Amount     decimal.Decimal
}
