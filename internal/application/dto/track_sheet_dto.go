package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTrackEntry one customer/product cell of a new track sheet; the rate
// is resolved server-side per customer.
type CreateTrackEntry struct {
	CustomerID string          `json:"customer_id"`
	ProductID  string          `json:"product_id"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// CreateTrackSheetRequest body for POST /api/track-sheets.
type CreateTrackSheetRequest struct {
	Date    time.Time          `json:"date"`
	Route   string             `json:"route"`
	Entries []CreateTrackEntry `json:"entries"`
}

// TrackEntryResponse one resolved cell of a track sheet.
type TrackEntryResponse struct {
	CustomerID string          `json:"customer_id"`
	ProductID  string          `json:"product_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Rate       decimal.Decimal `json:"rate"`
	Amount     decimal.Decimal `json:"amount"`
}

// TrackSheetResponse track sheet representation in responses.
type TrackSheetResponse struct {
	ID            string               `json:"id"`
	Date          time.Time            `json:"date"`
	Route         string               `json:"route"`
	Entries       []TrackEntryResponse `json:"entries"`
	TotalQuantity decimal.Decimal      `json:"total_quantity"`
	TotalAmount   decimal.Decimal      `json:"total_amount"`
}
