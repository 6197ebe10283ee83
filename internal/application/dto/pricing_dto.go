package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SetRateOverrideRequest body for POST /api/rates.
type SetRateOverrideRequest struct {
	EntityKind    string          `json:"entity_kind"` // customer | supplier
	EntityID      string          `json:"entity_id"`
	ProductID     string          `json:"product_id"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveDate time.Time       `json:"effective_date"`
}

// RateOverrideResponse override representation in responses.
type RateOverrideResponse struct {
	ID            string          `json:"id"`
	EntityKind    string          `json:"entity_kind"`
	EntityID      string          `json:"entity_id"`
	ProductID     string          `json:"product_id"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveDate time.Time       `json:"effective_date"`
	IsActive      bool            `json:"is_active"`
}

// ResolvedRateResponse result of GET /api/rates/resolve.
type ResolvedRateResponse struct {
	EntityKind string          `json:"entity_kind"`
	EntityID   string          `json:"entity_id"`
	ProductID  string          `json:"product_id"`
	Rate       decimal.Decimal `json:"rate"`
	Overridden bool            `json:"overridden"`
}
