package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ProductSalesResult raw result of the top-products query.
// Produced by the DB; the use case turns it into a DTO.
type ProductSalesResult struct {
	ProductID   string
	ProductName string
	UnitsSold   decimal.Decimal
	Revenue     decimal.Decimal
}

// AnalyticsRepository defines the read-only reporting queries.
// Implementations never modify data.
type AnalyticsRepository interface {
	// GetSalesTotals returns total order revenue and order count within the
	// date range (cancelled orders excluded).
	GetSalesTotals(ctx context.Context, from, to time.Time) (decimal.Decimal, int, error)

	// GetOutstandingTotal returns Σ(order totals) − Σ(payments) across all
	// customers (cancelled orders excluded).
	GetOutstandingTotal(ctx context.Context) (decimal.Decimal, error)

	// GetTopProducts returns products ordered by units sold descending within
	// the date range. limit caps the result.
	GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]ProductSalesResult, error)
}
