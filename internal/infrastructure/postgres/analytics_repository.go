package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo read-only reporting queries for the dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository builds the analytics adapter.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesTotals returns total order revenue and order count within the date
// range. Cancelled orders are excluded; COALESCE keeps empty periods at zero.
func (r *AnalyticsRepo) GetSalesTotals(ctx context.Context, from, to time.Time) (decimal.Decimal, int, error) {
	const query = `
	SELECT COALESCE(SUM(total), 0) AS revenue, COUNT(*) AS orders
	FROM orders
	WHERE date BETWEEN $1 AND $2
	  AND status <> 'cancelled'`

	var revenue decimal.Decimal
	var count int
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&revenue, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("analytics.GetSalesTotals: %w", err)
	}
	return revenue, count, nil
}

// GetOutstandingTotal returns Σ(order totals) − Σ(payments) across all
// customers, cancelled orders excluded. A negative result means advances
// exceed dues overall.
func (r *AnalyticsRepo) GetOutstandingTotal(ctx context.Context) (decimal.Decimal, error) {
	const query = `
	SELECT
	    COALESCE((SELECT SUM(total)  FROM orders   WHERE status <> 'cancelled'), 0)
	  - COALESCE((SELECT SUM(amount) FROM payments), 0) AS outstanding`

	var outstanding decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&outstanding); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.GetOutstandingTotal: %w", err)
	}
	return outstanding, nil
}

// GetTopProducts returns the `limit` products with the most units sold in
// the date range, cancelled orders excluded.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.ProductSalesResult, error) {
	const query = `
	SELECT
	    p.id              AS product_id,
	    p.name            AS product_name,
	    SUM(i.quantity)   AS units_sold,
	    SUM(i.amount)     AS revenue
	FROM order_items i
	JOIN orders   o ON o.id = i.order_id
	JOIN products p ON p.id = i.product_id
	WHERE o.date BETWEEN $1 AND $2
	  AND o.status <> 'cancelled'
	GROUP BY p.id, p.name
	ORDER BY units_sold DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductSalesResult
	for rows.Next() {
		var row repository.ProductSalesResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts rows: %w", err)
	}
	if results == nil {
		results = []repository.ProductSalesResult{}
	}
	return results, nil
}
