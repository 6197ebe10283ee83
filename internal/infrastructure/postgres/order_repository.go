package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implements the OrderRepository port over PostgreSQL. Orders are
// stored as a header row plus one order_items row per line.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository builds the persistence adapter for orders.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persists the order header and its items. Callers wanting atomicity
// run this inside a transaction (TxRunner).
func (r *OrderRepo) Create(order *entity.Order) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO orders (id, customer_id, date, total, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		order.ID, order.CustomerID, order.Date, order.Total, order.Status,
		order.Notes, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, item := range order.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, rate, amount)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, order.ID, item.ProductID, item.Quantity, item.Rate, item.Amount,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID fetches one order with its items. Returns (nil, nil) when absent.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	ctx := context.Background()
	var o entity.Order
	err := r.q.QueryRow(ctx, `
		SELECT id, customer_id, date, total, status, notes, created_at, updated_at
		FROM orders WHERE id = $1`, id).Scan(
		&o.ID, &o.CustomerID, &o.Date, &o.Total, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.loadItems(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

// ListByCustomer lists a customer's orders within [from, to], oldest first.
// A zero from means no lower bound.
func (r *OrderRepo) ListByCustomer(customerID string, from, to time.Time) ([]*entity.Order, error) {
	query := `
		SELECT id, customer_id, date, total, status, notes, created_at, updated_at
		FROM orders WHERE customer_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, customerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list orders by customer: %w", err)
	}
	defer rows.Close()
	return r.scanOrdersWithItems(rows)
}

// ListByDate lists all orders of one calendar day.
func (r *OrderRepo) ListByDate(date time.Time) ([]*entity.Order, error) {
	query := `
		SELECT id, customer_id, date, total, status, notes, created_at, updated_at
		FROM orders WHERE date::date = $1::date
		ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, date)
	if err != nil {
		return nil, fmt.Errorf("list orders by date: %w", err)
	}
	defer rows.Close()
	return r.scanOrdersWithItems(rows)
}

// UpdateStatus changes the order status.
func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

func (r *OrderRepo) scanOrdersWithItems(rows pgx.Rows) ([]*entity.Order, error) {
	var list []*entity.Order
	var ids []string
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Date, &o.Total, &o.Status,
			&o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	items, err := r.loadItems(context.Background(), ids)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		o.Items = items[o.ID]
	}
	return list, nil
}

// loadItems fetches the items of a set of orders in one query, keyed by
// order ID. Item order within an order follows insertion (id ties broken
// deterministically).
func (r *OrderRepo) loadItems(ctx context.Context, orderIDs []string) (map[string][]entity.OrderItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, order_id, product_id, quantity, rate, amount
		FROM order_items WHERE order_id = ANY($1)
		ORDER BY order_id, id`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()
	items := make(map[string][]entity.OrderItem)
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Rate, &it.Amount); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items[it.OrderID] = append(items[it.OrderID], it)
	}
	return items, rows.Err()
}
