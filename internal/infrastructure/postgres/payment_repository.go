package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implements the PaymentRepository port over PostgreSQL.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository builds the persistence adapter for payments.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persists a new payment.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, customer_id, date, amount, mode, reference, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.CustomerID, payment.Date, payment.Amount,
		payment.Mode, payment.Reference, payment.Notes, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID fetches a payment by ID. Returns (nil, nil) when absent.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `
		SELECT id, customer_id, date, amount, mode, reference, notes, created_at
		FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CustomerID, &p.Date, &p.Amount, &p.Mode, &p.Reference, &p.Notes, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// ListByCustomer lists a customer's payments, oldest first.
func (r *PaymentRepo) ListByCustomer(customerID string) ([]*entity.Payment, error) {
	query := `
		SELECT id, customer_id, date, amount, mode, reference, notes, created_at
		FROM payments WHERE customer_id = $1 ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list payments by customer: %w", err)
	}
	defer rows.Close()
	return scanPayments(rows)
}

// List lists payments with pagination, newest first.
func (r *PaymentRepo) List(limit, offset int) ([]*entity.Payment, error) {
	query := `
		SELECT id, customer_id, date, amount, mode, reference, notes, created_at
		FROM payments ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	return scanPayments(rows)
}

func scanPayments(rows pgx.Rows) ([]*entity.Payment, error) {
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.CustomerID, &p.Date, &p.Amount, &p.Mode,
			&p.Reference, &p.Notes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
