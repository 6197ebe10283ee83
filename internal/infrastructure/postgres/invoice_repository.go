package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/VeerDubey/milk-management-91-sub004/internal/domain"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements the InvoiceRepository port over PostgreSQL.
// Invoices are stored as a header row plus one invoice_lines row per line.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the persistence adapter for invoices.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persists the invoice header and its lines. Number is unique;
// generation runs inside a transaction so CountForPeriod and this insert are
// atomic.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO invoices (id, number, customer_id, period_from, period_to, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		invoice.ID, invoice.Number, invoice.CustomerID, invoice.PeriodFrom,
		invoice.PeriodTo, invoice.Total, invoice.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	for _, line := range invoice.Lines {
		_, err := r.q.Exec(ctx, `
			INSERT INTO invoice_lines (id, invoice_id, product_id, quantity, rate, amount)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			line.ID, invoice.ID, line.ProductID, line.Quantity, line.Rate, line.Amount,
		)
		if err != nil {
			return fmt.Errorf("insert invoice line: %w", err)
		}
	}
	return nil
}

// GetByID fetches one invoice with its lines. Returns (nil, nil) when absent.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	ctx := context.Background()
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, `
		SELECT id, number, customer_id, period_from, period_to, total, created_at
		FROM invoices WHERE id = $1`, id).Scan(
		&inv.ID, &inv.Number, &inv.CustomerID, &inv.PeriodFrom, &inv.PeriodTo,
		&inv.Total, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	lines, err := r.loadLines(ctx, []string{inv.ID})
	if err != nil {
		return nil, err
	}
	inv.Lines = lines[inv.ID]
	return &inv, nil
}

// ListByCustomer lists a customer's invoices with pagination, newest first.
func (r *InvoiceRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.Invoice, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, `
		SELECT id, number, customer_id, period_from, period_to, total, created_at
		FROM invoices WHERE customer_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	var ids []string
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.Number, &inv.CustomerID, &inv.PeriodFrom,
			&inv.PeriodTo, &inv.Total, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
		ids = append(ids, inv.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	lines, err := r.loadLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, inv := range list {
		inv.Lines = lines[inv.ID]
	}
	return list, nil
}

// CountForPeriod counts the invoices created in one calendar month. Feeds
// the sequential part of the invoice number.
func (r *InvoiceRepo) CountForPeriod(year int, month int) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(), `
		SELECT COUNT(*) FROM invoices
		WHERE EXTRACT(YEAR FROM created_at) = $1 AND EXTRACT(MONTH FROM created_at) = $2`,
		year, month).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return count, nil
}

func (r *InvoiceRepo) loadLines(ctx context.Context, invoiceIDs []string) (map[string][]entity.InvoiceLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, invoice_id, product_id, quantity, rate, amount
		FROM invoice_lines WHERE invoice_id = ANY($1)
		ORDER BY invoice_id, id`, invoiceIDs)
	if err != nil {
		return nil, fmt.Errorf("load invoice lines: %w", err)
	}
	defer rows.Close()
	lines := make(map[string][]entity.InvoiceLine)
	for rows.Next() {
		var l entity.InvoiceLine
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.ProductID, &l.Quantity, &l.Rate, &l.Amount); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		lines[l.InvoiceID] = append(lines[l.InvoiceID], l)
	}
	return lines, rows.Err()
}
