package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/billing"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/orders"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/tracksheet"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
)

// Ensure TxRunner implements the transaction ports of each use case.
var _ orders.TxRunner = (*TxRunner)(nil)
var _ billing.BillingTxRunner = (*TxRunner)(nil)
var _ tracksheet.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner from the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run starts a transaction, runs fn with an order repository bound to the tx
// and commits or rolls back.
func (r *TxRunner) Run(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOrderRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunBilling starts a transaction with order and invoice repositories (used
// by invoice generation so numbering and insert are atomic).
func (r *TxRunner) RunBilling(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOrderRepository(tx), NewInvoiceRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunTrackSheet starts a transaction with a track sheet repository bound to
// it (header and entries written together).
func (r *TxRunner) RunTrackSheet(ctx context.Context, fn func(sheetRepo repository.TrackSheetRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewTrackSheetRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
