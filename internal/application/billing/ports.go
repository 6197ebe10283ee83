package billing

import (
	"context"

	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
)

// BillingTxRunner executes a function inside a DB transaction with order and
// invoice repositories bound to that transaction, so the invoice number
// sequence and the stored invoice stay consistent under concurrent requests.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}
