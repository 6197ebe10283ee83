package orders

import (
	"context"

	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
)

// TxRunner executes a function inside a DB transaction, passing a repository
// bound to that transaction. Guarantees the order header and its items are
// written atomically.
type TxRunner interface {
	Run(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}
