// Package orders implements customer order bookkeeping: creation with
// resolved rates, stock ledger integration and status transitions.
package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/dto"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/pricing"
	appstock "github.com/VeerDubey/milk-management-91-sub004/internal/application/stock"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
)

// UseCase order use cases. Creation resolves each item's rate through the
// pricing use case and records "out" movements in the stock ledger.
type UseCase struct {
	txRunner  TxRunner
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	pricing   *pricing.UseCase
	ledger    *appstock.LedgerUseCase
}

// NewUseCase builds the use case. orders is the read-side repository; writes
// go through txRunner.
func NewUseCase(
	txRunner TxRunner,
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	pricingUC *pricing.UseCase,
	ledger *appstock.LedgerUseCase,
) *UseCase {
	return &UseCase{
		txRunner:  txRunner,
		orders:    orders,
		customers: customers,
		products:  products,
		pricing:   pricingUC,
		ledger:    ledger,
	}
}

// Create validates the order, resolves rates, persists header and items in
// one transaction and then records one "out" ledger movement per item.
//
// The ledger write happens after the order commit and has no rollback: a
// failed movement leaves the order stored and the ledger behind by one
// entry, surfaced to the caller as an error. A stock adjustment repairs it.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if !customer.IsActive {
		return nil, domain.ErrInactiveEntity
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}

	order := &entity.Order{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		Date:       date,
		Status:     entity.OrderStatusPending,
		Notes:      in.Notes,
		Total:      decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Resolved per item so a mid-list override applies only to its product.
	type ledgerLine struct {
		product *entity.Product
		qty     decimal.Decimal
	}
	var ledgerLines []ledgerLine
	for _, item := range in.Items {
		if !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.products.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		rate, err := uc.pricing.CustomerRate(in.CustomerID, product)
		if err != nil {
			return nil, err
		}
		amount := item.Quantity.Mul(rate)
		order.Items = append(order.Items, entity.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Rate:      rate,
			Amount:    amount,
		})
		order.Total = order.Total.Add(amount)
		ledgerLines = append(ledgerLines, ledgerLine{product: product, qty: item.Quantity})
	}

	err = uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository) error {
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}

	for _, line := range ledgerLines {
		_, err := uc.ledger.RecordMovement(ctx, appstock.RecordMovementInput{
			ProductID:    line.product.ID,
			MovementType: entity.MovementTypeOut,
			Quantity:     line.qty,
			Date:         date,
			Rate:         line.product.CostPrice,
			Reason:       fmt.Sprintf("order %s", order.ID),
		})
		if err != nil {
			return nil, fmt.Errorf("order %s stored but ledger movement failed: %w", order.ID, err)
		}
	}

	return toOrderResponse(order), nil
}

// GetByID fetches one order with its items.
func (uc *UseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// ListByCustomer lists a customer's orders within a date range.
func (uc *UseCase) ListByCustomer(customerID string, from, to time.Time) ([]*dto.OrderResponse, error) {
	list, err := uc.orders.ListByCustomer(customerID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// ListByDate lists all orders of one day (delivery planning).
func (uc *UseCase) ListByDate(date time.Time) ([]*dto.OrderResponse, error) {
	list, err := uc.orders.ListByDate(date)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// UpdateStatus moves an order to delivered or cancelled. Cancelling does not
// revert ledger movements; corrections go through stock adjustments.
func (uc *UseCase) UpdateStatus(id, status string) error {
	if status != entity.OrderStatusDelivered && status != entity.OrderStatusCancelled {
		return domain.ErrInvalidInput
	}
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status == entity.OrderStatusCancelled {
		return domain.ErrConflict
	}
	return uc.orders.UpdateStatus(id, status)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Rate:      it.Rate,
			Amount:    it.Amount,
		})
	}
	return &dto.OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Date:       o.Date,
		Items:      items,
		Total:      o.Total,
		Status:     o.Status,
		Notes:      o.Notes,
	}
}
