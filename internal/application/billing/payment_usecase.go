// Package billing implements payments, outstanding dues and invoice
// generation.
package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/dto"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
)

// PaymentUseCase records customer payments and computes outstanding dues.
type PaymentUseCase struct {
	payments  repository.PaymentRepository
	customers repository.CustomerRepository
	orders    repository.OrderRepository
}

// NewPaymentUseCase builds the use case.
func NewPaymentUseCase(
	payments repository.PaymentRepository,
	customers repository.CustomerRepository,
	orders repository.OrderRepository,
) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, customers: customers, orders: orders}
}

// Create records a payment against a customer's running balance.
func (uc *PaymentUseCase) Create(in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.CustomerID == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	switch in.Mode {
	case entity.PaymentModeCash, entity.PaymentModeUPI, entity.PaymentModeBank, entity.PaymentModeCheque:
	case "":
		in.Mode = entity.PaymentModeCash
	default:
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	payment := &entity.Payment{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		Date:       date,
		Amount:     in.Amount,
		Mode:       in.Mode,
		Reference:  in.Reference,
		Notes:      in.Notes,
		CreatedAt:  now,
	}
	if err := uc.payments.Create(payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// ListByCustomer lists a customer's payments.
func (uc *PaymentUseCase) ListByCustomer(customerID string) ([]*dto.PaymentResponse, error) {
	list, err := uc.payments.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPaymentResponse(p))
	}
	return out, nil
}

// OutstandingDues computes a customer's balance over the loaded collections:
// Σ(order totals) − Σ(payments), cancelled orders excluded. Payments are not
// allocated against specific orders; a negative result is an advance.
func (uc *PaymentUseCase) OutstandingDues(customerID string) (*dto.CustomerDuesResponse, error) {
	customer, err := uc.customers.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	orders, err := uc.orders.ListByCustomer(customerID, time.Time{}, now)
	if err != nil {
		return nil, err
	}
	totalOrdered := decimal.Zero
	for _, o := range orders {
		if o.Status == entity.OrderStatusCancelled {
			continue
		}
		totalOrdered = totalOrdered.Add(o.Total)
	}

	payments, err := uc.payments.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	totalPaid := decimal.Zero
	for _, p := range payments {
		totalPaid = totalPaid.Add(p.Amount)
	}

	return &dto.CustomerDuesResponse{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		TotalOrdered: totalOrdered,
		TotalPaid:    totalPaid,
		Outstanding:  totalOrdered.Sub(totalPaid),
		AsOf:         now,
	}, nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:         p.ID,
		CustomerID: p.CustomerID,
		Date:       p.Date,
		Amount:     p.Amount,
		Mode:       p.Mode,
		Reference:  p.Reference,
	}
}
