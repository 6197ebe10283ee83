package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/dto"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
)

// InvoiceUseCase generates periodic invoices from a customer's stored
// orders. Only the invoice data is produced; rendering is out of scope.
type InvoiceUseCase struct {
	txRunner  BillingTxRunner
	customers repository.CustomerRepository
	products  repository.ProductRepository
	invoices  repository.InvoiceRepository
}

// NewInvoiceUseCase builds the use case. invoices is the read-side
// repository; writes go through txRunner.
func NewInvoiceUseCase(
	txRunner BillingTxRunner,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	invoices repository.InvoiceRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{txRunner: txRunner, customers: customers, products: products, invoices: invoices}
}

// Generate builds one invoice from the customer's non-cancelled orders in
// [from, to]: one line per product with summed quantity and amount, the line
// rate being the quantity-weighted average. Number and insert happen in one
// transaction so the INV-<YYYYMM>-<n> sequence stays gapless per month.
func (uc *InvoiceUseCase) Generate(ctx context.Context, in dto.GenerateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID == "" || in.From.IsZero() || in.To.IsZero() || in.To.Before(in.From) {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	var invoice *entity.Invoice
	err = uc.txRunner.RunBilling(ctx, func(
		orderRepo repository.OrderRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		orders, err := orderRepo.ListByCustomer(in.CustomerID, in.From, in.To)
		if err != nil {
			return err
		}

		type agg struct {
			quantity decimal.Decimal
			amount   decimal.Decimal
		}
		totals := map[string]*agg{}
		var productOrder []string // stable line order: first appearance
		grandTotal := decimal.Zero
		for _, o := range orders {
			if o.Status == entity.OrderStatusCancelled {
				continue
			}
			for _, item := range o.Items {
				a, ok := totals[item.ProductID]
				if !ok {
					a = &agg{quantity: decimal.Zero, amount: decimal.Zero}
					totals[item.ProductID] = a
					productOrder = append(productOrder, item.ProductID)
				}
				a.quantity = a.quantity.Add(item.Quantity)
				a.amount = a.amount.Add(item.Amount)
				grandTotal = grandTotal.Add(item.Amount)
			}
		}
		if len(productOrder) == 0 {
			return domain.ErrNothingToInvoice
		}

		now := time.Now()
		count, err := invoiceRepo.CountForPeriod(now.Year(), int(now.Month()))
		if err != nil {
			return err
		}
		invoice = &entity.Invoice{
			ID:         uuid.New().String(),
			Number:     fmt.Sprintf("INV-%04d%02d-%04d", now.Year(), int(now.Month()), count+1),
			CustomerID: in.CustomerID,
			PeriodFrom: in.From,
			PeriodTo:   in.To,
			Total:      grandTotal,
			CreatedAt:  now,
		}
		for _, productID := range productOrder {
			a := totals[productID]
			rate := decimal.Zero
			if a.quantity.GreaterThan(decimal.Zero) {
				rate = a.amount.Div(a.quantity)
			}
			invoice.Lines = append(invoice.Lines, entity.InvoiceLine{
				ID:        uuid.New().String(),
				InvoiceID: invoice.ID,
				ProductID: productID,
				Quantity:  a.quantity,
				Rate:      rate,
				Amount:    a.amount,
			})
		}
		return invoiceRepo.Create(invoice)
	})
	if err != nil {
		return nil, err
	}
	return uc.toInvoiceResponse(invoice)
}

// GetByID fetches one invoice with its lines.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	return uc.toInvoiceResponse(invoice)
}

// ListByCustomer lists a customer's invoices with pagination.
func (uc *InvoiceUseCase) ListByCustomer(customerID string, limit, offset int) ([]*dto.InvoiceResponse, error) {
	list, err := uc.invoices.ListByCustomer(customerID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		resp, err := uc.toInvoiceResponse(inv)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (uc *InvoiceUseCase) toInvoiceResponse(inv *entity.Invoice) (*dto.InvoiceResponse, error) {
	lines := make([]dto.InvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		name := ""
		if p, err := uc.products.GetByID(l.ProductID); err == nil && p != nil {
			name = p.Name
		}
		lines = append(lines, dto.InvoiceLineResponse{
			ProductID:   l.ProductID,
			ProductName: name,
			Quantity:    l.Quantity,
			Rate:        l.Rate,
			Amount:      l.Amount,
		})
	}
	return &dto.InvoiceResponse{
		ID:         inv.ID,
		Number:     inv.Number,
		CustomerID: inv.CustomerID,
		PeriodFrom: inv.PeriodFrom,
		PeriodTo:   inv.PeriodTo,
		Lines:      lines,
		Total:      inv.Total,
		CreatedAt:  inv.CreatedAt,
	}, nil
}
