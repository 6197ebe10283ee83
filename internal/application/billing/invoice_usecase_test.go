package billing

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/dto"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
)

// In-memory stubs over the repository and transaction ports.

type memOrderRepo struct {
	orders []*entity.Order
}

func (r *memOrderRepo) Create(o *entity.Order) error { r.orders = append(r.orders, o); return nil }

func (r *memOrderRepo) GetByID(id string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) ListByCustomer(customerID string, from, to time.Time) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.CustomerID != customerID {
			continue
		}
		if o.Date.Before(from) || o.Date.After(to) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *memOrderRepo) ListByDate(time.Time) ([]*entity.Order, error) { return nil, nil }
func (r *memOrderRepo) UpdateStatus(id, status string) error {
	for _, o := range r.orders {
		if o.ID == id {
			o.Status = status
		}
	}
	return nil
}

type memInvoiceRepo struct {
	invoices []*entity.Invoice
}

func (r *memInvoiceRepo) Create(inv *entity.Invoice) error {
	r.invoices = append(r.invoices, inv)
	return nil
}

func (r *memInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *memInvoiceRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.CustomerID == customerID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *memInvoiceRepo) CountForPeriod(year, month int) (int, error) {
	count := 0
	for _, inv := range r.invoices {
		if inv.CreatedAt.Year() == year && int(inv.CreatedAt.Month()) == month {
			count++
		}
	}
	return count, nil
}

// memBillingTxRunner passes the in-memory repos straight through; there is
// no real transaction to manage in tests.
type memBillingTxRunner struct {
	orders   *memOrderRepo
	invoices *memInvoiceRepo
}

func (r *memBillingTxRunner) RunBilling(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	return fn(r.orders, r.invoices)
}

type stubCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (r *stubCustomerRepo) Create(*entity.Customer) error { return nil }
func (r *stubCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}
func (r *stubCustomerRepo) GetByPhone(string) (*entity.Customer, error)   { return nil, nil }
func (r *stubCustomerRepo) Update(*entity.Customer) error                 { return nil }
func (r *stubCustomerRepo) List(int, int) ([]*entity.Customer, error)     { return nil, nil }
func (r *stubCustomerRepo) ListByArea(string) ([]*entity.Customer, error) { return nil, nil }
func (r *stubCustomerRepo) Delete(string) error                           { return nil }

type stubProductRepo struct {
	products map[string]*entity.Product
}

func (r *stubProductRepo) Create(*entity.Product) error { return nil }
func (r *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *stubProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (r *stubProductRepo) Update(*entity.Product) error             { return nil }
func (r *stubProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }
func (r *stubProductRepo) Delete(string) error                      { return nil }

func day(d int) time.Time {
	return time.Date(2024, 6, d, 8, 0, 0, 0, time.UTC)
}

func newInvoiceTestUseCase() (*InvoiceUseCase, *memOrderRepo, *memInvoiceRepo) {
	orders := &memOrderRepo{}
	invoices := &memInvoiceRepo{}
	customers := &stubCustomerRepo{customers: map[string]*entity.Customer{
		"cust-1": {ID: "cust-1", Name: "Ramesh Kumar", IsActive: true},
	}}
	products := &stubProductRepo{products: map[string]*entity.Product{
		"milk-1l": {ID: "milk-1l", Name: "Full Cream Milk 1L"},
		"curd-500": {ID: "curd-500", Name: "Curd 500g"},
	}}
	txRunner := &memBillingTxRunner{orders: orders, invoices: invoices}
	return NewInvoiceUseCase(txRunner, customers, products, invoices), orders, invoices
}

func addOrder(orders *memOrderRepo, id string, date time.Time, status string, items ...entity.OrderItem) {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	orders.orders = append(orders.orders, &entity.Order{
		ID: id, CustomerID: "cust-1", Date: date, Items: items,
		Total: total, Status: status, CreatedAt: date,
	})
}

func item(productID string, qty, rate int64) entity.OrderItem {
	q := decimal.NewFromInt(qty)
	r := decimal.NewFromInt(rate)
	return entity.OrderItem{ProductID: productID, Quantity: q, Rate: r, Amount: q.Mul(r)}
}

func TestGenerate_AggregatesPerProduct(t *testing.T) {
	uc, orders, _ := newInvoiceTestUseCase()

	// Two deliveries of milk at different rates plus one of curd. The milk
	// line must sum quantities and amounts; its rate becomes the
	// quantity-weighted average: (10*52 + 10*48) / 20 = 50.
	addOrder(orders, "o1", day(3), entity.OrderStatusDelivered,
		item("milk-1l", 10, 52))
	addOrder(orders, "o2", day(10), entity.OrderStatusDelivered,
		item("milk-1l", 10, 48), item("curd-500", 4, 30))

	out, err := uc.Generate(context.Background(), dto.GenerateInvoiceRequest{
		CustomerID: "cust-1", From: day(1), To: day(30),
	})
	require.NoError(t, err)

	require.Len(t, out.Lines, 2)
	milk := out.Lines[0]
	assert.Equal(t, "milk-1l", milk.ProductID, "first appearance keeps line order")
	assert.Equal(t, "Full Cream Milk 1L", milk.ProductName)
	assert.True(t, milk.Quantity.Equal(decimal.NewFromInt(20)))
	assert.True(t, milk.Rate.Equal(decimal.NewFromInt(50)))
	assert.True(t, milk.Amount.Equal(decimal.NewFromInt(1000)))

	curd := out.Lines[1]
	assert.Equal(t, "curd-500", curd.ProductID)
	assert.True(t, curd.Amount.Equal(decimal.NewFromInt(120)))

	assert.True(t, out.Total.Equal(decimal.NewFromInt(1120)))
	assert.True(t, strings.HasPrefix(out.Number, "INV-"), "number format INV-<YYYYMM>-<n>")
	assert.True(t, strings.HasSuffix(out.Number, "-0001"), "first invoice of the month")
}

func TestGenerate_SkipsCancelledOrders(t *testing.T) {
	uc, orders, _ := newInvoiceTestUseCase()

	addOrder(orders, "o1", day(3), entity.OrderStatusDelivered, item("milk-1l", 5, 52))
	addOrder(orders, "o2", day(4), entity.OrderStatusCancelled, item("milk-1l", 99, 52))

	out, err := uc.Generate(context.Background(), dto.GenerateInvoiceRequest{
		CustomerID: "cust-1", From: day(1), To: day(30),
	})
	require.NoError(t, err)
	require.Len(t, out.Lines, 1)
	assert.True(t, out.Lines[0].Quantity.Equal(decimal.NewFromInt(5)))
}

func TestGenerate_NothingToInvoice(t *testing.T) {
	uc, orders, invoices := newInvoiceTestUseCase()

	addOrder(orders, "o1", day(3), entity.OrderStatusCancelled, item("milk-1l", 5, 52))

	_, err := uc.Generate(context.Background(), dto.GenerateInvoiceRequest{
		CustomerID: "cust-1", From: day(1), To: day(30),
	})
	assert.ErrorIs(t, err, domain.ErrNothingToInvoice)
	assert.Empty(t, invoices.invoices, "nothing stored")
}

func TestGenerate_Validation(t *testing.T) {
	uc, _, _ := newInvoiceTestUseCase()

	_, err := uc.Generate(context.Background(), dto.GenerateInvoiceRequest{
		CustomerID: "cust-1", From: day(30), To: day(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "inverted range")

	_, err = uc.Generate(context.Background(), dto.GenerateInvoiceRequest{
		CustomerID: "cust-9", From: day(1), To: day(30),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "unknown customer")
}

func TestGenerate_SequentialNumbers(t *testing.T) {
	uc, orders, _ := newInvoiceTestUseCase()

	addOrder(orders, "o1", day(3), entity.OrderStatusDelivered, item("milk-1l", 5, 52))

	first, err := uc.Generate(context.Background(), dto.GenerateInvoiceRequest{
		CustomerID: "cust-1", From: day(1), To: day(30),
	})
	require.NoError(t, err)
	second, err := uc.Generate(context.Background(), dto.GenerateInvoiceRequest{
		CustomerID: "cust-1", From: day(1), To: day(30),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(first.Number, "-0001"))
	assert.True(t, strings.HasSuffix(second.Number, "-0002"))
}
