package orders

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/dto"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/pricing"
	appstock "github.com/VeerDubey/milk-management-91-sub004/internal/application/stock"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
)

// In-memory stubs over the repository, KV and transaction ports.

type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV { return &memKV{data: map[string][]byte{}} }

func (kv *memKV) Get(_ context.Context, key string) ([]byte, error) { return kv.data[key], nil }
func (kv *memKV) Set(_ context.Context, key string, value []byte) error {
	kv.data[key] = value
	return nil
}

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
		if o.CustomerID == customerID {
			out = append(out, o)
		}
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

type memTxRunner struct {
	orders *memOrderRepo
}

func (r *memTxRunner) Run(_ context.Context, fn func(orderRepo repository.OrderRepository) error) error {
	return fn(r.orders)
}

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

type stubSupplierRepo struct{}

func (stubSupplierRepo) Create(*entity.Supplier) error               { return nil }
func (stubSupplierRepo) GetByID(string) (*entity.Supplier, error)    { return nil, nil }
func (stubSupplierRepo) GetByPhone(string) (*entity.Supplier, error) { return nil, nil }
func (stubSupplierRepo) Update(*entity.Supplier) error               { return nil }
func (stubSupplierRepo) List(int, int) ([]*entity.Supplier, error)   { return nil, nil }
func (stubSupplierRepo) Delete(string) error                         { return nil }

type stubOverrideRepo struct {
	items []entity.RateOverride
}

func (r *stubOverrideRepo) Create(o *entity.RateOverride) error { r.items = append(r.items, *o); return nil }
func (r *stubOverrideRepo) GetByID(string) (*entity.RateOverride, error) { return nil, nil }
func (r *stubOverrideRepo) Update(*entity.RateOverride) error            { return nil }
func (r *stubOverrideRepo) ListByEntity(entityKind, entityID string) ([]entity.RateOverride, error) {
	var out []entity.RateOverride
	for _, o := range r.items {
		if o.EntityKind == entityKind && o.EntityID == entityID {
			out = append(out, o)
		}
	}
	return out, nil
}
func (r *stubOverrideRepo) Delete(string) error { return nil }

type orderTestEnv struct {
	uc     *UseCase
	ledger *appstock.LedgerUseCase
	orders *memOrderRepo
}

func newOrderTestEnv(overrides ...entity.RateOverride) orderTestEnv {
	products := &stubProductRepo{products: map[string]*entity.Product{
		"milk-1l": {
			ID: "milk-1l", SKU: "MILK-1L", Name: "Full Cream Milk 1L",
			Price:     decimal.NewFromInt(52),
			CostPrice: decimal.NewFromInt(44),
			MinStock:  decimal.NewFromInt(10),
			IsActive:  true,
		},
	}}
	customers := &stubCustomerRepo{customers: map[string]*entity.Customer{
		"cust-1": {ID: "cust-1", Name: "Ramesh Kumar", IsActive: true},
		"cust-2": {ID: "cust-2", Name: "Closed Account", IsActive: false},
	}}
	overrideRepo := &stubOverrideRepo{items: overrides}
	pricingUC := pricing.NewUseCase(overrideRepo, products, customers, stubSupplierRepo{})
	ledger := appstock.NewLedgerUseCase(newMemKV(), products, decimal.NewFromInt(10))
	orderRepo := &memOrderRepo{}
	uc := NewUseCase(&memTxRunner{orders: orderRepo}, orderRepo, customers, products, pricingUC, ledger)
	return orderTestEnv{uc: uc, ledger: ledger, orders: orderRepo}
}

func TestCreateOrder_ResolvesRateAndRecordsLedgerOut(t *testing.T) {
	ctx := context.Background()
	env := newOrderTestEnv(entity.RateOverride{
		ID: "ov1", EntityKind: entity.RateEntityCustomer, EntityID: "cust-1",
		ProductID: "milk-1l", Rate: decimal.NewFromInt(48), IsActive: true,
	})

	// Seed stock so the order draws it down.
	_, err := env.ledger.RecordMovement(ctx, appstock.RecordMovementInput{
		ProductID: "milk-1l", MovementType: entity.MovementTypeIn,
		Quantity: decimal.NewFromInt(100), Rate: decimal.NewFromInt(44),
	})
	require.NoError(t, err)

	out, err := env.uc.Create(ctx, dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.CreateOrderItem{{ProductID: "milk-1l", Quantity: decimal.NewFromInt(20)}},
	})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].Rate.Equal(decimal.NewFromInt(48)), "override rate applied")
	assert.True(t, out.Total.Equal(decimal.NewFromInt(960)))
	assert.Equal(t, entity.OrderStatusPending, out.Status)

	stock, err := env.ledger.CurrentStock(ctx, "milk-1l")
	require.NoError(t, err)
	assert.True(t, stock.Equal(decimal.NewFromInt(80)), "out movement recorded")
}

func TestCreateOrder_DefaultRateWithoutOverride(t *testing.T) {
	ctx := context.Background()
	env := newOrderTestEnv()

	out, err := env.uc.Create(ctx, dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.CreateOrderItem{{ProductID: "milk-1l", Quantity: decimal.NewFromInt(2)}},
	})
	require.NoError(t, err)
	assert.True(t, out.Items[0].Rate.Equal(decimal.NewFromInt(52)), "falls back to selling price")
	assert.True(t, out.Total.Equal(decimal.NewFromInt(104)))
}

func TestCreateOrder_Validation(t *testing.T) {
	ctx := context.Background()
	env := newOrderTestEnv()

	_, err := env.uc.Create(ctx, dto.CreateOrderRequest{CustomerID: "cust-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "no items")

	_, err = env.uc.Create(ctx, dto.CreateOrderRequest{
		CustomerID: "cust-2",
		Items:      []dto.CreateOrderItem{{ProductID: "milk-1l", Quantity: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrInactiveEntity, "inactive customer")

	_, err = env.uc.Create(ctx, dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.CreateOrderItem{{ProductID: "ghee-1kg", Quantity: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "unknown product")

	_, err = env.uc.Create(ctx, dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.CreateOrderItem{{ProductID: "milk-1l", Quantity: decimal.NewFromInt(-3)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "non-positive quantity")
}

func TestUpdateStatus_Transitions(t *testing.T) {
	ctx := context.Background()
	env := newOrderTestEnv()

	out, err := env.uc.Create(ctx, dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.CreateOrderItem{{ProductID: "milk-1l", Quantity: decimal.NewFromInt(1)}},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, env.uc.UpdateStatus(out.ID, "shipped"), domain.ErrInvalidInput)
	assert.ErrorIs(t, env.uc.UpdateStatus("no-such-order", entity.OrderStatusDelivered), domain.ErrNotFound)

	require.NoError(t, env.uc.UpdateStatus(out.ID, entity.OrderStatusCancelled))
	assert.ErrorIs(t, env.uc.UpdateStatus(out.ID, entity.OrderStatusDelivered), domain.ErrConflict,
		"cancelled is terminal")
}

func TestCancelDoesNotRevertLedger(t *testing.T) {
	ctx := context.Background()
	env := newOrderTestEnv()

	_, err := env.ledger.RecordMovement(ctx, appstock.RecordMovementInput{
		ProductID: "milk-1l", MovementType: entity.MovementTypeIn,
		Quantity: decimal.NewFromInt(50), Rate: decimal.NewFromInt(44),
	})
	require.NoError(t, err)

	out, err := env.uc.Create(ctx, dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.CreateOrderItem{{ProductID: "milk-1l", Quantity: decimal.NewFromInt(10)}},
	})
	require.NoError(t, err)
	require.NoError(t, env.uc.UpdateStatus(out.ID, entity.OrderStatusCancelled))

	stock, err := env.ledger.CurrentStock(ctx, "milk-1l")
	require.NoError(t, err)
	assert.True(t, stock.Equal(decimal.NewFromInt(40)),
		"cancellation leaves the movement log untouched")
}
