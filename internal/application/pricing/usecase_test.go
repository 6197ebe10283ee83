package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/dto"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
)

// In-memory stubs over the repository ports.

type stubOverrideRepo struct {
	items []entity.RateOverride
}

func (r *stubOverrideRepo) Create(o *entity.RateOverride) error {
	r.items = append(r.items, *o)
	return nil
}

func (r *stubOverrideRepo) GetByID(id string) (*entity.RateOverride, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			o := r.items[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (r *stubOverrideRepo) Update(o *entity.RateOverride) error {
	for i := range r.items {
		if r.items[i].ID == o.ID {
			r.items[i] = *o
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *stubOverrideRepo) ListByEntity(entityKind, entityID string) ([]entity.RateOverride, error) {
	var out []entity.RateOverride
	for _, o := range r.items {
		if o.EntityKind == entityKind && o.EntityID == entityID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOverrideRepo) Delete(id string) error { return nil }

type stubProductRepo struct {
	products map[string]*entity.Product
}

func (r *stubProductRepo) Create(*entity.Product) error { return nil }
func (r *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *stubProductRepo) GetBySKU(string) (*entity.Product, error)       { return nil, nil }
func (r *stubProductRepo) Update(*entity.Product) error                   { return nil }
func (r *stubProductRepo) List(int, int) ([]*entity.Product, error)       { return nil, nil }
func (r *stubProductRepo) Delete(string) error                            { return nil }

type stubCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (r *stubCustomerRepo) Create(*entity.Customer) error { return nil }
func (r *stubCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}
func (r *stubCustomerRepo) GetByPhone(string) (*entity.Customer, error)     { return nil, nil }
func (r *stubCustomerRepo) Update(*entity.Customer) error                   { return nil }
func (r *stubCustomerRepo) List(int, int) ([]*entity.Customer, error)       { return nil, nil }
func (r *stubCustomerRepo) ListByArea(string) ([]*entity.Customer, error)   { return nil, nil }
func (r *stubCustomerRepo) Delete(string) error                             { return nil }

type stubSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *stubSupplierRepo) Create(*entity.Supplier) error { return nil }
func (r *stubSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}
func (r *stubSupplierRepo) GetByPhone(string) (*entity.Supplier, error) { return nil, nil }
func (r *stubSupplierRepo) Update(*entity.Supplier) error               { return nil }
func (r *stubSupplierRepo) List(int, int) ([]*entity.Supplier, error)   { return nil, nil }
func (r *stubSupplierRepo) Delete(string) error                         { return nil }

func newTestUseCase() (*UseCase, *stubOverrideRepo) {
	overrides := &stubOverrideRepo{}
	products := &stubProductRepo{products: map[string]*entity.Product{
		"milk-1l": {
			ID:        "milk-1l",
			SKU:       "MILK-1L",
			Name:      "Full Cream Milk 1L",
			Price:     decimal.NewFromInt(52),
			CostPrice: decimal.NewFromInt(44),
			IsActive:  true,
		},
	}}
	customers := &stubCustomerRepo{customers: map[string]*entity.Customer{
		"cust-1": {ID: "cust-1", Name: "Ramesh Kumar", IsActive: true},
	}}
	suppliers := &stubSupplierRepo{suppliers: map[string]*entity.Supplier{
		"supp-1": {ID: "supp-1", Name: "Gokul Dairy", IsActive: true},
	}}
	return NewUseCase(overrides, products, customers, suppliers), overrides
}

func TestSetOverride_Validation(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.SetOverride(dto.SetRateOverrideRequest{
		EntityKind: entity.RateEntityCustomer, ProductID: "milk-1l",
		Rate: decimal.NewFromInt(60),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing entity_id")

	_, err = uc.SetOverride(dto.SetRateOverrideRequest{
		EntityKind: "vendor", EntityID: "cust-1", ProductID: "milk-1l",
		Rate: decimal.NewFromInt(60),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unknown entity kind")

	_, err = uc.SetOverride(dto.SetRateOverrideRequest{
		EntityKind: entity.RateEntityCustomer, EntityID: "cust-9", ProductID: "milk-1l",
		Rate: decimal.NewFromInt(60),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "unknown customer")
}

func TestResolveRate_CustomerOverrideWins(t *testing.T) {
	uc, _ := newTestUseCase()

	// Default first: product selling price.
	out, err := uc.ResolveRate(entity.RateEntityCustomer, "cust-1", "milk-1l")
	require.NoError(t, err)
	assert.True(t, out.Rate.Equal(decimal.NewFromInt(52)))
	assert.False(t, out.Overridden)

	_, err = uc.SetOverride(dto.SetRateOverrideRequest{
		EntityKind: entity.RateEntityCustomer, EntityID: "cust-1", ProductID: "milk-1l",
		Rate: decimal.NewFromInt(48),
	})
	require.NoError(t, err)

	out, err = uc.ResolveRate(entity.RateEntityCustomer, "cust-1", "milk-1l")
	require.NoError(t, err)
	assert.True(t, out.Rate.Equal(decimal.NewFromInt(48)))
	assert.True(t, out.Overridden)
}

func TestResolveRate_SupplierDefaultIsCostPrice(t *testing.T) {
	uc, _ := newTestUseCase()

	out, err := uc.ResolveRate(entity.RateEntitySupplier, "supp-1", "milk-1l")
	require.NoError(t, err)
	assert.True(t, out.Rate.Equal(decimal.NewFromInt(44)))
	assert.False(t, out.Overridden)
}

func TestResolveRate_FirstOfDuplicatesWins(t *testing.T) {
	uc, _ := newTestUseCase()

	for _, rate := range []int64{47, 50} {
		_, err := uc.SetOverride(dto.SetRateOverrideRequest{
			EntityKind: entity.RateEntityCustomer, EntityID: "cust-1", ProductID: "milk-1l",
			Rate: decimal.NewFromInt(rate),
		})
		require.NoError(t, err)
	}

	out, err := uc.ResolveRate(entity.RateEntityCustomer, "cust-1", "milk-1l")
	require.NoError(t, err)
	assert.True(t, out.Rate.Equal(decimal.NewFromInt(47)), "first inserted override wins")
}

func TestDeactivate_FallsBackToDefault(t *testing.T) {
	uc, overrides := newTestUseCase()

	created, err := uc.SetOverride(dto.SetRateOverrideRequest{
		EntityKind: entity.RateEntityCustomer, EntityID: "cust-1", ProductID: "milk-1l",
		Rate: decimal.NewFromInt(48), EffectiveDate: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(created.ID))
	stored, err := overrides.GetByID(created.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive, "record kept but inactive")

	out, err := uc.ResolveRate(entity.RateEntityCustomer, "cust-1", "milk-1l")
	require.NoError(t, err)
	assert.True(t, out.Rate.Equal(decimal.NewFromInt(52)))
	assert.False(t, out.Overridden)
}

func TestDeactivate_Unknown(t *testing.T) {
	uc, _ := newTestUseCase()
	assert.ErrorIs(t, uc.Deactivate("no-such-id"), domain.ErrNotFound)
}
