// Package pricing (application layer) manages rate overrides and resolves
// the applicable unit rate for a customer or supplier.
package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/dto"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
	dompricing "github.com/VeerDubey/milk-management-91-sub004/internal/domain/pricing"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
)

// UseCase rate override CRUD plus rate resolution against the catalog.
type UseCase struct {
	overrides repository.RateOverrideRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
	suppliers repository.SupplierRepository
}

// NewUseCase builds the use case.
func NewUseCase(
	overrides repository.RateOverrideRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	suppliers repository.SupplierRepository,
) *UseCase {
	return &UseCase{overrides: overrides, products: products, customers: customers, suppliers: suppliers}
}

// SetOverride creates a new rate override. Existing overrides for the same
// (entity, product) are not deactivated: duplicates are tolerated and
// resolution takes the first match in insertion order.
func (uc *UseCase) SetOverride(in dto.SetRateOverrideRequest) (*dto.RateOverrideResponse, error) {
	if in.EntityID == "" || in.ProductID == "" || in.Rate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkEntity(in.EntityKind, in.EntityID); err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	effective := in.EffectiveDate
	if effective.IsZero() {
		effective = now
	}
	override := &entity.RateOverride{
		ID:            uuid.New().String(),
		EntityKind:    in.EntityKind,
		EntityID:      in.EntityID,
		ProductID:     in.ProductID,
		Rate:          in.Rate,
		EffectiveDate: effective,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.overrides.Create(override); err != nil {
		return nil, err
	}
	return toOverrideResponse(override), nil
}

// Deactivate marks an override inactive; the record is kept for history.
func (uc *UseCase) Deactivate(id string) error {
	override, err := uc.overrides.GetByID(id)
	if err != nil {
		return err
	}
	if override == nil {
		return domain.ErrNotFound
	}
	override.IsActive = false
	override.UpdatedAt = time.Now()
	return uc.overrides.Update(override)
}

// ListForEntity lists an entity's overrides in insertion order.
func (uc *UseCase) ListForEntity(entityKind, entityID string) ([]dto.RateOverrideResponse, error) {
	if entityKind != entity.RateEntityCustomer && entityKind != entity.RateEntitySupplier {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.overrides.ListByEntity(entityKind, entityID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RateOverrideResponse, 0, len(list))
	for i := range list {
		out = append(out, *toOverrideResponse(&list[i]))
	}
	return out, nil
}

// ResolveRate returns the unit rate for (entity, product): the first active
// override wins, else the product default — selling price for customers,
// cost price for suppliers.
func (uc *UseCase) ResolveRate(entityKind, entityID, productID string) (*dto.ResolvedRateResponse, error) {
	if err := uc.checkEntity(entityKind, entityID); err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	overrides, err := uc.overrides.ListByEntity(entityKind, entityID)
	if err != nil {
		return nil, err
	}
	defaultPrice := product.Price
	if entityKind == entity.RateEntitySupplier {
		defaultPrice = product.CostPrice
	}
	rate := dompricing.Resolve(entityID, productID, overrides, defaultPrice)
	return &dto.ResolvedRateResponse{
		EntityKind: entityKind,
		EntityID:   entityID,
		ProductID:  productID,
		Rate:       rate,
		Overridden: !rate.Equal(defaultPrice) || hasActiveOverride(overrides, entityID, productID),
	}, nil
}

// CustomerRate resolves a customer's unit rate for one product; shared by
// orders, track sheets and invoices.
func (uc *UseCase) CustomerRate(customerID string, product *entity.Product) (decimal.Decimal, error) {
	overrides, err := uc.overrides.ListByEntity(entity.RateEntityCustomer, customerID)
	if err != nil {
		return decimal.Zero, err
	}
	return dompricing.Resolve(customerID, product.ID, overrides, product.Price), nil
}

func (uc *UseCase) checkEntity(entityKind, entityID string) error {
	switch entityKind {
	case entity.RateEntityCustomer:
		c, err := uc.customers.GetByID(entityID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
	case entity.RateEntitySupplier:
		s, err := uc.suppliers.GetByID(entityID)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

func hasActiveOverride(overrides []entity.RateOverride, entityID, productID string) bool {
	for _, o := range overrides {
		if o.EntityID == entityID && o.ProductID == productID && o.IsActive {
			return true
		}
	}
	return false
}

func toOverrideResponse(o *entity.RateOverride) *dto.RateOverrideResponse {
	return &dto.RateOverrideResponse{
		ID:            o.ID,
		EntityKind:    o.EntityKind,
		EntityID:      o.EntityID,
		ProductID:     o.ProductID,
		Rate:          o.Rate,
		EffectiveDate: o.EffectiveDate,
		IsActive:      o.IsActive,
	}
}
