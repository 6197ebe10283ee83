package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/pricing"
)

func override(entityID, productID string, rate float64, active bool) entity.RateOverride {
	return entity.RateOverride{
		EntityKind: entity.RateEntityCustomer,
		EntityID:   entityID,
		ProductID:  productID,
		Rate:       decimal.NewFromFloat(rate),
		IsActive:   active,
	}
}

func TestResolve_FallsBackToDefaultPrice(t *testing.T) {
	got := pricing.Resolve("cust-1", "prod-9", nil, decimal.NewFromInt(52))
	assert.True(t, got.Equal(decimal.NewFromInt(52)))
}

func TestResolve_ActiveOverrideWins(t *testing.T) {
	overrides := []entity.RateOverride{override("cust-1", "prod-9", 60, true)}

	got := pricing.Resolve("cust-1", "prod-9", overrides, decimal.NewFromInt(52))
	assert.True(t, got.Equal(decimal.NewFromInt(60)))
}

func TestResolve_InactiveOverrideIsSkipped(t *testing.T) {
	overrides := []entity.RateOverride{override("cust-1", "prod-9", 60, false)}

	got := pricing.Resolve("cust-1", "prod-9", overrides, decimal.NewFromInt(52))
	assert.True(t, got.Equal(decimal.NewFromInt(52)))
}

func TestResolve_OtherEntityOrProductDoesNotMatch(t *testing.T) {
	overrides := []entity.RateOverride{
		override("cust-2", "prod-9", 60, true),
		override("cust-1", "prod-8", 61, true),
	}

	got := pricing.Resolve("cust-1", "prod-9", overrides, decimal.NewFromInt(52))
	assert.True(t, got.Equal(decimal.NewFromInt(52)))
}

// Duplicate active overrides are tolerated; the first in slice order wins.
// No date precedence is applied even when effective dates differ.
func TestResolve_FirstActiveMatchWins(t *testing.T) {
	overrides := []entity.RateOverride{
		override("cust-1", "prod-9", 58, true),
		override("cust-1", "prod-9", 63, true),
	}

	got := pricing.Resolve("cust-1", "prod-9", overrides, decimal.NewFromInt(52))
	assert.True(t, got.Equal(decimal.NewFromInt(58)))
}
