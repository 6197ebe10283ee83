// Package pricing holds the rate-resolution domain service: customer- and
// supplier-specific rates that supersede a product's default price.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
)

// Resolve returns the unit rate applicable to (entityID, productID): the
// first active override matching the pair in slice order wins, otherwise
// defaultPrice.
//
// There is deliberately no effective-date filtering and no precedence rule
// between duplicate active overrides; first match in insertion order is the
// de facto rule of the system being ported.
func Resolve(entityID, productID string, overrides []entity.RateOverride, defaultPrice decimal.Decimal) decimal.Decimal {
	for _, o := range overrides {
		if o.EntityID == entityID && o.ProductID == productID && o.IsActive {
			return o.Rate
		}
	}
	return defaultPrice
}
