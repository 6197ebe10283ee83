package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entity kinds a rate override can be attached to.
const (
	RateEntityCustomer = "customer"
	RateEntitySupplier = "supplier"
)

// RateOverride is a customer- or supplier-specific unit rate that supersedes
// a product's default price while active. Duplicates per (entity, product)
// are tolerated; resolution takes the first match in insertion order.
// EffectiveDate is recorded but not used for precedence.
type RateOverride struct {
	ID            string
	EntityKind    string // customer | supplier
	EntityID      string
	ProductID     string
	Rate          decimal.Decimal
	EffectiveDate time.Time
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
