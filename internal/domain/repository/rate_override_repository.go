package repository

import "github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"

// RateOverrideRepository defines the persistence port for RateOverride.
// ListByEntity returns overrides in insertion order; resolution depends on
// that ordering (first active match wins).
type RateOverrideRepository interface {
	Create(override *entity.RateOverride) error
	GetByID(id string) (*entity.RateOverride, error)
	Update(override *entity.RateOverride) error
	ListByEntity(entityKind, entityID string) ([]entity.RateOverride, error)
	Delete(id string) error
}
