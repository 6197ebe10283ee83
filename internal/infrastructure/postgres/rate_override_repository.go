package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
)

var _ repository.RateOverrideRepository = (*RateOverrideRepo)(nil)

// RateOverrideRepo implements the RateOverrideRepository port over PostgreSQL.
type RateOverrideRepo struct {
	q Querier
}

// NewRateOverrideRepository builds the persistence adapter for rate overrides.
func NewRateOverrideRepository(q Querier) *RateOverrideRepo {
	return &RateOverrideRepo{q: q}
}

// Create persists a new rate override. Duplicates per (entity, product) are
// allowed; resolution takes the first match in insertion order.
func (r *RateOverrideRepo) Create(override *entity.RateOverride) error {
	query := `
		INSERT INTO rate_overrides (id, entity_kind, entity_id, product_id, rate, effective_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		override.ID, override.EntityKind, override.EntityID, override.ProductID,
		override.Rate, override.EffectiveDate, override.IsActive,
		override.CreatedAt, override.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rate override: %w", err)
	}
	return nil
}

// GetByID fetches a rate override by ID. Returns (nil, nil) when absent.
func (r *RateOverrideRepo) GetByID(id string) (*entity.RateOverride, error) {
	query := `
		SELECT id, entity_kind, entity_id, product_id, rate, effective_date, is_active, created_at, updated_at
		FROM rate_overrides WHERE id = $1`
	var o entity.RateOverride
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.EntityKind, &o.EntityID, &o.ProductID, &o.Rate,
		&o.EffectiveDate, &o.IsActive, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rate override: %w", err)
	}
	return &o, nil
}

// Update updates an existing rate override.
func (r *RateOverrideRepo) Update(override *entity.RateOverride) error {
	query := `
		UPDATE rate_overrides SET rate = $2, effective_date = $3, is_active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		override.ID, override.Rate, override.EffectiveDate, override.IsActive, override.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update rate override: %w", err)
	}
	return nil
}

// ListByEntity lists one entity's overrides in insertion order. Resolution
// depends on that ordering (first active match wins).
func (r *RateOverrideRepo) ListByEntity(entityKind, entityID string) ([]entity.RateOverride, error) {
	query := `
		SELECT id, entity_kind, entity_id, product_id, rate, effective_date, is_active, created_at, updated_at
		FROM rate_overrides WHERE entity_kind = $1 AND entity_id = $2
		ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, entityKind, entityID)
	if err != nil {
		return nil, fmt.Errorf("list rate overrides: %w", err)
	}
	defer rows.Close()
	var list []entity.RateOverride
	for rows.Next() {
		var o entity.RateOverride
		if err := rows.Scan(&o.ID, &o.EntityKind, &o.EntityID, &o.ProductID, &o.Rate,
			&o.EffectiveDate, &o.IsActive, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan rate override: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Delete removes a rate override by ID.
func (r *RateOverrideRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM rate_overrides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete rate override: %w", err)
	}
	return nil
}
