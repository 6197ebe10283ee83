package repository

import (
	"time"

	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
)

// TrackSheetRepository defines the persistence port for TrackSheet.
type TrackSheetRepository interface {
	Create(sheet *entity.TrackSheet) error
	GetByID(id string) (*entity.TrackSheet, error)
	ListByDate(date time.Time) ([]*entity.TrackSheet, error)
}
