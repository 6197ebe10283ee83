package tracksheet

import (
	"context"

	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
)

// TxRunner executes a function inside a DB transaction with a track sheet
// repository bound to that transaction (header and entries written together).
type TxRunner interface {
	RunTrackSheet(ctx context.Context, fn func(sheetRepo repository.TrackSheetRepository) error) error
}
