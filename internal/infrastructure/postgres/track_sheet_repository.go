package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
)

var _ repository.TrackSheetRepository = (*TrackSheetRepo)(nil)

// TrackSheetRepo implements the TrackSheetRepository port over PostgreSQL.
// Sheets are stored as a header row plus one track_entries row per cell.
type TrackSheetRepo struct {
	q Querier
}

// NewTrackSheetRepository builds the persistence adapter for track sheets.
func NewTrackSheetRepository(q Querier) *TrackSheetRepo {
	return &TrackSheetRepo{q: q}
}

// Create persists the sheet header and its entries. Callers wanting
// atomicity run this inside a transaction (TxRunner).
func (r *TrackSheetRepo) Create(sheet *entity.TrackSheet) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO track_sheets (id, date, route, total_quantity, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		sheet.ID, sheet.Date, sheet.Route, sheet.TotalQuantity, sheet.TotalAmount, sheet.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert track sheet: %w", err)
	}
	for _, e := range sheet.Entries {
		_, err := r.q.Exec(ctx, `
			INSERT INTO track_entries (id, sheet_id, customer_id, product_id, quantity, rate, amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			e.ID, sheet.ID, e.CustomerID, e.ProductID, e.Quantity, e.Rate, e.Amount,
		)
		if err != nil {
			return fmt.Errorf("insert track entry: %w", err)
		}
	}
	return nil
}

// GetByID fetches one sheet with its entries. Returns (nil, nil) when absent.
func (r *TrackSheetRepo) GetByID(id string) (*entity.TrackSheet, error) {
	ctx := context.Background()
	var s entity.TrackSheet
	err := r.q.QueryRow(ctx, `
		SELECT id, date, route, total_quantity, total_amount, created_at
		FROM track_sheets WHERE id = $1`, id).Scan(
		&s.ID, &s.Date, &s.Route, &s.TotalQuantity, &s.TotalAmount, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get track sheet: %w", err)
	}
	entries, err := r.loadEntries(ctx, []string{s.ID})
	if err != nil {
		return nil, err
	}
	s.Entries = entries[s.ID]
	return &s, nil
}

// ListByDate lists one day's sheets across routes.
func (r *TrackSheetRepo) ListByDate(date time.Time) ([]*entity.TrackSheet, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, `
		SELECT id, date, route, total_quantity, total_amount, created_at
		FROM track_sheets WHERE date::date = $1::date
		ORDER BY route`, date)
	if err != nil {
		return nil, fmt.Errorf("list track sheets: %w", err)
	}
	defer rows.Close()

	var list []*entity.TrackSheet
	var ids []string
	for rows.Next() {
		var s entity.TrackSheet
		if err := rows.Scan(&s.ID, &s.Date, &s.Route, &s.TotalQuantity, &s.TotalAmount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan track sheet: %w", err)
		}
		list = append(list, &s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	entries, err := r.loadEntries(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		s.Entries = entries[s.ID]
	}
	return list, nil
}

func (r *TrackSheetRepo) loadEntries(ctx context.Context, sheetIDs []string) (map[string][]entity.TrackEntry, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, sheet_id, customer_id, product_id, quantity, rate, amount
		FROM track_entries WHERE sheet_id = ANY($1)
		ORDER BY sheet_id, id`, sheetIDs)
	if err != nil {
		return nil, fmt.Errorf("load track entries: %w", err)
	}
	defer rows.Close()
	entries := make(map[string][]entity.TrackEntry)
	for rows.Next() {
		var e entity.TrackEntry
		if err := rows.Scan(&e.ID, &e.SheetID, &e.CustomerID, &e.ProductID, &e.Quantity, &e.Rate, &e.Amount); err != nil {
			return nil, fmt.Errorf("scan track entry: %w", err)
		}
		entries[e.SheetID] = append(entries[e.SheetID], e)
	}
	return entries, rows.Err()
}
