// Package tracksheet implements daily delivery-run sheets: a grid of
// customer × product quantities with resolved rates for one route and day.
package tracksheet

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/dto"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/pricing"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
)

// UseCase track sheet use cases.
type UseCase struct {
	txRunner  TxRunner
	sheets    repository.TrackSheetRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	pricing   *pricing.UseCase
}

// NewUseCase builds the use case. sheets is the read-side repository; writes
// go through txRunner.
func NewUseCase(
	txRunner TxRunner,
	sheets repository.TrackSheetRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	pricingUC *pricing.UseCase,
) *UseCase {
	return &UseCase{txRunner: txRunner, sheets: sheets, customers: customers, products: products, pricing: pricingUC}
}

// Create validates every cell, resolves each customer's rate and stores the
// sheet with its totals.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateTrackSheetRequest) (*dto.TrackSheetResponse, error) {
	if in.Route == "" || len(in.Entries) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	sheet := &entity.TrackSheet{
		ID:            uuid.New().String(),
		Date:          date,
		Route:         in.Route,
		TotalQuantity: decimal.Zero,
		TotalAmount:   decimal.Zero,
		CreatedAt:     now,
	}

	for _, cell := range in.Entries {
		if !cell.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		customer, err := uc.customers.GetByID(cell.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		product, err := uc.products.GetByID(cell.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		rate, err := uc.pricing.CustomerRate(cell.CustomerID, product)
		if err != nil {
			return nil, err
		}
		amount := cell.Quantity.Mul(rate)
		sheet.Entries = append(sheet.Entries, entity.TrackEntry{
			ID:         uuid.New().String(),
			SheetID:    sheet.ID,
			CustomerID: cell.CustomerID,
			ProductID:  cell.ProductID,
			Quantity:   cell.Quantity,
			Rate:       rate,
			Amount:     amount,
		})
		sheet.TotalQuantity = sheet.TotalQuantity.Add(cell.Quantity)
		sheet.TotalAmount = sheet.TotalAmount.Add(amount)
	}

	err := uc.txRunner.RunTrackSheet(ctx, func(sheetRepo repository.TrackSheetRepository) error {
		return sheetRepo.Create(sheet)
	})
	if err != nil {
		return nil, err
	}
	return toTrackSheetResponse(sheet), nil
}

// GetByID fetches one track sheet with its entries.
func (uc *UseCase) GetByID(id string) (*dto.TrackSheetResponse, error) {
	sheet, err := uc.sheets.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, nil
	}
	return toTrackSheetResponse(sheet), nil
}

// ListByDate lists the sheets of one day across routes.
func (uc *UseCase) ListByDate(date time.Time) ([]*dto.TrackSheetResponse, error) {
	list, err := uc.sheets.ListByDate(date)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TrackSheetResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toTrackSheetResponse(s))
	}
	return out, nil
}

func toTrackSheetResponse(s *entity.TrackSheet) *dto.TrackSheetResponse {
	entries := make([]dto.TrackEntryResponse, 0, len(s.Entries))
	for _, e := range s.Entries {
		entries = append(entries, dto.TrackEntryResponse{
			CustomerID: e.CustomerID,
			ProductID:  e.ProductID,
			Quantity:   e.Quantity,
			Rate:       e.Rate,
			Amount:     e.Amount,
		})
	}
	return &dto.TrackSheetResponse{
		ID:            s.ID,
		Date:          s.Date,
		Route:         s.Route,
		Entries:       entries,
		TotalQuantity: s.TotalQuantity,
		TotalAmount:   s.TotalAmount,
	}
}
