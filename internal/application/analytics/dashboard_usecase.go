// Package analytics contains the read-only reporting use cases behind the
// business dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/dto"
	appstock "github.com/VeerDubey/milk-management-91-sub004/internal/application/stock"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
)

const dashboardTopProducts = 5 // rows in the top-products widget

// DashboardUseCase builds the day/month business summary.
//
// Data sources: AnalyticsRepository (read-only queries) and the stock ledger
// for the active alert count.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	ledger        *appstock.LedgerUseCase
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, ledger *appstock.LedgerUseCase) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, ledger: ledger}
}

// GetSummary assembles the DashboardSummaryDTO.
//
// Four calls run in parallel:
//  1. GetSalesTotals(today)
//  2. GetSalesTotals(month to date)
//  3. GetOutstandingTotal
//  4. GetTopProducts(month to date, top 5)
//
// The alert count comes from the ledger afterwards (in-process, cheap).
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type salesResult struct {
		revenue decimal.Decimal
		orders  int
		err     error
	}
	type duesResult struct {
		total decimal.Decimal
		err   error
	}
	type topResult struct {
		rows []repository.ProductSalesResult
		err  error
	}

	todayCh := make(chan salesResult, 1)
	monthCh := make(chan salesResult, 1)
	duesCh := make(chan duesResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		rev, n, err := uc.analyticsRepo.GetSalesTotals(ctx, todayStart, todayEnd)
		todayCh <- salesResult{rev, n, err}
	}()
	go func() {
		rev, n, err := uc.analyticsRepo.GetSalesTotals(ctx, monthStart, todayEnd)
		monthCh <- salesResult{rev, n, err}
	}()
	go func() {
		total, err := uc.analyticsRepo.GetOutstandingTotal(ctx)
		duesCh <- duesResult{total, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetTopProducts(ctx, monthStart, todayEnd, dashboardTopProducts)
		topCh <- topResult{rows, err}
	}()

	today := <-todayCh
	month := <-monthCh
	dues := <-duesCh
	top := <-topCh

	if today.err != nil {
		return nil, fmt.Errorf("today sales: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("month sales: %w", month.err)
	}
	if dues.err != nil {
		return nil, fmt.Errorf("outstanding dues: %w", dues.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("top products: %w", top.err)
	}

	alerts, err := uc.ledger.ActiveAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("active alerts: %w", err)
	}

	summary := &dto.DashboardSummaryDTO{
		TodaySales:       today.revenue,
		TodayOrders:      today.orders,
		MonthSales:       month.revenue,
		MonthOrders:      month.orders,
		OutstandingDues:  dues.total,
		ActiveAlertCount: len(alerts),
		TopProducts:      make([]dto.TopProductDTO, 0, len(top.rows)),
	}
	for _, row := range top.rows {
		summary.TopProducts = append(summary.TopProducts, dto.TopProductDTO{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			UnitsSold:   row.UnitsSold,
			Revenue:     row.Revenue,
		})
	}
	return summary, nil
}
