package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a periodic statement generated from a customer's orders over a
// date range, with one line per product. Rendering (PDF/print) is out of
// scope; only the data is stored.
type Invoice struct {
	ID         string
	Number     string // INV-<YYYYMM>-<n>
	CustomerID string
	PeriodFrom time.Time
	PeriodTo   time.Time
	Lines      []InvoiceLine
	Total      decimal.Decimal
	CreatedAt  time.Time
}

// InvoiceLine aggregates a product's deliveries within the invoice period.
type InvoiceLine struct {
	ID        string
	InvoiceID string
	ProductID string
	Quantity  decimal.Decimal
	Rate      decimal.Decimal
	Amount    decimal.Decimal
}
