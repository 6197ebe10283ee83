package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GenerateInvoiceRequest body for POST /api/invoices.
type GenerateInvoiceRequest struct {
	CustomerID string    `json:"customer_id"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
}

// InvoiceLineResponse one aggregated product line of an invoice.
type InvoiceLineResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse invoice representation in responses.
type InvoiceResponse struct {
	ID         string                `json:"id"`
	Number     string                `json:"number"`
	CustomerID string                `json:"customer_id"`
	PeriodFrom time.Time             `json:"period_from"`
	PeriodTo   time.Time             `json:"period_to"`
	Lines      []InvoiceLineResponse `json:"lines"`
	Total      decimal.Decimal       `json:"total"`
	CreatedAt  time.Time             `json:"created_at"`
}
