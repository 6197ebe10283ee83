package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest body for POST /api/payments.
type CreatePaymentRequest struct {
	CustomerID string          `json:"customer_id"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Mode       string          `json:"mode"` // cash, upi, bank, cheque
	Reference  string          `json:"reference"`
	Notes      string          `json:"notes"`
}

// PaymentResponse payment representation in responses.
type PaymentResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Mode       string          `json:"mode"`
	Reference  string          `json:"reference,omitempty"`
}

// CustomerDuesResponse outstanding balance of one customer:
// Σ(order totals) − Σ(payments), cancelled orders excluded.
type CustomerDuesResponse struct {
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	TotalOrdered decimal.Decimal `json:"total_ordered"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	Outstanding  decimal.Decimal `json:"outstanding"`
	AsOf         time.Time       `json:"as_of"`
}
