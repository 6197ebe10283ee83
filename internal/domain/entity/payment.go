package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment modes.
const (
	PaymentModeCash   = "cash"
	PaymentModeUPI    = "upi"
	PaymentModeBank   = "bank"
	PaymentModeCheque = "cheque"
)

// Payment is money received from a customer against their running balance.
// Payments are not allocated to specific orders; dues are computed as
// Σ(order totals) − Σ(payments).
type Payment struct {
	ID         string
	CustomerID string
	Date       time.Time
	Amount     decimal.Decimal
	Mode       string
	Reference  string // UPI ref, cheque number
	Notes      string
	CreatedAt  time.Time
}
