package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order is a customer sale (one delivery or counter sale).
// Total = Σ item amounts; item rates come from the rate resolver.
type Order struct {
	ID         string
	CustomerID string
	Date       time.Time
	Items      []OrderItem
	Total      decimal.Decimal
	Status     string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderItem is a single product line of an order.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  decimal.Decimal
	Rate      decimal.Decimal // resolved unit rate at order time
	Amount    decimal.Decimal // Quantity * Rate
}
