package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderItem one line of a new order; the rate is resolved server-side.
type CreateOrderItem struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateOrderRequest body for POST /api/orders.
type CreateOrderRequest struct {
	CustomerID string            `json:"customer_id"`
	Date       time.Time         `json:"date"`
	Items      []CreateOrderItem `json:"items"`
	Notes      string            `json:"notes"`
}

// OrderItemResponse one order line with the resolved rate.
type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
}

// OrderResponse order representation in responses.
type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	Date       time.Time           `json:"date"`
	Items      []OrderItemResponse `json:"items"`
	Total      decimal.Decimal     `json:"total"`
	Status     string              `json:"status"`
	Notes      string              `json:"notes,omitempty"`
}
