package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a dairy product or SKU sold by the center.
// Price is the default selling rate; customer/supplier rate overrides
// supersede it when active. MinStock, when positive, replaces the configured
// low-stock threshold for this product's alerts.
type Product struct {
	ID        string
	SKU       string // unique code
	Name      string
	Unit      string // liter, packet, kg
	Price     decimal.Decimal // default selling rate per unit
	CostPrice decimal.Decimal // default purchase rate per unit
	MinStock  decimal.Decimal // low-stock threshold; zero = use configured default
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
