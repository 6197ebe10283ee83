package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body for POST /api/products.
type CreateProductRequest struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Price     decimal.Decimal `json:"price"`
	CostPrice decimal.Decimal `json:"cost_price"`
	MinStock  decimal.Decimal `json:"min_stock"`
}

// UpdateProductRequest body for PUT /api/products/:id. Nil fields are left
// unchanged.
type UpdateProductRequest struct {
	Name      *string          `json:"name"`
	Unit      *string          `json:"unit"`
	Price     *decimal.Decimal `json:"price"`
	CostPrice *decimal.Decimal `json:"cost_price"`
	MinStock  *decimal.Decimal `json:"min_stock"`
	IsActive  *bool            `json:"is_active"`
}

// ProductResponse product representation in responses.
type ProductResponse struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Price     decimal.Decimal `json:"price"`
	CostPrice decimal.Decimal `json:"cost_price"`
	MinStock  decimal.Decimal `json:"min_stock"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse paginated product list.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
