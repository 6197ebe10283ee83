package dto

import "time"

// CreateCustomerRequest body for POST /api/customers.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Area  string `json:"area"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// UpdateCustomerRequest body for PUT /api/customers/:id.
type UpdateCustomerRequest struct {
	Name     *string `json:"name"`
	Area     *string `json:"area"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	IsActive *bool   `json:"is_active"`
}

// CustomerResponse customer representation in responses.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Area      string    `json:"area"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSupplierRequest body for POST /api/suppliers.
type CreateSupplierRequest struct {
	Name  string `json:"name"`
	GSTIN string `json:"gstin"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// UpdateSupplierRequest body for PUT /api/suppliers/:id.
type UpdateSupplierRequest struct {
	Name     *string `json:"name"`
	GSTIN    *string `json:"gstin"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	IsActive *bool   `json:"is_active"`
}

// SupplierResponse supplier representation in responses.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	GSTIN     string    `json:"gstin"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
