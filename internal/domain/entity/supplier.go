package entity

import "time"

// Supplier represents a dairy or wholesaler the center purchases from.
type Supplier struct {
	ID        string
	Name      string
	GSTIN     string
	Phone     string
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
