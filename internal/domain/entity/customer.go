package entity

import "time"

// Customer represents a delivery customer of the milk center.
// Area groups customers into delivery runs (track sheets).
type Customer struct {
	ID        string
	Name      string
	Area      string
	Phone     string
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
