package repository

import (
	"time"

	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
)

// OrderRepository defines the persistence port for Order (header + items).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListByCustomer(customerID string, from, to time.Time) ([]*entity.Order, error)
	ListByDate(date time.Time) ([]*entity.Order, error)
	UpdateStatus(id, status string) error
}
