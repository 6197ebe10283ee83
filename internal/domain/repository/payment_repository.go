package repository

import "github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"

// PaymentRepository defines the persistence port for Payment.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	ListByCustomer(customerID string) ([]*entity.Payment, error)
	List(limit, offset int) ([]*entity.Payment, error)
}
