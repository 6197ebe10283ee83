package repository

import "github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"

// CustomerRepository defines the persistence port for Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByPhone(phone string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	List(limit, offset int) ([]*entity.Customer, error)
	ListByArea(area string) ([]*entity.Customer, error)
	Delete(id string) error
}
