package repository

import "github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"

// SupplierRepository defines the persistence port for Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByPhone(phone string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error
}
