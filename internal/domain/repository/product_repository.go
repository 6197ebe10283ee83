package repository

import "github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"

// ProductRepository defines the persistence port for Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
