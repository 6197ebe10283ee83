package repository

import "github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"

// InvoiceRepository defines the persistence port for Invoice (header + lines).
// CountForPeriod feeds the sequential part of the invoice number.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	ListByCustomer(customerID string, limit, offset int) ([]*entity.Invoice, error)
	CountForPeriod(year int, month int) (int, error)
}
