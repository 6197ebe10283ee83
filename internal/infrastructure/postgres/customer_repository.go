package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/VeerDubey/milk-management-91-sub004/internal/domain"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/entity"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implements the CustomerRepository port over PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the persistence adapter for customers.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persists a new customer. Phone is unique.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, area, phone, email, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Area, customer.Phone, customer.Email,
		customer.IsActive, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID fetches a customer by ID. Returns (nil, nil) when absent.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `
		SELECT id, name, area, phone, email, is_active, created_at, updated_at
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Area, &c.Phone, &c.Email, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// GetByPhone fetches a customer by phone number.
func (r *CustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	query := `
		SELECT id, name, area, phone, email, is_active, created_at, updated_at
		FROM customers WHERE phone = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, phone).Scan(
		&c.ID, &c.Name, &c.Area, &c.Phone, &c.Email, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by phone: %w", err)
	}
	return &c, nil
}

// Update updates an existing customer.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, area = $3, phone = $4, email = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Area, customer.Phone, customer.Email,
		customer.IsActive, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// List lists customers with pagination, newest first.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, area, phone, email, is_active, created_at, updated_at
		FROM customers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	return scanCustomers(rows)
}

// ListByArea lists a delivery area's customers ordered by name (track sheet
// row order).
func (r *CustomerRepo) ListByArea(area string) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, area, phone, email, is_active, created_at, updated_at
		FROM customers WHERE area = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, area)
	if err != nil {
		return nil, fmt.Errorf("list customers by area: %w", err)
	}
	defer rows.Close()
	return scanCustomers(rows)
}

// Delete removes a customer by ID.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func scanCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Area, &c.Phone, &c.Email,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
