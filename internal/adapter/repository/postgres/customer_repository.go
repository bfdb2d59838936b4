package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zicku/belimbing-ledger/internal/domain"
	"github.com/zicku/belimbing-ledger/internal/logger"
)

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	const query = `
INSERT INTO customers (id, name)
VALUES ($1, $2)
RETURNING created_at, updated_at`

	if err := r.db.QueryRowContext(ctx, query, customer.ID, customer.Name).
		Scan(&customer.CreatedAt, &customer.UpdatedAt); err != nil {
		logger.Error("customer repository create failed", err, logger.Fields{"name": customer.Name})
		return domain.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	return customer, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (domain.Customer, error) {
	const query = `
SELECT id, name, created_at, updated_at
FROM customers
WHERE id = $1`

	var customer domain.Customer
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&customer.ID, &customer.Name, &customer.CreatedAt, &customer.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	if err != nil {
		logger.Error("customer repository get failed", err, logger.Fields{"customerId": id})
		return domain.Customer{}, fmt.Errorf("get customer: %w", err)
	}

	return customer, nil
}

func (r *CustomerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	const query = `
SELECT id, name, created_at, updated_at
FROM customers
ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("customer repository list failed", err, nil)
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var out []domain.Customer
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.CreatedAt, &customer.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}

	return out, nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	const query = `
UPDATE customers
SET name = $2, updated_at = NOW()
WHERE id = $1
RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, customer.ID, customer.Name).
		Scan(&customer.CreatedAt, &customer.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	if err != nil {
		logger.Error("customer repository update failed", err, logger.Fields{"customerId": customer.ID})
		return domain.Customer{}, fmt.Errorf("update customer: %w", err)
	}

	return customer, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM customers WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("customer repository delete failed", err, logger.Fields{"customerId": id})
		return fmt.Errorf("delete customer: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete customer rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrCustomerNotFound
	}

	return nil
}
