package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zicku/belimbing-ledger/internal/domain"
	"github.com/zicku/belimbing-ledger/internal/logger"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product domain.DepositProduct) (domain.DepositProduct, error) {
	const query = `
INSERT INTO deposito_types (id, name, yearly_return)
VALUES ($1, $2, $3)
RETURNING created_at, updated_at`

	if err := r.db.QueryRowContext(ctx, query, product.ID, product.Name, product.YearlyReturn).
		Scan(&product.CreatedAt, &product.UpdatedAt); err != nil {
		logger.Error("product repository create failed", err, logger.Fields{"name": product.Name})
		return domain.DepositProduct{}, fmt.Errorf("create deposito type: %w", err)
	}

	return product, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (domain.DepositProduct, error) {
	const query = `
SELECT id, name, yearly_return, created_at, updated_at
FROM deposito_types
WHERE id = $1`

	var product domain.DepositProduct
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&product.ID, &product.Name, &product.YearlyReturn, &product.CreatedAt, &product.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DepositProduct{}, domain.ErrProductNotFound
	}
	if err != nil {
		logger.Error("product repository get failed", err, logger.Fields{"depositoTypeId": id})
		return domain.DepositProduct{}, fmt.Errorf("get deposito type: %w", err)
	}

	return product, nil
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]domain.DepositProduct, error) {
	const query = `
SELECT id, name, yearly_return, created_at, updated_at
FROM deposito_types
ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("product repository list failed", err, nil)
		return nil, fmt.Errorf("list deposito types: %w", err)
	}
	defer rows.Close()

	var out []domain.DepositProduct
	for rows.Next() {
		var product domain.DepositProduct
		if err := rows.Scan(&product.ID, &product.Name, &product.YearlyReturn, &product.CreatedAt, &product.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan deposito type: %w", err)
		}
		out = append(out, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deposito types: %w", err)
	}

	return out, nil
}

func (r *ProductRepository) Update(ctx context.Context, product domain.DepositProduct) (domain.DepositProduct, error) {
	const query = `
UPDATE deposito_types
SET name = $2, yearly_return = $3, updated_at = NOW()
WHERE id = $1
RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, product.ID, product.Name, product.YearlyReturn).
		Scan(&product.CreatedAt, &product.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DepositProduct{}, domain.ErrProductNotFound
	}
	if err != nil {
		logger.Error("product repository update failed", err, logger.Fields{"depositoTypeId": product.ID})
		return domain.DepositProduct{}, fmt.Errorf("update deposito type: %w", err)
	}

	return product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM deposito_types WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("product repository delete failed", err, logger.Fields{"depositoTypeId": id})
		return fmt.Errorf("delete deposito type: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete deposito type rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}
