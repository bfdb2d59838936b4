package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zicku/belimbing-ledger/internal/domain"
	"github.com/zicku/belimbing-ledger/internal/logger"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	const query = `
INSERT INTO accounts (id, customer_id, deposito_type_id, balance, opened_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at, updated_at`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		account.ID,
		account.CustomerID,
		nullableID(account.ProductID),
		account.Balance,
		account.OpenedAt,
	).Scan(&account.CreatedAt, &account.UpdatedAt); err != nil {
		logger.Error("account repository create failed", err, logger.Fields{"customerId": account.CustomerID})
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (domain.Account, error) {
	const query = `
SELECT id, customer_id, deposito_type_id, balance, opened_at, last_transaction_date, created_at, updated_at
FROM accounts
WHERE id = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	if err != nil {
		logger.Error("account repository get failed", err, logger.Fields{"accountId": id})
		return domain.Account{}, fmt.Errorf("get account: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetViews(ctx context.Context) ([]domain.AccountView, error) {
	const query = `
SELECT a.id, a.customer_id, a.deposito_type_id, a.balance, a.opened_at, a.last_transaction_date,
       a.created_at, a.updated_at,
       c.name, COALESCE(t.name, ''), COALESCE(t.yearly_return, 0)
FROM accounts a
JOIN customers c ON c.id = a.customer_id
LEFT JOIN deposito_types t ON t.id = a.deposito_type_id
ORDER BY a.created_at, a.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("account repository list failed", err, nil)
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var out []domain.AccountView
	for rows.Next() {
		var (
			view      domain.AccountView
			productID sql.NullString
			lastDate  sql.NullTime
		)
		if err := rows.Scan(
			&view.ID,
			&view.CustomerID,
			&productID,
			&view.Balance,
			&view.OpenedAt,
			&lastDate,
			&view.CreatedAt,
			&view.UpdatedAt,
			&view.CustomerName,
			&view.ProductName,
			&view.YearlyReturn,
		); err != nil {
			return nil, fmt.Errorf("scan account view: %w", err)
		}
		view.ProductID = productID.String
		if lastDate.Valid {
			last := lastDate.Time
			view.LastTransactionAt = &last
		}
		out = append(out, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}

	return out, nil
}

func (r *AccountRepository) Update(ctx context.Context, account domain.Account) (domain.Account, error) {
	const query = `
UPDATE accounts
SET deposito_type_id = $2, updated_at = NOW()
WHERE id = $1
RETURNING customer_id, balance, opened_at, last_transaction_date, created_at, updated_at`

	var lastDate sql.NullTime
	err := r.db.QueryRowContext(ctx, query, account.ID, nullableID(account.ProductID)).
		Scan(&account.CustomerID, &account.Balance, &account.OpenedAt, &lastDate, &account.CreatedAt, &account.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	if err != nil {
		logger.Error("account repository update failed", err, logger.Fields{"accountId": account.ID})
		return domain.Account{}, fmt.Errorf("update account: %w", err)
	}
	if lastDate.Valid {
		last := lastDate.Time
		account.LastTransactionAt = &last
	}

	return account, nil
}

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM accounts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("account repository delete failed", err, logger.Fields{"accountId": id})
		return fmt.Errorf("delete account: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete account rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

func (r *AccountRepository) CountByCustomerID(ctx context.Context, customerID string) (int, error) {
	const query = `SELECT COUNT(1) FROM accounts WHERE customer_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, customerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count accounts for customer: %w", err)
	}

	return count, nil
}

func (r *AccountRepository) ClearProductRefs(ctx context.Context, productID string) (int, error) {
	const query = `
UPDATE accounts
SET deposito_type_id = NULL, updated_at = NOW()
WHERE deposito_type_id = $1`

	result, err := r.db.ExecContext(ctx, query, productID)
	if err != nil {
		logger.Error("account repository clear product refs failed", err, logger.Fields{"depositoTypeId": productID})
		return 0, fmt.Errorf("clear product references: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear product references rows affected: %w", err)
	}

	return int(affected), nil
}

// ApplyTransaction writes the balance update and the ledger entry in a
// single database transaction; the row lock taken by the UPDATE backs the
// per-account serialization the service layer relies on.
func (r *AccountRepository) ApplyTransaction(ctx context.Context, account domain.Account, entry domain.Transaction) (domain.Account, domain.Transaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("account repository begin tx failed", err, nil)
		return domain.Account{}, domain.Transaction{}, fmt.Errorf("begin apply transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const updateQuery = `
UPDATE accounts
SET balance = $2, last_transaction_date = $3, updated_at = NOW()
WHERE id = $1
RETURNING created_at, updated_at`

	err = tx.QueryRowContext(ctx, updateQuery, account.ID, account.Balance, account.LastTransactionAt).
		Scan(&account.CreatedAt, &account.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		err = domain.ErrAccountNotFound
		return domain.Account{}, domain.Transaction{}, err
	}
	if err != nil {
		logger.Error("account repository apply balance update failed", err, logger.Fields{"accountId": account.ID})
		return domain.Account{}, domain.Transaction{}, fmt.Errorf("apply balance update: %w", err)
	}

	const insertQuery = `
INSERT INTO transactions (id, account_id, kind, amount, effective_date, resulting_balance)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING created_at`

	err = tx.QueryRowContext(
		ctx,
		insertQuery,
		entry.ID,
		entry.AccountID,
		string(entry.Kind),
		entry.Amount,
		entry.EffectiveDate,
		entry.ResultingBalance,
	).Scan(&entry.CreatedAt)
	if err != nil {
		logger.Error("account repository append entry failed", err, logger.Fields{"accountId": account.ID})
		return domain.Account{}, domain.Transaction{}, fmt.Errorf("append ledger entry: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.Error("account repository commit apply failed", err, logger.Fields{"accountId": account.ID})
		return domain.Account{}, domain.Transaction{}, fmt.Errorf("commit apply transaction: %w", err)
	}

	return account, entry, nil
}

func scanAccount(row *sql.Row) (domain.Account, error) {
	var (
		account   domain.Account
		productID sql.NullString
		lastDate  sql.NullTime
	)
	if err := row.Scan(
		&account.ID,
		&account.CustomerID,
		&productID,
		&account.Balance,
		&account.OpenedAt,
		&lastDate,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return domain.Account{}, err
	}

	account.ProductID = productID.String
	if lastDate.Valid {
		last := lastDate.Time
		account.LastTransactionAt = &last
	}

	return account, nil
}

func nullableID(id string) sql.NullString {
	return sql.NullString{String: id, Valid: id != ""}
}
