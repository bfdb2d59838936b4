package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zicku/belimbing-ledger/internal/domain"
	"github.com/zicku/belimbing-ledger/internal/logger"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) ListByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	const query = `
SELECT id, account_id, kind, amount, effective_date, resulting_balance, created_at
FROM transactions
WHERE account_id = $1
ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		logger.Error("transaction repository list failed", err, logger.Fields{"accountId": accountID})
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		var (
			entry domain.Transaction
			kind  string
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.AccountID,
			&kind,
			&entry.Amount,
			&entry.EffectiveDate,
			&entry.ResultingBalance,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		entry.Kind = domain.TransactionKind(kind)
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return out, nil
}

func (r *TransactionRepository) CountByAccountID(ctx context.Context, accountID string) (int, error) {
	const query = `SELECT COUNT(1) FROM transactions WHERE account_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, accountID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}

	return count, nil
}
