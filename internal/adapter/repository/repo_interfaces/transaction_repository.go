package repo_interfaces

import (
	"context"

	"github.com/zicku/belimbing-ledger/internal/domain"
)

type TransactionRepository interface {
	ListByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error)
	CountByAccountID(ctx context.Context, accountID string) (int, error)
}
