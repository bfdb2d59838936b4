package memory

import (
	"context"

	"github.com/zicku/belimbing-ledger/internal/domain"
)

type TransactionRepository struct {
	store *Store
}

func NewTransactionRepository(store *Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

func (r *TransactionRepository) ListByAccountID(_ context.Context, accountID string) ([]domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entries := r.store.transactions[accountID]
	out := make([]domain.Transaction, len(entries))
	copy(out, entries)

	return out, nil
}

func (r *TransactionRepository) CountByAccountID(_ context.Context, accountID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.transactions[accountID]), nil
}
