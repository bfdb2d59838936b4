package memory

import (
	"context"
	"errors"
	"time"

	"github.com/zicku/belimbing-ledger/internal/domain"
)

type AccountRepository struct {
	store *Store
}

func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.now()
	account.CreatedAt = now
	account.UpdatedAt = now
	r.store.accounts[account.ID] = account

	return account, nil
}

func (r *AccountRepository) GetByID(_ context.Context, id string) (domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	account, ok := r.store.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return account, nil
}

func (r *AccountRepository) GetViews(_ context.Context) ([]domain.AccountView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.AccountView, 0, len(r.store.accounts))
	for _, account := range r.store.accounts {
		view := domain.AccountView{Account: account}
		if customer, ok := r.store.customers[account.CustomerID]; ok {
			view.CustomerName = customer.Name
		}
		if product, ok := r.store.products[account.ProductID]; ok {
			view.ProductName = product.Name
			view.YearlyReturn = product.YearlyReturn
		}
		out = append(out, view)
	}
	sortByCreation(out,
		func(v domain.AccountView) time.Time { return v.CreatedAt },
		func(v domain.AccountView) string { return v.ID })

	return out, nil
}

func (r *AccountRepository) Update(_ context.Context, account domain.Account) (domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.accounts[account.ID]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	existing.ProductID = account.ProductID
	existing.UpdatedAt = r.store.now()
	r.store.accounts[existing.ID] = existing

	return existing, nil
}

func (r *AccountRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.store.accounts, id)
	delete(r.store.transactions, id)

	return nil
}

func (r *AccountRepository) CountByCustomerID(_ context.Context, customerID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, account := range r.store.accounts {
		if account.CustomerID == customerID {
			count++
		}
	}

	return count, nil
}

func (r *AccountRepository) ClearProductRefs(_ context.Context, productID string) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cleared := 0
	now := r.store.now()
	for id, account := range r.store.accounts {
		if account.ProductID != productID {
			continue
		}
		account.ProductID = ""
		account.UpdatedAt = now
		r.store.accounts[id] = account
		cleared++
	}

	return cleared, nil
}

func (r *AccountRepository) ApplyTransaction(_ context.Context, account domain.Account, entry domain.Transaction) (domain.Account, domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.accounts[account.ID]
	if !ok {
		return domain.Account{}, domain.Transaction{}, domain.ErrAccountNotFound
	}
	if account.Balance.IsNegative() {
		// Mirrors the balance check constraint on the accounts table.
		return domain.Account{}, domain.Transaction{}, errors.New("balance would become negative")
	}

	now := r.store.now()
	existing.Balance = account.Balance
	existing.LastTransactionAt = account.LastTransactionAt
	existing.UpdatedAt = now
	r.store.accounts[existing.ID] = existing

	entry.CreatedAt = now
	r.store.transactions[entry.AccountID] = append(r.store.transactions[entry.AccountID], entry)

	return existing, entry, nil
}
