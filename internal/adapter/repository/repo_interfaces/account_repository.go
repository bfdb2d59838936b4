package repo_interfaces

import (
	"context"

	"github.com/zicku/belimbing-ledger/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	GetByID(ctx context.Context, id string) (domain.Account, error)
	GetViews(ctx context.Context) ([]domain.AccountView, error)
	Update(ctx context.Context, account domain.Account) (domain.Account, error)
	Delete(ctx context.Context, id string) error
	CountByCustomerID(ctx context.Context, customerID string) (int, error)
	// ClearProductRefs nulls the product reference on every account that
	// points at the given product and returns how many were touched.
	ClearProductRefs(ctx context.Context, productID string) (int, error)
	// ApplyTransaction persists the updated account state and appends the
	// ledger entry as one atomic operation. Neither side is ever visible
	// without the other.
	ApplyTransaction(ctx context.Context, account domain.Account, entry domain.Transaction) (domain.Account, domain.Transaction, error)
}
