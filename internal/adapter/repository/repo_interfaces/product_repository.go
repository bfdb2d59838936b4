package repo_interfaces

import (
	"context"

	"github.com/zicku/belimbing-ledger/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product domain.DepositProduct) (domain.DepositProduct, error)
	GetByID(ctx context.Context, id string) (domain.DepositProduct, error)
	GetAll(ctx context.Context) ([]domain.DepositProduct, error)
	Update(ctx context.Context, product domain.DepositProduct) (domain.DepositProduct, error)
	Delete(ctx context.Context, id string) error
}
