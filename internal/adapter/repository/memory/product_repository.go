package memory

import (
	"context"
	"time"

	"github.com/zicku/belimbing-ledger/internal/domain"
)

type ProductRepository struct {
	store *Store
}

func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) Create(_ context.Context, product domain.DepositProduct) (domain.DepositProduct, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.now()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.store.products[product.ID] = product

	return product, nil
}

func (r *ProductRepository) GetByID(_ context.Context, id string) (domain.DepositProduct, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	product, ok := r.store.products[id]
	if !ok {
		return domain.DepositProduct{}, domain.ErrProductNotFound
	}

	return product, nil
}

func (r *ProductRepository) GetAll(_ context.Context) ([]domain.DepositProduct, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.DepositProduct, 0, len(r.store.products))
	for _, product := range r.store.products {
		out = append(out, product)
	}
	sortByCreation(out,
		func(p domain.DepositProduct) time.Time { return p.CreatedAt },
		func(p domain.DepositProduct) string { return p.ID })

	return out, nil
}

func (r *ProductRepository) Update(_ context.Context, product domain.DepositProduct) (domain.DepositProduct, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.products[product.ID]
	if !ok {
		return domain.DepositProduct{}, domain.ErrProductNotFound
	}

	existing.Name = product.Name
	existing.YearlyReturn = product.YearlyReturn
	existing.UpdatedAt = r.store.now()
	r.store.products[existing.ID] = existing

	return existing, nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.store.products, id)

	return nil
}
