package memory

import (
	"context"
	"time"

	"github.com/zicku/belimbing-ledger/internal/domain"
)

type CustomerRepository struct {
	store *Store
}

func NewCustomerRepository(store *Store) *CustomerRepository {
	return &CustomerRepository{store: store}
}

func (r *CustomerRepository) Create(_ context.Context, customer domain.Customer) (domain.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.now()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	r.store.customers[customer.ID] = customer

	return customer, nil
}

func (r *CustomerRepository) GetByID(_ context.Context, id string) (domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	customer, ok := r.store.customers[id]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}

	return customer, nil
}

func (r *CustomerRepository) GetAll(_ context.Context) ([]domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Customer, 0, len(r.store.customers))
	for _, customer := range r.store.customers {
		out = append(out, customer)
	}
	sortByCreation(out,
		func(c domain.Customer) time.Time { return c.CreatedAt },
		func(c domain.Customer) string { return c.ID })

	return out, nil
}

func (r *CustomerRepository) Update(_ context.Context, customer domain.Customer) (domain.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.customers[customer.ID]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}

	existing.Name = customer.Name
	existing.UpdatedAt = r.store.now()
	r.store.customers[existing.ID] = existing

	return existing, nil
}

func (r *CustomerRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(r.store.customers, id)

	return nil
}
