package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/zicku/belimbing-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/zicku/belimbing-ledger/internal/domain"
	"github.com/zicku/belimbing-ledger/internal/logger"
)

type CustomerService struct {
	customerRepo repo_interfaces.CustomerRepository
	accountRepo  repo_interfaces.AccountRepository
}

func NewCustomerService(
	customerRepo repo_interfaces.CustomerRepository,
	accountRepo repo_interfaces.AccountRepository,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		accountRepo:  accountRepo,
	}
}

func (s *CustomerService) Create(ctx context.Context, name string) (domain.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Customer{}, errors.New("name is required")
	}

	customer, err := s.customerRepo.Create(ctx, domain.Customer{
		ID:   uuid.NewString(),
		Name: name,
	})
	if err != nil {
		logger.Error("customer service create failed", err, logger.Fields{"name": name})
		return domain.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	logger.Info("customer service create success", logger.Fields{"customerId": customer.ID})
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id, name string) (domain.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Customer{}, errors.New("name is required")
	}

	customer, err := s.customerRepo.Update(ctx, domain.Customer{ID: id, Name: name})
	if err != nil {
		logger.Error("customer service update failed", err, logger.Fields{"customerId": id})
		return domain.Customer{}, err
	}

	return customer, nil
}

// Delete removes a customer. A customer that still owns accounts cannot be
// deleted; the accounts must be closed and removed first.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if _, err := s.customerRepo.GetByID(ctx, id); err != nil {
		return err
	}

	owned, err := s.accountRepo.CountByCustomerID(ctx, id)
	if err != nil {
		logger.Error("customer service delete account count failed", err, logger.Fields{"customerId": id})
		return fmt.Errorf("count accounts for customer: %w", err)
	}
	if owned > 0 {
		return domain.ErrCustomerHasAccounts
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		logger.Error("customer service delete failed", err, logger.Fields{"customerId": id})
		return err
	}

	logger.Info("customer service delete success", logger.Fields{"customerId": id})
	return nil
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		logger.Error("customer service list failed", err, nil)
		return nil, fmt.Errorf("list customers: %w", err)
	}

	return customers, nil
}
