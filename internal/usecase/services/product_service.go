package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zicku/belimbing-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/zicku/belimbing-ledger/internal/domain"
	"github.com/zicku/belimbing-ledger/internal/logger"
)

type ProductService struct {
	productRepo repo_interfaces.ProductRepository
	accountRepo repo_interfaces.AccountRepository
}

func NewProductService(
	productRepo repo_interfaces.ProductRepository,
	accountRepo repo_interfaces.AccountRepository,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		accountRepo: accountRepo,
	}
}

func (s *ProductService) Create(ctx context.Context, name string, yearlyReturn decimal.Decimal) (domain.DepositProduct, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.DepositProduct{}, errors.New("name is required")
	}
	if yearlyReturn.IsNegative() {
		return domain.DepositProduct{}, errors.New("yearly_return cannot be negative")
	}

	product, err := s.productRepo.Create(ctx, domain.DepositProduct{
		ID:           uuid.NewString(),
		Name:         name,
		YearlyReturn: yearlyReturn,
	})
	if err != nil {
		logger.Error("product service create failed", err, logger.Fields{"name": name})
		return domain.DepositProduct{}, fmt.Errorf("create deposito type: %w", err)
	}

	logger.Info("product service create success", logger.Fields{"depositoTypeId": product.ID})
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id, name string, yearlyReturn decimal.Decimal) (domain.DepositProduct, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.DepositProduct{}, errors.New("name is required")
	}
	if yearlyReturn.IsNegative() {
		return domain.DepositProduct{}, errors.New("yearly_return cannot be negative")
	}

	product, err := s.productRepo.Update(ctx, domain.DepositProduct{
		ID:           id,
		Name:         name,
		YearlyReturn: yearlyReturn,
	})
	if err != nil {
		logger.Error("product service update failed", err, logger.Fields{"depositoTypeId": id})
		return domain.DepositProduct{}, err
	}

	return product, nil
}

// Delete retires a deposito type. Accounts still referencing it keep running
// with their reference cleared; the dashboard reports them under the
// "Unknown" bucket. Rate changes never apply retroactively, so retiring a
// product does not touch interest already realized.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		return err
	}

	cleared, err := s.accountRepo.ClearProductRefs(ctx, id)
	if err != nil {
		logger.Error("product service clear refs failed", err, logger.Fields{"depositoTypeId": id})
		return fmt.Errorf("clear product references: %w", err)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("product service delete failed", err, logger.Fields{"depositoTypeId": id})
		return err
	}

	logger.Info("product service delete success", logger.Fields{
		"depositoTypeId":  id,
		"accountsCleared": cleared,
	})
	return nil
}

func (s *ProductService) List(ctx context.Context) ([]domain.DepositProduct, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		logger.Error("product service list failed", err, nil)
		return nil, fmt.Errorf("list deposito types: %w", err)
	}

	return products, nil
}
