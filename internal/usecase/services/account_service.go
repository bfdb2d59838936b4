package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zicku/belimbing-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/zicku/belimbing-ledger/internal/domain"
	"github.com/zicku/belimbing-ledger/internal/logger"
)

type AccountService struct {
	accountRepo     repo_interfaces.AccountRepository
	customerRepo    repo_interfaces.CustomerRepository
	productRepo     repo_interfaces.ProductRepository
	transactionRepo repo_interfaces.TransactionRepository
}

func NewAccountService(
	accountRepo repo_interfaces.AccountRepository,
	customerRepo repo_interfaces.CustomerRepository,
	productRepo repo_interfaces.ProductRepository,
	transactionRepo repo_interfaces.TransactionRepository,
) *AccountService {
	return &AccountService{
		accountRepo:     accountRepo,
		customerRepo:    customerRepo,
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
	}
}

// Open creates a zero-balance account for an existing customer on an
// existing deposito type. The account has never transacted, so its accrual
// clock starts at the opening date.
func (s *AccountService) Open(ctx context.Context, customerID, productID string) (domain.Account, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return domain.Account{}, err
	}
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return domain.Account{}, err
	}

	account, err := s.accountRepo.Create(ctx, domain.Account{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		ProductID:  productID,
		Balance:    decimal.Zero,
		OpenedAt:   domain.Today(),
	})
	if err != nil {
		logger.Error("account service open failed", err, logger.Fields{
			"customerId":     customerID,
			"depositoTypeId": productID,
		})
		return domain.Account{}, fmt.Errorf("open account: %w", err)
	}

	logger.Info("account service open success", logger.Fields{"accountId": account.ID})
	return account, nil
}

// ChangeProduct moves an account onto another deposito type. The new rate
// applies prospectively only; interest already realized under the old rate
// is never recalculated.
func (s *AccountService) ChangeProduct(ctx context.Context, accountID, productID string) (domain.Account, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return domain.Account{}, err
	}

	account, err := s.accountRepo.Update(ctx, domain.Account{ID: accountID, ProductID: productID})
	if err != nil {
		logger.Error("account service change product failed", err, logger.Fields{
			"accountId":      accountID,
			"depositoTypeId": productID,
		})
		return domain.Account{}, err
	}

	logger.Info("account service change product success", logger.Fields{
		"accountId":      account.ID,
		"depositoTypeId": productID,
	})
	return account, nil
}

// Delete removes an account. The balance must be zero and the ledger must be
// clean: recorded transactions are immutable, so an account that has ever
// transacted stays on the books.
func (s *AccountService) Delete(ctx context.Context, accountID string) error {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	if !account.Balance.IsZero() {
		return domain.ErrAccountHasBalance
	}

	recorded, err := s.transactionRepo.CountByAccountID(ctx, accountID)
	if err != nil {
		logger.Error("account service delete history count failed", err, logger.Fields{"accountId": accountID})
		return fmt.Errorf("count transactions for account: %w", err)
	}
	if recorded > 0 {
		return domain.ErrAccountHasHistory
	}

	if err := s.accountRepo.Delete(ctx, accountID); err != nil {
		logger.Error("account service delete failed", err, logger.Fields{"accountId": accountID})
		return err
	}

	logger.Info("account service delete success", logger.Fields{"accountId": accountID})
	return nil
}

// History returns the account's ledger entries oldest first. The ledger is
// append-only, so this is the full audit trail for the account.
func (s *AccountService) History(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	entries, err := s.transactionRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		logger.Error("account service history failed", err, logger.Fields{"accountId": accountID})
		return nil, fmt.Errorf("list transactions for account: %w", err)
	}

	return entries, nil
}

func (s *AccountService) List(ctx context.Context) ([]domain.AccountView, error) {
	views, err := s.accountRepo.GetViews(ctx)
	if err != nil {
		logger.Error("account service list failed", err, nil)
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	return views, nil
}
