package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zicku/belimbing-ledger/internal/accrual"
	"github.com/zicku/belimbing-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/zicku/belimbing-ledger/internal/domain"
	"github.com/zicku/belimbing-ledger/internal/logger"
)

// TransactionService validates and applies deposits and withdrawals. All
// mutations on the same account run under that account's lock, released on
// every exit path, so two concurrent withdrawals can never both observe the
// same pre-withdrawal balance.
type TransactionService struct {
	accountRepo repo_interfaces.AccountRepository
	productRepo repo_interfaces.ProductRepository
	locks       *accountLocks
}

func NewTransactionService(
	accountRepo repo_interfaces.AccountRepository,
	productRepo repo_interfaces.ProductRepository,
) *TransactionService {
	return &TransactionService{
		accountRepo: accountRepo,
		productRepo: productRepo,
		locks:       newAccountLocks(),
	}
}

func (s *TransactionService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal, effectiveDate time.Time) (domain.Account, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.Account{}, domain.ErrInvalidAmount
	}

	lock := s.locks.get(accountID)
	lock.Lock()
	defer lock.Unlock()

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return domain.Account{}, err
	}
	// The accrual start is the last transaction date, or the opening date
	// for a never-transacted account; nothing may be dated before either.
	if effectiveDate.Before(account.AccrualStart()) {
		return domain.Account{}, domain.ErrNonMonotonicDate
	}

	account.Balance = account.Balance.Add(amount)
	account.LastTransactionAt = &effectiveDate

	updated, entry, err := s.apply(ctx, account, domain.Transaction{
		ID:               uuid.NewString(),
		AccountID:        accountID,
		Kind:             domain.TransactionKindDeposit,
		Amount:           amount,
		EffectiveDate:    effectiveDate,
		ResultingBalance: account.Balance,
	})
	if err != nil {
		return domain.Account{}, err
	}

	logger.Info("transaction service deposit success", logger.Fields{
		"accountId":     accountID,
		"transactionId": entry.ID,
		"amount":        amount.String(),
		"balance":       updated.Balance.String(),
	})
	return updated, nil
}

// PreviewWithdrawal computes the accrual a withdrawal on asOf would realize
// without touching any state. The ending balance is the maximum amount
// currently withdrawable; Withdraw replays exactly this computation.
func (s *TransactionService) PreviewWithdrawal(ctx context.Context, accountID string, asOf time.Time) (accrual.Result, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return accrual.Result{}, err
	}

	return s.accrueFor(ctx, account, asOf)
}

func (s *TransactionService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, effectiveDate time.Time) (domain.Account, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.Account{}, domain.ErrInvalidAmount
	}

	lock := s.locks.get(accountID)
	lock.Lock()
	defer lock.Unlock()

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return domain.Account{}, err
	}
	if effectiveDate.Before(account.AccrualStart()) {
		return domain.Account{}, domain.ErrNonMonotonicDate
	}

	result, err := s.accrueFor(ctx, account, effectiveDate)
	if err != nil {
		return domain.Account{}, err
	}
	if amount.GreaterThan(result.EndingBalance) {
		return domain.Account{}, domain.ErrInsufficientFunds
	}

	// Accrued interest is realized into the account before the amount is
	// removed, and the accrual clock restarts at the effective date so the
	// interest just paid out is not counted again next cycle.
	account.Balance = result.EndingBalance.Sub(amount)
	account.LastTransactionAt = &effectiveDate

	updated, entry, err := s.apply(ctx, account, domain.Transaction{
		ID:               uuid.NewString(),
		AccountID:        accountID,
		Kind:             domain.TransactionKindWithdraw,
		Amount:           amount,
		EffectiveDate:    effectiveDate,
		ResultingBalance: account.Balance,
	})
	if err != nil {
		return domain.Account{}, err
	}

	logger.Info("transaction service withdraw success", logger.Fields{
		"accountId":     accountID,
		"transactionId": entry.ID,
		"amount":        amount.String(),
		"interest":      result.Interest.String(),
		"balance":       updated.Balance.String(),
	})
	return updated, nil
}

// accrueFor runs the accrual engine from the account's accrual start date.
// An account whose deposito type was retired accrues nothing until it is
// moved onto a live type.
func (s *TransactionService) accrueFor(ctx context.Context, account domain.Account, asOf time.Time) (accrual.Result, error) {
	rate := decimal.Zero
	if account.ProductID != "" {
		product, err := s.productRepo.GetByID(ctx, account.ProductID)
		if err != nil {
			return accrual.Result{}, err
		}
		rate = product.YearlyReturn
	}

	return accrual.Accrue(account.Balance, rate, account.AccrualStart(), asOf)
}

// apply persists the validated update, retrying once on storage failure
// while the account lock is still held. A failure that survives the retry is
// surfaced as transient so the caller knows the request itself was sound.
func (s *TransactionService) apply(ctx context.Context, account domain.Account, entry domain.Transaction) (domain.Account, domain.Transaction, error) {
	updated, recorded, err := s.accountRepo.ApplyTransaction(ctx, account, entry)
	if err == nil {
		return updated, recorded, nil
	}
	if errors.Is(err, domain.ErrAccountNotFound) {
		return domain.Account{}, domain.Transaction{}, err
	}

	logger.Error("transaction service apply failed, retrying", err, logger.Fields{
		"accountId":     account.ID,
		"transactionId": entry.ID,
	})

	updated, recorded, err = s.accountRepo.ApplyTransaction(ctx, account, entry)
	if err != nil {
		logger.Error("transaction service apply retry failed", err, logger.Fields{
			"accountId":     account.ID,
			"transactionId": entry.ID,
		})
		return domain.Account{}, domain.Transaction{}, fmt.Errorf("%w: %s", domain.ErrTransient, err)
	}

	return updated, recorded, nil
}
