package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zicku/belimbing-ledger/internal/accrual"
	"github.com/zicku/belimbing-ledger/internal/domain"
)

type CalculateWithdrawalRequest struct {
	AccountID    string `json:"accountId"`
	WithdrawDate string `json:"withdrawDate"`
}

func (r CalculateWithdrawalRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountID) == "" {
		errs = append(errs, "accountId is required")
	}
	if strings.TrimSpace(r.WithdrawDate) == "" {
		errs = append(errs, "withdrawDate is required")
	} else if _, err := domain.ParseDate(r.WithdrawDate); err != nil {
		errs = append(errs, "withdrawDate must be a YYYY-MM-DD date")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type CalculationResponse struct {
	DurationMonths int             `json:"duration_months"`
	Interest       decimal.Decimal `json:"interest"`
	EndingBalance  decimal.Decimal `json:"ending_balance"`
}

func NewCalculationResponse(result accrual.Result) CalculationResponse {
	return CalculationResponse{
		DurationMonths: result.Months,
		Interest:       result.Interest,
		EndingBalance:  result.EndingBalance,
	}
}

type ProcessTransactionRequest struct {
	AccountID string          `json:"accountId"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
}

func (r ProcessTransactionRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountID) == "" {
		errs = append(errs, "accountId is required")
	}

	kind := domain.TransactionKind(strings.ToLower(strings.TrimSpace(r.Type)))
	if kind != domain.TransactionKindDeposit && kind != domain.TransactionKindWithdraw {
		errs = append(errs, "type must be deposit or withdraw")
	}

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if strings.TrimSpace(r.Date) == "" {
		errs = append(errs, "date is required")
	} else if _, err := domain.ParseDate(r.Date); err != nil {
		errs = append(errs, "date must be a YYYY-MM-DD date")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (r ProcessTransactionRequest) Kind() domain.TransactionKind {
	return domain.TransactionKind(strings.ToLower(strings.TrimSpace(r.Type)))
}

type TransactionResponse struct {
	ID               string          `json:"id"`
	Type             string          `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	Date             string          `json:"date"`
	ResultingBalance decimal.Decimal `json:"resulting_balance"`
}

func NewTransactionResponse(entry domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:               entry.ID,
		Type:             string(entry.Kind),
		Amount:           entry.Amount,
		Date:             domain.FormatDate(entry.EffectiveDate),
		ResultingBalance: entry.ResultingBalance,
	}
}
