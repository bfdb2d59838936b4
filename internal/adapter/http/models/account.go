package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zicku/belimbing-ledger/internal/domain"
)

type CreateAccountRequest struct {
	CustomerID     string `json:"customer_id"`
	DepositoTypeID string `json:"deposito_type_id"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.CustomerID) == "" {
		errs = append(errs, "customer_id is required")
	}
	if strings.TrimSpace(r.DepositoTypeID) == "" {
		errs = append(errs, "deposito_type_id is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type UpdateAccountRequest struct {
	DepositoTypeID string `json:"deposito_type_id"`
}

func (r UpdateAccountRequest) Validate() error {
	if strings.TrimSpace(r.DepositoTypeID) == "" {
		return errors.New("deposito_type_id is required")
	}
	return nil
}

type AccountResponse struct {
	ID                  string          `json:"id"`
	CustomerID          string          `json:"customer_id"`
	CustomerName        string          `json:"customer_name,omitempty"`
	DepositoTypeID      string          `json:"deposito_type_id"`
	DepositoName        string          `json:"deposito_name,omitempty"`
	YearlyReturn        decimal.Decimal `json:"yearly_return"`
	Balance             decimal.Decimal `json:"balance"`
	OpenedAt            string          `json:"opened_at"`
	LastTransactionDate *string         `json:"last_transaction_date"`
}

func NewAccountResponse(account domain.Account) AccountResponse {
	return AccountResponse{
		ID:                  account.ID,
		CustomerID:          account.CustomerID,
		DepositoTypeID:      account.ProductID,
		YearlyReturn:        decimal.Zero,
		Balance:             account.Balance,
		OpenedAt:            domain.FormatDate(account.OpenedAt),
		LastTransactionDate: formatDatePtr(account.LastTransactionAt),
	}
}

func NewAccountViewResponse(view domain.AccountView) AccountResponse {
	response := NewAccountResponse(view.Account)
	response.CustomerName = view.CustomerName
	response.DepositoName = view.ProductName
	response.YearlyReturn = view.YearlyReturn
	return response
}

func formatDatePtr(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := domain.FormatDate(*value)
	return &formatted
}
