package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zicku/belimbing-ledger/internal/domain"
)

type SaveDepositoTypeRequest struct {
	Name         string          `json:"name"`
	YearlyReturn decimal.Decimal `json:"yearly_return"`
}

func (r SaveDepositoTypeRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if r.YearlyReturn.IsNegative() {
		errs = append(errs, "yearly_return cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type DepositoTypeResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	YearlyReturn decimal.Decimal `json:"yearly_return"`
}

func NewDepositoTypeResponse(product domain.DepositProduct) DepositoTypeResponse {
	return DepositoTypeResponse{
		ID:           product.ID,
		Name:         product.Name,
		YearlyReturn: product.YearlyReturn,
	}
}
