package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zicku/belimbing-ledger/internal/accrual"
	"github.com/zicku/belimbing-ledger/internal/adapter/http/models"
	"github.com/zicku/belimbing-ledger/internal/commons"
	"github.com/zicku/belimbing-ledger/internal/domain"
	"github.com/zicku/belimbing-ledger/internal/logger"
)

type TransactionService interface {
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal, effectiveDate time.Time) (domain.Account, error)
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, effectiveDate time.Time) (domain.Account, error)
	PreviewWithdrawal(ctx context.Context, accountID string, asOf time.Time) (accrual.Result, error)
}

type TransactionController struct {
	service TransactionService
}

func NewTransactionController(service TransactionService) *TransactionController {
	return &TransactionController{service: service}
}

func (c *TransactionController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/calculate", c.calculate)
	mux.HandleFunc("POST /api/transaction", c.process)
}

func (c *TransactionController) calculate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CalculateWithdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CalculationResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CalculationResponse]("validation failed", err.Error()))
		return
	}

	asOf, _ := domain.ParseDate(req.WithdrawDate)
	result, err := c.service.PreviewWithdrawal(r.Context(), req.AccountID, asOf)
	if err != nil {
		logError(r, err, logger.Fields{"accountId": req.AccountID})
		writeJSON(w, statusForError(err), commons.ErrorResponse[models.CalculationResponse]("failed to calculate withdrawal", err.Error()))
		return
	}

	logResponse(r, http.StatusOK, start)
	writeJSON(w, http.StatusOK, commons.SuccessResponse("withdrawal calculated successfully", models.NewCalculationResponse(result)))
}

func (c *TransactionController) process(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.ProcessTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()))
		return
	}

	effectiveDate, _ := domain.ParseDate(req.Date)

	var (
		account domain.Account
		err     error
	)
	switch req.Kind() {
	case domain.TransactionKindDeposit:
		account, err = c.service.Deposit(r.Context(), req.AccountID, req.Amount, effectiveDate)
	case domain.TransactionKindWithdraw:
		account, err = c.service.Withdraw(r.Context(), req.AccountID, req.Amount, effectiveDate)
	}
	if err != nil {
		logError(r, err, logger.Fields{"accountId": req.AccountID, "type": req.Type})
		writeJSON(w, statusForError(err), commons.ErrorResponse[models.AccountResponse]("failed to process transaction", err.Error()))
		return
	}

	logResponse(r, http.StatusOK, start)
	writeJSON(w, http.StatusOK, commons.SuccessResponse("transaction processed successfully", models.NewAccountResponse(account)))
}
