package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/zicku/belimbing-ledger/internal/adapter/http/models"
	"github.com/zicku/belimbing-ledger/internal/commons"
	"github.com/zicku/belimbing-ledger/internal/domain"
	"github.com/zicku/belimbing-ledger/internal/logger"
)

type AccountService interface {
	Open(ctx context.Context, customerID, productID string) (domain.Account, error)
	ChangeProduct(ctx context.Context, accountID, productID string) (domain.Account, error)
	Delete(ctx context.Context, accountID string) error
	List(ctx context.Context) ([]domain.AccountView, error)
	History(ctx context.Context, accountID string) ([]domain.Transaction, error)
}

type AccountController struct {
	service AccountService
}

func NewAccountController(service AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/accounts", c.list)
	mux.HandleFunc("POST /api/accounts", c.create)
	mux.HandleFunc("PUT /api/accounts/{id}", c.update)
	mux.HandleFunc("DELETE /api/accounts/{id}", c.delete)
	mux.HandleFunc("GET /api/accounts/{id}/transactions", c.history)
}

func (c *AccountController) history(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := r.PathValue("id")

	entries, err := c.service.History(r.Context(), id)
	if err != nil {
		logError(r, err, logger.Fields{"accountId": id})
		writeJSON(w, statusForError(err), commons.ErrorResponse[[]models.TransactionResponse]("failed to list transactions", err.Error()))
		return
	}

	out := make([]models.TransactionResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, models.NewTransactionResponse(entry))
	}

	logResponse(r, http.StatusOK, start)
	writeJSON(w, http.StatusOK, commons.SuccessResponse("transactions fetched successfully", out))
}

func (c *AccountController) list(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	views, err := c.service.List(r.Context())
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), commons.ErrorResponse[[]models.AccountResponse]("failed to list accounts", err.Error()))
		return
	}

	out := make([]models.AccountResponse, 0, len(views))
	for _, view := range views {
		out = append(out, models.NewAccountViewResponse(view))
	}

	logResponse(r, http.StatusOK, start)
	writeJSON(w, http.StatusOK, commons.SuccessResponse("accounts fetched successfully", out))
}

func (c *AccountController) create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()))
		return
	}

	account, err := c.service.Open(r.Context(), req.CustomerID, req.DepositoTypeID)
	if err != nil {
		logError(r, err, logger.Fields{"customerId": req.CustomerID})
		writeJSON(w, statusForError(err), commons.ErrorResponse[models.AccountResponse]("failed to open account", err.Error()))
		return
	}

	logResponse(r, http.StatusCreated, start)
	writeJSON(w, http.StatusCreated, commons.SuccessResponse("account opened successfully", models.NewAccountResponse(account)))
}

func (c *AccountController) update(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := r.PathValue("id")

	var req models.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()))
		return
	}

	account, err := c.service.ChangeProduct(r.Context(), id, req.DepositoTypeID)
	if err != nil {
		logError(r, err, logger.Fields{"accountId": id})
		writeJSON(w, statusForError(err), commons.ErrorResponse[models.AccountResponse]("failed to update account", err.Error()))
		return
	}

	logResponse(r, http.StatusOK, start)
	writeJSON(w, http.StatusOK, commons.SuccessResponse("account updated successfully", models.NewAccountResponse(account)))
}

func (c *AccountController) delete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := r.PathValue("id")

	if err := c.service.Delete(r.Context(), id); err != nil {
		logError(r, err, logger.Fields{"accountId": id})
		writeJSON(w, statusForError(err), commons.ErrorResponse[struct{}]("failed to delete account", err.Error()))
		return
	}

	logResponse(r, http.StatusNoContent, start)
	w.WriteHeader(http.StatusNoContent)
}
