package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zicku/belimbing-ledger/internal/adapter/http/models"
	"github.com/zicku/belimbing-ledger/internal/commons"
	"github.com/zicku/belimbing-ledger/internal/domain"
	"github.com/zicku/belimbing-ledger/internal/logger"
)

type ProductService interface {
	Create(ctx context.Context, name string, yearlyReturn decimal.Decimal) (domain.DepositProduct, error)
	Update(ctx context.Context, id, name string, yearlyReturn decimal.Decimal) (domain.DepositProduct, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.DepositProduct, error)
}

type ProductController struct {
	service ProductService
}

func NewProductController(service ProductService) *ProductController {
	return &ProductController{service: service}
}

func (c *ProductController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/deposito-types", c.list)
	mux.HandleFunc("POST /api/deposito-types", c.create)
	mux.HandleFunc("PUT /api/deposito-types/{id}", c.update)
	mux.HandleFunc("DELETE /api/deposito-types/{id}", c.delete)
}

func (c *ProductController) list(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	products, err := c.service.List(r.Context())
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), commons.ErrorResponse[[]models.DepositoTypeResponse]("failed to list deposito types", err.Error()))
		return
	}

	out := make([]models.DepositoTypeResponse, 0, len(products))
	for _, product := range products {
		out = append(out, models.NewDepositoTypeResponse(product))
	}

	logResponse(r, http.StatusOK, start)
	writeJSON(w, http.StatusOK, commons.SuccessResponse("deposito types fetched successfully", out))
}

func (c *ProductController) create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.SaveDepositoTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.DepositoTypeResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.DepositoTypeResponse]("validation failed", err.Error()))
		return
	}

	product, err := c.service.Create(r.Context(), req.Name, req.YearlyReturn)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), commons.ErrorResponse[models.DepositoTypeResponse]("failed to create deposito type", err.Error()))
		return
	}

	logResponse(r, http.StatusCreated, start)
	writeJSON(w, http.StatusCreated, commons.SuccessResponse("deposito type created successfully", models.NewDepositoTypeResponse(product)))
}

func (c *ProductController) update(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := r.PathValue("id")

	var req models.SaveDepositoTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.DepositoTypeResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.DepositoTypeResponse]("validation failed", err.Error()))
		return
	}

	product, err := c.service.Update(r.Context(), id, req.Name, req.YearlyReturn)
	if err != nil {
		logError(r, err, logger.Fields{"depositoTypeId": id})
		writeJSON(w, statusForError(err), commons.ErrorResponse[models.DepositoTypeResponse]("failed to update deposito type", err.Error()))
		return
	}

	logResponse(r, http.StatusOK, start)
	writeJSON(w, http.StatusOK, commons.SuccessResponse("deposito type updated successfully", models.NewDepositoTypeResponse(product)))
}

func (c *ProductController) delete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := r.PathValue("id")

	if err := c.service.Delete(r.Context(), id); err != nil {
		logError(r, err, logger.Fields{"depositoTypeId": id})
		writeJSON(w, statusForError(err), commons.ErrorResponse[struct{}]("failed to delete deposito type", err.Error()))
		return
	}

	logResponse(r, http.StatusNoContent, start)
	w.WriteHeader(http.StatusNoContent)
}
