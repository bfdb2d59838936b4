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

type CustomerService interface {
	Create(ctx context.Context, name string) (domain.Customer, error)
	Update(ctx context.Context, id, name string) (domain.Customer, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Customer, error)
}

type CustomerController struct {
	service CustomerService
}

func NewCustomerController(service CustomerService) *CustomerController {
	return &CustomerController{service: service}
}

func (c *CustomerController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/customers", c.list)
	mux.HandleFunc("POST /api/customers", c.create)
	mux.HandleFunc("PUT /api/customers/{id}", c.update)
	mux.HandleFunc("DELETE /api/customers/{id}", c.delete)
}

func (c *CustomerController) list(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	customers, err := c.service.List(r.Context())
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), commons.ErrorResponse[[]models.CustomerResponse]("failed to list customers", err.Error()))
		return
	}

	out := make([]models.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		out = append(out, models.NewCustomerResponse(customer))
	}

	logResponse(r, http.StatusOK, start)
	writeJSON(w, http.StatusOK, commons.SuccessResponse("customers fetched successfully", out))
}

func (c *CustomerController) create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.SaveCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CustomerResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CustomerResponse]("validation failed", err.Error()))
		return
	}

	customer, err := c.service.Create(r.Context(), req.Name)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), commons.ErrorResponse[models.CustomerResponse]("failed to create customer", err.Error()))
		return
	}

	logResponse(r, http.StatusCreated, start)
	writeJSON(w, http.StatusCreated, commons.SuccessResponse("customer created successfully", models.NewCustomerResponse(customer)))
}

func (c *CustomerController) update(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := r.PathValue("id")

	var req models.SaveCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CustomerResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CustomerResponse]("validation failed", err.Error()))
		return
	}

	customer, err := c.service.Update(r.Context(), id, req.Name)
	if err != nil {
		logError(r, err, logger.Fields{"customerId": id})
		writeJSON(w, statusForError(err), commons.ErrorResponse[models.CustomerResponse]("failed to update customer", err.Error()))
		return
	}

	logResponse(r, http.StatusOK, start)
	writeJSON(w, http.StatusOK, commons.SuccessResponse("customer updated successfully", models.NewCustomerResponse(customer)))
}

func (c *CustomerController) delete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := r.PathValue("id")

	if err := c.service.Delete(r.Context(), id); err != nil {
		logError(r, err, logger.Fields{"customerId": id})
		writeJSON(w, statusForError(err), commons.ErrorResponse[struct{}]("failed to delete customer", err.Error()))
		return
	}

	logResponse(r, http.StatusNoContent, start)
	w.WriteHeader(http.StatusNoContent)
}
