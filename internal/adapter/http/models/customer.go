package models

import (
	"errors"
	"strings"

	"github.com/zicku/belimbing-ledger/internal/domain"
)

type SaveCustomerRequest struct {
	Name string `json:"name"`
}

func (r SaveCustomerRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

type CustomerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewCustomerResponse(customer domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:   customer.ID,
		Name: customer.Name,
	}
}
