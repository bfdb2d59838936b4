package models

import (
	"github.com/shopspring/decimal"

	"github.com/zicku/belimbing-ledger/internal/usecase/services"
)

type DashboardDataResponse struct {
	Customers []CustomerResponse     `json:"customers"`
	Types     []DepositoTypeResponse `json:"types"`
	Accounts  []AccountResponse      `json:"accounts"`
}

func NewDashboardDataResponse(snapshot services.Snapshot) DashboardDataResponse {
	response := DashboardDataResponse{
		Customers: make([]CustomerResponse, 0, len(snapshot.Customers)),
		Types:     make([]DepositoTypeResponse, 0, len(snapshot.Products)),
		Accounts:  make([]AccountResponse, 0, len(snapshot.Accounts)),
	}
	for _, customer := range snapshot.Customers {
		response.Customers = append(response.Customers, NewCustomerResponse(customer))
	}
	for _, product := range snapshot.Products {
		response.Types = append(response.Types, NewDepositoTypeResponse(product))
	}
	for _, account := range snapshot.Accounts {
		response.Accounts = append(response.Accounts, NewAccountViewResponse(account))
	}
	return response
}

type ProductPopularityEntry struct {
	DepositoTypeID string `json:"deposito_type_id"`
	Name           string `json:"name"`
	Count          int    `json:"count"`
}

type TopCustomerEntry struct {
	CustomerID string          `json:"customer_id"`
	Name       string          `json:"name"`
	Balance    decimal.Decimal `json:"balance"`
}

type DashboardStatsResponse struct {
	TotalCustomers    int                      `json:"total_customers"`
	TotalAccounts     int                      `json:"total_accounts"`
	TotalAssets       decimal.Decimal          `json:"total_assets"`
	ProductPopularity []ProductPopularityEntry `json:"product_popularity"`
	TopCustomers      []TopCustomerEntry       `json:"top_customers"`
}

func NewDashboardStatsResponse(stats services.Stats) DashboardStatsResponse {
	response := DashboardStatsResponse{
		TotalCustomers:    stats.TotalCustomers,
		TotalAccounts:     stats.TotalAccounts,
		TotalAssets:       stats.TotalAssets,
		ProductPopularity: make([]ProductPopularityEntry, 0, len(stats.ProductPopularity)),
		TopCustomers:      make([]TopCustomerEntry, 0, len(stats.TopCustomers)),
	}
	for _, entry := range stats.ProductPopularity {
		response.ProductPopularity = append(response.ProductPopularity, ProductPopularityEntry{
			DepositoTypeID: entry.ProductID,
			Name:           entry.Name,
			Count:          entry.Count,
		})
	}
	for _, entry := range stats.TopCustomers {
		response.TopCustomers = append(response.TopCustomers, TopCustomerEntry{
			CustomerID: entry.CustomerID,
			Name:       entry.Name,
			Balance:    entry.Balance,
		})
	}
	return response
}
