package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/zicku/belimbing-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/zicku/belimbing-ledger/internal/domain"
	"github.com/zicku/belimbing-ledger/internal/logger"
)

// UnknownProductBucket collects accounts whose deposito type was retired so
// popularity counts always sum to the total account count.
const UnknownProductBucket = "Unknown"

const topCustomerLimit = 5

type Snapshot struct {
	Customers []domain.Customer
	Products  []domain.DepositProduct
	Accounts  []domain.AccountView
}

type ProductPopularity struct {
	ProductID string
	Name      string
	Count     int
}

type TopCustomer struct {
	CustomerID string
	Name       string
	Balance    decimal.Decimal
}

type Stats struct {
	TotalCustomers    int
	TotalAccounts     int
	TotalAssets       decimal.Decimal
	ProductPopularity []ProductPopularity
	TopCustomers      []TopCustomer
}

// DashboardService derives advisory aggregates from the current snapshot.
// Nothing is maintained incrementally; every read recomputes from the
// authoritative stores.
type DashboardService struct {
	customerRepo repo_interfaces.CustomerRepository
	productRepo  repo_interfaces.ProductRepository
	accountRepo  repo_interfaces.AccountRepository
}

func NewDashboardService(
	customerRepo repo_interfaces.CustomerRepository,
	productRepo repo_interfaces.ProductRepository,
	accountRepo repo_interfaces.AccountRepository,
) *DashboardService {
	return &DashboardService{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		accountRepo:  accountRepo,
	}
}

func (s *DashboardService) Snapshot(ctx context.Context) (Snapshot, error) {
	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		logger.Error("dashboard service customers failed", err, nil)
		return Snapshot{}, fmt.Errorf("snapshot customers: %w", err)
	}

	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		logger.Error("dashboard service products failed", err, nil)
		return Snapshot{}, fmt.Errorf("snapshot deposito types: %w", err)
	}

	accounts, err := s.accountRepo.GetViews(ctx)
	if err != nil {
		logger.Error("dashboard service accounts failed", err, nil)
		return Snapshot{}, fmt.Errorf("snapshot accounts: %w", err)
	}

	return Snapshot{Customers: customers, Products: products, Accounts: accounts}, nil
}

func (s *DashboardService) Stats(ctx context.Context) (Stats, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		TotalCustomers: len(snapshot.Customers),
		TotalAccounts:  len(snapshot.Accounts),
		TotalAssets:    decimal.Zero,
	}

	type productBucket struct {
		name  string
		count int
	}
	perProduct := make(map[string]*productBucket)
	perCustomer := make(map[string]*TopCustomer)

	for _, account := range snapshot.Accounts {
		stats.TotalAssets = stats.TotalAssets.Add(account.Balance)

		productID, productName := account.ProductID, account.ProductName
		if productID == "" {
			productName = UnknownProductBucket
		}
		bucket, ok := perProduct[productID]
		if !ok {
			bucket = &productBucket{name: productName}
			perProduct[productID] = bucket
		}
		bucket.count++

		customer, ok := perCustomer[account.CustomerID]
		if !ok {
			customer = &TopCustomer{
				CustomerID: account.CustomerID,
				Name:       account.CustomerName,
				Balance:    decimal.Zero,
			}
			perCustomer[account.CustomerID] = customer
		}
		customer.Balance = customer.Balance.Add(account.Balance)
	}

	for productID, bucket := range perProduct {
		stats.ProductPopularity = append(stats.ProductPopularity, ProductPopularity{
			ProductID: productID,
			Name:      bucket.name,
			Count:     bucket.count,
		})
	}
	sort.Slice(stats.ProductPopularity, func(i, j int) bool {
		a, b := stats.ProductPopularity[i], stats.ProductPopularity[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.ProductID < b.ProductID
	})

	for _, customer := range perCustomer {
		stats.TopCustomers = append(stats.TopCustomers, *customer)
	}
	sort.Slice(stats.TopCustomers, func(i, j int) bool {
		a, b := stats.TopCustomers[i], stats.TopCustomers[j]
		if !a.Balance.Equal(b.Balance) {
			return a.Balance.GreaterThan(b.Balance)
		}
		return a.CustomerID < b.CustomerID
	})
	if len(stats.TopCustomers) > topCustomerLimit {
		stats.TopCustomers = stats.TopCustomers[:topCustomerLimit]
	}

	return stats, nil
}
