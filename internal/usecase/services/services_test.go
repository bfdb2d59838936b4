package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/zicku/belimbing-ledger/internal/adapter/repository/memory"
	"github.com/zicku/belimbing-ledger/internal/domain"
	"github.com/zicku/belimbing-ledger/internal/usecase/services"
)

// fixture wires every service against a shared in-memory store, the same way
// the serve command does for the memory storage driver.
type fixture struct {
	store        *memory.Store
	customers    *memory.CustomerRepository
	products     *memory.ProductRepository
	accounts     *memory.AccountRepository
	transactions *memory.TransactionRepository

	customerSvc    *services.CustomerService
	productSvc     *services.ProductService
	accountSvc     *services.AccountService
	transactionSvc *services.TransactionService
	dashboardSvc   *services.DashboardService
}

func newFixture() *fixture {
	store := memory.NewStore()
	customers := memory.NewCustomerRepository(store)
	products := memory.NewProductRepository(store)
	accounts := memory.NewAccountRepository(store)
	transactions := memory.NewTransactionRepository(store)

	return &fixture{
		store:          store,
		customers:      customers,
		products:       products,
		accounts:       accounts,
		transactions:   transactions,
		customerSvc:    services.NewCustomerService(customers, accounts),
		productSvc:     services.NewProductService(products, accounts),
		accountSvc:     services.NewAccountService(accounts, customers, products, transactions),
		transactionSvc: services.NewTransactionService(accounts, products),
		dashboardSvc:   services.NewDashboardService(customers, products, accounts),
	}
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := domain.ParseDate(value)
	require.NoError(t, err)
	return parsed
}

// seedAccount creates a customer, a deposito type and an account with the
// given balance and dates directly through the repositories.
func (f *fixture) seedAccount(t *testing.T, balance int64, yearlyReturn float64, openedAt string, lastTransaction string) domain.Account {
	t.Helper()
	ctx := context.Background()

	customer, err := f.customerSvc.Create(ctx, "Test Nasabah")
	require.NoError(t, err)

	product, err := f.productSvc.Create(ctx, "Deposito Test", decimal.NewFromFloat(yearlyReturn))
	require.NoError(t, err)

	opened, err := domain.ParseDate(openedAt)
	require.NoError(t, err)

	account := domain.Account{
		ID:         "acct-" + customer.ID,
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Balance:    decimal.NewFromInt(balance),
		OpenedAt:   opened,
	}
	if lastTransaction != "" {
		last, err := domain.ParseDate(lastTransaction)
		require.NoError(t, err)
		account.LastTransactionAt = &last
	}

	created, err := f.accounts.Create(ctx, account)
	require.NoError(t, err)
	return created
}
