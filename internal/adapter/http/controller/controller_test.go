package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zicku/belimbing-ledger/internal/adapter/http/controller"
	"github.com/zicku/belimbing-ledger/internal/adapter/http/models"
	"github.com/zicku/belimbing-ledger/internal/adapter/http/router"
	"github.com/zicku/belimbing-ledger/internal/adapter/repository/memory"
	"github.com/zicku/belimbing-ledger/internal/commons"
	"github.com/zicku/belimbing-ledger/internal/domain"
	"github.com/zicku/belimbing-ledger/internal/usecase/services"
)

// Accounts opened through the API start accruing today, so transaction
// dates are expressed relative to the current date.
func today() string {
	return domain.FormatDate(domain.Today())
}

func monthsFromToday(months int) string {
	return domain.FormatDate(domain.Today().AddDate(0, months, 0))
}

// newTestServer builds the full API against the in-memory store, mirroring
// the serve command's wiring for the memory storage driver.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := memory.NewStore()
	customers := memory.NewCustomerRepository(store)
	products := memory.NewProductRepository(store)
	accounts := memory.NewAccountRepository(store)
	transactions := memory.NewTransactionRepository(store)

	mux := router.New(
		controller.NewCustomerController(services.NewCustomerService(customers, accounts)),
		controller.NewProductController(services.NewProductService(products, accounts)),
		controller.NewAccountController(services.NewAccountService(accounts, customers, products, transactions)),
		controller.NewTransactionController(services.NewTransactionService(accounts, products)),
		controller.NewDashboardController(services.NewDashboardService(customers, products, accounts)),
	)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, server *httptest.Server, method, path string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeResponse[T any](t *testing.T, resp *http.Response) commons.Response[T] {
	t.Helper()
	defer resp.Body.Close()

	var out commons.Response[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createCustomer(t *testing.T, server *httptest.Server, name string) models.CustomerResponse {
	t.Helper()

	resp := doJSON(t, server, http.MethodPost, "/api/customers", models.SaveCustomerRequest{Name: name})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeResponse[models.CustomerResponse](t, resp)
	require.NotNil(t, body.Data)
	return *body.Data
}

func createDepositoType(t *testing.T, server *httptest.Server, name, yearlyReturn string) models.DepositoTypeResponse {
	t.Helper()

	resp := doJSON(t, server, http.MethodPost, "/api/deposito-types", map[string]string{
		"name":          name,
		"yearly_return": yearlyReturn,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeResponse[models.DepositoTypeResponse](t, resp)
	require.NotNil(t, body.Data)
	return *body.Data
}

func openAccount(t *testing.T, server *httptest.Server, customerID, typeID string) models.AccountResponse {
	t.Helper()

	resp := doJSON(t, server, http.MethodPost, "/api/accounts", models.CreateAccountRequest{
		CustomerID:     customerID,
		DepositoTypeID: typeID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeResponse[models.AccountResponse](t, resp)
	require.NotNil(t, body.Data)
	return *body.Data
}

func TestCustomerEndpoints(t *testing.T) {
	server := newTestServer(t)

	customer := createCustomer(t, server, "Budi Santoso")
	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, "Budi Santoso", customer.Name)

	resp := doJSON(t, server, http.MethodPut, "/api/customers/"+customer.ID, models.SaveCustomerRequest{Name: "Budi S."})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeResponse[models.CustomerResponse](t, resp)
	require.NotNil(t, updated.Data)
	assert.Equal(t, "Budi S.", updated.Data.Name)

	resp = doJSON(t, server, http.MethodGet, "/api/customers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeResponse[[]models.CustomerResponse](t, resp)
	require.NotNil(t, list.Data)
	assert.Len(t, *list.Data, 1)

	resp = doJSON(t, server, http.MethodDelete, "/api/customers/"+customer.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

func TestCustomerValidation(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, server, http.MethodPost, "/api/customers", models.SaveCustomerRequest{Name: "   "})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeResponse[models.CustomerResponse](t, resp)
	assert.False(t, body.Success)
	assert.Equal(t, "validation failed", body.Message)
}

func TestCustomerUpdateNotFound(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, server, http.MethodPut, "/api/customers/missing", models.SaveCustomerRequest{Name: "X"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCustomerDeleteConflict(t *testing.T) {
	server := newTestServer(t)

	customer := createCustomer(t, server, "Budi")
	depositoType := createDepositoType(t, server, "Deposito Emas", "6")
	openAccount(t, server, customer.ID, depositoType.ID)

	resp := doJSON(t, server, http.MethodDelete, "/api/customers/"+customer.ID, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestDepositoTypeEndpoints(t *testing.T) {
	server := newTestServer(t)

	depositoType := createDepositoType(t, server, "Deposito Emas", "6")
	assert.Equal(t, "6", depositoType.YearlyReturn.String())

	resp := doJSON(t, server, http.MethodPut, "/api/deposito-types/"+depositoType.ID, map[string]string{
		"name":          "Deposito Emas Plus",
		"yearly_return": "7.5",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeResponse[models.DepositoTypeResponse](t, resp)
	require.NotNil(t, updated.Data)
	assert.Equal(t, "7.5", updated.Data.YearlyReturn.String())

	resp = doJSON(t, server, http.MethodDelete, "/api/deposito-types/"+depositoType.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

func TestDepositoTypeRejectsNegativeRate(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, server, http.MethodPost, "/api/deposito-types", map[string]string{
		"name":          "Deposito Minus",
		"yearly_return": "-1",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestAccountLifecycle(t *testing.T) {
	server := newTestServer(t)

	customer := createCustomer(t, server, "Budi")
	depositoType := createDepositoType(t, server, "Deposito Emas", "6")
	account := openAccount(t, server, customer.ID, depositoType.ID)

	assert.Equal(t, "0", account.Balance.String())
	assert.Nil(t, account.LastTransactionDate)

	other := createDepositoType(t, server, "Deposito Perak", "4")
	resp := doJSON(t, server, http.MethodPut, "/api/accounts/"+account.ID, models.UpdateAccountRequest{
		DepositoTypeID: other.ID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	moved := decodeResponse[models.AccountResponse](t, resp)
	require.NotNil(t, moved.Data)
	assert.Equal(t, other.ID, moved.Data.DepositoTypeID)

	resp = doJSON(t, server, http.MethodDelete, "/api/accounts/"+account.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

func TestAccountDeleteConflictAfterDeposit(t *testing.T) {
	server := newTestServer(t)

	customer := createCustomer(t, server, "Budi")
	depositoType := createDepositoType(t, server, "Deposito Emas", "6")
	account := openAccount(t, server, customer.ID, depositoType.ID)

	resp := doJSON(t, server, http.MethodPost, "/api/transaction", map[string]string{
		"accountId": account.ID,
		"type":      "deposit",
		"amount":    "100000",
		"date":      today(),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, server, http.MethodDelete, "/api/accounts/"+account.ID, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestTransactionAndCalculateFlow(t *testing.T) {
	server := newTestServer(t)

	customer := createCustomer(t, server, "Budi")
	depositoType := createDepositoType(t, server, "Deposito Emas", "6")
	account := openAccount(t, server, customer.ID, depositoType.ID)

	resp := doJSON(t, server, http.MethodPost, "/api/transaction", map[string]string{
		"accountId": account.ID,
		"type":      "deposit",
		"amount":    "1000000",
		"date":      today(),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deposited := decodeResponse[models.AccountResponse](t, resp)
	require.NotNil(t, deposited.Data)
	assert.Equal(t, "1000000", deposited.Data.Balance.String())
	require.NotNil(t, deposited.Data.LastTransactionDate)
	assert.Equal(t, today(), *deposited.Data.LastTransactionDate)

	resp = doJSON(t, server, http.MethodPost, "/api/calculate", models.CalculateWithdrawalRequest{
		AccountID:    account.ID,
		WithdrawDate: monthsFromToday(3),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	preview := decodeResponse[models.CalculationResponse](t, resp)
	require.NotNil(t, preview.Data)
	assert.Equal(t, 3, preview.Data.DurationMonths)
	assert.Equal(t, "15000", preview.Data.Interest.String())
	assert.Equal(t, "1015000", preview.Data.EndingBalance.String())

	resp = doJSON(t, server, http.MethodPost, "/api/transaction", map[string]string{
		"accountId": account.ID,
		"type":      "withdraw",
		"amount":    "1015000",
		"date":      monthsFromToday(3),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	withdrawn := decodeResponse[models.AccountResponse](t, resp)
	require.NotNil(t, withdrawn.Data)
	assert.Equal(t, "0", withdrawn.Data.Balance.String())
}

func TestAccountTransactionHistory(t *testing.T) {
	server := newTestServer(t)

	customer := createCustomer(t, server, "Budi")
	depositoType := createDepositoType(t, server, "Deposito Emas", "6")
	account := openAccount(t, server, customer.ID, depositoType.ID)

	resp := doJSON(t, server, http.MethodPost, "/api/transaction", map[string]string{
		"accountId": account.ID,
		"type":      "deposit",
		"amount":    "50000",
		"date":      today(),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, server, http.MethodGet, "/api/accounts/"+account.ID+"/transactions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeResponse[[]models.TransactionResponse](t, resp)
	require.NotNil(t, body.Data)
	require.Len(t, *body.Data, 1)

	entry := (*body.Data)[0]
	assert.Equal(t, "deposit", entry.Type)
	assert.Equal(t, "50000", entry.Amount.String())
	assert.Equal(t, today(), entry.Date)
	assert.Equal(t, "50000", entry.ResultingBalance.String())

	resp = doJSON(t, server, http.MethodGet, "/api/accounts/missing/transactions", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	server := newTestServer(t)

	customer := createCustomer(t, server, "Budi")
	depositoType := createDepositoType(t, server, "Deposito Emas", "6")
	account := openAccount(t, server, customer.ID, depositoType.ID)

	resp := doJSON(t, server, http.MethodPost, "/api/transaction", map[string]string{
		"accountId": account.ID,
		"type":      "deposit",
		"amount":    "1000000",
		"date":      today(),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, server, http.MethodPost, "/api/transaction", map[string]string{
		"accountId": account.ID,
		"type":      "withdraw",
		"amount":    "2000000",
		"date":      monthsFromToday(3),
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeResponse[models.AccountResponse](t, resp)
	assert.False(t, body.Success)
}

func TestTransactionValidation(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing account", map[string]string{"type": "deposit", "amount": "100", "date": "2024-01-15"}},
		{"unknown type", map[string]string{"accountId": "x", "type": "transfer", "amount": "100", "date": "2024-01-15"}},
		{"zero amount", map[string]string{"accountId": "x", "type": "deposit", "amount": "0", "date": "2024-01-15"}},
		{"bad date", map[string]string{"accountId": "x", "type": "deposit", "amount": "100", "date": "15-01-2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, server, http.MethodPost, "/api/transaction", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			resp.Body.Close()
		})
	}
}

func TestCalculateUnknownAccount(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, server, http.MethodPost, "/api/calculate", models.CalculateWithdrawalRequest{
		AccountID:    "missing",
		WithdrawDate: "2024-04-20",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestDashboardData(t *testing.T) {
	server := newTestServer(t)

	customer := createCustomer(t, server, "Budi")
	depositoType := createDepositoType(t, server, "Deposito Emas", "6")
	account := openAccount(t, server, customer.ID, depositoType.ID)

	resp := doJSON(t, server, http.MethodGet, "/api/dashboard-data", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeResponse[models.DashboardDataResponse](t, resp)
	require.NotNil(t, body.Data)

	assert.Len(t, body.Data.Customers, 1)
	assert.Len(t, body.Data.Types, 1)
	require.Len(t, body.Data.Accounts, 1)
	assert.Equal(t, account.ID, body.Data.Accounts[0].ID)
	assert.Equal(t, "Budi", body.Data.Accounts[0].CustomerName)
	assert.Equal(t, "Deposito Emas", body.Data.Accounts[0].DepositoName)
}

func TestDashboardStats(t *testing.T) {
	server := newTestServer(t)

	depositoType := createDepositoType(t, server, "Deposito Emas", "6")
	for i := 0; i < 2; i++ {
		customer := createCustomer(t, server, fmt.Sprintf("Nasabah %d", i))
		account := openAccount(t, server, customer.ID, depositoType.ID)

		resp := doJSON(t, server, http.MethodPost, "/api/transaction", map[string]string{
			"accountId": account.ID,
			"type":      "deposit",
			"amount":    "100000",
			"date":      today(),
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, server, http.MethodGet, "/api/dashboard-stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeResponse[models.DashboardStatsResponse](t, resp)
	require.NotNil(t, body.Data)

	assert.Equal(t, 2, body.Data.TotalCustomers)
	assert.Equal(t, 2, body.Data.TotalAccounts)
	assert.Equal(t, "200000", body.Data.TotalAssets.String())
	require.Len(t, body.Data.ProductPopularity, 1)
	assert.Equal(t, 2, body.Data.ProductPopularity[0].Count)
	assert.Len(t, body.Data.TopCustomers, 2)
}

func TestMalformedBody(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.Client().Post(server.URL+"/api/customers", "application/json",
		bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
