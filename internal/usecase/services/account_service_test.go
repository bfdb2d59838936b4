package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zicku/belimbing-ledger/internal/domain"
)

func TestOpenAccount(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	customer, err := f.customerSvc.Create(ctx, "Siti")
	require.NoError(t, err)
	product, err := f.productSvc.Create(ctx, "Deposito Perak", decimal.NewFromInt(5))
	require.NoError(t, err)

	account, err := f.accountSvc.Open(ctx, customer.ID, product.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, account.ID)
	assert.Equal(t, customer.ID, account.CustomerID)
	assert.Equal(t, product.ID, account.ProductID)
	assert.True(t, account.Balance.IsZero())
	assert.Nil(t, account.LastTransactionAt)
	assert.False(t, account.OpenedAt.IsZero())
}

func TestOpenAccountReferentialGuards(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	product, err := f.productSvc.Create(ctx, "Deposito Perak", decimal.NewFromInt(5))
	require.NoError(t, err)

	_, err = f.accountSvc.Open(ctx, "missing", product.ID)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	customer, err := f.customerSvc.Create(ctx, "Siti")
	require.NoError(t, err)

	_, err = f.accountSvc.Open(ctx, customer.ID, "missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestChangeProduct(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	account := f.seedAccount(t, 100_000, 6, "2024-01-01", "")

	other, err := f.productSvc.Create(ctx, "Deposito Baru", decimal.NewFromInt(8))
	require.NoError(t, err)

	updated, err := f.accountSvc.ChangeProduct(ctx, account.ID, other.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, updated.ProductID)
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(100_000)), "balance untouched by product change")

	_, err = f.accountSvc.ChangeProduct(ctx, account.ID, "missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestDeleteAccountGuards(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	account := f.seedAccount(t, 0, 6, "2024-01-01", "")

	// A balance blocks deletion.
	_, err := f.transactionSvc.Deposit(ctx, account.ID, decimal.NewFromInt(1_000), date(t, "2024-01-02"))
	require.NoError(t, err)
	assert.ErrorIs(t, f.accountSvc.Delete(ctx, account.ID), domain.ErrAccountHasBalance)

	// An empty balance with recorded history still blocks deletion.
	_, err = f.transactionSvc.Withdraw(ctx, account.ID, decimal.NewFromInt(1_000), date(t, "2024-01-03"))
	require.NoError(t, err)
	assert.ErrorIs(t, f.accountSvc.Delete(ctx, account.ID), domain.ErrAccountHasHistory)
}

func TestDeleteAccountCleanLedger(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	account := f.seedAccount(t, 0, 6, "2024-01-01", "")

	require.NoError(t, f.accountSvc.Delete(ctx, account.ID))

	_, err := f.accounts.GetByID(ctx, account.ID)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestDeleteAccountNotFound(t *testing.T) {
	f := newFixture()

	err := f.accountSvc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountHistory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	account := f.seedAccount(t, 0, 6, "2024-01-01", "")

	_, err := f.transactionSvc.Deposit(ctx, account.ID, decimal.NewFromInt(10_000), date(t, "2024-01-05"))
	require.NoError(t, err)
	_, err = f.transactionSvc.Withdraw(ctx, account.ID, decimal.NewFromInt(4_000), date(t, "2024-01-10"))
	require.NoError(t, err)

	entries, err := f.accountSvc.History(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, domain.TransactionKindDeposit, entries[0].Kind)
	assert.True(t, entries[0].ResultingBalance.Equal(decimal.NewFromInt(10_000)))
	assert.Equal(t, domain.TransactionKindWithdraw, entries[1].Kind)
	assert.True(t, entries[1].ResultingBalance.Equal(decimal.NewFromInt(6_000)))

	_, err = f.accountSvc.History(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestListAccountsJoinsNames(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	account := f.seedAccount(t, 42_000, 6, "2024-01-01", "")

	views, err := f.accountSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, account.ID, view.ID)
	assert.Equal(t, "Test Nasabah", view.CustomerName)
	assert.Equal(t, "Deposito Test", view.ProductName)
	assert.True(t, view.YearlyReturn.Equal(decimal.NewFromInt(6)))
}
