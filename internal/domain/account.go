package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a single customer's deposito holding against one product.
// ProductID is empty when the product was retired after the account opened.
// LastTransactionAt is nil until the first transaction and never moves
// backwards afterwards.
type Account struct {
	ID                string
	CustomerID        string
	ProductID         string
	Balance           decimal.Decimal
	OpenedAt          time.Time
	LastTransactionAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AccrualStart returns the date interest accrues from: the last transaction
// date, or the opening date if the account has never transacted.
func (a Account) AccrualStart() time.Time {
	if a.LastTransactionAt != nil {
		return *a.LastTransactionAt
	}
	return a.OpenedAt
}

// AccountView is an account joined with its owner and product for listing.
// ProductName is empty when the product reference was retired.
type AccountView struct {
	Account
	CustomerName string
	ProductName  string
	YearlyReturn decimal.Decimal
}
