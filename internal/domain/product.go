package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositProduct is a deposito plan: a named product paying a fixed annual
// interest rate, expressed as a percentage (e.g. 6 means 6% per year).
type DepositProduct struct {
	ID           string
	Name         string
	YearlyReturn decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
