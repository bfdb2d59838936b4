// Package accrual computes simple monthly interest for deposito accounts.
// It is pure: results depend only on the inputs, and the same computation
// backs both withdrawal previews and the actual withdrawal application.
package accrual

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zicku/belimbing-ledger/internal/domain"
)

// minorUnitPlaces is the precision interest is rounded to (round half-up).
const minorUnitPlaces = 2

var (
	oneHundred   = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
)

type Result struct {
	Months        int
	Interest      decimal.Decimal
	EndingBalance decimal.Decimal
}

// Accrue returns the interest earned on balance at yearlyReturn percent per
// year between from and to. Only whole calendar months earn interest; a
// partial trailing month earns nothing. Monthly rate is yearlyReturn/100/12
// and interest is balance * monthly rate * months, rounded half-up to the
// currency minor unit.
func Accrue(balance, yearlyReturn decimal.Decimal, from, to time.Time) (Result, error) {
	if to.Before(from) {
		return Result{}, domain.ErrInvalidDateRange
	}

	months := MonthsBetween(from, to)
	if months == 0 || balance.IsZero() || yearlyReturn.IsZero() {
		return Result{Months: months, Interest: decimal.Zero, EndingBalance: balance}, nil
	}

	monthlyRate := yearlyReturn.Div(oneHundred).Div(monthsInYear)
	interest := balance.Mul(monthlyRate).Mul(decimal.NewFromInt(int64(months))).Round(minorUnitPlaces)

	return Result{
		Months:        months,
		Interest:      interest,
		EndingBalance: balance.Add(interest),
	}, nil
}

// MonthsBetween counts whole calendar months from from to to, rounded down.
// The day-of-month must be reached for a month to count: Jan 15 to Apr 14
// is 2 months, Jan 15 to Apr 15 is 3.
func MonthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
