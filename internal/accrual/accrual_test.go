package accrual_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zicku/belimbing-ledger/internal/accrual"
	"github.com/zicku/belimbing-ledger/internal/domain"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAccrueThreeWholeMonths(t *testing.T) {
	result, err := accrual.Accrue(
		decimal.NewFromInt(1_000_000),
		decimal.NewFromInt(6),
		date("2024-01-15"),
		date("2024-04-20"),
	)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Months)
	assert.True(t, result.Interest.Equal(decimal.NewFromInt(15_000)), "interest = %s", result.Interest)
	assert.True(t, result.EndingBalance.Equal(decimal.NewFromInt(1_015_000)), "ending = %s", result.EndingBalance)
}

func TestAccrueSameDate(t *testing.T) {
	balance := decimal.NewFromInt(250_000)
	result, err := accrual.Accrue(balance, decimal.NewFromInt(5), date("2024-03-01"), date("2024-03-01"))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Months)
	assert.True(t, result.Interest.IsZero())
	assert.True(t, result.EndingBalance.Equal(balance))
}

func TestAccruePartialMonthEarnsNothing(t *testing.T) {
	result, err := accrual.Accrue(
		decimal.NewFromInt(500_000),
		decimal.NewFromInt(12),
		date("2024-01-15"),
		date("2024-02-14"),
	)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Months)
	assert.True(t, result.Interest.IsZero())
}

func TestAccrueRejectsReversedRange(t *testing.T) {
	_, err := accrual.Accrue(
		decimal.NewFromInt(100),
		decimal.NewFromInt(6),
		date("2024-04-20"),
		date("2024-01-15"),
	)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestAccrueRoundsHalfUp(t *testing.T) {
	// 100 * (1.5/100/12) = 0.125, which must round up to 0.13.
	result, err := accrual.Accrue(
		decimal.NewFromInt(100),
		decimal.NewFromFloat(1.5),
		date("2024-01-01"),
		date("2024-02-01"),
	)
	require.NoError(t, err)

	assert.True(t, result.Interest.Equal(decimal.NewFromFloat(0.13)), "interest = %s", result.Interest)
}

func TestAccrueZeroRate(t *testing.T) {
	balance := decimal.NewFromInt(750_000)
	result, err := accrual.Accrue(balance, decimal.Zero, date("2023-01-01"), date("2024-01-01"))
	require.NoError(t, err)

	assert.Equal(t, 12, result.Months)
	assert.True(t, result.Interest.IsZero())
	assert.True(t, result.EndingBalance.Equal(balance))
}

func TestAccrueIsDeterministic(t *testing.T) {
	first, err := accrual.Accrue(decimal.NewFromInt(123_456), decimal.NewFromFloat(4.75), date("2023-06-30"), date("2024-02-29"))
	require.NoError(t, err)
	second, err := accrual.Accrue(decimal.NewFromInt(123_456), decimal.NewFromFloat(4.75), date("2023-06-30"), date("2024-02-29"))
	require.NoError(t, err)

	assert.Equal(t, first.Months, second.Months)
	assert.True(t, first.Interest.Equal(second.Interest))
	assert.True(t, first.EndingBalance.Equal(second.EndingBalance))
}

func TestMonthsBetween(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want int
	}{
		{"same day", "2024-01-15", "2024-01-15", 0},
		{"one day short", "2024-01-15", "2024-02-14", 0},
		{"exact month", "2024-01-15", "2024-02-15", 1},
		{"across year end", "2023-11-10", "2024-02-10", 3},
		{"end of month shortfall", "2024-01-31", "2024-02-29", 0},
		{"several years", "2021-05-01", "2024-05-01", 36},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, accrual.MonthsBetween(date(tc.from), date(tc.to)))
		})
	}
}
