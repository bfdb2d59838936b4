package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionKindDeposit  TransactionKind = "deposit"
	TransactionKindWithdraw TransactionKind = "withdraw"
)

// Transaction is an append-only ledger entry. ResultingBalance snapshots the
// account balance immediately after the entry was applied. Entries are never
// edited or deleted.
type Transaction struct {
	ID               string
	AccountID        string
	Kind             TransactionKind
	Amount           decimal.Decimal
	EffectiveDate    time.Time
	ResultingBalance decimal.Decimal
	CreatedAt        time.Time
}
