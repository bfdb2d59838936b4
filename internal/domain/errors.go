package domain

import "errors"

// Validation errors: rejected before any state change.
var (
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrInvalidDateRange = errors.New("date precedes the accrual start date")
	ErrNonMonotonicDate = errors.New("date precedes the last transaction date")
)

// Referential errors: the referenced record does not exist.
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("deposito type not found")
	ErrAccountNotFound  = errors.New("account not found")
)

// Conflict errors: a precondition on current state failed.
var (
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrCustomerHasAccounts = errors.New("customer still owns accounts")
	ErrAccountHasBalance   = errors.New("account still holds a balance")
	ErrAccountHasHistory   = errors.New("account has recorded transactions")
)

// ErrTransient marks storage failures that persisted through a retry.
// Callers may retry the whole request later.
var ErrTransient = errors.New("storage temporarily unavailable")
