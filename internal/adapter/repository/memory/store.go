// Package memory provides map-backed stores used by the memory storage
// driver and by the service tests. A single store mutex makes every
// operation, including the balance-update-plus-ledger-append pair, atomic.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/zicku/belimbing-ledger/internal/domain"
)

type Store struct {
	mu           sync.RWMutex
	customers    map[string]domain.Customer
	products     map[string]domain.DepositProduct
	accounts     map[string]domain.Account
	transactions map[string][]domain.Transaction
}

func NewStore() *Store {
	return &Store{
		customers:    make(map[string]domain.Customer),
		products:     make(map[string]domain.DepositProduct),
		accounts:     make(map[string]domain.Account),
		transactions: make(map[string][]domain.Transaction),
	}
}

func (s *Store) now() time.Time {
	return time.Now().UTC()
}

// sortByCreation orders records oldest first, ties broken by id so listings
// are stable across calls.
func sortByCreation[T any](items []T, createdAt func(T) time.Time, id func(T) string) {
	sort.Slice(items, func(i, j int) bool {
		ci, cj := createdAt(items[i]), createdAt(items[j])
		if !ci.Equal(cj) {
			return ci.Before(cj)
		}
		return id(items[i]) < id(items[j])
	})
}
