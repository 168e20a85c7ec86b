// Package inmemdb provides an in-memory implementation of the app's
// repositories. The store's lifetime is the host process's lifetime; there is
// no durability guarantee. It backs local development and tests.
package inmemdb

import (
	"sync"

	"github.com/gaia-edu/gaia/core/account"
)

type accountTable struct {
	mutex sync.RWMutex
	table map[string]*account.Account // keyed by lowercased email
}

type DB struct {
	account *accountTable
}

func Open() (*DB, error) {
	db := &DB{
		account: &accountTable{table: make(map[string]*account.Account)},
	}
	return db, nil
}
