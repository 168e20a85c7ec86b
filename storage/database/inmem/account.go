package inmemdb

import (
	"context"

	"github.com/gaia-edu/gaia/core/account"
)

type accountRepository struct {
	db *accountTable
}

func NewAccountRepository(db *DB) account.Repository {
	return &accountRepository{db: db.account}
}

// CreateAccount holds the write lock across the duplicate check and the
// insert, so two concurrent registrations with the same email cannot both
// pass the check.
func (repo *accountRepository) CreateAccount(_ context.Context, acct account.Account) (account.Account, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[acct.Email]; ok {
		return account.Account{}, account.ErrEmailExists
	}
	repo.db.table[acct.Email] = &acct
	return acct, nil
}

func (repo *accountRepository) GetAccountByEmail(_ context.Context, email string) (account.Account, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if acct, ok := repo.db.table[email]; ok {
		return *acct, nil
	}
	return account.Account{}, account.ErrNotFound
}

func (repo *accountRepository) QueryAllAccounts(_ context.Context) ([]account.Account, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	accts := make([]account.Account, 0, len(repo.db.table))
	for _, acct := range repo.db.table {
		accts = append(accts, *acct)
	}
	return accts, nil
}
