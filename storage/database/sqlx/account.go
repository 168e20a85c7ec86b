package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/gaia-edu/gaia/core/account"
)

type accountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sql.DB) account.Repository {
	return &accountRepository{db: sqlx.NewDb(db, "postgres")}
}

// CreateAccount relies on the unique index on lower(email) for atomicity:
// a concurrent duplicate registration loses the insert race and surfaces as
// account.ErrEmailExists, never as partial state.
func (repo *accountRepository) CreateAccount(ctx context.Context, acct account.Account) (account.Account, error) {
	const q = `
		INSERT INTO account (id, full_name, email, role, institution, password_hash, created_at)
		VALUES (:id, :full_name, :email, :role, :institution, :password_hash, :created_at)`

	if _, err := repo.db.NamedExecContext(ctx, q, acct); err != nil {
		if pqErr, ok := errors.Cause(err).(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return account.Account{}, account.ErrEmailExists
		}
		return account.Account{}, errors.Wrap(err, "inserting account")
	}
	return acct, nil
}

func (repo *accountRepository) GetAccountByEmail(ctx context.Context, email string) (account.Account, error) {
	const q = `SELECT * FROM account WHERE lower(email) = lower($1)`

	var acct account.Account
	if err := repo.db.GetContext(ctx, &acct, q, email); err != nil {
		if err == sql.ErrNoRows {
			return account.Account{}, account.ErrNotFound
		}
		return account.Account{}, errors.Wrap(err, "getting account by email")
	}
	return acct, nil
}

func (repo *accountRepository) QueryAllAccounts(ctx context.Context) ([]account.Account, error) {
	const q = `SELECT * FROM account ORDER BY created_at`

	accts := make([]account.Account, 0)
	if err := repo.db.SelectContext(ctx, &accts, q); err != nil {
		return nil, errors.Wrap(err, "querying accounts")
	}
	return accts, nil
}
