package inmemdb

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaia-edu/gaia/core/account"
	"github.com/gaia-edu/gaia/tests"
)

func newRepo(t *testing.T) account.Repository {
	t.Helper()
	db, err := Open()
	require.NoError(t, err)
	return NewAccountRepository(db)
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	jane := testutil.CreateAccount(t, repo, "Jane Poe", "jane@mit.edu", "Sup3rSecret!", account.RoleStudent, "MIT")

	t.Run("get by email", func(t *testing.T) {
		acct, err := repo.GetAccountByEmail(ctx, "jane@mit.edu")
		require.NoError(t, err)
		assert.Equal(t, jane, acct)
	})

	t.Run("get unknown email", func(t *testing.T) {
		_, err := repo.GetAccountByEmail(ctx, "ghost@mit.edu")
		assert.ErrorIs(t, err, account.ErrNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := repo.CreateAccount(ctx, account.Account{Email: "jane@mit.edu"})
		assert.ErrorIs(t, err, account.ErrEmailExists)
	})

	t.Run("query all", func(t *testing.T) {
		testutil.CreateAccount(t, repo, "John Doe", "john@ox.ac.uk", "Sup3rSecret!", account.RoleProfessor, "Oxford")

		accts, err := repo.QueryAllAccounts(ctx)
		require.NoError(t, err)
		assert.Len(t, accts, 2)
	})
}

func TestAccountRepository_concurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	// concurrent registrations with the same email: exactly one wins
	const n = 50
	var created, dups int64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.CreateAccount(ctx, account.Account{Email: "race@mit.edu"})
			switch err {
			case nil:
				atomic.AddInt64(&created, 1)
			case account.ErrEmailExists:
				atomic.AddInt64(&dups, 1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, created)
	assert.EqualValues(t, n-1, dups)
}
