package account

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaia-edu/gaia/core"
)

// fakeRepository is a minimal in-memory Repository for service tests.
type fakeRepository struct {
	mu    sync.Mutex
	table map[string]Account
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{table: make(map[string]Account)}
}

func (repo *fakeRepository) CreateAccount(_ context.Context, acct Account) (Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, ok := repo.table[acct.Email]; ok {
		return Account{}, ErrEmailExists
	}
	repo.table[acct.Email] = acct
	return acct, nil
}

func (repo *fakeRepository) GetAccountByEmail(_ context.Context, email string) (Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if acct, ok := repo.table[email]; ok {
		return acct, nil
	}
	return Account{}, ErrNotFound
}

func (repo *fakeRepository) QueryAllAccounts(_ context.Context) ([]Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	accts := make([]Account, 0, len(repo.table))
	for _, acct := range repo.table {
		accts = append(accts, acct)
	}
	return accts, nil
}

// recordingEmailService records messages instead of sending.
type recordingEmailService struct {
	messages []*core.EmailMessage
}

func (svc *recordingEmailService) SendMessages(messages ...*core.EmailMessage) {
	svc.messages = append(svc.messages, messages...)
}

func newTestService() (*Service, *fakeRepository, *recordingEmailService) {
	repo := newFakeRepository()
	mailSvc := &recordingEmailService{}
	conf := &core.Config{AppName: "GAIA", TestMode: true}
	return NewService(repo, mailSvc, conf), repo, mailSvc
}

func newAccountFixture() NewAccount {
	return NewAccount{
		Name:        "Jane Poe",
		Email:       "jane@mit.edu",
		Password:    "Sup3rSecret!",
		Role:        RoleStudent,
		Institution: "MIT",
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	svc, _, mailSvc := newTestService()

	acct, err := svc.Register(ctx, newAccountFixture())
	require.NoError(t, err)

	assert.NotEmpty(t, acct.ID)
	assert.Equal(t, "jane@mit.edu", acct.Email)
	assert.Equal(t, RoleStudent, acct.Role)
	assert.False(t, acct.CreatedAt.IsZero())
	assert.NoError(t, acct.CheckPassword("Sup3rSecret!"))

	// a welcome email goes out on success
	require.Len(t, mailSvc.messages, 1)
	assert.Equal(t, "jane@mit.edu", mailSvc.messages[0].To[0].Address)
}

func TestService_Register_duplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, mailSvc := newTestService()

	_, err := svc.Register(ctx, newAccountFixture())
	require.NoError(t, err)

	// registering the same email twice yields success then a duplicate failure
	_, err = svc.Register(ctx, newAccountFixture())
	require.Error(t, err)

	var vErr *core.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "email", vErr.Fields[0].Field)
	assert.Equal(t, ErrEmailExists.Error(), vErr.Fields[0].Error)

	// no second welcome email
	assert.Len(t, mailSvc.messages, 1)
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	registered, err := svc.Register(ctx, newAccountFixture())
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		acct, err := svc.Authenticate(ctx, "jane@mit.edu", "Sup3rSecret!")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, acct.ID)
		assert.Equal(t, RoleStudent, acct.Role)
		assert.Equal(t, "Jane Poe", acct.Name)
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, " Jane@MIT.edu ", "Sup3rSecret!")
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "jane@mit.edu", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email fails identically", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "ghost@mit.edu", "Sup3rSecret!")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
