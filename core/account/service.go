package account

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/gaia-edu/gaia/core"
)

var (
	// errors
	ErrNotFound    = errors.New("account not found")
	ErrEmailExists = errors.New("an account with this email already exists")
	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password so callers cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type (
	Repository interface {
		// CreateAccount inserts acct. The duplicate-email check and the insert
		// are atomic: ErrEmailExists is returned without partial state when the
		// email is already taken.
		CreateAccount(ctx context.Context, acct Account) (Account, error)
		GetAccountByEmail(ctx context.Context, email string) (Account, error)
		QueryAllAccounts(ctx context.Context) ([]Account, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		conf    *core.Config
	}
)

func NewService(repo Repository, mailSvc core.EmailService, conf *core.Config) *Service {
	return &Service{repo: repo, mailSvc: mailSvc, conf: conf}
}

// Register creates a new Account from already-validated registration data.
func (svc *Service) Register(ctx context.Context, na NewAccount) (Account, error) {
	acct := Account{
		ID:          uuid.NewString(),
		Name:        na.Name,
		Email:       na.Email,
		Role:        na.Role,
		Institution: na.Institution,
		CreatedAt:   time.Now().UTC(),
	}
	if err := acct.SetPassword(na.Password); err != nil {
		return Account{}, errors.Wrap(err, "hashing password")
	}

	acct, err := svc.repo.CreateAccount(ctx, acct)
	if err != nil {
		if errors.Cause(err) == ErrEmailExists {
			return Account{}, core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return Account{}, err
	}

	svc.sendWelcomeEmail(acct)
	return acct, nil
}

// Authenticate looks an Account up by email and verifies the password.
func (svc *Service) Authenticate(ctx context.Context, email, pwd string) (Account, error) {
	acct, err := svc.repo.GetAccountByEmail(ctx, core.CleanString(email, true /* lower */))
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return Account{}, ErrInvalidCredentials
		}
		return Account{}, errors.Wrap(err, "finding account by email")
	}
	if err = acct.CheckPassword(pwd); err != nil {
		return Account{}, ErrInvalidCredentials
	}
	return acct, nil
}

func (svc *Service) GetByEmail(ctx context.Context, email string) (Account, error) {
	return svc.repo.GetAccountByEmail(ctx, core.CleanString(email, true /* lower */))
}

func (svc *Service) QueryAll(ctx context.Context) ([]Account, error) {
	return svc.repo.QueryAllAccounts(ctx)
}

func (svc *Service) sendWelcomeEmail(acct Account) {
	if svc.mailSvc == nil {
		return
	}
	body := fmt.Sprintf(
		"Hi %s,\n\nYour %s account at %s is ready. You can now sign in with %s.\n",
		acct.Name, acct.Role, acct.Institution, acct.Email,
	)
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: acct.Name, Address: acct.Email}},
		Subject: "Welcome aboard!",
		Body:    body,
	})
}
