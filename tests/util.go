package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/gaia-edu/gaia/core"
	"github.com/gaia-edu/gaia/core/account"
)

// NewConfig returns a self-contained test configuration; nothing is read
// from the environment.
func NewConfig() *core.Config {
	return &core.Config{
		Env:              "TEST",
		TestMode:         true,
		AppName:          "GAIA",
		Build:            "test",
		DefaultFromEmail: "noreply@localhost",
		Server: core.ServerConfig{
			Host:            "localhost",
			Port:            8000,
			ShutdownTimeout: 5 * time.Second,
		},
	}
}

// NewValidator returns a validator with all app validation tags registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	locale := en.New()
	uni := ut.New(locale, locale)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	core.InitValidators(validate, translator)
	account.InitValidators(validate, translator)
	return validate, translator
}

// CreateAccount registers an account directly against the repository.
func CreateAccount(
	t *testing.T,
	repo account.Repository,
	name, email, pwd, role, institution string,
	createdAt ...time.Time,
) account.Account {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	acct := account.Account{
		Name:        name,
		Email:       email,
		Role:        role,
		Institution: institution,
		CreatedAt:   tstamp,
	}
	if pwd != "" {
		if err := acct.SetPassword(pwd); err != nil {
			t.Fatalf("CreateAccount() failed: %v", err)
		}
	}
	acct, err := repo.CreateAccount(context.Background(), acct)
	if err != nil {
		t.Fatalf("CreateAccount() failed: %v", err)
	}
	return acct
}
