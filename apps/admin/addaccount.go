package main

import (
	"context"
	"fmt"

	"github.com/gaia-edu/gaia/core"
	"github.com/gaia-edu/gaia/core/account"
)

// addAccount registers an account.Account, filling the role and institution
// in from the email address when they are not provided.
func (cli *commandLine) addAccount(name, email, pwd, role, institution string) error {
	email = core.CleanString(email, true /* lower */)
	if role == "" {
		role = account.SuggestRole(email)
	}
	if institution == "" {
		institution = account.SuggestInstitution(email)
	}

	na := account.NewAccount{
		Name:        name,
		Email:       email,
		Password:    pwd,
		Role:        role,
		Institution: institution,
	}
	if err := na.Validate(cli.validate); err != nil {
		return err
	}

	acct, err := cli.acctSvc.Register(context.Background(), na)
	if err != nil {
		return err
	}
	fmt.Printf("account created: %s (%s, %s)\n", acct.Email, acct.Role, acct.Institution)
	return nil
}
