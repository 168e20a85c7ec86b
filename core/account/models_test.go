package account

import (
	"strings"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaia-edu/gaia/core"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	locale := en.New()
	uni := ut.New(locale, locale)
	translator, found := uni.GetTranslator("en")
	require.True(t, found)

	validate := validator.New()
	core.InitValidators(validate, translator)
	InitValidators(validate, translator)
	return validate
}

func TestAccount_password(t *testing.T) {
	var acct Account
	require.NoError(t, acct.SetPassword("Sup3rSecret!"))
	assert.NotEmpty(t, acct.PasswordHash)
	assert.NotContains(t, string(acct.PasswordHash), "Sup3rSecret!")

	// verifying against the same password always succeeds
	assert.NoError(t, acct.CheckPassword("Sup3rSecret!"))

	// verifying against any different password always fails
	assert.Error(t, acct.CheckPassword("sup3rsecret!"))
	assert.Error(t, acct.CheckPassword(""))
}

func TestNewAccount_Validate(t *testing.T) {
	validate := newValidator(t)

	valid := func() NewAccount {
		return NewAccount{
			Name:        "Jane Poe",
			Email:       "jane@mit.edu",
			Password:    "Sup3rSecret!",
			Role:        RoleStudent,
			Institution: "MIT",
		}
	}

	tests := []struct {
		name      string
		mutate    func(*NewAccount)
		wantField string // empty: no error expected
		wantTag   string
	}{
		{name: "ok", mutate: func(na *NewAccount) {}},
		{name: "cleans and lowers email", mutate: func(na *NewAccount) { na.Email = "  Jane@MIT.EDU " }},
		{name: "name required", mutate: func(na *NewAccount) { na.Name = " " }, wantField: "full_name", wantTag: "required"},
		{name: "email required", mutate: func(na *NewAccount) { na.Email = "" }, wantField: "email", wantTag: "required"},
		{name: "email malformed", mutate: func(na *NewAccount) { na.Email = "not-an-email" }, wantField: "email", wantTag: "email"},
		{name: "email not educational", mutate: func(na *NewAccount) { na.Email = "jane@gmail.com" }, wantField: "email", wantTag: "eduemail"},
		{name: "password required", mutate: func(na *NewAccount) { na.Password = "" }, wantField: "password", wantTag: "required"},
		{name: "password too short", mutate: func(na *NewAccount) { na.Password = "Short1!" }, wantField: "password", wantTag: "pwdminlen"},
		{name: "password has whitespace", mutate: func(na *NewAccount) { na.Password = "Sup3r Secret" }, wantField: "password", wantTag: "pwdnospace"},
		{name: "password all numeric", mutate: func(na *NewAccount) { na.Password = "1234567890" }, wantField: "password", wantTag: "pwdnotallnum"},
		{name: "password similar to email", mutate: func(na *NewAccount) { na.Password = "jane@mit.edu1" }, wantField: "password", wantTag: "pwdtoosim"},
		{name: "role required", mutate: func(na *NewAccount) { na.Role = "" }, wantField: "role", wantTag: "required"},
		{name: "role unknown", mutate: func(na *NewAccount) { na.Role = "wizard" }, wantField: "role", wantTag: "accountrole"},
		{name: "role case insensitive", mutate: func(na *NewAccount) { na.Role = "Professor" }},
		{name: "institution required", mutate: func(na *NewAccount) { na.Institution = "" }, wantField: "institution", wantTag: "required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			na := valid()
			tt.mutate(&na)

			err := na.Validate(validate)
			if tt.wantField == "" {
				assert.NoError(t, err)
				assert.Equal(t, na.Email, strings.ToLower(strings.TrimSpace(na.Email)))
				return
			}

			var vErrs validator.ValidationErrors
			require.ErrorAs(t, err, &vErrs)
			var found bool
			for _, vErr := range vErrs {
				if vErr.Field() == tt.wantField && vErr.Tag() == tt.wantTag {
					found = true
				}
			}
			assert.Truef(t, found, "expected error on %q with tag %q; got %v", tt.wantField, tt.wantTag, err)
		})
	}
}

func TestCredentials_Validate(t *testing.T) {
	validate := newValidator(t)

	creds := Credentials{Email: " Jane@MIT.edu ", Password: "whatever"}
	require.NoError(t, creds.Validate(validate))
	assert.Equal(t, "jane@mit.edu", creds.Email)

	creds = Credentials{}
	assert.Error(t, creds.Validate(validate))

	// any well-formed address may attempt login; the edu gate applies to
	// registration only
	creds = Credentials{Email: "bob@gmail.com", Password: "whatever"}
	assert.NoError(t, creds.Validate(validate))
}
