package account

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/gaia-edu/gaia/core"
)

// Roles
const (
	RoleStudent       = "student"
	RoleProfessor     = "professor"
	RoleResearcher    = "researcher"
	RoleAdministrator = "administrator"
)

var AllRoles = []string{RoleStudent, RoleProfessor, RoleResearcher, RoleAdministrator}

// Account is a registered member of the platform.
// Email uniquely identifies at most one Account; Email and PasswordHash are
// immutable once created (there is no password-reset path yet).
type Account struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"full_name" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	Role         string    `json:"role" db:"role"`
	Institution  string    `json:"institution" db:"institution"`
	PasswordHash []byte    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // UTC
}

func (a *Account) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	return nil
}

func (a *Account) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(pwd))
}

func (a *Account) IsAdministrator() bool {
	return a.Role == RoleAdministrator
}

// NewAccount contains information needed to register a new Account.
type NewAccount struct {
	Name        string `json:"full_name" validate:"required"`
	Email       string `json:"email" validate:"required,email,eduemail"`
	Password    string `json:"password" validate:"required"`
	Role        string `json:"role" validate:"required,accountrole"`
	Institution string `json:"institution" validate:"required"`
}

func (na *NewAccount) Validate(validate *validator.Validate) error {
	na.Name = core.CleanString(na.Name)
	na.Email = core.CleanString(na.Email, true /* lower */)
	na.Role = core.CleanString(na.Role, true /* lower */)
	na.Institution = core.CleanString(na.Institution)
	return validate.Struct(na)
}

// Credentials is a login request payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate(validate *validator.Validate) error {
	c.Email = core.CleanString(c.Email, true /* lower */)
	return validate.Struct(c)
}
