package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gaia-edu/gaia/core"
	"github.com/gaia-edu/gaia/core/account"
)

type authApi struct {
	svc      *account.Service
	validate *validator.Validate
}

func registerAuthAPI(g *echo.Group, deps ServerDeps) {
	api := authApi{
		svc:      deps.AccountSvc,
		validate: deps.Validate,
	}

	ag := g.Group("/auth")
	ag.POST("/register", api.register)
	ag.POST("/login", api.login)
	ag.GET("/validate-email", api.validateEmail)
}

// Handlers

func (api *authApi) register(ctx echo.Context) error {
	var data account.NewAccount
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAccount")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	acct, err := api.svc.Register(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "registering account")
	}

	return ctx.JSON(http.StatusOK, RegisterResponse{
		Message: "Registration successful",
		Email:   acct.Email,
		Role:    acct.Role,
	})
}

func (api *authApi) login(ctx echo.Context) error {
	var data account.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	acct, err := api.svc.Authenticate(ctx.Request().Context(), data.Email, data.Password)
	if err != nil {
		if errors.Cause(err) == account.ErrInvalidCredentials {
			return errInvalidCredentials
		}
		return errors.Wrap(err, "authenticating")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Message:  "Login successful",
		Email:    acct.Email,
		Role:     acct.Role,
		FullName: acct.Name,
	})
}

func (api *authApi) validateEmail(ctx echo.Context) error {
	email := core.CleanString(ctx.QueryParam("email"), true /* lower */)
	isValid := account.IsEducationalEmail(email)

	message := "Please use .edu or academic domain"
	if isValid {
		message = "Valid educational email"
	}
	return ctx.JSON(http.StatusOK, ValidateEmailResponse{
		Email:              email,
		IsValidEducational: isValid,
		Message:            message,
	})
}

type (
	RegisterResponse struct {
		Message string `json:"message"`
		Email   string `json:"email"`
		Role    string `json:"role"`
	}

	LoginResponse struct {
		Message  string `json:"message"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		FullName string `json:"full_name"`
	}

	ValidateEmailResponse struct {
		Email              string `json:"email"`
		IsValidEducational bool   `json:"is_valid_educational"`
		Message            string `json:"message"`
	}
)
