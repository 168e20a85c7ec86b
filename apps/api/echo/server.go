package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/gaia-edu/gaia/core"
	"github.com/gaia-edu/gaia/core/account"
)

type (
	ServerDeps struct {
		Conf       *core.Config
		Logger     core.Logger
		AccountSvc *account.Service
		Validate   *validator.Validate
		Translator ut.Translator
	}

	Server interface {
		http.Handler
		Start()
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
		Shutdown(context.Context) error
		Close() error
	}

	server struct {
		deps     ServerDeps
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
		started  time.Time
	}
)

var _ Server = (*server)(nil)

func NewServer(deps ServerDeps) Server {
	s := &server{
		deps:     deps,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.HideBanner = true
	s.app.Debug = conf.Debug

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps, s.signalShutdown)

	s.app.GET("/", s.home)
	s.app.GET("/health", s.health)

	api := s.app.Group("/api")
	registerAuthAPI(api, s.deps)
}

// Start runs the listener and reports its terminal error on Errors().
// It is meant to be called from a goroutine.
func (s *server) Start() {
	s.started = time.Now()
	s.errors <- s.app.Start(s.deps.Conf.Server.Address())
}

func (s *server) Errors() <-chan error { return s.errors }

func (s *server) ShutdownSignal() <-chan os.Signal { return s.shutdown }

// signalShutdown initiates a graceful shutdown; called when an integrity
// issue is caught by the error handler.
func (s *server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *server) Shutdown(ctx context.Context) error { return s.app.Shutdown(ctx) }

func (s *server) Close() error { return s.app.Close() }

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

// Handlers

type (
	BannerResponse struct {
		Message string `json:"message"`
		Status  string `json:"status"`
		Version string `json:"version"`
	}

	HealthResponse struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
		Service   string    `json:"service"`
		Uptime    string    `json:"uptime,omitempty"`
	}
)

func (s *server) home(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, BannerResponse{
		Message: "Welcome to the " + s.deps.Conf.AppName + " API!",
		Status:  "running",
		Version: s.deps.Conf.Build,
	})
}

func (s *server) health(ctx echo.Context) error {
	res := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   s.deps.Conf.AppName + " API",
	}
	if !s.started.IsZero() {
		res.Uptime = time.Since(s.started).Round(time.Second).String()
	}
	return ctx.JSON(http.StatusOK, res)
}
