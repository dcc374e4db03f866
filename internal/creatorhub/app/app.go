package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/creatorhub/internal/creatorhub/http"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/identity"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/service"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/store/drivers/sqlite"
	"github.com/aussiebroadwan/creatorhub/pkg/cryptox"
	"github.com/aussiebroadwan/creatorhub/pkg/httpx"
	"github.com/aussiebroadwan/creatorhub/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application owns the store, the services and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       *sqlite.Store
	identity *identity.Local

	authService         *service.AuthService
	adminService        *service.AdminService
	inviteService       *service.InviteService
	rosterService       *service.RosterService
	campaignService     *service.CampaignService
	assignmentService   *service.AssignmentService
	housekeepingService *service.HousekeepingService // nil when HOUSEKEEPING_INTERVAL is 0

	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "creatorhub",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		logger: NewLogger(cfg),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	db, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	app.db = db
	app.logger.Info("database migrations applied successfully")

	idp, err := InitIdentity(cfg, db, app.logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize signing key: %w", err)
	}
	app.identity = idp

	app.initServices()
	app.initHTTP()

	return app, nil
}

// OpenStore opens the configured database without migrating it.
func OpenStore(cfg Config) (*sqlite.Store, error) {
	db, err := sqlite.NewStore(fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", cfg.DatabaseFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

// NewInviteService builds the invite lifecycle service; the CLI sweep
// command uses it without the rest of the application.
func NewInviteService(cfg Config, db *sqlite.Store, idp service.IdentityProvider) *service.InviteService {
	return &service.InviteService{
		Store:           db,
		Identity:        idp,
		AppBaseURL:      cfg.AppBaseURL,
		DefaultTTLHours: cfg.InviteDefaultTTLHours,
	}
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	if app.housekeepingService != nil {
		app.housekeepingService.Start()
	}

	app.logger.Info("creatorhub starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains the server, stops the sweeper and closes the store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down creatorhub...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.housekeepingService != nil {
		app.housekeepingService.Stop()
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("creatorhub stopped")
	return nil
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{Store: app.db, Identity: app.identity}
	app.adminService = &service.AdminService{Store: app.db}
	app.inviteService = NewInviteService(app.cfg, app.db, app.identity)
	app.rosterService = &service.RosterService{Store: app.db}
	app.campaignService = &service.CampaignService{Store: app.db}
	app.assignmentService = &service.AssignmentService{Store: app.db}

	if app.cfg.HousekeepingInterval > 0 {
		app.housekeepingService = service.NewHousekeepingService(
			app.inviteService,
			app.logger,
			app.cfg.HousekeepingInterval,
		)
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.db, app.identity.Signer, app.logger, httpapi.Options{
		BuildVersion:   BuildVersion,
		AllowedOrigins: app.cfg.AllowedOrigins,
		RateLimits:     app.cfg.RateLimits,
		Metrics:        httpx.NewMetrics("creatorhub"),
	})

	router.AuthService = app.authService
	router.AdminService = app.adminService
	router.InviteService = app.inviteService
	router.RosterService = app.rosterService
	router.CampaignService = app.campaignService
	router.AssignmentService = app.assignmentService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
