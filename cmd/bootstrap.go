package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"jobboard/docs"
	httpin "jobboard/internal/adapters/in/http"
	"jobboard/internal/adapters/out/jwtauth"
	"jobboard/internal/adapters/out/postgres"
	"jobboard/internal/schedule"

	"gorm.io/gorm"
)

// App is a fully wired job board whose handler is not yet bound to a port.
type App struct {
	cfg     Config
	handler http.Handler
	db      *gorm.DB
	tasks   *schedule.TaskManager
	logger  *slog.Logger
}

// Bootstrap connects to the database and waits for the connection, migrates,
// and builds the dispatcher. Nothing is served until the caller binds
// Handler; a failed connection is returned instead of being logged and
// ignored.
func Bootstrap(ctx context.Context, cfg Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.DB.ConnectTimeout)
	defer cancel()

	db, err := postgres.Connect(connectCtx, cfg.DB.Settings().DSN(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s:%d: %w", cfg.DB.Host, cfg.DB.Port, err)
	}
	logger.InfoContext(ctx, "Connected to PostgreSQL", "host", cfg.DB.Host, "database", cfg.DB.Name)

	app, err := wire(ctx, cfg, db, logger)
	if err != nil {
		_ = postgres.Close(db)
		return nil, err
	}
	return app, nil
}

func wire(ctx context.Context, cfg Config, db *gorm.DB, logger *slog.Logger) (*App, error) {
	if err := postgres.Migrate(ctx, db); err != nil {
		return nil, err
	}

	openAPI3, err := docs.OpenAPI3JSON(ctx)
	if err != nil {
		return nil, err
	}

	tokens, err := jwtauth.NewIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)
	if err != nil {
		return nil, err
	}

	root := NewCompositionRoot(cfg, db, tokens, logger)

	dispatcherCfg := root.CreateDispatcherConfig(openAPI3)
	if err := dispatcherCfg.Validate(); err != nil {
		return nil, err
	}

	expiredJobs, err := root.CreateExpiredJobsTask()
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:     cfg,
		handler: httpin.NewDispatcher(dispatcherCfg),
		db:      db,
		tasks:   schedule.NewTaskManager(logger, expiredJobs),
		logger:  logger,
	}, nil
}

// Handler is the unbound request dispatcher.
func (a *App) Handler() http.Handler {
	return a.handler
}

func (a *App) StartTasks() error {
	return a.tasks.StartAll()
}

// Close stops scheduled tasks and closes the connection pool.
func (a *App) Close(ctx context.Context) error {
	a.tasks.StopAll(ctx)
	if err := postgres.Close(a.db); err != nil {
		return err
	}
	a.logger.InfoContext(ctx, "Database connection closed")
	return nil
}

// Serve binds the handler to HTTP_PORT and blocks until ctx is cancelled or
// the listener fails, then shuts the server down gracefully.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(a.cfg.HTTPPort)),
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.InfoContext(ctx, "Server listening", "port", a.cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed: %w", err)
		}
		close(serverErrors)
	}()

	select {
	case err, ok := <-serverErrors:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	a.logger.Info("Shutting down HTTP server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
