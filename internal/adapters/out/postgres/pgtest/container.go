// Package pgtest starts a throwaway PostgreSQL container for integration tests
// and connects to it through the same Connect and Migrate path the service uses.
package pgtest

import (
	"context"
	"io"
	"log/slog"
	"time"

	"jobboard/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

const image = "postgres:15-alpine"

// Database is a running container plus a migrated connection to it.
type Database struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs the container and migrates the schema.
func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		image,
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := postgres.Connect(ctx, dsn, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = postgres.Migrate(ctx, db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db, DSN: dsn}, nil
}

// Truncate empties both tables.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE jobs, users").Error
}

// Stop closes the pool and terminates the container.
func (d *Database) Stop(ctx context.Context) error {
	_ = postgres.Close(d.DB)
	return d.Container.Terminate(ctx)
}
